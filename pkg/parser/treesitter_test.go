package parser

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/frontend-rules/pkg/domain"
)

func TestParseFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		source   string
		wantLang domain.Language
	}{
		{"javascript", "a.js", "const a = 1;", domain.LanguageJavaScript},
		{"jsx via javascript grammar", "A.jsx", "const A = () => <div>hi</div>;", domain.LanguageJavaScript},
		{"typescript", "a.ts", "interface IA { a: string }", domain.LanguageTypeScript},
		{"tsx", "A.tsx", "export const A = (p: { x: number }) => <span>{p.x}</span>;", domain.LanguageTSX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := ParseFile(context.Background(), tt.filename, []byte(tt.source))
			require.NoError(t, err)
			defer f.Close()

			assert.Equal(t, tt.wantLang, f.Language)
			assert.Equal(t, "program", f.Root().Type())
			assert.False(t, f.HasSyntaxErrors())
		})
	}
}

func TestParseFile_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(context.Background(), "styles.css", []byte("a{}"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFile))
}

func TestGetNodeText(t *testing.T) {
	t.Parallel()

	src := []byte("let answer = 42;")
	f, err := ParseFile(context.Background(), "a.js", src)
	require.NoError(t, err)
	defer f.Close()

	var number *sitter.Node
	WalkTree(f.Root(), func(n *sitter.Node) bool {
		if n.Type() == "number" {
			number = n
			return false
		}
		return true
	})
	require.NotNil(t, number)

	assert.Equal(t, "42", GetNodeText(number, src))
	assert.Equal(t, "", GetNodeText(number, src[:3]))
	assert.Equal(t, "", GetNodeText(nil, src))

	loc := GetLocation(number, "a.js")
	assert.Equal(t, domain.Location{File: "a.js", StartLine: 1, EndLine: 1, StartCol: 13, EndCol: 15}, loc)
}

func TestFindChildByType(t *testing.T) {
	t.Parallel()

	src := []byte("import a from './a';\nimport b from './b';\nconst c = 1;")
	f, err := ParseFile(context.Background(), "a.js", src)
	require.NoError(t, err)
	defer f.Close()

	imports := FindChildrenByType(f.Root(), "import_statement")
	assert.Len(t, imports, 2)
	assert.NotNil(t, FindChildByType(f.Root(), "lexical_declaration"))
	assert.Nil(t, FindChildByType(f.Root(), "class_declaration"))
	assert.Nil(t, FindChildByType(nil, "program"))
}

func TestWalkTree_StopsDescending(t *testing.T) {
	t.Parallel()

	src := []byte("function outer() { function inner() {} }")
	f, err := ParseFile(context.Background(), "a.js", src)
	require.NoError(t, err)
	defer f.Close()

	var seen int
	WalkTree(f.Root(), func(n *sitter.Node) bool {
		if n.Type() == "function_declaration" {
			seen++
			return false
		}
		return true
	})
	assert.Equal(t, 1, seen)
}
