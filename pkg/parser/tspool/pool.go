// Package tspool owns the tree-sitter grammars for JavaScript, TypeScript and TSX.
//
// Parsers are created per call and never reused: a parse cancelled through its
// context leaves the parser's cancellation flag set, and later parses on the
// same parser fail. Trees returned by Parse are safe to read from one goroutine.
package tspool

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/specvital/frontend-rules/pkg/domain"
)

// MaxTreeDepth is the maximum recursion depth when walking AST trees.
const MaxTreeDepth = 1000

var ErrUnknownLanguage = errors.New("no grammar for language")

var (
	grammars     map[domain.Language]*sitter.Language
	grammarsOnce sync.Once
)

func loadGrammars() {
	grammarsOnce.Do(func() {
		grammars = map[domain.Language]*sitter.Language{
			domain.LanguageJavaScript: javascript.GetLanguage(),
			domain.LanguageTypeScript: typescript.GetLanguage(),
			domain.LanguageTSX:        tsx.GetLanguage(),
		}
	})
}

// Grammar returns the tree-sitter grammar for lang.
func Grammar(lang domain.Language) (*sitter.Language, error) {
	loadGrammars()
	g, ok := grammars[lang]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownLanguage, "%q", lang)
	}
	return g, nil
}

// Parse parses source with a fresh parser for lang.
// Caller MUST call tree.Close() to free resources.
func Parse(ctx context.Context, lang domain.Language, source []byte) (*sitter.Tree, error) {
	grammar, err := Grammar(lang)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", lang)
	}
	return tree, nil
}
