package parser

import (
	"context"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/parser/tspool"
)

const MaxTreeDepth = tspool.MaxTreeDepth

// ErrUnsupportedFile is returned when a file's extension has no grammar.
var ErrUnsupportedFile = errors.New("unsupported file type")

// File is a parsed source file.
// Callers must call Close to release the underlying tree.
type File struct {
	Name     string
	Source   []byte
	Language domain.Language
	Tree     *sitter.Tree
}

// Root returns the program node.
func (f *File) Root() *sitter.Node {
	return f.Tree.RootNode()
}

// HasSyntaxErrors reports whether tree-sitter recovered from errors while parsing.
func (f *File) HasSyntaxErrors() bool {
	return f.Root().HasError()
}

// Close releases the tree.
func (f *File) Close() {
	if f.Tree != nil {
		f.Tree.Close()
		f.Tree = nil
	}
}

// ParseFile parses source with the grammar selected by filename's extension.
func ParseFile(ctx context.Context, filename string, source []byte) (*File, error) {
	lang, ok := domain.LanguageFromPath(filename)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFile, "%s", filename)
	}
	return ParseSource(ctx, filename, lang, source)
}

// ParseSource parses source with an explicit language.
func ParseSource(ctx context.Context, filename string, lang domain.Language, source []byte) (*File, error) {
	tree, err := tspool.Parse(ctx, lang, source)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", filename)
	}
	if tree == nil {
		return nil, errors.Newf("parse %s: no tree produced", filename)
	}
	return &File{
		Name:     filename,
		Source:   source,
		Language: lang,
		Tree:     tree,
	}, nil
}

// GetNodeText returns the source text for the given AST node.
// Returns empty string if the node is nil or its byte range exceeds the source length.
func GetNodeText(node *sitter.Node, source []byte) (result string) {
	if node == nil {
		return ""
	}
	start := node.StartByte()
	end := node.EndByte()
	sourceLen := uint32(len(source))

	if start > sourceLen || end > sourceLen || start > end {
		return ""
	}

	// Content can panic on slice bounds when a tree outlives a mutated buffer.
	defer func() {
		if r := recover(); r != nil {
			result = ""
		}
	}()

	return node.Content(source)
}

// GetLocation converts a tree-sitter node position to a [domain.Location].
// Line numbers are converted to 1-based indexing.
func GetLocation(node *sitter.Node, filename string) domain.Location {
	start := node.StartPoint()
	end := node.EndPoint()

	return domain.Location{
		File:      filename,
		StartLine: int(start.Row) + 1,
		EndLine:   int(end.Row) + 1,
		StartCol:  int(start.Column),
		EndCol:    int(end.Column),
	}
}

// FindChildByType returns the first direct child with the given node type.
func FindChildByType(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil && child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// FindChildrenByType returns all direct children with the given node type.
func FindChildrenByType(node *sitter.Node, nodeType string) []*sitter.Node {
	if node == nil {
		return nil
	}
	var children []*sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil && child.Type() == nodeType {
			children = append(children, child)
		}
	}
	return children
}

func walkTreeWithDepth(node *sitter.Node, visitor func(*sitter.Node) bool, depth int) {
	if node == nil || depth > MaxTreeDepth {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walkTreeWithDepth(node.Child(i), visitor, depth+1)
	}
}

// WalkTree recursively visits all nodes in the AST.
// The visitor function returns false to stop traversing into children.
func WalkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	walkTreeWithDepth(node, visitor, 0)
}
