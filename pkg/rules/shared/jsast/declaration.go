package jsast

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/parser"
)

// Name returns the text of node's name field, or "" when it has none.
func Name(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return parser.GetNodeText(node.ChildByFieldName(FieldName), source)
}

// DeclaratorName returns the identifier bound by a variable_declarator.
// Destructuring patterns have no single name and yield "".
func DeclaratorName(decl *sitter.Node, source []byte) string {
	if decl == nil {
		return ""
	}
	name := decl.ChildByFieldName(FieldName)
	if name == nil || name.Type() != NodeIdentifier {
		return ""
	}
	return parser.GetNodeText(name, source)
}

// DeclaratorInit returns the initializer of a variable_declarator without parentheses.
func DeclaratorInit(decl *sitter.Node) *sitter.Node {
	if decl == nil {
		return nil
	}
	return UnwrapParens(decl.ChildByFieldName(FieldValue))
}

// DeclarationKind returns "const", "let" or "var" for a variable declaration node.
func DeclarationKind(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	switch node.Type() {
	case NodeVariableDecl:
		return "var"
	case NodeLexicalDecl:
		if first := node.Child(0); first != nil {
			return first.Type()
		}
	}
	return ""
}

// Declarators returns the variable_declarator children of a declaration.
func Declarators(node *sitter.Node) []*sitter.Node {
	return parser.FindChildrenByType(node, NodeDeclarator)
}

// IsVariableDeclaration reports whether node is a let/const/var declaration.
func IsVariableDeclaration(node *sitter.Node) bool {
	return node != nil && (node.Type() == NodeLexicalDecl || node.Type() == NodeVariableDecl)
}

// IsDefaultExport reports whether an export statement is "export default ...".
func IsDefaultExport(node *sitter.Node) bool {
	if node == nil || node.Type() != NodeExport {
		return false
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child != nil && !child.IsNamed() && child.Type() == "default" {
			return true
		}
	}
	return false
}

// IsRootLevel reports whether a declaration sits directly in the program.
// Declarations inside an export statement are not root level.
func IsRootLevel(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	parent := node.Parent()
	return parent != nil && parent.Type() == NodeProgram
}

// TopLevelStatements returns the statements of a program.
func TopLevelStatements(program *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(program.NamedChildCount()); i++ {
		if stmt := program.NamedChild(i); stmt != nil {
			out = append(out, stmt)
		}
	}
	return out
}

// HasJSDoc reports whether a /** ... */ comment immediately precedes node.
// Only the unbroken run of comments before the node counts.
func HasJSDoc(node *sitter.Node, source []byte) bool {
	if node == nil {
		return false
	}
	for prev := node.PrevSibling(); prev != nil && prev.Type() == NodeComment; prev = prev.PrevSibling() {
		if IsJSDocComment(parser.GetNodeText(prev, source)) {
			return true
		}
	}
	return false
}

// IsJSDocComment reports whether comment text is a block comment whose body starts with '*'.
func IsJSDocComment(text string) bool {
	if len(text) < 4 || !strings.HasPrefix(text, "/*") || !strings.HasSuffix(text, "*/") {
		return false
	}
	return strings.HasPrefix(text[2:len(text)-2], "*")
}

// IsComponent applies the component heuristic to a function or class node:
// an uppercase name, an uppercase variable it initializes, or a top-level
// return of JSX from a block body.
func IsComponent(node *sitter.Node, source []byte) bool {
	if node == nil {
		return false
	}

	switch node.Type() {
	case NodeFunctionDecl, NodeGeneratorDecl, NodeArrowFunction, NodeFunctionExpr, NodeFunctionLegacy, NodeGeneratorExpr:
		if IsComponentName(Name(node, source)) {
			return true
		}
		if decl := enclosingDeclarator(node); decl != nil && IsComponentName(DeclaratorName(decl, source)) {
			return true
		}
		return returnsJSX(node.ChildByFieldName(FieldBody))
	case NodeClassDecl, NodeAbstractClass:
		return IsComponentName(Name(node, source))
	}
	return false
}

func enclosingDeclarator(node *sitter.Node) *sitter.Node {
	parent := node.Parent()
	for parent != nil && parent.Type() == NodeParens {
		parent = parent.Parent()
	}
	if parent != nil && parent.Type() == NodeDeclarator {
		return parent
	}
	return nil
}

func returnsJSX(body *sitter.Node) bool {
	if body == nil || body.Type() != NodeStatements {
		return false
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if stmt == nil || stmt.Type() != NodeReturn {
			continue
		}
		if IsJSXElementOrFragment(UnwrapParens(FirstExpression(stmt))) {
			return true
		}
	}
	return false
}
