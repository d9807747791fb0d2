// Package rule defines the contract between lint rules and the linter engine.
//
// A rule is a [Definition]: static metadata plus a Create factory. For every
// file the engine builds a fresh [Context], calls Create, and dispatches the
// returned [Visitor] callbacks while walking the tree-sitter syntax tree.
package rule

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Type classifies what kind of issue a rule reports.
type Type string

const (
	TypeProblem    Type = "problem"
	TypeSuggestion Type = "suggestion"
	TypeLayout     Type = "layout"
)

// ExitSuffix marks a visitor key that runs after a node's children were visited.
const ExitSuffix = ":exit"

// Handler is called with a node of the type it was registered for.
type Handler func(node *sitter.Node)

// Visitor maps tree-sitter node types to handlers.
// A key of the form "type:exit" is called when leaving the node.
type Visitor map[string]Handler

// Definition describes a rule and creates its per-file visitor.
type Definition struct {
	// Name is the rule ID without the plugin namespace, e.g. "no-default-export".
	Name        string
	Type        Type
	Description string
	Category    string
	Fixable     bool
	// Messages maps message IDs to templates with {{key}} placeholders.
	Messages map[string]string
	// Schema returns a pointer to a fresh options struct.
	// Nil means the rule accepts no options.
	Schema func() any
	// Create is called once per file. A nil Visitor is allowed.
	Create func(ctx *Context) Visitor
}

// Exit returns the visitor key for leaving nodes of the given type.
func Exit(nodeType string) string {
	return nodeType + ExitSuffix
}
