// Package react contains rules for React components and JSX props.
package react

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const NestedComponentRuleName = "no-nested-component"

const anonymous = "(anonymous)"

func init() {
	rules.Register(NoNestedComponent)
}

// NoNestedComponent flags components declared inside another component.
//
// Component-shaped function declarations, class declarations and variables
// initialized with a function under an uppercase name push onto a per-file
// stack when entered and pop when left; entering one while the stack is not
// empty is a report.
var NoNestedComponent = &rule.Definition{
	Name:        NestedComponentRuleName,
	Type:        rule.TypeProblem,
	Description: "Disallow defining a new component inside another component.",
	Category:    "react",
	Messages: map[string]string{
		"noNestedComponent": "Do not define a new component inside another component. Move '{{name}}' to the top level of the file.",
	},
	Schema: func() any { return &jsast.IgnoreOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}

		var stack []*sitter.Node

		push := func(node *sitter.Node, name string) {
			if len(stack) > 0 {
				if name == "" {
					name = anonymous
				}
				ctx.Report(rule.Descriptor{
					Node:      node,
					MessageID: "noNestedComponent",
					Data:      map[string]string{"name": name},
				})
			}
			stack = append(stack, node)
		}
		pop := func() {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}

		enterDeclaration := func(node *sitter.Node) {
			if jsast.IsComponent(node, ctx.Source) {
				push(node, jsast.Name(node, ctx.Source))
			}
		}
		exitDeclaration := func(node *sitter.Node) {
			if jsast.IsComponent(node, ctx.Source) {
				pop()
			}
		}

		isComponentDeclarator := func(decl *sitter.Node) bool {
			return jsast.IsFunction(jsast.DeclaratorInit(decl)) &&
				jsast.IsComponentName(jsast.DeclaratorName(decl, ctx.Source))
		}

		return rule.Visitor{
			jsast.NodeFunctionDecl:             enterDeclaration,
			rule.Exit(jsast.NodeFunctionDecl):  exitDeclaration,
			jsast.NodeGeneratorDecl:            enterDeclaration,
			rule.Exit(jsast.NodeGeneratorDecl): exitDeclaration,
			jsast.NodeClassDecl:                enterDeclaration,
			rule.Exit(jsast.NodeClassDecl):     exitDeclaration,
			jsast.NodeAbstractClass:            enterDeclaration,
			rule.Exit(jsast.NodeAbstractClass): exitDeclaration,
			jsast.NodeDeclarator: func(decl *sitter.Node) {
				if isComponentDeclarator(decl) {
					push(decl, jsast.DeclaratorName(decl, ctx.Source))
				}
			},
			rule.Exit(jsast.NodeDeclarator): func(decl *sitter.Node) {
				if isComponentDeclarator(decl) {
					pop()
				}
			},
		}
	},
}
