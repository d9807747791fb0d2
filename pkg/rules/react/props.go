package react

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const (
	InlineArrowRuleName      = "no-inline-arrow-functions-in-jsx"
	UnnecessaryCurlyRuleName = "no-unnecessary-curly-in-props"
)

func init() {
	rules.Register(NoInlineArrowFunctions)
	rules.Register(NoUnnecessaryCurly)
}

// attributeExpression returns the container and the unparenthesized
// expression of an attribute written as prop={...}.
func attributeExpression(attr *sitter.Node) (container, expr *sitter.Node) {
	value := jsast.AttributeValue(attr)
	if value == nil || value.Type() != jsast.NodeJSXExpression {
		return nil, nil
	}
	expr = jsast.UnwrapParens(jsast.ContainerExpression(value))
	if expr == nil {
		return nil, nil
	}
	return value, expr
}

// NoInlineArrowFunctions flags prop={() => ...}.
var NoInlineArrowFunctions = &rule.Definition{
	Name:        InlineArrowRuleName,
	Type:        rule.TypeSuggestion,
	Description: "Disallow inline arrow functions in JSX props (e.g., onClick={() => ...}) for better performance.",
	Category:    "react",
	Messages: map[string]string{
		"noInlineArrow": "Avoid inline arrow functions in JSX props (e.g., onClick). Define the function outside the render method for better performance.",
	},
	Schema: func() any { return &jsast.IgnoreOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}
		return rule.Visitor{
			jsast.NodeJSXAttribute: func(attr *sitter.Node) {
				container, expr := attributeExpression(attr)
				if expr != nil && expr.Type() == jsast.NodeArrowFunction {
					ctx.Report(rule.Descriptor{Node: container, MessageID: "noInlineArrow"})
				}
			},
		}
	},
}

// NoUnnecessaryCurly flags prop={'text'} and fixes it to prop='text'.
var NoUnnecessaryCurly = &rule.Definition{
	Name:        UnnecessaryCurlyRuleName,
	Type:        rule.TypeSuggestion,
	Description: "Disallow unnecessary curly braces for string literal props in JSX.",
	Category:    "react",
	Fixable:     true,
	Messages: map[string]string{
		"unnecessaryCurly": "Unnecessary curly braces for string literal prop '{{prop}}'. Use plain string instead.",
	},
	Schema: func() any { return &jsast.IgnoreOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}
		return rule.Visitor{
			jsast.NodeJSXAttribute: func(attr *sitter.Node) {
				container, expr := attributeExpression(attr)
				if expr == nil || expr.Type() != jsast.NodeString {
					return
				}
				ctx.Report(rule.Descriptor{
					Node:      container,
					MessageID: "unnecessaryCurly",
					Data:      map[string]string{"prop": jsast.AttributeName(attr, ctx.Source)},
					Fix: &rule.Fix{
						Start: container.StartByte(),
						End:   container.EndByte(),
						Text:  ctx.Text(expr),
					},
				})
			},
		}
	},
}
