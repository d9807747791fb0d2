package react

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const (
	ClassNameUtilityRuleName   = "enforce-classname-utility"
	EmptyClassNameRuleName     = "enforce-no-empty-classname-utility"
	EmptyTailwindClassRuleName = "no-empty-tailwind-class"
)

func init() {
	rules.Register(ClassNameUtility)
	rules.Register(NoEmptyClassName)
	rules.Register(NoEmptyTailwindClass)
}

// ClassNameUtilityOptions configures enforce-classname-utility.
type ClassNameUtilityOptions struct {
	// Allow is accepted for configuration compatibility and has no effect.
	Allow  []string `mapstructure:"allow"`
	Ignore []string `mapstructure:"ignore"`
}

// ClassNameUtility flags className={`...`} in favor of a class name helper such as cn.
var ClassNameUtility = &rule.Definition{
	Name:        ClassNameUtilityRuleName,
	Type:        rule.TypeSuggestion,
	Description: "Encourage use of a function/library (e.g., cn) for className instead of string literals.",
	Category:    "react",
	Messages: map[string]string{
		"useCn": "Use a function or library (e.g., cn) to handle className instead of a string literal.",
	},
	Schema: func() any { return &ClassNameUtilityOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[ClassNameUtilityOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}
		return rule.Visitor{
			jsast.NodeJSXAttribute: func(attr *sitter.Node) {
				if jsast.AttributeName(attr, ctx.Source) != jsast.AttrClassName {
					return
				}
				container, expr := attributeExpression(attr)
				if expr != nil && expr.Type() == jsast.NodeTemplate {
					ctx.Report(rule.Descriptor{Node: container, MessageID: "useCn"})
				}
			},
		}
	},
}

// NoEmptyClassName flags blank className values.
var NoEmptyClassName = emptyClassNameRule(
	EmptyClassNameRuleName,
	"Disallow empty className strings",
	"emptyClassName",
	"Empty className string found. Remove it or add valid classes.",
)

// NoEmptyTailwindClass flags blank className values with a Tailwind-specific message.
var NoEmptyTailwindClass = emptyClassNameRule(
	EmptyTailwindClassRuleName,
	"Disallow empty Tailwind CSS class strings",
	"emptyTailwindClass",
	"Empty Tailwind CSS class string found. Remove it or add classes.",
)

func emptyClassNameRule(name, description, messageID, message string) *rule.Definition {
	return &rule.Definition{
		Name:        name,
		Type:        rule.TypeSuggestion,
		Description: description,
		Category:    "react",
		Messages:    map[string]string{messageID: message},
		Schema:      func() any { return &jsast.IgnoreOptions{} },
		Create: func(ctx *rule.Context) rule.Visitor {
			opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
			if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
				return nil
			}
			return rule.Visitor{
				jsast.NodeJSXAttribute: func(attr *sitter.Node) {
					if jsast.AttributeName(attr, ctx.Source) != jsast.AttrClassName {
						return
					}
					if target := EmptyClassNameValue(attr, ctx.Source); target != nil {
						ctx.Report(rule.Descriptor{Node: target, MessageID: messageID})
					}
				},
			}
		},
	}
}

// EmptyClassNameValue returns the blank value of a className attribute:
// className="", className={" "} or className={` `} without substitutions.
// It returns nil when the value is not blank.
func EmptyClassNameValue(attr *sitter.Node, source []byte) *sitter.Node {
	value := jsast.AttributeValue(attr)
	if value == nil {
		return nil
	}

	switch value.Type() {
	case jsast.NodeString:
		if text, _ := jsast.JSXStringValue(value, source); strings.TrimSpace(text) == "" {
			return value
		}
	case jsast.NodeJSXExpression:
		expr := jsast.UnwrapParens(jsast.ContainerExpression(value))
		if expr == nil {
			return nil
		}
		switch expr.Type() {
		case jsast.NodeString:
			if text, _ := jsast.StringValue(expr, source); strings.TrimSpace(text) == "" {
				return expr
			}
		case jsast.NodeTemplate:
			if !jsast.HasSubstitutions(expr) && strings.TrimSpace(jsast.TemplateText(expr, source)) == "" {
				return expr
			}
		}
	}
	return nil
}
