package design

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const DirectColorsRuleName = "no-direct-colors"

var colorPattern = regexp.MustCompile(`(?i)#([0-9a-f]{3,8})|rgba?\([^)]*\)|hsla?\([^)]*\)|\b(aliceblue|antiquewhite|aqua|black|blue|brown|chartreuse|coral|crimson|cyan|fuchsia|gold|gray|green|indigo|ivory|khaki|lavender|lime|linen|magenta|maroon|navy|olive|orange|orchid|peru|pink|plum|purple|red|salmon|sienna|silver|skyblue|tan|teal|thistle|tomato|turquoise|violet|white|yellow)\b`)

// styleColorKeys are the style object properties whose values are checked.
var styleColorKeys = map[string]bool{
	"color":           true,
	"background":      true,
	"backgroundColor": true,
	"borderColor":     true,
}

func init() {
	rules.Register(DirectColors)
}

// HasDirectColor reports whether value contains a hex, rgb(a), hsl(a) or named color.
func HasDirectColor(value string) bool {
	return colorPattern.MatchString(value)
}

// DirectColors flags color literals in className and style attributes.
var DirectColors = &rule.Definition{
	Name:        DirectColorsRuleName,
	Type:        rule.TypeProblem,
	Description: "Disallow direct color values in styles or classNames. Use CSS variables or theme tokens.",
	Category:    "design",
	Messages: map[string]string{
		"noDirectColor": "Do not use direct color values (e.g., '#fff', 'red', 'rgb(0,0,0)') in styles or classNames. Use CSS variables or theme tokens instead.",
	},
	Schema: func() any { return &jsast.IgnoreOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}
		ctx.Logger.Debug("checking file for direct color values in styles or classNames")

		check := func(node *sitter.Node, value string) {
			if HasDirectColor(value) {
				ctx.Report(rule.Descriptor{Node: node, MessageID: "noDirectColor"})
			}
		}

		// literalText returns the text of a string or template literal.
		literalText := func(node *sitter.Node) (string, bool) {
			switch node.Type() {
			case jsast.NodeString:
				return jsast.StringValue(node, ctx.Source)
			case jsast.NodeTemplate:
				return jsast.TemplateValue(node, ctx.Source), true
			}
			return "", false
		}

		checkStyleObject := func(obj *sitter.Node) {
			for _, pair := range jsast.Pairs(obj) {
				key := pair.ChildByFieldName(jsast.FieldKey)
				if key == nil || key.Type() != jsast.NodePropertyID || !styleColorKeys[ctx.Text(key)] {
					continue
				}
				value := pair.ChildByFieldName(jsast.FieldValue)
				if value == nil {
					continue
				}
				if text, ok := literalText(value); ok {
					check(value, text)
				}
			}
		}

		return rule.Visitor{
			jsast.NodeJSXAttribute: func(attr *sitter.Node) {
				name := jsast.AttributeName(attr, ctx.Source)
				if name != jsast.AttrStyle && name != jsast.AttrClassName {
					return
				}
				value := jsast.AttributeValue(attr)
				if value == nil {
					return
				}

				switch value.Type() {
				case jsast.NodeString:
					// className="bg-[#fff] text-red"
					text, _ := jsast.JSXStringValue(value, ctx.Source)
					check(value, text)
				case jsast.NodeJSXExpression:
					expr := jsast.ContainerExpression(value)
					if expr == nil {
						return
					}
					if name == jsast.AttrStyle {
						if expr.Type() == jsast.NodeObject {
							checkStyleObject(expr)
						}
						return
					}
					if text, ok := literalText(expr); ok {
						check(value, text)
					}
				}
			},
		}
	},
}
