package naming

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const RequiredFirstRuleName = "interface-type-required-first"

func init() {
	rules.Register(InterfaceTypeRequiredFirst)
}

// InterfaceTypeRequiredFirst requires required properties to precede optional
// ones in interfaces and object type aliases.
var InterfaceTypeRequiredFirst = &rule.Definition{
	Name:        RequiredFirstRuleName,
	Type:        rule.TypeSuggestion,
	Description: "Require all required fields to come before optional fields in interfaces and types.",
	Category:    "naming",
	Messages: map[string]string{
		"requiredBeforeOptional": "Required field '{{name}}' should come before all optional fields in '{{parent}}'.",
	},
	Schema: func() any { return &jsast.IgnoreOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		if !isTypeScriptFile(ctx.Filename) {
			return nil
		}
		opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}

		checkFields := func(body *sitter.Node, parent string) {
			if body == nil {
				return
			}
			foundOptional := false
			for i := 0; i < int(body.NamedChildCount()); i++ {
				member := body.NamedChild(i)
				if member == nil || member.Type() != jsast.NodePropertySig {
					continue
				}
				key := member.ChildByFieldName(jsast.FieldName)
				if key == nil || key.Type() != jsast.NodePropertyID {
					continue
				}
				if isOptionalSignature(member) {
					foundOptional = true
					continue
				}
				if foundOptional {
					ctx.Report(rule.Descriptor{
						Node:      key,
						MessageID: "requiredBeforeOptional",
						Data:      map[string]string{"name": ctx.Text(key), "parent": parent},
					})
				}
			}
		}

		return rule.Visitor{
			jsast.NodeInterfaceDecl: func(node *sitter.Node) {
				checkFields(node.ChildByFieldName(jsast.FieldBody), jsast.Name(node, ctx.Source))
			},
			jsast.NodeTypeAlias: func(node *sitter.Node) {
				value := node.ChildByFieldName(jsast.FieldValue)
				if value == nil || value.Type() != jsast.NodeObjectType {
					return
				}
				checkFields(value, jsast.Name(node, ctx.Source))
			},
		}
	},
}

// isOptionalSignature reports whether a property signature carries a '?' marker.
func isOptionalSignature(member *sitter.Node) bool {
	for i := 0; i < int(member.ChildCount()); i++ {
		child := member.Child(i)
		if child != nil && !child.IsNamed() && child.Type() == "?" {
			return true
		}
	}
	return false
}

// isTypeScriptFile matches .ts and .tsx files only; .mts and .cts are not checked.
func isTypeScriptFile(filename string) bool {
	return strings.HasSuffix(filename, ".ts") || strings.HasSuffix(filename, ".tsx")
}
