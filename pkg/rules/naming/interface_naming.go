package naming

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const InterfaceNamingRuleName = "enforce-interface-type-naming"

var (
	interfaceNamePattern = regexp.MustCompile(`^(I[A-Z][A-Za-z0-9]*|[A-Za-z0-9]+Props)$`)
	typeNamePattern      = regexp.MustCompile(`^(T[A-Z][A-Za-z0-9]*|[A-Za-z0-9]+Props)$`)
)

func init() {
	rules.Register(InterfaceTypeNaming)
}

// InterfaceTypeNaming requires an I prefix or Props suffix on interfaces,
// and a T prefix or Props suffix on type aliases.
var InterfaceTypeNaming = &rule.Definition{
	Name:        InterfaceNamingRuleName,
	Type:        rule.TypeSuggestion,
	Description: "Enforce 'I' prefix or 'Props' suffix for interfaces, and 'T' prefix or 'Props' suffix for types in TypeScript files.",
	Category:    "naming",
	Messages: map[string]string{
		"badInterfaceName": "Interface '{{name}}' should start with 'I' or end with 'Props'.",
		"badTypeName":      "Type '{{name}}' should start with 'T' or end with 'Props'.",
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

		checkName := func(decl *sitter.Node, pattern *regexp.Regexp, messageID string) {
			id := decl.ChildByFieldName(jsast.FieldName)
			if id == nil {
				return
			}
			name := ctx.Text(id)
			if pattern.MatchString(name) {
				return
			}
			ctx.Report(rule.Descriptor{
				Node:      id,
				MessageID: messageID,
				Data:      map[string]string{"name": name},
			})
		}

		return rule.Visitor{
			jsast.NodeInterfaceDecl: func(node *sitter.Node) {
				checkName(node, interfaceNamePattern, "badInterfaceName")
			},
			jsast.NodeTypeAlias: func(node *sitter.Node) {
				checkName(node, typeNamePattern, "badTypeName")
			},
		}
	},
}
