// Package imports contains rules about module imports and exports.
package imports

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const DefaultExportRuleName = "no-default-export"

func init() {
	rules.Register(NoDefaultExport)
}

// NoDefaultExport flags "export default" statements.
var NoDefaultExport = &rule.Definition{
	Name:        DefaultExportRuleName,
	Type:        rule.TypeSuggestion,
	Description: "Disallow default exports; enforce named exports only.",
	Category:    "imports",
	Messages: map[string]string{
		"noDefaultExport": "Default export is not allowed. Use named exports instead.",
	},
	Schema: func() any { return &jsast.IgnoreOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}
		return rule.Visitor{
			jsast.NodeExport: func(node *sitter.Node) {
				if jsast.IsDefaultExport(node) {
					ctx.Report(rule.Descriptor{Node: node, MessageID: "noDefaultExport"})
				}
			},
		}
	},
}
