package react

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const UnnecessaryFragmentRuleName = "no-unnecessary-fragment"

func init() {
	rules.Register(NoUnnecessaryFragment)
}

// NoUnnecessaryFragment flags fragments wrapping a single meaningful child.
var NoUnnecessaryFragment = &rule.Definition{
	Name:        UnnecessaryFragmentRuleName,
	Type:        rule.TypeSuggestion,
	Description: "Warn if React fragments are unnecessary (e.g., wrapping a single child).",
	Category:    "react",
	Messages: map[string]string{
		"unnecessaryFragment": "Unnecessary React fragment: consider removing the fragment wrapper.",
	},
	Schema: func() any { return &jsast.IgnoreOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}

		check := func(node *sitter.Node) {
			children := jsast.MeaningfulChildren(jsast.Children(node), ctx.Source)
			if len(children) == 1 && !jsast.IsShorthandFragment(children[0]) {
				ctx.Report(rule.Descriptor{Node: node, MessageID: "unnecessaryFragment"})
			}
		}

		return rule.Visitor{
			jsast.NodeJSXFragment: check,
			jsast.NodeJSXElement: func(node *sitter.Node) {
				if jsast.IsShorthandFragment(node) || jsast.IsFragmentElement(node, ctx.Source) {
					check(node)
				}
			},
		}
	},
}
