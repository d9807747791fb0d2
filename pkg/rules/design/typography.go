// Package design contains rules that keep markup on the design system.
package design

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const (
	TypographyRuleName = "enforce-typography-components"
	// typographyFile is the one file allowed to render raw text tags.
	typographyFile = "typography.tsx"
)

var typographyTags = map[string]bool{
	"p":          true,
	"span":       true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"blockquote": true,
}

func init() {
	rules.Register(TypographyComponents)
}

// TypographyComponents flags raw text tags that have a Typography component counterpart.
var TypographyComponents = &rule.Definition{
	Name:        TypographyRuleName,
	Type:        rule.TypeProblem,
	Description: "Enforce usage of Typography components instead of raw HTML tags",
	Category:    "design",
	Messages: map[string]string{
		"useTypography": "Raw <{{tag}}> tag detected. For consistent design and theming, use the corresponding Typography component (e.g., TypographyP, TypographyH1, TypographyBlockquote, etc.) instead. Import these from components/ui/typography. Native tags are only allowed in typography.tsx.",
	},
	Schema: func() any { return &jsast.IgnoreOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
		if strings.HasSuffix(ctx.Filename, typographyFile) || jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}

		check := func(tag *sitter.Node) {
			name := jsast.TagName(tag, ctx.Source)
			if !typographyTags[name] {
				return
			}
			ctx.Report(rule.Descriptor{
				Node:      tag,
				MessageID: "useTypography",
				Data:      map[string]string{"tag": name},
			})
		}

		return rule.Visitor{
			jsast.NodeJSXOpening:     check,
			jsast.NodeJSXSelfClosing: check,
		}
	},
}
