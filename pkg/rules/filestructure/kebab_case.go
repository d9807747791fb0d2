// Package filestructure contains rules about file naming and layout.
package filestructure

import (
	"regexp"
	"strings"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const KebabCaseRuleName = "enforce-kebab-case-filenames"

var (
	kebabCasePattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	defaultExtensions = []string{".js", ".ts", ".jsx", ".tsx"}
)

func init() {
	rules.Register(KebabCaseFilenames)
}

// KebabCaseOptions configures enforce-kebab-case-filenames.
type KebabCaseOptions struct {
	Ignore []string `mapstructure:"ignore"`
	// Extensions limits the check to these suffixes. Defaults to .js .ts .jsx .tsx.
	Extensions []string `mapstructure:"extensions"`
}

// IsKebabCaseName reports whether the part of a base name before its first dot is kebab-case.
func IsKebabCaseName(base string) bool {
	stem, _, _ := strings.Cut(base, ".")
	return kebabCasePattern.MatchString(stem)
}

// KebabCaseFilenames requires file names to be kebab-case.
// The report is emitted once per file, before any node is visited.
var KebabCaseFilenames = &rule.Definition{
	Name:        KebabCaseRuleName,
	Type:        rule.TypeSuggestion,
	Description: "Enforce kebab-case format for file names (e.g., my-component.tsx)",
	Category:    "filestructure",
	Messages: map[string]string{
		"notKebabCase": `File name "{{filename}}" should be in kebab-case (e.g., my-component.tsx).`,
	},
	Schema: func() any { return &KebabCaseOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[KebabCaseOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}
		extensions := opts.Extensions
		if extensions == nil {
			extensions = defaultExtensions
		}

		base := ctx.Filename[strings.LastIndex(ctx.Filename, "/")+1:]
		if base == "" || !hasAnySuffix(base, extensions) {
			return nil
		}
		if !IsKebabCaseName(base) {
			ctx.Report(rule.Descriptor{
				Loc:       &domain.Location{StartLine: 1, EndLine: 1},
				MessageID: "notKebabCase",
				Data:      map[string]string{"filename": base},
			})
		}
		return nil
	},
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
