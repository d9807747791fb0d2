package imports

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const AliasPathsRuleName = "enforce-alias-import-paths"

var defaultAliases = []string{"@"}

func init() {
	rules.Register(AliasImportPaths)
}

// AliasOptions configures enforce-alias-import-paths.
type AliasOptions struct {
	// Aliases are the accepted import path prefixes. Defaults to ["@"].
	Aliases []string `mapstructure:"aliases"`
	// Ignore patterns are matched against both the file name and the import path.
	Ignore []string `mapstructure:"ignore"`
}

// AliasImportPaths flags relative import paths that should use an alias.
var AliasImportPaths = &rule.Definition{
	Name:        AliasPathsRuleName,
	Type:        rule.TypeProblem,
	Description: "Enforce use of alias import paths instead of relative paths. Supports configuration of allowed aliases and ignore patterns in your ESLint config.",
	Category:    "imports",
	Messages: map[string]string{
		"noRelativeImport": `Relative import path "{{importPath}}" detected. Use an alias import path (e.g., {{aliases}}) instead.`,
	},
	Schema: func() any { return &AliasOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[AliasOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}
		aliases := opts.Aliases
		if aliases == nil {
			aliases = defaultAliases
		}
		joined := strings.Join(aliases, ", ")

		return rule.Visitor{
			jsast.NodeImport: func(node *sitter.Node) {
				source := node.ChildByFieldName(jsast.FieldSource)
				importPath, ok := jsast.StringValue(source, ctx.Source)
				if !ok || !IsRelativePath(importPath) {
					return
				}
				if jsast.MatchAny(importPath, opts.Ignore) || hasAnyPrefix(importPath, aliases) {
					return
				}
				ctx.Report(rule.Descriptor{
					Node:      source,
					MessageID: "noRelativeImport",
					Data: map[string]string{
						"importPath": importPath,
						"aliases":    joined,
					},
				})
			},
		}
	},
}

// IsRelativePath reports whether an import specifier is relative or absolute
// rather than a package or alias import.
func IsRelativePath(importPath string) bool {
	return strings.HasPrefix(importPath, ".") || strings.HasPrefix(importPath, "/")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
