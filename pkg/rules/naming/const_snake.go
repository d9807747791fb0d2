// Package naming contains identifier naming convention rules.
package naming

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const ConstSnakeRuleName = "top-level-const-snake"

var allCapsSnake = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

func init() {
	rules.Register(TopLevelConstSnake)
}

// IsAllCapsSnake reports whether name is SCREAMING_SNAKE_CASE.
func IsAllCapsSnake(name string) bool {
	return allCapsSnake.MatchString(name)
}

// TopLevelConstSnake requires file-scope constants in .tsx files to be ALL_CAPS.
// Constants initialized with a function are exempt.
var TopLevelConstSnake = &rule.Definition{
	Name:        ConstSnakeRuleName,
	Type:        rule.TypeSuggestion,
	Description: "Require top-level consts to be ALL_CAPS (snake case)",
	Category:    "naming",
	Messages: map[string]string{
		"topLevelConstCaps": `Top-level const "{{name}}" should be ALL_CAPS (snake case).`,
	},
	Schema: func() any { return &jsast.IgnoreOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		if !strings.HasSuffix(ctx.Filename, ".tsx") {
			return nil
		}
		opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}

		return rule.Visitor{
			jsast.NodeProgram: func(program *sitter.Node) {
				for _, stmt := range jsast.TopLevelStatements(program) {
					if jsast.DeclarationKind(stmt) != "const" {
						continue
					}
					for _, decl := range jsast.Declarators(stmt) {
						if jsast.IsFunction(jsast.DeclaratorInit(decl)) {
							continue
						}
						id := decl.ChildByFieldName(jsast.FieldName)
						if id == nil || id.Type() != jsast.NodeIdentifier {
							continue
						}
						name := ctx.Text(id)
						if IsAllCapsSnake(name) {
							continue
						}
						ctx.Report(rule.Descriptor{
							Node:      id,
							MessageID: "topLevelConstCaps",
							Data:      map[string]string{"name": name},
						})
					}
				}
			},
		}
	},
}
