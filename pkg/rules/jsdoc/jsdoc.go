// Package jsdoc contains rules requiring JSDoc comments on root-level functions.
package jsdoc

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const (
	RootFunctionRuleName = "require-jsdoc-on-root-function"
	HookRuleName         = "require-jsdoc-on-hook"
	ComponentRuleName    = "require-jsdoc-on-component"
)

func init() {
	rules.Register(RequireJSDocOnRootFunction)
	rules.Register(RequireJSDocOnHook)
	rules.Register(RequireJSDocOnComponent)
}

// Options restricts a JSDoc rule to files matching one of Folders and
// skips files matching Ignore.
// Unset means every file.
type Options struct {
	Folders []string `mapstructure:"folders"`
	Ignore  []string `mapstructure:"ignore"`
}

// RequireJSDocOnRootFunction covers root-level functions that are neither components nor hooks.
// Anonymous functions count as root functions.
var RequireJSDocOnRootFunction = newJSDocRule(
	RootFunctionRuleName,
	"Require JSDoc comment for root-level functions",
	`Root-level function "{{name}}" should have a JSDoc comment.`,
	func(name string) bool { return jsast.Classify(name) == jsast.KindRootFunction },
)

var RequireJSDocOnHook = newJSDocRule(
	HookRuleName,
	"",
	`React hook "{{name}}" should have a JSDoc comment.`,
	jsast.IsHookName,
)

var RequireJSDocOnComponent = newJSDocRule(
	ComponentRuleName,
	"",
	`React component "{{name}}" should have a JSDoc comment.`,
	jsast.IsComponentName,
)

// newJSDocRule builds a rule reporting root-level functions whose name
// satisfies match and that carry no JSDoc block. An empty description
// reuses the message.
func newJSDocRule(name, description, message string, match func(string) bool) *rule.Definition {
	if description == "" {
		description = message
	}

	return &rule.Definition{
		Name:        name,
		Type:        rule.TypeSuggestion,
		Description: description,
		Category:    "documentation",
		Messages:    map[string]string{"missingJSDoc": message},
		Schema:      func() any { return &Options{} },
		Create: func(ctx *rule.Context) rule.Visitor {
			opts := rule.OptionsAs[Options](ctx)
			if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
				return nil
			}
			if !jsast.InFolders(ctx.Filename, opts.Folders) {
				ctx.Logger.Debug("file outside configured folders", "folders", opts.Folders)
				return nil
			}

			report := func(node *sitter.Node, fn string) {
				if fn == "" {
					fn = "(anonymous)"
				}
				ctx.Report(rule.Descriptor{
					Node:      node,
					MessageID: "missingJSDoc",
					Data:      map[string]string{"name": fn},
				})
			}

			checkFunction := func(node *sitter.Node) {
				if !jsast.IsRootLevel(node) {
					return
				}
				fn := jsast.Name(node, ctx.Source)
				if !match(fn) || jsast.HasJSDoc(node, ctx.Source) {
					return
				}
				report(node, fn)
			}

			checkDeclaration := func(node *sitter.Node) {
				if !jsast.IsRootLevel(node) {
					return
				}
				documented := jsast.HasJSDoc(node, ctx.Source)
				for _, decl := range jsast.Declarators(node) {
					if !jsast.IsFunction(jsast.DeclaratorInit(decl)) {
						continue
					}
					fn := jsast.DeclaratorName(decl, ctx.Source)
					if match(fn) && !documented {
						report(decl, fn)
					}
				}
			}

			return rule.Visitor{
				jsast.NodeFunctionDecl:  checkFunction,
				jsast.NodeGeneratorDecl: checkFunction,
				jsast.NodeLexicalDecl:   checkDeclaration,
				jsast.NodeVariableDecl:  checkDeclaration,
			}
		},
	}
}
