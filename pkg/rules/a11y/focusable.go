// Package a11y contains accessibility rules for JSX markup.
package a11y

import (
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/rules/shared/jsast"
)

const FocusableRuleName = "no-focusable-non-interactive-elements"

// interactiveElements are intrinsic tags that handle keyboard interaction natively.
var interactiveElements = map[string]bool{
	"button":   true,
	"a":        true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"option":   true,
	"details":  true,
	"summary":  true,
	"label":    true,
	"iframe":   true,
	"audio":    true,
	"video":    true,
	"area":     true,
	"menuitem": true,
	"progress": true,
	"meter":    true,
}

func init() {
	rules.Register(FocusableNonInteractive)
}

// IsInteractiveElement reports whether tag is natively interactive.
func IsInteractiveElement(tag string) bool {
	return interactiveElements[tag]
}

// FocusableNonInteractive flags non-interactive intrinsic elements that handle
// clicks without a button role or keyboard handler.
var FocusableNonInteractive = &rule.Definition{
	Name:        FocusableRuleName,
	Type:        rule.TypeSuggestion,
	Description: `Flag non-interactive elements with onClick. Suggest role="button" or using <button>, and onKeyDown for accessibility.`,
	Category:    "a11y",
	Messages: map[string]string{
		"nonInteractive": `Non-interactive element <{{tag}}> with onClick detected. Consider using <button> or adding role="button" and onKeyDown for accessibility.`,
	},
	Schema: func() any { return &jsast.IgnoreOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		opts := rule.OptionsAs[jsast.IgnoreOptions](ctx)
		if jsast.IsIgnored(ctx.Filename, opts.Ignore) {
			return nil
		}

		check := func(tag *sitter.Node) {
			name := jsast.TagName(tag, ctx.Source)
			if name == "" || startsUpper(name) || IsInteractiveElement(name) {
				return
			}
			if jsast.FindAttribute(tag, jsast.AttrOnClick, ctx.Source) == nil {
				return
			}

			hasRoleButton := false
			if role := jsast.FindAttribute(tag, jsast.AttrRole, ctx.Source); role != nil {
				value, ok := jsast.JSXStringValue(jsast.AttributeValue(role), ctx.Source)
				hasRoleButton = ok && value == "button"
			}
			hasOnKeyDown := jsast.FindAttribute(tag, jsast.AttrOnKeyDown, ctx.Source) != nil

			ctx.Logger.Debug("checking clickable element",
				"tag", name,
				"hasRoleButton", hasRoleButton,
				"hasOnKeyDown", hasOnKeyDown,
			)
			if hasRoleButton || hasOnKeyDown {
				return
			}
			ctx.Report(rule.Descriptor{
				Node:      tag,
				MessageID: "nonInteractive",
				Data:      map[string]string{"tag": name},
			})
		}

		return rule.Visitor{
			jsast.NodeJSXOpening:     check,
			jsast.NodeJSXSelfClosing: check,
		}
	},
}

// startsUpper matches custom components; tags whose first rune has no case count too.
func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.ToUpper(r) == r
}
