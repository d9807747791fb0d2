package a11y

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/specvital/frontend-rules/pkg/rules/shared/ruletest"
)

func TestFocusableNonInteractive(t *testing.T) {
	t.Parallel()

	ruletest.Run(t, FocusableNonInteractive, ruletest.Cases{
		Valid: []ruletest.Case{
			{Code: `const a = <button onClick={fn}>ok</button>;`},
			{Code: `const a = <a href="#" onClick={fn}>ok</a>;`},
			{Code: `const a = <div>plain</div>;`},
			{Name: "role button", Code: `const a = <div role="button" onClick={fn} />;`},
			{Name: "key handler", Code: `const a = <div onClick={fn} onKeyDown={key}>x</div>;`},
			{Name: "custom component", Code: `const a = <Card onClick={fn} />;`},
			{Name: "member tag", Code: `const a = <motion.div onClick={fn} />;`},
			{Name: "ignored", Filename: "src/legacy/a.tsx", Code: `const a = <div onClick={fn} />;`, Options: map[string]any{"ignore": []any{"**/legacy/**"}}},
		},
		Invalid: []ruletest.Case{
			{
				Code: `const a = <div onClick={fn}>x</div>;`,
				Errors: []ruletest.Error{{
					MessageID: "nonInteractive",
					Message:   `Non-interactive element <div> with onClick detected. Consider using <button> or adding role="button" and onKeyDown for accessibility.`,
					Line:      1,
					Column:    11,
				}},
			},
			{
				Name:   "role from expression does not count",
				Code:   `const a = <span role={"button"} onClick={fn} />;`,
				Errors: []ruletest.Error{{MessageID: "nonInteractive"}},
			},
			{
				Name:   "other role",
				Code:   `const a = <li role="link" onClick={fn} />;`,
				Errors: []ruletest.Error{{MessageID: "nonInteractive"}},
			},
		},
	})
}

func TestIsInteractiveElement(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"button", "a", "input", "select", "textarea", "option", "details", "summary", "label", "iframe", "audio", "video", "area", "menuitem", "progress", "meter"} {
		assert.True(t, IsInteractiveElement(tag), tag)
	}
	for _, tag := range []string{"div", "span", "li", "img"} {
		assert.False(t, IsInteractiveElement(tag), tag)
	}
}
