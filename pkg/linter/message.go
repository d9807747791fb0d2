package linter

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{([^{}]+?)\}\}`)

// Interpolate replaces {{key}} placeholders in template with values from data.
// Whitespace around the key is ignored; unknown keys are left as written.
func Interpolate(template string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(template, "{{") {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.TrimSpace(match[2 : len(match)-2])
		if value, ok := data[key]; ok {
			return value
		}
		return match
	})
}
