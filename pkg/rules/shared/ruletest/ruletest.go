// Package ruletest runs rule definitions against source snippets through the real linter.
package ruletest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/linter"
	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
)

// DefaultFilename is used when a case does not name its file.
const DefaultFilename = "src/component.tsx"

// Case is one source snippet checked by a rule.
type Case struct {
	Name     string
	Filename string
	Code     string
	// Options is passed to the rule as configured in a rule set.
	Options any
	// Errors lists the expected reports in source order. Empty for valid code.
	Errors []Error
	// Output is the expected source after fixes, if any fix applies.
	Output string
}

// Error is an expected report. Zero fields are not checked.
type Error struct {
	MessageID string
	Message   string
	Line      int
	// Column is 1-based.
	Column int
}

// Cases groups valid and invalid snippets.
type Cases struct {
	Valid   []Case
	Invalid []Case
}

// Run checks every case of c against def in parallel subtests.
func Run(t *testing.T, def *rule.Definition, c Cases) {
	t.Helper()

	reg := rules.NewRegistry()
	reg.Register(def)
	l := linter.New(linter.WithRegistry(reg))

	for _, tc := range c.Valid {
		tc := tc
		t.Run("valid/"+caseName(tc), func(t *testing.T) {
			t.Parallel()

			res := lint(t, l, def, tc)
			assert.Empty(t, res.Diagnostics, "expected no reports for:\n%s", tc.Code)
		})
	}

	for _, tc := range c.Invalid {
		tc := tc
		t.Run("invalid/"+caseName(tc), func(t *testing.T) {
			t.Parallel()

			res := lint(t, l, def, tc)
			require.Len(t, res.Diagnostics, len(tc.Errors), "reports: %v", messages(res.Diagnostics))
			for i, want := range tc.Errors {
				got := res.Diagnostics[i]
				if want.MessageID != "" {
					assert.Equal(t, want.MessageID, got.MessageID, "report %d", i)
				}
				if want.Message != "" {
					assert.Equal(t, want.Message, got.Message, "report %d", i)
				}
				if want.Line != 0 {
					assert.Equal(t, want.Line, got.Location.StartLine, "report %d line", i)
				}
				if want.Column != 0 {
					assert.Equal(t, want.Column, got.Location.StartCol+1, "report %d column", i)
				}
			}

			if tc.Output != "" {
				fixed, err := l.Fix(context.Background(), filename(tc), []byte(tc.Code), ruleSet(def, tc))
				require.NoError(t, err)
				assert.Equal(t, tc.Output, string(fixed.Output))
			}
		})
	}
}

func lint(t *testing.T, l *linter.Linter, def *rule.Definition, tc Case) *linter.Result {
	t.Helper()
	res, err := l.Lint(context.Background(), filename(tc), []byte(tc.Code), ruleSet(def, tc))
	require.NoError(t, err)
	return res
}

func ruleSet(def *rule.Definition, tc Case) rules.RuleSet {
	return rules.RuleSet{
		def.Name: {Severity: domain.SeverityError, Options: tc.Options},
	}
}

func filename(tc Case) string {
	if tc.Filename != "" {
		return tc.Filename
	}
	return DefaultFilename
}

func caseName(tc Case) string {
	if tc.Name != "" {
		return tc.Name
	}
	code := tc.Code
	if len(code) > 40 {
		code = code[:40]
	}
	return code
}

func messages(diags []linter.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Location.String() + " " + d.MessageID
	}
	return out
}
