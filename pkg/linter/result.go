package linter

import (
	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/rule"
)

// Diagnostic is a resolved rule report.
type Diagnostic struct {
	RuleID    string          `json:"ruleId"`
	MessageID string          `json:"messageId"`
	Message   string          `json:"message"`
	Severity  domain.Severity `json:"severity"`
	Location  domain.Location `json:"location"`
	Fix       *rule.Fix       `json:"fix,omitempty"`
}

// Result holds the diagnostics for one file.
type Result struct {
	Filename     string
	Source       []byte
	Language     domain.Language
	SyntaxErrors bool
	Diagnostics  []Diagnostic
}

// ErrorCount returns the number of error-level diagnostics.
func (r *Result) ErrorCount() int {
	return r.count(domain.SeverityError, false)
}

// WarningCount returns the number of warning-level diagnostics.
func (r *Result) WarningCount() int {
	return r.count(domain.SeverityWarn, false)
}

// FixableErrorCount returns the number of error-level diagnostics with a fix.
func (r *Result) FixableErrorCount() int {
	return r.count(domain.SeverityError, true)
}

// FixableWarningCount returns the number of warning-level diagnostics with a fix.
func (r *Result) FixableWarningCount() int {
	return r.count(domain.SeverityWarn, true)
}

func (r *Result) count(sev domain.Severity, fixableOnly bool) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity != sev {
			continue
		}
		if fixableOnly && d.Fix == nil {
			continue
		}
		n++
	}
	return n
}

// FilterSeverity drops diagnostics below min.
func (r *Result) FilterSeverity(min domain.Severity) {
	kept := r.Diagnostics[:0]
	for _, d := range r.Diagnostics {
		if d.Severity >= min {
			kept = append(kept, d)
		}
	}
	r.Diagnostics = kept
}
