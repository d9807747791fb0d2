package linter

import (
	"bytes"
	"context"
	"sort"

	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
)

// FixResult is the outcome of Fix.
type FixResult struct {
	// Result holds the diagnostics remaining in Output.
	Result *Result
	Output []byte
	Fixed  bool
	Passes int
}

// Fix applies rule fixes to source, re-linting after each pass until no fix
// applies or the pass limit is reached.
func (l *Linter) Fix(ctx context.Context, filename string, source []byte, set rules.RuleSet) (*FixResult, error) {
	active, err := l.prepare(set)
	if err != nil {
		return nil, err
	}

	current := source
	passes := 0
	for passes < l.maxFixPasses {
		res, err := l.lintOnce(ctx, filename, current, active)
		if err != nil {
			return nil, err
		}
		output, applied := ApplyFixes(current, res.Diagnostics)
		if applied == 0 {
			return &FixResult{Result: res, Output: current, Fixed: passes > 0, Passes: passes}, nil
		}
		current = output
		passes++
		l.logger.Debug("applied fixes", "file", filename, "pass", passes, "fixes", applied)
	}

	res, err := l.lintOnce(ctx, filename, current, active)
	if err != nil {
		return nil, err
	}
	return &FixResult{Result: res, Output: current, Fixed: passes > 0, Passes: passes}, nil
}

// ApplyFixes applies the non-overlapping fixes of diags in source order.
// It returns the new source and how many fixes were applied.
func ApplyFixes(source []byte, diags []Diagnostic) ([]byte, int) {
	var fixes []rule.Fix
	for _, d := range diags {
		if d.Fix != nil && d.Fix.Start <= d.Fix.End && int(d.Fix.End) <= len(source) {
			fixes = append(fixes, *d.Fix)
		}
	}
	if len(fixes) == 0 {
		return source, 0
	}

	sort.SliceStable(fixes, func(i, j int) bool {
		if fixes[i].Start != fixes[j].Start {
			return fixes[i].Start < fixes[j].Start
		}
		return fixes[i].End < fixes[j].End
	})

	var buf bytes.Buffer
	buf.Grow(len(source))

	var pos uint32
	applied := 0
	for i, fix := range fixes {
		if i > 0 && fix.Start < pos {
			continue
		}
		buf.Write(source[pos:fix.Start])
		buf.WriteString(fix.Text)
		pos = fix.End
		applied++
	}
	buf.Write(source[pos:])

	return buf.Bytes(), applied
}
