package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/linter"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	fileStyle    = lipgloss.NewStyle().Underline(true)
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// stylishTable draws rows without borders or column rules.
var stylishTable = table.Style{
	Name: "stylish",
	Box:  table.StyleBoxDefault,
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  false,
		SeparateRows:    false,
	},
}

// Stylish prints one block per file followed by a problem summary.
// Files without diagnostics are omitted; a clean run prints nothing.
type Stylish struct {
	Color bool
}

func (s *Stylish) Format(w io.Writer, results []*linter.Result) error {
	for _, res := range results {
		if res == nil || len(res.Diagnostics) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "\n%s\n", s.style(fileStyle, res.Filename)); err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetStyle(stylishTable)
		for _, d := range res.Diagnostics {
			t.AppendRow(table.Row{
				fmt.Sprintf("%d:%d", d.Location.StartLine, d.Location.StartCol+1),
				s.severity(d.Severity),
				d.Message,
				s.style(ruleStyle, d.RuleID),
			})
		}
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}

	summary := Summarize(results)
	if summary.Problems() == 0 {
		return nil
	}

	style := warnStyle
	if summary.Errors > 0 {
		style = errorStyle
	}
	line := fmt.Sprintf("✖ %d %s (%d %s, %d %s)",
		summary.Problems(), plural(summary.Problems(), "problem"),
		summary.Errors, plural(summary.Errors, "error"),
		summary.Warnings, plural(summary.Warnings, "warning"),
	)
	if _, err := fmt.Fprintf(w, "\n%s\n", s.style(style.Inherit(summaryStyle), line)); err != nil {
		return err
	}

	if summary.FixableErrors+summary.FixableWarnings > 0 {
		fixable := fmt.Sprintf("  %d %s and %d %s potentially fixable with the `--fix` option.",
			summary.FixableErrors, plural(summary.FixableErrors, "error"),
			summary.FixableWarnings, plural(summary.FixableWarnings, "warning"),
		)
		if _, err := fmt.Fprintln(w, s.style(style.Inherit(summaryStyle), fixable)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stylish) severity(sev domain.Severity) string {
	switch sev {
	case domain.SeverityError:
		return s.style(errorStyle, "error")
	case domain.SeverityWarn:
		return s.style(warnStyle, "warning")
	default:
		return sev.String()
	}
}

func (s *Stylish) style(style lipgloss.Style, text string) string {
	if !s.Color {
		return text
	}
	return style.Render(text)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
