// Package report renders lint results for people and for tools.
package report

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/linter"
)

const (
	FormatStylish = "stylish"
	FormatJSON    = "json"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the supported output formats.
var Formats = []string{FormatStylish, FormatJSON}

// Formatter writes a set of file results.
type Formatter interface {
	Format(w io.Writer, results []*linter.Result) error
}

// Options tune formatter output.
type Options struct {
	// Color enables ANSI styling in the stylish format.
	Color bool
	// BaseDir is joined with relative file names in the JSON format.
	BaseDir string
}

// New returns the formatter for format. An empty format means stylish.
func New(format string, opts Options) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatStylish:
		return &Stylish{Color: opts.Color}, nil
	case FormatJSON:
		return &JSON{BaseDir: opts.BaseDir}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q (expected one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Summary totals diagnostics across results.
type Summary struct {
	Files           int
	Errors          int
	Warnings        int
	FixableErrors   int
	FixableWarnings int
}

// Problems is the number of errors and warnings.
func (s Summary) Problems() int {
	return s.Errors + s.Warnings
}

// Summarize counts diagnostics per severity. Files counts results with at least one diagnostic.
func Summarize(results []*linter.Result) Summary {
	var s Summary
	for _, res := range results {
		if res == nil {
			continue
		}
		if len(res.Diagnostics) > 0 {
			s.Files++
		}
		s.Errors += res.ErrorCount()
		s.Warnings += res.WarningCount()
		s.FixableErrors += res.FixableErrorCount()
		s.FixableWarnings += res.FixableWarningCount()
	}
	return s
}

// jsonSeverity maps severities onto the numeric levels of the ESLint format.
func jsonSeverity(s domain.Severity) int {
	switch s {
	case domain.SeverityWarn:
		return 1
	case domain.SeverityError:
		return 2
	default:
		return 0
	}
}
