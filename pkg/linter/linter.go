// Package linter runs registered rules over parsed JavaScript/TypeScript files.
//
// A single depth-first walk of the tree-sitter syntax tree dispatches every
// enabled rule's enter and exit callbacks. Reports are resolved into
// [Diagnostic] values with interpolated messages and configured severities.
package linter

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/parser"
	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
)

// DefaultMaxFixPasses bounds how often Fix re-lints after applying fixes.
const DefaultMaxFixPasses = 10

var (
	ErrUnknownRule    = errors.New("unknown rule")
	ErrInvalidOptions = errors.New("invalid rule options")
	ErrParse          = errors.New("parse failed")
)

// Option configures a Linter.
type Option func(*Linter)

// WithRegistry sets the rule registry. Defaults to rules.DefaultRegistry().
func WithRegistry(r *rules.Registry) Option {
	return func(l *Linter) {
		if r != nil {
			l.registry = r
		}
	}
}

// WithLogger sets the logger passed to rules. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMaxFixPasses sets the maximum number of fix passes. Values below 1 are ignored.
func WithMaxFixPasses(n int) Option {
	return func(l *Linter) {
		if n > 0 {
			l.maxFixPasses = n
		}
	}
}

// Linter applies a rule set to source files. It is safe for concurrent use.
type Linter struct {
	registry     *rules.Registry
	logger       *slog.Logger
	maxFixPasses int
}

// New creates a Linter.
func New(opts ...Option) *Linter {
	l := &Linter{
		registry:     rules.DefaultRegistry(),
		logger:       slog.Default(),
		maxFixPasses: DefaultMaxFixPasses,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type activeRule struct {
	id       string
	def      *rule.Definition
	severity domain.Severity
	options  any
}

// Prepare validates a rule set: every enabled rule must exist and its options
// must satisfy the rule schema.
func (l *Linter) Prepare(set rules.RuleSet) error {
	_, err := l.prepare(set)
	return err
}

func (l *Linter) prepare(set rules.RuleSet) ([]activeRule, error) {
	var active []activeRule
	for name, cfg := range set {
		if !cfg.Severity.Enabled() {
			continue
		}
		def, ok := l.registry.Get(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownRule, "%s", name)
		}
		id := rules.QualifiedName(def.Name)
		options, err := rule.DecodeOptions(def, cfg.Options)
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, ErrInvalidOptions), "rule %s", id)
		}
		active = append(active, activeRule{
			id:       id,
			def:      def,
			severity: cfg.Severity,
			options:  options,
		})
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].id < active[j].id
	})
	return active, nil
}

// Lint checks one file.
func (l *Linter) Lint(ctx context.Context, filename string, source []byte, set rules.RuleSet) (*Result, error) {
	active, err := l.prepare(set)
	if err != nil {
		return nil, err
	}
	return l.lintOnce(ctx, filename, source, active)
}

func (l *Linter) lintOnce(ctx context.Context, filename string, source []byte, active []activeRule) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := parser.ParseFile(ctx, filename, source)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrParse), "lint %s", filename)
	}
	defer file.Close()

	result := &Result{
		Filename:     filename,
		Source:       source,
		Language:     file.Language,
		SyntaxErrors: file.HasSyntaxErrors(),
	}
	if result.SyntaxErrors {
		l.logger.Debug("syntax errors recovered", "file", filename)
	}

	enter := make(map[string][]rule.Handler)
	exit := make(map[string][]rule.Handler)

	for _, ar := range active {
		ar := ar
		rctx := rule.NewContext(rule.ContextParams{
			RuleID:   ar.id,
			Filename: filename,
			Source:   source,
			Language: file.Language,
			Options:  ar.options,
			Logger:   l.logger.With("rule", ar.id, "file", filename),
			Report: func(d rule.Descriptor) {
				result.Diagnostics = append(result.Diagnostics, l.resolve(ar, filename, d))
			},
		})

		for key, handler := range ar.def.Create(rctx) {
			if handler == nil {
				continue
			}
			if nodeType, ok := strings.CutSuffix(key, rule.ExitSuffix); ok {
				exit[nodeType] = append(exit[nodeType], handler)
			} else {
				enter[key] = append(enter[key], handler)
			}
		}
	}

	if len(enter) > 0 || len(exit) > 0 {
		walk(file.Root(), enter, exit, 0)
	}

	sortDiagnostics(result.Diagnostics)

	l.logger.Debug("linted file",
		"file", filename,
		"rules", len(active),
		"diagnostics", len(result.Diagnostics),
	)
	return result, nil
}

func walk(node *sitter.Node, enter, exit map[string][]rule.Handler, depth int) {
	if node == nil || depth > parser.MaxTreeDepth {
		return
	}

	nodeType := node.Type()
	for _, h := range enter[nodeType] {
		h(node)
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		walk(node.NamedChild(i), enter, exit, depth+1)
	}

	for _, h := range exit[nodeType] {
		h(node)
	}
}

func (l *Linter) resolve(ar activeRule, filename string, d rule.Descriptor) Diagnostic {
	var loc domain.Location
	switch {
	case d.Loc != nil:
		loc = *d.Loc
		loc.File = filename
	case d.Node != nil:
		loc = parser.GetLocation(d.Node, filename)
	default:
		loc = domain.Location{File: filename, StartLine: 1, EndLine: 1}
	}

	template, ok := ar.def.Messages[d.MessageID]
	if !ok {
		l.logger.Warn("rule reported unknown message id", "rule", ar.id, "messageId", d.MessageID)
		template = d.MessageID
	}

	return Diagnostic{
		RuleID:    ar.id,
		MessageID: d.MessageID,
		Message:   Interpolate(template, d.Data),
		Severity:  ar.severity,
		Location:  loc,
		Fix:       d.Fix,
	}
}

func sortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Location, diags[j].Location
		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}
		if a.StartCol != b.StartCol {
			return a.StartCol < b.StartCol
		}
		return diags[i].RuleID < diags[j].RuleID
	})
}
