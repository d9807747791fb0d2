package linter

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/parser"
	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
)

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func tracingRule(name string, rec *recorder) *rule.Definition {
	return &rule.Definition{
		Name:     name,
		Type:     rule.TypeProblem,
		Messages: map[string]string{"x": "x"},
		Create: func(ctx *rule.Context) rule.Visitor {
			visit := func(prefix string) rule.Handler {
				return func(node *sitter.Node) {
					rec.add(name + " " + prefix + " " + node.Type())
				}
			}
			return rule.Visitor{
				"program":                         visit("enter"),
				rule.Exit("program"):              visit("exit"),
				"expression_statement":            visit("enter"),
				rule.Exit("expression_statement"): visit("exit"),
				"identifier":                      nil,
			}
		},
	}
}

// reverseRule reports every identifier on program exit, last one first.
var reverseRule = &rule.Definition{
	Name:     "reverse",
	Type:     rule.TypeSuggestion,
	Messages: map[string]string{"ident": "Identifier {{ name }} found."},
	Create: func(ctx *rule.Context) rule.Visitor {
		var seen []*sitter.Node
		return rule.Visitor{
			"identifier": func(node *sitter.Node) {
				seen = append(seen, node)
			},
			rule.Exit("program"): func(*sitter.Node) {
				for i := len(seen) - 1; i >= 0; i-- {
					ctx.Report(rule.Descriptor{
						Node:      seen[i],
						MessageID: "ident",
						Data:      map[string]string{"name": ctx.Text(seen[i])},
					})
				}
			},
		}
	},
}

type maxOptions struct {
	Max int `mapstructure:"max"`
}

// growRule appends "x" to identifiers shorter than max (default 3).
var growRule = &rule.Definition{
	Name:     "grow",
	Type:     rule.TypeLayout,
	Fixable:  true,
	Messages: map[string]string{"short": "Identifier is too short."},
	Schema:   func() any { return &maxOptions{} },
	Create: func(ctx *rule.Context) rule.Visitor {
		limit := rule.OptionsAs[maxOptions](ctx).Max
		if limit == 0 {
			limit = 3
		}
		return rule.Visitor{
			"identifier": func(node *sitter.Node) {
				if int(node.EndByte()-node.StartByte()) >= limit {
					return
				}
				ctx.Report(rule.Descriptor{
					Node:      node,
					MessageID: "short",
					Fix:       &rule.Fix{Start: node.EndByte(), End: node.EndByte(), Text: "x"},
				})
			},
		}
	},
}

var locRule = &rule.Definition{
	Name:     "file-level",
	Type:     rule.TypeSuggestion,
	Messages: map[string]string{"file": "File {{file}} is bad."},
	Create: func(ctx *rule.Context) rule.Visitor {
		ctx.Report(rule.Descriptor{
			Loc:       &domain.Location{StartLine: 1, EndLine: 1},
			MessageID: "file",
			Data:      map[string]string{"file": ctx.Filename},
		})
		ctx.Report(rule.Descriptor{MessageID: "undeclared"})
		return nil
	},
}

func newTestLinter(t *testing.T, defs ...*rule.Definition) *Linter {
	t.Helper()
	reg := rules.NewRegistry()
	for _, def := range defs {
		reg.Register(def)
	}
	return New(WithRegistry(reg))
}

func enable(names ...string) rules.RuleSet {
	set := rules.RuleSet{}
	for _, name := range names {
		set[name] = rules.RuleConfig{Severity: domain.SeverityError}
	}
	return set
}

func TestLint_VisitOrder(t *testing.T) {
	t.Parallel()

	// Given
	rec := &recorder{}
	l := newTestLinter(t, tracingRule("b-rule", rec), tracingRule("a-rule", rec))

	// When
	_, err := l.Lint(context.Background(), "a.js", []byte("a;"), enable("a-rule", "b-rule"))

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a-rule enter program",
		"b-rule enter program",
		"a-rule enter expression_statement",
		"b-rule enter expression_statement",
		"a-rule exit expression_statement",
		"b-rule exit expression_statement",
		"a-rule exit program",
		"b-rule exit program",
	}, rec.events)
}

func TestLint_DiagnosticsSortedAndInterpolated(t *testing.T) {
	t.Parallel()

	l := newTestLinter(t, reverseRule)

	res, err := l.Lint(context.Background(), "a.js", []byte("foo;\nbar; baz;"), enable("reverse"))

	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 3)

	var got []string
	for _, d := range res.Diagnostics {
		got = append(got, d.Location.String()+" "+d.Message)
		assert.Equal(t, rules.QualifiedName("reverse"), d.RuleID)
		assert.Equal(t, "ident", d.MessageID)
		assert.Equal(t, domain.SeverityError, d.Severity)
	}
	assert.Equal(t, []string{
		"a.js:1:1 Identifier foo found.",
		"a.js:2:1 Identifier bar found.",
		"a.js:2:6 Identifier baz found.",
	}, got)
	assert.Equal(t, 3, res.ErrorCount())
	assert.Equal(t, domain.LanguageJavaScript, res.Language)
	assert.False(t, res.SyntaxErrors)
}

func TestLint_LocationReports(t *testing.T) {
	t.Parallel()

	l := newTestLinter(t, locRule)

	res, err := l.Lint(context.Background(), "src/a.ts", []byte("export {};"), enable("file-level"))

	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 2)
	assert.Equal(t, "File src/a.ts is bad.", res.Diagnostics[0].Message)
	assert.Equal(t, "src/a.ts", res.Diagnostics[0].Location.File)
	assert.Equal(t, 1, res.Diagnostics[1].Location.StartLine)
	assert.Equal(t, "undeclared", res.Diagnostics[1].Message)
}

func TestLint_Severity(t *testing.T) {
	t.Parallel()

	l := newTestLinter(t, reverseRule)
	set := rules.RuleSet{"reverse": {Severity: domain.SeverityWarn}}

	res, err := l.Lint(context.Background(), "a.js", []byte("a; b;"), set)

	require.NoError(t, err)
	assert.Equal(t, 0, res.ErrorCount())
	assert.Equal(t, 2, res.WarningCount())

	res.FilterSeverity(domain.SeverityError)
	assert.Empty(t, res.Diagnostics)
}

func TestLint_Errors(t *testing.T) {
	t.Parallel()

	l := newTestLinter(t, growRule, reverseRule)

	tests := []struct {
		name     string
		filename string
		set      rules.RuleSet
		want     error
	}{
		{
			name:     "unknown rule",
			filename: "a.js",
			set:      enable("missing"),
			want:     ErrUnknownRule,
		},
		{
			name:     "unknown option key",
			filename: "a.js",
			set:      rules.RuleSet{"grow": {Severity: domain.SeverityWarn, Options: map[string]any{"min": 1}}},
			want:     ErrInvalidOptions,
		},
		{
			name:     "mistyped option",
			filename: "a.js",
			set:      rules.RuleSet{"grow": {Severity: domain.SeverityWarn, Options: map[string]any{"max": "three"}}},
			want:     ErrInvalidOptions,
		},
		{
			name:     "options without schema",
			filename: "a.js",
			set:      rules.RuleSet{"reverse": {Severity: domain.SeverityWarn, Options: map[string]any{"x": true}}},
			want:     rule.ErrNoOptions,
		},
		{
			name:     "unsupported file",
			filename: "a.py",
			set:      enable("grow"),
			want:     ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := l.Lint(context.Background(), tt.filename, []byte("a;"), tt.set)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLint_ErrorWrapping(t *testing.T) {
	t.Parallel()

	l := newTestLinter(t, reverseRule)

	_, err := l.Lint(context.Background(), "a.js", nil, rules.RuleSet{"reverse": {Severity: domain.SeverityError, Options: []any{map[string]any{"x": 1}}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOptions))
	assert.Contains(t, err.Error(), rules.QualifiedName("reverse"))

	_, err = l.Lint(context.Background(), "b.py", nil, enable("reverse"))
	assert.True(t, errors.Is(err, parser.ErrUnsupportedFile))
}

func TestLint_DisabledRulesAreSkipped(t *testing.T) {
	t.Parallel()

	l := newTestLinter(t, reverseRule)
	set := rules.RuleSet{
		"reverse": {Severity: domain.SeverityOff},
		"missing": {Severity: domain.SeverityOff},
	}

	require.NoError(t, l.Prepare(set))
	res, err := l.Lint(context.Background(), "a.js", []byte("a;"), set)
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
}

func TestLint_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestLinter(t, reverseRule).Lint(ctx, "a.js", []byte("a;"), enable("reverse"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLint_SyntaxErrorsStillLinted(t *testing.T) {
	t.Parallel()

	res, err := newTestLinter(t, reverseRule).Lint(context.Background(), "a.js", []byte("foo; const = ;"), enable("reverse"))

	require.NoError(t, err)
	assert.True(t, res.SyntaxErrors)
	assert.NotEmpty(t, res.Diagnostics)
}

func TestFix(t *testing.T) {
	t.Parallel()

	t.Run("repeats until stable", func(t *testing.T) {
		t.Parallel()

		l := newTestLinter(t, growRule)

		res, err := l.Fix(context.Background(), "a.js", []byte("a; bb; ccc;"), enable("grow"))

		require.NoError(t, err)
		assert.Equal(t, "axx; bbx; ccc;", string(res.Output))
		assert.True(t, res.Fixed)
		assert.Equal(t, 2, res.Passes)
		assert.Empty(t, res.Result.Diagnostics)
	})

	t.Run("stops at the pass limit", func(t *testing.T) {
		t.Parallel()

		reg := rules.NewRegistry()
		reg.Register(growRule)
		l := New(WithRegistry(reg), WithMaxFixPasses(1))

		res, err := l.Fix(context.Background(), "a.js", []byte("a;"), enable("grow"))

		require.NoError(t, err)
		assert.Equal(t, "ax;", string(res.Output))
		assert.Equal(t, 1, res.Passes)
		require.Len(t, res.Result.Diagnostics, 1)
		assert.Equal(t, 1, res.Result.FixableErrorCount())
	})

	t.Run("uses options", func(t *testing.T) {
		t.Parallel()

		l := newTestLinter(t, growRule)
		set := rules.RuleSet{"grow": {Severity: domain.SeverityWarn, Options: map[string]any{"max": 2}}}

		res, err := l.Fix(context.Background(), "a.js", []byte("a; bb;"), set)

		require.NoError(t, err)
		assert.Equal(t, "ax; bb;", string(res.Output))
		assert.Equal(t, 0, res.Result.FixableWarningCount())
	})

	t.Run("nothing to fix", func(t *testing.T) {
		t.Parallel()

		l := newTestLinter(t, growRule)
		src := []byte("abc;")

		res, err := l.Fix(context.Background(), "a.js", src, enable("grow"))

		require.NoError(t, err)
		assert.Equal(t, src, res.Output)
		assert.False(t, res.Fixed)
		assert.Zero(t, res.Passes)
	})
}

func TestApplyFixes(t *testing.T) {
	t.Parallel()

	fix := func(start, end uint32, text string) Diagnostic {
		return Diagnostic{Fix: &rule.Fix{Start: start, End: end, Text: text}}
	}

	tests := []struct {
		name        string
		source      string
		diags       []Diagnostic
		wantOutput  string
		wantApplied int
	}{
		{
			name:        "no fixes",
			source:      "abc",
			diags:       []Diagnostic{{}},
			wantOutput:  "abc",
			wantApplied: 0,
		},
		{
			name:        "applied in source order",
			source:      "abcdef",
			diags:       []Diagnostic{fix(4, 5, "E"), fix(0, 1, "A")},
			wantOutput:  "AbcdEf",
			wantApplied: 2,
		},
		{
			name:        "overlapping fix skipped",
			source:      "abcdef",
			diags:       []Diagnostic{fix(0, 3, "X"), fix(1, 2, "Y"), fix(3, 4, "Z")},
			wantOutput:  "XZef",
			wantApplied: 2,
		},
		{
			name:        "insertion",
			source:      "ab",
			diags:       []Diagnostic{fix(1, 1, "-")},
			wantOutput:  "a-b",
			wantApplied: 1,
		},
		{
			name:        "out of range ignored",
			source:      "ab",
			diags:       []Diagnostic{fix(1, 9, "x"), fix(2, 1, "y")},
			wantOutput:  "ab",
			wantApplied: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, applied := ApplyFixes([]byte(tt.source), tt.diags)

			assert.Equal(t, tt.wantOutput, string(out))
			assert.Equal(t, tt.wantApplied, applied)
		})
	}
}

func TestInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{name: "no data", template: "Hello {{name}}", want: "Hello {{name}}"},
		{name: "simple", template: "Hello {{name}}", data: map[string]string{"name": "x"}, want: "Hello x"},
		{name: "spaces", template: "Hello {{ name }}!", data: map[string]string{"name": "x"}, want: "Hello x!"},
		{name: "unknown key", template: "{{a}} {{b}}", data: map[string]string{"a": "1"}, want: "1 {{b}}"},
		{name: "repeated", template: "{{a}}{{a}}", data: map[string]string{"a": "z"}, want: "zz"},
		{name: "value is not re-expanded", template: "{{a}}", data: map[string]string{"a": "{{a}}"}, want: "{{a}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Interpolate(tt.template, tt.data))
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	l := New(WithRegistry(nil), WithLogger(nil), WithMaxFixPasses(0))

	assert.Same(t, rules.DefaultRegistry(), l.registry)
	assert.NotNil(t, l.logger)
	assert.Equal(t, DefaultMaxFixPasses, l.maxFixPasses)
}
