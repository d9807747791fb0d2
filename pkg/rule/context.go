package rule

import (
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/parser"
)

// Fix replaces the source bytes [Start, End) with Text.
type Fix struct {
	Start uint32 `json:"-"`
	End   uint32 `json:"-"`
	Text  string `json:"text"`
}

// Range returns the fix range as a two-element slice of byte offsets.
func (f Fix) Range() [2]int {
	return [2]int{int(f.Start), int(f.End)}
}

// Descriptor is what a rule reports.
// Either Node or Loc must be set; Loc wins when both are.
type Descriptor struct {
	Node      *sitter.Node
	Loc       *domain.Location
	MessageID string
	Data      map[string]string
	Fix       *Fix
}

// ContextParams carries everything needed to build a [Context].
type ContextParams struct {
	RuleID   string
	Filename string
	Source   []byte
	Language domain.Language
	Options  any
	Logger   *slog.Logger
	Report   func(Descriptor)
}

// Context is the per-file, per-rule view handed to Create.
// It must not be retained after the file has been checked.
type Context struct {
	RuleID   string
	Filename string
	Source   []byte
	Language domain.Language
	Options  any
	Logger   *slog.Logger

	report func(Descriptor)
}

// NewContext builds a Context. A nil logger is replaced with slog.Default.
func NewContext(p ContextParams) *Context {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	report := p.Report
	if report == nil {
		report = func(Descriptor) {}
	}
	return &Context{
		RuleID:   p.RuleID,
		Filename: p.Filename,
		Source:   p.Source,
		Language: p.Language,
		Options:  p.Options,
		Logger:   logger,
		report:   report,
	}
}

// Report records a violation.
func (c *Context) Report(d Descriptor) {
	c.report(d)
}

// Text returns the source text of node.
func (c *Context) Text(node *sitter.Node) string {
	return parser.GetNodeText(node, c.Source)
}

// OptionsAs returns the decoded options of ctx as *T.
// It returns a zero T when the rule was configured without options.
func OptionsAs[T any](ctx *Context) *T {
	if opts, ok := ctx.Options.(*T); ok && opts != nil {
		return opts
	}
	return new(T)
}
