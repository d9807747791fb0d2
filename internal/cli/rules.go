package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/specvital/frontend-rules/pkg/linter"
	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Format string
}

// ruleInfo is the JSON shape of a rule listing.
type ruleInfo struct {
	Name        string            `json:"name"`
	ID          string            `json:"id"`
	Type        rule.Type         `json:"type"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Fixable     bool              `json:"fixable"`
	HasOptions  bool              `json:"hasOptions"`
	Recommended string            `json:"recommended"`
	Messages    map[string]string `json:"messages,omitempty"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-name]",
		Short: "List available lint rules",
		Example: `  # List all rules
  frontendlint rules

  # Show one rule with its messages
  frontendlint rules no-nested-component

  # Output as JSON
  frontendlint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := rules.DefaultRegistry()
			if len(args) > 0 {
				return showRule(cmd.OutOrStdout(), reg, args[0], opts)
			}
			return listRules(cmd.OutOrStdout(), reg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "output format: text, json")

	return cmd
}

func listRules(w io.Writer, reg *rules.Registry, opts *RulesOptions) error {
	defs := reg.All()
	infos := make([]ruleInfo, len(defs))
	for i, def := range defs {
		infos[i] = newRuleInfo(def, false)
	}

	switch opts.Format {
	case "json":
		return writeJSON(w, infos)
	case "", "text":
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Rule", "Type", "Category", "Fixable", "Recommended"})
		for _, info := range infos {
			t.AppendRow(table.Row{info.Name, info.Type, info.Category, yesNo(info.Fixable), info.Recommended})
		}
		_, err := fmt.Fprintf(w, "%s\n%d rules\n", t.Render(), len(infos))
		return err
	default:
		return WithExitCode(errors.Newf("unknown format %q: expected text or json", opts.Format), ExitCodeFatal)
	}
}

func showRule(w io.Writer, reg *rules.Registry, name string, opts *RulesOptions) error {
	def, ok := reg.Get(name)
	if !ok {
		return WithExitCode(errors.Wrapf(linter.ErrUnknownRule, "%q", name), ExitCodeFatal)
	}
	info := newRuleInfo(def, true)

	switch opts.Format {
	case "json":
		return writeJSON(w, info)
	case "", "text":
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n\n", info.ID)
		fmt.Fprintf(&b, "  %s\n\n", info.Description)
		fmt.Fprintf(&b, "  Type:        %s\n", info.Type)
		fmt.Fprintf(&b, "  Category:    %s\n", info.Category)
		fmt.Fprintf(&b, "  Fixable:     %s\n", yesNo(info.Fixable))
		fmt.Fprintf(&b, "  Options:     %s\n", yesNo(info.HasOptions))
		fmt.Fprintf(&b, "  Recommended: %s\n", info.Recommended)

		ids := make([]string, 0, len(info.Messages))
		for id := range info.Messages {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		if len(ids) > 0 {
			b.WriteString("\n  Messages:\n")
		}
		for _, id := range ids {
			fmt.Fprintf(&b, "    %s: %s\n", id, info.Messages[id])
		}

		_, err := io.WriteString(w, b.String())
		return err
	default:
		return WithExitCode(errors.Newf("unknown format %q: expected text or json", opts.Format), ExitCodeFatal)
	}
}

func newRuleInfo(def *rule.Definition, withMessages bool) ruleInfo {
	info := ruleInfo{
		Name:        def.Name,
		ID:          rules.QualifiedName(def.Name),
		Type:        def.Type,
		Category:    def.Category,
		Description: def.Description,
		Fixable:     def.Fixable,
		HasOptions:  def.Schema != nil,
		Recommended: rules.RecommendedSeverity(def.Name).String(),
	}
	if withMessages {
		info.Messages = def.Messages
	}
	return info
}

func writeJSON(w io.Writer, v any) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
