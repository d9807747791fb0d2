package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/specvital/frontend-rules/pkg/config"
	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/linter"
	"github.com/specvital/frontend-rules/pkg/report"
	"github.com/specvital/frontend-rules/pkg/rules"
	"github.com/specvital/frontend-rules/pkg/scanner"
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format      string
	Fix         bool
	Rules       []string // name=severity overrides
	Disable     []string
	MaxWarnings int
	Workers     int
	Timeout     time.Duration
	Quiet       bool
}

// NewLintCommand creates the lint command.
func NewLintCommand(root *rootOptions) *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint files and directories",
		Long: `Lint JavaScript and TypeScript files. Directories are walked recursively,
skipping dependency and build output folders; files named explicitly are always linted.

Exit codes:
  0  no errors, and warnings within --max-warnings
  1  lint errors, or more warnings than --max-warnings
  2  configuration or runtime error`,
		Example: `  # Lint the current directory with the nearest config
  frontendlint lint

  # Lint two folders and apply fixes
  frontendlint lint src lib --fix

  # Override rules from the command line
  frontendlint lint --rule no-default-export=off --disable no-direct-colors

  # Emit ESLint-compatible JSON
  frontendlint lint --format json > report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", report.FormatStylish, "output format: stylish, json")
	cmd.Flags().BoolVar(&opts.Fix, "fix", false, "apply automatic fixes and write files back")
	cmd.Flags().StringArrayVar(&opts.Rules, "rule", nil, "set a rule severity as name=severity (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Disable, "disable", nil, "turn a rule off (repeatable)")
	cmd.Flags().IntVar(&opts.MaxWarnings, "max-warnings", -1, "fail when there are more warnings than this; -1 disables the check")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "files linted in parallel (default: GOMAXPROCS)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", scanner.DefaultTimeout, "maximum duration of the run")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "report errors only")

	cmd.Flags().String("extends", "", "bundled rule set: recommended, all, none")
	cmd.Flags().StringSlice("ignore-pattern", nil, "glob of files to skip, relative to the config directory")
	cmd.Flags().StringSlice("ext", nil, "file extensions to lint in directories")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return report.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("extends", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{rules.ConfigRecommended, rules.ConfigAll, rules.ConfigNone}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLint(cmd *cobra.Command, root *rootOptions, opts *LintOptions, args []string) error {
	cfg, err := config.Load(config.LoadOptions{File: root.configFile, Flags: cmd.Flags()})
	if err != nil {
		return WithExitCode(err, ExitCodeFatal)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return WithExitCode(err, ExitCodeFatal)
	}
	if cfg.File != "" {
		logger.Debug("using config file", "path", cfg.File)
	}

	if err := applyRuleFlags(cfg, opts); err != nil {
		return WithExitCode(err, ExitCodeFatal)
	}

	reg := rules.DefaultRegistry()
	set, err := cfg.RuleSet(reg)
	if err != nil {
		return WithExitCode(err, ExitCodeFatal)
	}

	formatter, err := report.New(opts.Format, report.Options{
		Color:   cmd.OutOrStdout() == os.Stdout,
		BaseDir: cfg.Root,
	})
	if err != nil {
		return WithExitCode(err, ExitCodeFatal)
	}

	paths, err := absPaths(args)
	if err != nil {
		return WithExitCode(err, ExitCodeFatal)
	}

	l := linter.New(linter.WithRegistry(reg), linter.WithLogger(logger))
	result, err := scanner.Scan(cmd.Context(), l, set, paths,
		scanner.WithBaseDir(cfg.Root),
		scanner.WithExtensions(cfg.Extensions),
		scanner.WithIgnorePatterns(cfg.IgnorePatterns),
		scanner.WithFix(opts.Fix),
		scanner.WithLogger(logger),
		scanner.WithWorkers(opts.Workers),
		scanner.WithTimeout(opts.Timeout),
	)
	if err != nil {
		return WithExitCode(err, ExitCodeFatal)
	}

	for _, scanErr := range result.Errors {
		logger.Error("file not linted", "path", scanErr.Path, "phase", scanErr.Phase, "error", scanErr.Err)
	}
	for _, name := range result.Fixed {
		logger.Info("fixed", "file", name)
	}

	if opts.Quiet {
		for _, res := range result.Files {
			res.FilterSeverity(domain.SeverityError)
		}
	}

	if err := formatter.Format(cmd.OutOrStdout(), result.Files); err != nil {
		return WithExitCode(errors.Wrap(err, "write report"), ExitCodeFatal)
	}

	if len(result.Errors) > 0 {
		return WithExitCode(errors.Newf("%d file(s) could not be linted", len(result.Errors)), ExitCodeFatal)
	}

	summary := report.Summarize(result.Files)
	if summary.Errors > 0 {
		return WithExitCode(errors.Wrapf(ErrLintFailed, "%d error(s)", summary.Errors), ExitCodeLintFailed)
	}
	if opts.MaxWarnings >= 0 && summary.Warnings > opts.MaxWarnings {
		return WithExitCode(
			errors.Wrapf(ErrLintFailed, "too many warnings: %d (max %d)", summary.Warnings, opts.MaxWarnings),
			ExitCodeLintFailed,
		)
	}
	return nil
}

// applyRuleFlags folds --rule and --disable into the config's rule entries.
func applyRuleFlags(cfg *config.Config, opts *LintOptions) error {
	for _, entry := range opts.Rules {
		name, severity, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return errors.Wrapf(config.ErrInvalidConfig, "--rule %q: expected name=severity", entry)
		}
		if _, err := domain.ParseSeverity(severity); err != nil {
			return errors.Wrapf(errors.Mark(err, config.ErrInvalidConfig), "--rule %s", name)
		}
		cfg.Override(name, strings.TrimSpace(severity))
	}
	for _, name := range opts.Disable {
		cfg.Override(strings.TrimSpace(name), domain.SeverityOff.String())
	}
	return nil
}

func absPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	paths := make([]string, len(args))
	for i, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve %s", arg)
		}
		paths[i] = abs
	}
	return paths, nil
}
