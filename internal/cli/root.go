// Package cli provides the command-line interface for frontendlint.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/specvital/frontend-rules/pkg/config"

	// Register every rule package.
	_ "github.com/specvital/frontend-rules/pkg/rules/all"
)

// Version is set at build time.
var Version = "dev"

// rootOptions holds the persistent flags shared by subcommands.
type rootOptions struct {
	configFile string
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "frontendlint",
		Short: "Lint React and TypeScript sources against frontend conventions",
		Long: `frontendlint checks JavaScript and TypeScript sources, including JSX and TSX,
against the eslint-frontend-rules conventions: design tokens, accessibility,
naming, file structure, import paths, React component shape and JSDoc.

Configuration is read from .frontendlint.yaml (searched upward from the working
directory), FRONTENDLINT_* environment variables and command-line flags.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default: nearest .frontendlint.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", config.FormatText, "log format: text, json")

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatText, config.FormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewLintCommand(opts))
	rootCmd.AddCommand(NewRulesCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrLintFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return GetExitCode(err)
}

// newLogger builds the process logger from the log section of the config.
func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	if cfg.Format == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           log.Level(level),
		ReportTimestamp: false,
		Prefix:          "frontendlint",
	})
	return slog.New(handler), nil
}
