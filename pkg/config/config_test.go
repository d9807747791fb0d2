package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
)

const sampleConfig = `
extends: none
rules:
  eslint-frontend-rules/enforce-alias-import-paths: [warn, {aliases: ["@", "~"]}]
  no-default-export: error
  no-nested-component: 0
ignorePatterns: ["**/*.gen.ts"]
extensions: [js, .TSX]
log:
  level: debug
  format: json
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testRegistry() *rules.Registry {
	reg := rules.NewRegistry()
	for _, name := range []string{"enforce-alias-import-paths", "no-default-export", "no-nested-component"} {
		reg.Register(&rule.Definition{
			Name:   name,
			Type:   rule.TypeProblem,
			Create: func(*rule.Context) rule.Visitor { return nil },
		})
	}
	return reg
}

func TestLoad_Defaults(t *testing.T) {
	// Given
	dir := t.TempDir()

	// When
	cfg, err := Load(LoadOptions{File: "", Dir: dir})

	// Then
	require.NoError(t, err)
	assert.Equal(t, rules.ConfigRecommended, cfg.Extends)
	assert.Equal(t, domain.DefaultExtensions, cfg.Extensions)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Log.Format)
	assert.Empty(t, cfg.Rules)
}

func TestLoad_FileFoundUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".frontendlint.yaml"), sampleConfig)
	nested := filepath.Join(root, "src", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(LoadOptions{Dir: nested})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".frontendlint.yaml"), cfg.File)
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, rules.ConfigNone, cfg.Extends)
	assert.Equal(t, []string{"**/*.gen.ts"}, cfg.IgnorePatterns)
	assert.Equal(t, []string{".js", ".tsx"}, cfg.Extensions)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.Len(t, cfg.Rules, 3)
}

func TestLoad_YmlExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".frontendlint.yml"), "extends: all\n")

	cfg, err := Load(LoadOptions{Dir: root})

	require.NoError(t, err)
	assert.Equal(t, rules.ConfigAll, cfg.Extends)
}

func TestLoad_Precedence(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".frontendlint.yaml"), sampleConfig)

	t.Setenv("FRONTENDLINT_LOG_LEVEL", "warn")
	t.Setenv("FRONTENDLINT_LOG_FORMAT", "text")
	t.Setenv("FRONTENDLINT_IGNORE_PATTERNS", "a/**,b/**")
	t.Setenv("FRONTENDLINT_UNRELATED", "x")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.String("log-format", "text", "")
	flags.String("format", "stylish", "")
	require.NoError(t, flags.Parse([]string{"--log-level=error", "--format=json"}))

	cfg, err := Load(LoadOptions{Dir: root, Flags: flags})

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level, "flags override env")
	assert.Equal(t, FormatText, cfg.Log.Format, "env overrides file; unchanged flags do not")
	assert.Equal(t, []string{"a/**", "b/**"}, cfg.IgnorePatterns)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		file    string
		want    error
		errText string
	}{
		{name: "missing explicit file", file: "missing.yaml", want: ErrConfigNotFound},
		{name: "bad severity", content: "rules:\n  no-default-export: loud\n", want: ErrInvalidConfig, errText: "no-default-export"},
		{name: "empty rule entry", content: "rules:\n  no-default-export: []\n", want: ErrInvalidConfig},
		{name: "bad extends", content: "extends: strict\n", want: ErrInvalidConfig, errText: "strict"},
		{name: "bad log format", content: "log:\n  format: xml\n", want: ErrInvalidConfig},
		{name: "bad log level", content: "log:\n  level: trace\n", want: ErrInvalidConfig},
		{name: "malformed yaml", content: "rules: [\n", want: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			file := tt.file
			if tt.content != "" {
				file = filepath.Join(dir, "custom.yaml")
				writeFile(t, file, tt.content)
			} else {
				file = filepath.Join(dir, file)
			}

			_, err := Load(LoadOptions{File: file, Dir: dir})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			if tt.errText != "" {
				assert.Contains(t, err.Error(), tt.errText)
			}
		})
	}
}

func TestConfig_RuleSet(t *testing.T) {
	t.Parallel()

	reg := testRegistry()

	t.Run("overrides on top of none", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{
			Extends: rules.ConfigNone,
			Rules: map[string]any{
				"eslint-frontend-rules/enforce-alias-import-paths": []any{"warn", map[string]any{"aliases": []any{"~"}}},
				"no-default-export":   "error",
				"no-nested-component": 0,
			},
		}

		set, err := cfg.RuleSet(reg)

		require.NoError(t, err)
		require.Len(t, set, 3)
		alias := set[rules.QualifiedName("enforce-alias-import-paths")]
		assert.Equal(t, domain.SeverityWarn, alias.Severity)
		assert.Equal(t, []any{map[string]any{"aliases": []any{"~"}}}, alias.Options)
		assert.Equal(t, domain.SeverityError, set[rules.QualifiedName("no-default-export")].Severity)
		assert.Equal(t, domain.SeverityOff, set[rules.QualifiedName("no-nested-component")].Severity)
		assert.Equal(t, []string{
			rules.QualifiedName("enforce-alias-import-paths"),
			rules.QualifiedName("no-default-export"),
		}, set.Enabled())
	})

	t.Run("recommended bundle is extended", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Rules: map[string]any{"no-default-export": "off"}}

		set, err := cfg.RuleSet(reg)

		require.NoError(t, err)
		assert.Equal(t, domain.SeverityOff, set[rules.QualifiedName("no-default-export")].Severity)
		assert.Equal(t, domain.SeverityError, set[rules.QualifiedName("no-nested-component")].Severity)
		assert.Equal(t, domain.SeverityError, set[rules.QualifiedName("enforce-typography-components")].Severity)
	})

	t.Run("all bundle", func(t *testing.T) {
		t.Parallel()

		set, err := (&Config{Extends: rules.ConfigAll}).RuleSet(reg)

		require.NoError(t, err)
		assert.Len(t, set, reg.Len())
	})

	t.Run("invalid entries", func(t *testing.T) {
		t.Parallel()

		_, err := (&Config{Extends: "strict"}).RuleSet(reg)
		assert.True(t, errors.Is(err, ErrInvalidConfig))

		_, err = (&Config{Rules: map[string]any{"no-default-export": 3}}).RuleSet(reg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), "no-default-export")
	})
}

func TestConfig_Override(t *testing.T) {
	t.Parallel()

	cfg := &Config{Rules: map[string]any{"eslint-frontend-rules/no-default-export": "error"}}

	cfg.Override("no-default-export", "off")
	cfg.Override("no-nested-component", []any{"warn"})

	assert.Equal(t, map[string]any{
		"no-default-export":   "off",
		"no-nested-component": []any{"warn"},
	}, cfg.Rules)

	empty := &Config{}
	empty.Override("a", "warn")
	assert.Equal(t, map[string]any{"a": "warn"}, empty.Rules)
}

func TestLogConfig_SlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{level: "", want: slog.LevelInfo},
		{level: "debug", want: slog.LevelDebug},
		{level: "INFO", want: slog.LevelInfo},
		{level: "warning", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			got, err := LogConfig{Level: tt.level}.SlogLevel()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeExtensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.DefaultExtensions, NormalizeExtensions(nil))
	assert.Equal(t, []string{".js", ".tsx"}, NormalizeExtensions([]string{"js", " .TSX ", ""}))
}

func TestFindFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", ".frontendlint.yml"), "")
	writeFile(t, filepath.Join(root, "a", ".frontendlint.yaml"), "")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b", "c"), 0o755))

	assert.Equal(t, filepath.Join(root, "a", ".frontendlint.yaml"), FindFile(filepath.Join(root, "a", "b", "c")))
}
