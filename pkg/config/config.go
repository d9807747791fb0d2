// Package config loads the linter configuration from .frontendlint.yaml,
// FRONTENDLINT_* environment variables and command-line flags.
package config

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/rules"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SlogLevel returns the slog level named by Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Wrapf(ErrInvalidConfig, "log level %q: expected debug, info, warn or error", c.Level)
	}
}

// Config is the merged configuration.
type Config struct {
	// Extends names the bundled rule set the rules below override.
	Extends string `koanf:"extends"`
	// Rules maps bare or namespaced rule names to a severity or a
	// [severity, options] list.
	Rules          map[string]any `koanf:"rules"`
	IgnorePatterns []string       `koanf:"ignorePatterns"`
	Extensions     []string       `koanf:"extensions"`
	Log            LogConfig      `koanf:"log"`

	// File is the config file that was loaded, or "" when none was found.
	File string `koanf:"-"`
	// Root is the directory of File, or the search directory without one.
	// Ignore patterns are relative to it.
	Root string `koanf:"-"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Extends:    rules.ConfigRecommended,
		Extensions: append([]string(nil), domain.DefaultExtensions...),
		Log:        LogConfig{Level: "info", Format: FormatText},
	}
}

// Validate checks the fields that do not depend on the rule registry.
func (c *Config) Validate() error {
	switch c.Extends {
	case rules.ConfigRecommended, rules.ConfigAll, rules.ConfigNone:
	default:
		return errors.Wrapf(ErrInvalidConfig, "extends %q: expected %s, %s or %s",
			c.Extends, rules.ConfigRecommended, rules.ConfigAll, rules.ConfigNone)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Wrapf(ErrInvalidConfig, "log format %q: expected %s or %s", c.Log.Format, FormatText, FormatJSON)
	}
	for name, value := range c.Rules {
		if _, _, err := parseRuleEntry(value); err != nil {
			return errors.Wrapf(errors.Mark(err, ErrInvalidConfig), "rule %s", name)
		}
	}
	return nil
}

// Override sets the configuration of one rule, replacing the file's entry.
func (c *Config) Override(name string, value any) {
	if c.Rules == nil {
		c.Rules = make(map[string]any)
	}
	for existing := range c.Rules {
		if rules.BareName(existing) == rules.BareName(name) {
			delete(c.Rules, existing)
		}
	}
	c.Rules[name] = value
}

// RuleSet builds the effective rule set: the extended bundle with every
// configured rule applied on top.
func (c *Config) RuleSet(reg *rules.Registry) (rules.RuleSet, error) {
	extends := c.Extends
	if extends == "" {
		extends = rules.ConfigRecommended
	}
	base, ok := rules.Config(reg, extends)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidConfig, "extends %q: unknown configuration", extends)
	}
	set := base.Clone()

	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		severity, options, err := parseRuleEntry(c.Rules[name])
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, ErrInvalidConfig), "rule %s", name)
		}
		set[rules.QualifiedName(name)] = rules.RuleConfig{Severity: severity, Options: options}
	}
	return set, nil
}

// parseRuleEntry splits "warn", 2 or [warn, {...}] into severity and options.
func parseRuleEntry(value any) (domain.Severity, any, error) {
	switch v := value.(type) {
	case []any:
		if len(v) == 0 {
			return domain.SeverityOff, nil, errors.New("empty rule entry")
		}
		severity, err := domain.SeverityFromValue(v[0])
		if err != nil {
			return domain.SeverityOff, nil, err
		}
		if len(v) == 1 {
			return severity, nil, nil
		}
		return severity, v[1:], nil
	case []string:
		anys := make([]any, len(v))
		for i, s := range v {
			anys[i] = s
		}
		return parseRuleEntry(anys)
	default:
		severity, err := domain.SeverityFromValue(v)
		return severity, nil, err
	}
}

// NormalizeExtensions lowercases extensions and adds a missing leading dot.
// An empty list yields the defaults.
func NormalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return append([]string(nil), domain.DefaultExtensions...)
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
