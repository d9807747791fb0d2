package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FRONTENDLINT_"

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// FileNames are the config file names searched for, in order.
var FileNames = []string{".frontendlint.yaml", ".frontendlint.yml"}

var ErrConfigNotFound = errors.New("config file not found")

// envKeys maps environment variable suffixes to config keys.
var envKeys = map[string]string{
	"EXTENDS":         "extends",
	"IGNORE_PATTERNS": "ignorePatterns",
	"EXTENSIONS":      "extensions",
	"LOG_LEVEL":       "log.level",
	"LOG_FORMAT":      "log.format",
}

// FlagKeys maps command-line flag names to config keys. Flags not listed
// here are not read into the configuration.
var FlagKeys = map[string]string{
	"extends":        "extends",
	"ignore-pattern": "ignorePatterns",
	"ext":            "extensions",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// LoadOptions controls where Load looks.
type LoadOptions struct {
	// File is an explicit config path. It must exist.
	File string
	// Dir is where the upward search for a config file starts.
	// Defaults to the working directory.
	Dir string
	// Flags are read after the file and environment; only changed flags count.
	Flags *pflag.FlagSet
}

// Load merges defaults, the config file, environment variables and flags,
// in increasing precedence, and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	dir := opts.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "get working directory")
		}
		dir = cwd
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]any{
		"extends":    defaults.Extends,
		"extensions": defaults.Extensions,
		"log.level":  defaults.Log.Level,
		"log.format": defaults.Log.Format,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	path, err := resolveFile(opts.File, dir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(errors.Mark(err, ErrInvalidConfig), "read config file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, EnvPrefix)]
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := FlagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(opts.Flags, f)
		}), nil); err != nil {
			return nil, errors.Wrap(err, "load flags")
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(errors.Mark(err, ErrInvalidConfig), "decode config")
	}

	cfg.File = path
	cfg.Root = dir
	if path != "" {
		cfg.Root = filepath.Dir(path)
	}
	cfg.Extensions = NormalizeExtensions(cfg.Extensions)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveFile returns the absolute config path to load, or "" when no file exists.
func resolveFile(explicit, dir string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			abs = filepath.Clean(explicit)
		}
		if _, err := os.Stat(abs); err != nil {
			return "", errors.Wrapf(errors.Mark(err, ErrConfigNotFound), "config file %s", explicit)
		}
		return abs, nil
	}
	return FindFile(dir), nil
}

// FindFile searches startDir and its parents for a config file and returns
// its path, or "" if none is found within maxUpwardSearchLevels.
func FindFile(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
