package scanner

import (
	"log/slog"
	"time"
)

// Options configures scanner behavior.
type Options struct {
	// BaseDir anchors IgnorePatterns and the file names handed to rules.
	// Defaults to the working directory.
	BaseDir string

	// ExcludePatterns specifies directory names to skip during file discovery.
	// These are combined with DefaultSkipPatterns.
	ExcludePatterns []string

	// Extensions lists the file extensions discovered in directories.
	// Empty means domain.DefaultExtensions.
	Extensions []string

	// Fix applies rule fixes and writes changed files back.
	Fix bool

	// IgnorePatterns are doublestar globs, relative to BaseDir, of files to skip.
	IgnorePatterns []string

	Logger *slog.Logger

	// MaxFileSize is the maximum file size in bytes to process.
	// Files larger than this are skipped.
	MaxFileSize int64

	// Timeout is the maximum duration for the entire scan operation.
	// Zero or negative values use DefaultTimeout.
	Timeout time.Duration

	// Workers specifies the number of concurrent files linted.
	// Zero or negative values use runtime.GOMAXPROCS(0).
	Workers int
}

// Option is a functional option for configuring Scanner.
type Option func(*Options)

// WithBaseDir sets the directory ignore patterns and rule file names are relative to.
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}

// WithExcludePatterns adds directory names to skip during file discovery.
func WithExcludePatterns(patterns []string) Option {
	return func(o *Options) {
		o.ExcludePatterns = patterns
	}
}

// WithExtensions sets the file extensions discovered in directories.
func WithExtensions(exts []string) Option {
	return func(o *Options) {
		o.Extensions = exts
	}
}

// WithFix enables writing fixed sources back to disk.
func WithFix(enabled bool) Option {
	return func(o *Options) {
		o.Fix = enabled
	}
}

// WithIgnorePatterns sets doublestar globs of files to skip.
func WithIgnorePatterns(patterns []string) Option {
	return func(o *Options) {
		o.IgnorePatterns = patterns
	}
}

// WithLogger sets the logger for scan progress.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMaxFileSize sets the maximum file size to process.
// Negative values are ignored.
func WithMaxFileSize(size int64) Option {
	return func(o *Options) {
		if size >= 0 {
			o.MaxFileSize = size
		}
	}
}

// WithTimeout sets the scan timeout duration.
// Negative values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Timeout = d
		}
	}
}

// WithWorkers sets the number of concurrent files linted.
// Negative values are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

func applyDefaults(opts *Options) {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
}
