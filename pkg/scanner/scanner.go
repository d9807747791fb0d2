// Package scanner discovers JavaScript and TypeScript files and lints them in parallel.
package scanner

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/linter"
	"github.com/specvital/frontend-rules/pkg/rules"
)

const (
	// DefaultTimeout is the default scan timeout duration.
	DefaultTimeout = 5 * time.Minute
	// MaxWorkers is the maximum number of concurrent workers allowed.
	MaxWorkers = 1024
	// DefaultMaxFileSize is the default maximum file size for scanning (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024
)

// Scan phases reported in ScanError.
const (
	PhaseDiscovery = "discovery"
	PhaseRead      = "read"
	PhaseLint      = "lint"
	PhaseWrite     = "write"
)

// DefaultSkipPatterns contains directory names that are skipped by default during scanning.
var DefaultSkipPatterns = []string{
	"node_modules",
	".git",
	"dist",
	"build",
	".next",
	"coverage",
	".cache",
	"vendor",
}

var (
	// ErrScanCancelled is returned when scanning is cancelled via context.
	ErrScanCancelled = errors.New("scanner: scan cancelled")
	// ErrScanTimeout is returned when scanning exceeds the timeout duration.
	ErrScanTimeout = errors.New("scanner: scan timeout")
)

// Scanner lints every file under a set of paths with one rule set.
type Scanner struct {
	linter  *linter.Linter
	rules   rules.RuleSet
	options *Options
}

// ScanResult contains the outcome of a scan operation.
type ScanResult struct {
	// Files holds one result per linted file, sorted by filename.
	Files []*linter.Result

	// Fixed lists the files rewritten in fix mode.
	Fixed []string

	// Errors contains non-fatal errors encountered during scanning.
	Errors []ScanError

	Stats ScanStats
}

// ScanError represents an error that occurred during a specific phase of scanning.
type ScanError struct {
	// Err is the underlying error.
	Err error

	// Path is the file path where the error occurred (may be empty for non-file errors).
	Path string

	// Phase is one of the Phase* constants.
	Phase string
}

// Error implements the error interface.
func (e ScanError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Phase, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e ScanError) Unwrap() error {
	return e.Err
}

// ScanStats provides statistics about the scan operation.
type ScanStats struct {
	// FilesScanned is the number of files discovered.
	FilesScanned int
	// FilesLinted is the number of files linted without error.
	FilesLinted int
	// FilesFailed is the number of files that could not be read, linted or written.
	FilesFailed int
	FilesFixed  int

	ErrorCount   int
	WarningCount int
	FixableCount int

	// Duration is the total scan duration.
	Duration time.Duration
}

// New creates a scanner that lints with l using set.
func New(l *linter.Linter, set rules.RuleSet, opts ...Option) *Scanner {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	applyDefaults(options)

	return &Scanner{
		linter:  l,
		rules:   set,
		options: options,
	}
}

// Scan discovers files under paths and lints them. Directories are walked;
// file paths are linted as given. A rule set the linter rejects is returned
// as an error before any file is read.
func (s *Scanner) Scan(ctx context.Context, paths ...string) (*ScanResult, error) {
	startTime := time.Now()

	if err := s.linter.Prepare(s.rules); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.options.Timeout)
	defer cancel()

	baseDir, err := s.baseDir()
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		Files:  []*linter.Result{},
		Errors: []ScanError{},
	}

	files, errs := s.discoverFiles(ctx, baseDir, paths)
	result.Errors = append(result.Errors, errs...)
	result.Stats.FilesScanned = len(files)

	if len(files) > 0 {
		s.lintFilesParallel(ctx, baseDir, files, result)
	}

	for _, res := range result.Files {
		result.Stats.ErrorCount += res.ErrorCount()
		result.Stats.WarningCount += res.WarningCount()
		result.Stats.FixableCount += res.FixableErrorCount() + res.FixableWarningCount()
	}
	result.Stats.FilesLinted = len(result.Files)
	result.Stats.FilesFixed = len(result.Fixed)
	result.Stats.Duration = time.Since(startTime)

	s.options.Logger.Debug("scan finished",
		"files", result.Stats.FilesScanned,
		"failed", result.Stats.FilesFailed,
		"duration", result.Stats.Duration,
	)

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, ErrScanTimeout
		}
		if errors.Is(err, context.Canceled) {
			return result, ErrScanCancelled
		}
	}

	return result, nil
}

func (s *Scanner) baseDir() (string, error) {
	dir := s.options.BaseDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "get working directory")
		}
		dir = cwd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolve base dir %s", dir)
	}
	return abs, nil
}

// discoverFiles returns the absolute paths of the files to lint, sorted and de-duplicated.
func (s *Scanner) discoverFiles(ctx context.Context, baseDir string, paths []string) ([]string, []ScanError) {
	skipSet := buildSkipSet(append(append([]string(nil), DefaultSkipPatterns...), s.options.ExcludePatterns...))
	extSet := buildExtensionSet(s.options.Extensions)

	var (
		files []string
		errs  []ScanError
		seen  = make(map[string]bool)
	)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		if ctx.Err() != nil {
			break
		}

		absRoot := root
		if !filepath.IsAbs(absRoot) {
			absRoot = filepath.Join(baseDir, root)
		}

		info, err := os.Stat(absRoot)
		if err != nil {
			errs = append(errs, ScanError{Err: err, Path: root, Phase: PhaseDiscovery})
			continue
		}
		if !info.IsDir() {
			add(absRoot)
			continue
		}

		walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			if walkErr != nil {
				errs = append(errs, ScanError{
					Err:   errors.Wrapf(walkErr, "access error at %s", path),
					Path:  path,
					Phase: PhaseDiscovery,
				})
				return nil
			}

			if d.IsDir() {
				if shouldSkipDir(path, absRoot, skipSet) {
					return filepath.SkipDir
				}
				return nil
			}

			if !extSet[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			if matchesAnyPattern(relativeName(baseDir, path), s.options.IgnorePatterns) {
				return nil
			}
			if s.options.MaxFileSize > 0 {
				info, err := d.Info()
				if err != nil {
					errs = append(errs, ScanError{Err: err, Path: path, Phase: PhaseDiscovery})
					return nil
				}
				if info.Size() > s.options.MaxFileSize {
					s.options.Logger.Debug("skipping large file", "file", path, "size", info.Size())
					return nil
				}
			}

			add(path)
			return nil
		})
		if walkErr != nil && !errors.Is(walkErr, context.Canceled) && !errors.Is(walkErr, context.DeadlineExceeded) {
			errs = append(errs, ScanError{Err: walkErr, Path: root, Phase: PhaseDiscovery})
		}
	}

	sort.Strings(files)
	return files, errs
}

func (s *Scanner) lintFilesParallel(ctx context.Context, baseDir string, files []string, result *ScanResult) {
	workers := s.options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	var mu sync.Mutex

	for _, file := range files {
		file := file

		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)

			res, fixed, scanErr := s.lintFile(gCtx, baseDir, file)

			mu.Lock()
			defer mu.Unlock()

			if scanErr != nil {
				result.Errors = append(result.Errors, *scanErr)
				result.Stats.FilesFailed++
				return nil
			}
			result.Files = append(result.Files, res)
			if fixed {
				result.Fixed = append(result.Fixed, res.Filename)
			}
			return nil
		})
	}

	_ = g.Wait()

	// Parallel goroutines complete in variable order.
	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Filename < result.Files[j].Filename
	})
	sort.Strings(result.Fixed)
	sort.SliceStable(result.Errors, func(i, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})
}

func (s *Scanner) lintFile(ctx context.Context, baseDir, path string) (*linter.Result, bool, *ScanError) {
	name := relativeName(baseDir, path)

	if err := ctx.Err(); err != nil {
		return nil, false, &ScanError{Err: err, Path: name, Phase: PhaseLint}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, false, &ScanError{Err: err, Path: name, Phase: PhaseRead}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, &ScanError{Err: errors.Wrapf(err, "read file %s", name), Path: name, Phase: PhaseRead}
	}

	if !s.options.Fix {
		res, err := s.linter.Lint(ctx, name, content, s.rules)
		if err != nil {
			return nil, false, &ScanError{Err: err, Path: name, Phase: PhaseLint}
		}
		return res, false, nil
	}

	fixed, err := s.linter.Fix(ctx, name, content, s.rules)
	if err != nil {
		return nil, false, &ScanError{Err: err, Path: name, Phase: PhaseLint}
	}
	if !fixed.Fixed || bytes.Equal(fixed.Output, content) {
		return fixed.Result, false, nil
	}
	if err := os.WriteFile(path, fixed.Output, info.Mode().Perm()); err != nil {
		return nil, false, &ScanError{Err: errors.Wrapf(err, "write fixes to %s", name), Path: name, Phase: PhaseWrite}
	}
	s.options.Logger.Debug("wrote fixes", "file", name, "passes", fixed.Passes)
	return fixed.Result, true, nil
}

// relativeName returns path relative to baseDir with forward slashes, or
// path unchanged when it lies outside baseDir.
func relativeName(baseDir, path string) string {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func buildSkipSet(patterns []string) map[string]bool {
	skipSet := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		skipSet[p] = true
	}
	return skipSet
}

func buildExtensionSet(exts []string) map[string]bool {
	if len(exts) == 0 {
		exts = domain.DefaultExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return set
}

func shouldSkipDir(path, rootPath string, skipSet map[string]bool) bool {
	if path == rootPath {
		return false
	}

	base := filepath.Base(path)
	return skipSet[base]
}

func matchesAnyPattern(name string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// Scan lints paths with a new Scanner.
func Scan(ctx context.Context, l *linter.Linter, set rules.RuleSet, paths []string, opts ...Option) (*ScanResult, error) {
	return New(l, set, opts...).Scan(ctx, paths...)
}
