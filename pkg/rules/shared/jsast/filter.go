package jsast

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchAny reports whether name matches any of the glob patterns.
// Malformed patterns never match.
func MatchAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// IsIgnored reports whether filename matches one of the ignore patterns.
func IsIgnored(filename string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return MatchAny(filepath.ToSlash(filename), patterns)
}

// InFolders reports whether a folder-restricted rule applies to filename.
// A nil pattern list means every file; an empty list means none.
func InFolders(filename string, patterns []string) bool {
	if patterns == nil {
		return true
	}
	return MatchAny(filepath.ToSlash(filename), patterns)
}

// IgnoreOptions is the options shape shared by rules that only accept an ignore list.
type IgnoreOptions struct {
	Ignore []string `mapstructure:"ignore"`
}
