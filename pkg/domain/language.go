// Package domain defines the core types shared by the parser, the rules and the linter.
package domain

import (
	"path/filepath"
	"strings"
)

// Language represents a source dialect with its own tree-sitter grammar.
type Language string

// Supported languages for linting.
const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageTSX        Language = "tsx"
)

// DefaultExtensions lists the file extensions linted when none are configured.
var DefaultExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts"}

// LanguageFromPath returns the language for a file based on its extension.
// The JavaScript grammar handles JSX, so .jsx maps to LanguageJavaScript.
func LanguageFromPath(path string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".mjs", ".cjs":
		return LanguageJavaScript, true
	case ".ts", ".mts", ".cts":
		return LanguageTypeScript, true
	case ".tsx":
		return LanguageTSX, true
	default:
		return "", false
	}
}

// IsTypeScript reports whether the language carries TypeScript syntax.
func (l Language) IsTypeScript() bool {
	return l == LanguageTypeScript || l == LanguageTSX
}
