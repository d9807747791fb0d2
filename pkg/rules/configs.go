package rules

import (
	"sort"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/rule"
)

// Bundled configuration names.
const (
	ConfigRecommended = "recommended"
	ConfigAll         = "all"
	ConfigNone        = "none"
)

// RuleConfig is the effective severity and raw options of one rule.
type RuleConfig struct {
	Severity domain.Severity
	// Options is the undecoded options value; the linter validates it against the rule schema.
	Options any
}

// RuleSet maps rule names (bare or namespaced) to their configuration.
type RuleSet map[string]RuleConfig

// Clone returns a shallow copy of s with namespaced keys.
func (s RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(s))
	for name, cfg := range s {
		out[QualifiedName(name)] = cfg
	}
	return out
}

// Enabled returns the namespaced names of rules with a severity above off, sorted.
func (s RuleSet) Enabled() []string {
	var names []string
	for name, cfg := range s {
		if cfg.Severity.Enabled() {
			names = append(names, QualifiedName(name))
		}
	}
	sort.Strings(names)
	return names
}

var recommended = map[string]domain.Severity{
	"enforce-typography-components":         domain.SeverityError,
	"no-direct-colors":                      domain.SeverityError,
	"top-level-const-snake":                 domain.SeverityError,
	"no-focusable-non-interactive-elements": domain.SeverityError,
	"enforce-kebab-case-filenames":          domain.SeverityError,
	"enforce-interface-type-naming":         domain.SeverityError,
	"no-default-export":                     domain.SeverityError,
	"interface-type-required-first":         domain.SeverityError,
	"no-inline-arrow-functions-in-jsx":      domain.SeverityWarn,
	"enforce-alias-import-paths":            domain.SeverityWarn,
	"no-nested-component":                   domain.SeverityError,
}

// Recommended returns the recommended configuration.
func Recommended() RuleSet {
	set := make(RuleSet, len(recommended))
	for name, sev := range recommended {
		set[QualifiedName(name)] = RuleConfig{Severity: sev}
	}
	return set
}

// RecommendedSeverity returns the recommended severity of a rule, or off.
func RecommendedSeverity(name string) domain.Severity {
	return recommended[BareName(name)]
}

// AllRules enables every rule in reg: suggestions warn, everything else errors.
func AllRules(reg *Registry) RuleSet {
	defs := reg.All()
	set := make(RuleSet, len(defs))
	for _, def := range defs {
		sev := domain.SeverityError
		if def.Type == rule.TypeSuggestion {
			sev = domain.SeverityWarn
		}
		set[QualifiedName(def.Name)] = RuleConfig{Severity: sev}
	}
	return set
}

// Configs returns every bundled configuration keyed by name.
func Configs(reg *Registry) map[string]RuleSet {
	return map[string]RuleSet{
		ConfigRecommended: Recommended(),
		ConfigAll:         AllRules(reg),
		ConfigNone:        {},
	}
}

// Config returns the named bundle and whether it exists.
func Config(reg *Registry, name string) (RuleSet, bool) {
	set, ok := Configs(reg)[name]
	return set, ok
}
