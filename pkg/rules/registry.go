// Package rules holds the rule registry and the bundled configurations.
// Rule packages register themselves from init(); import
// github.com/specvital/frontend-rules/pkg/rules/all to load every rule.
package rules

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/specvital/frontend-rules/pkg/rule"
)

// Namespace is the plugin prefix of every rule ID.
const Namespace = "eslint-frontend-rules"

var defaultRegistry = NewRegistry()

// Registry manages registered rule definitions.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]*rule.Definition
}

// NewRegistry creates a new empty rule registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]*rule.Definition)}
}

// DefaultRegistry returns the global default registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a rule to the default registry.
func Register(def *rule.Definition) {
	defaultRegistry.Register(def)
}

// QualifiedName returns the namespaced rule ID, e.g. "eslint-frontend-rules/no-default-export".
func QualifiedName(name string) string {
	return Namespace + "/" + BareName(name)
}

// BareName strips the plugin namespace from a rule ID if present.
func BareName(name string) string {
	return strings.TrimPrefix(name, Namespace+"/")
}

// Register adds a rule to the registry. It panics on an empty or duplicate name,
// or when Create is missing.
func (r *Registry) Register(def *rule.Definition) {
	if def == nil || def.Name == "" {
		panic("rules: Register called with an unnamed definition")
	}
	if def.Create == nil {
		panic(fmt.Sprintf("rules: rule %q has no Create function", def.Name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.rules[def.Name]; dup {
		panic(fmt.Sprintf("rules: rule %q registered twice", def.Name))
	}
	r.rules[def.Name] = def
}

// Get returns the rule with the given bare or namespaced name.
func (r *Registry) Get(name string) (*rule.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.rules[BareName(name)]
	return def, ok
}

// All returns every registered rule sorted by name.
func (r *Registry) All() []*rule.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*rule.Definition, 0, len(r.rules))
	for _, def := range r.rules {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Names returns the sorted bare names of every registered rule.
func (r *Registry) Names() []string {
	defs := r.All()
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	return names
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}
