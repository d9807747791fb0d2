package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/rule"
)

func def(name string, typ rule.Type) *rule.Definition {
	return &rule.Definition{
		Name:   name,
		Type:   typ,
		Create: func(*rule.Context) rule.Visitor { return nil },
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("should return rules sorted by name", func(t *testing.T) {
		t.Parallel()

		// Given
		r := NewRegistry()

		// When
		r.Register(def("zeta", rule.TypeProblem))
		r.Register(def("alpha", rule.TypeSuggestion))

		// Then
		assert.Equal(t, []string{"alpha", "zeta"}, r.Names())
		assert.Equal(t, 2, r.Len())
	})

	t.Run("should panic on duplicate names", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		r.Register(def("dup", rule.TypeProblem))

		assert.Panics(t, func() { r.Register(def("dup", rule.TypeProblem)) })
	})

	t.Run("should panic without Create", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		assert.Panics(t, func() { r.Register(&rule.Definition{Name: "broken"}) })
		assert.Panics(t, func() { r.Register(&rule.Definition{}) })
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(def("no-default-export", rule.TypeSuggestion))

	tests := []struct {
		name   string
		lookup string
		wantOK bool
	}{
		{"bare name", "no-default-export", true},
		{"namespaced name", "eslint-frontend-rules/no-default-export", true},
		{"other namespace", "react/no-default-export", false},
		{"unknown", "no-such-rule", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := r.Get(tt.lookup)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "no-default-export", got.Name)
			}
		})
	}
}

func TestQualifiedName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "eslint-frontend-rules/a", QualifiedName("a"))
	assert.Equal(t, "eslint-frontend-rules/a", QualifiedName("eslint-frontend-rules/a"))
	assert.Equal(t, "a", BareName("eslint-frontend-rules/a"))
}

func TestRecommended(t *testing.T) {
	t.Parallel()

	set := Recommended()
	require.Len(t, set, 11)
	assert.Equal(t, domain.SeverityWarn, set["eslint-frontend-rules/no-inline-arrow-functions-in-jsx"].Severity)
	assert.Equal(t, domain.SeverityWarn, set["eslint-frontend-rules/enforce-alias-import-paths"].Severity)
	assert.Equal(t, domain.SeverityError, set["eslint-frontend-rules/no-nested-component"].Severity)
	assert.Equal(t, domain.SeverityOff, RecommendedSeverity("no-unnecessary-fragment"))
	assert.Equal(t, domain.SeverityError, RecommendedSeverity("eslint-frontend-rules/no-default-export"))
}

func TestAllRules(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(def("a", rule.TypeProblem))
	r.Register(def("b", rule.TypeSuggestion))
	r.Register(def("c", rule.TypeLayout))

	set := AllRules(r)
	assert.Equal(t, domain.SeverityError, set[QualifiedName("a")].Severity)
	assert.Equal(t, domain.SeverityWarn, set[QualifiedName("b")].Severity)
	assert.Equal(t, domain.SeverityError, set[QualifiedName("c")].Severity)

	_, ok := Config(r, ConfigNone)
	assert.True(t, ok)
	_, ok = Config(r, "strict")
	assert.False(t, ok)
}

func TestRuleSet_Enabled(t *testing.T) {
	t.Parallel()

	set := RuleSet{
		"b":                       {Severity: domain.SeverityWarn},
		"eslint-frontend-rules/a": {Severity: domain.SeverityError},
		"c":                       {Severity: domain.SeverityOff},
	}
	assert.Equal(t, []string{"eslint-frontend-rules/a", "eslint-frontend-rules/b"}, set.Enabled())
	assert.Len(t, set.Clone(), 3)
}
