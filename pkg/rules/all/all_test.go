package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/frontend-rules/pkg/domain"
	"github.com/specvital/frontend-rules/pkg/rule"
	"github.com/specvital/frontend-rules/pkg/rules"
	_ "github.com/specvital/frontend-rules/pkg/rules/all"
)

func TestAllRulesRegistered(t *testing.T) {
	t.Parallel()

	reg := rules.DefaultRegistry()

	assert.Equal(t, []string{
		"enforce-alias-import-paths",
		"enforce-classname-utility",
		"enforce-interface-type-naming",
		"enforce-kebab-case-filenames",
		"enforce-no-empty-classname-utility",
		"enforce-typography-components",
		"interface-type-required-first",
		"no-default-export",
		"no-direct-colors",
		"no-empty-tailwind-class",
		"no-focusable-non-interactive-elements",
		"no-inline-arrow-functions-in-jsx",
		"no-nested-component",
		"no-unnecessary-curly-in-props",
		"no-unnecessary-fragment",
		"require-jsdoc-on-component",
		"require-jsdoc-on-hook",
		"require-jsdoc-on-root-function",
		"top-level-const-snake",
	}, reg.Names())
}

func TestDefinitionsAreComplete(t *testing.T) {
	t.Parallel()

	for _, def := range rules.DefaultRegistry().All() {
		t.Run(def.Name, func(t *testing.T) {
			t.Parallel()

			assert.NotEmpty(t, def.Description)
			assert.NotEmpty(t, def.Category)
			assert.NotEmpty(t, def.Messages)
			assert.Contains(t, []rule.Type{rule.TypeProblem, rule.TypeSuggestion, rule.TypeLayout}, def.Type)
			for id, msg := range def.Messages {
				assert.NotEmpty(t, id)
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestEveryRuleAcceptsIgnore(t *testing.T) {
	t.Parallel()

	for _, def := range rules.DefaultRegistry().All() {
		t.Run(def.Name, func(t *testing.T) {
			t.Parallel()

			require.NotNil(t, def.Schema)
			_, err := rule.DecodeOptions(def, []any{map[string]any{"ignore": []any{"src/legacy/**"}}})
			assert.NoError(t, err)
		})
	}
}

func TestRecommendedRulesExist(t *testing.T) {
	t.Parallel()

	reg := rules.DefaultRegistry()
	set := rules.Recommended()

	require.Len(t, set, 11)
	for name, cfg := range set {
		_, ok := reg.Get(name)
		assert.True(t, ok, "recommended rule %s is not registered", name)
		assert.True(t, cfg.Severity.Enabled())
	}
}

func TestAllConfig(t *testing.T) {
	t.Parallel()

	reg := rules.DefaultRegistry()
	set, ok := rules.Config(reg, rules.ConfigAll)
	require.True(t, ok)
	require.Len(t, set, reg.Len())

	assert.Equal(t, domain.SeverityError, set[rules.QualifiedName("no-nested-component")].Severity)
	assert.Equal(t, domain.SeverityWarn, set[rules.QualifiedName("no-unnecessary-fragment")].Severity)
	assert.Equal(t, domain.SeverityWarn, set[rules.QualifiedName("require-jsdoc-on-hook")].Severity)
}

func TestJSDocRulesRegistered(t *testing.T) {
	t.Parallel()

	reg := rules.DefaultRegistry()
	for _, name := range []string{
		"require-jsdoc-on-root-function",
		"require-jsdoc-on-hook",
		"require-jsdoc-on-component",
	} {
		def, ok := reg.Get(name)
		require.True(t, ok, "rule %s is not registered", name)
		assert.Equal(t, "documentation", def.Category)
		assert.NotNil(t, def.Create)
	}
}
