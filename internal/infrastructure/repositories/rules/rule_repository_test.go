//go:build unit

package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/aidep/internal/domain/entities"
	"github.com/rios0rios0/aidep/internal/infrastructure/repositories/rules"
)

func TestRules(t *testing.T) {
	t.Parallel()

	t.Run("should return a well-formed built-in database", func(t *testing.T) {
		t.Parallel()

		// given
		repo := rules.NewStaticRuleRepository()

		// when
		ruleSet := repo.Rules(entities.DefaultSettings())

		// then
		require.NotEmpty(t, ruleSet)
		seen := make(map[string]bool)
		for _, rule := range ruleSet {
			assert.NotEmpty(t, rule.ID)
			assert.False(t, seen[rule.ID], "duplicate rule ID %q", rule.ID)
			seen[rule.ID] = true

			assert.GreaterOrEqual(t, len(rule.Packages), 2, "rule %q", rule.ID)
			assert.True(t, rule.Severity.IsValid(), "rule %q severity %q", rule.ID, rule.Severity)
			assert.NotEmpty(t, rule.Description, "rule %q", rule.ID)
			assert.NotEmpty(t, rule.Fix, "rule %q", rule.ID)
		}
	})

	t.Run("should only offer alternatives for constrained packages", func(t *testing.T) {
		t.Parallel()

		// given
		repo := rules.NewStaticRuleRepository()

		// when
		ruleSet := repo.Rules(entities.DefaultSettings())

		// then alternative keys must be a subset of the working keys
		for _, rule := range ruleSet {
			for pkg := range rule.Alternative {
				assert.Contains(t, rule.WorkingVersions, pkg,
					"rule %q offers an alternative for unconstrained package %q", rule.ID, pkg)
			}
		}
	})

	t.Run("should drop rules named in the ignore list", func(t *testing.T) {
		t.Parallel()

		// given
		repo := rules.NewStaticRuleRepository()
		all := repo.Rules(entities.DefaultSettings())
		require.NotEmpty(t, all)
		ignored := all[0].ID

		settings := entities.DefaultSettings()
		settings.IgnoreConflicts = []string{ignored}

		// when
		filtered := repo.Rules(settings)

		// then
		assert.Len(t, filtered, len(all)-1)
		for _, rule := range filtered {
			assert.NotEqual(t, ignored, rule.ID)
		}
	})

	t.Run("should append valid custom rules", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "custom.yaml")
		content := `
- id: my-custom-rule
  packages: [langchain, mylib]
  description: mylib breaks with langchain 0.1
  severity: high
  working_versions:
    langchain: "<0.1.0"
    mylib: ">=2.0.0"
  fix: pip install 'mylib>=2.0.0'
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		repo := rules.NewStaticRuleRepository()
		settings := entities.DefaultSettings()
		settings.CustomRules = path
		builtin := len(repo.Rules(entities.DefaultSettings()))

		// when
		ruleSet := repo.Rules(settings)

		// then
		require.Len(t, ruleSet, builtin+1)
		appended := ruleSet[len(ruleSet)-1]
		assert.Equal(t, "my-custom-rule", appended.ID)
		assert.Equal(t, entities.SeverityHigh, appended.Severity)
	})

	t.Run("should skip invalid custom rules", func(t *testing.T) {
		t.Parallel()

		// given one rule per broken invariant
		path := filepath.Join(t.TempDir(), "custom.yaml")
		content := `
- id: ""
  packages: [a, b]
  severity: low
- id: one-package
  packages: [a]
  severity: low
- id: bad-severity
  packages: [a, b]
  severity: apocalyptic
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		repo := rules.NewStaticRuleRepository()
		settings := entities.DefaultSettings()
		settings.CustomRules = path
		builtin := len(repo.Rules(entities.DefaultSettings()))

		// when
		ruleSet := repo.Rules(settings)

		// then
		assert.Len(t, ruleSet, builtin)
	})

	t.Run("should not let a custom rule shadow a built-in ID", func(t *testing.T) {
		t.Parallel()

		// given
		repo := rules.NewStaticRuleRepository()
		all := repo.Rules(entities.DefaultSettings())
		require.NotEmpty(t, all)

		path := filepath.Join(t.TempDir(), "custom.yaml")
		content := `
- id: ` + all[0].ID + `
  packages: [a, b]
  description: shadow attempt
  severity: low
  fix: none
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		settings := entities.DefaultSettings()
		settings.CustomRules = path

		// when
		ruleSet := repo.Rules(settings)

		// then
		assert.Len(t, ruleSet, len(all))
	})

	t.Run("should tolerate a missing custom rules file", func(t *testing.T) {
		t.Parallel()

		// given
		repo := rules.NewStaticRuleRepository()
		settings := entities.DefaultSettings()
		settings.CustomRules = filepath.Join(t.TempDir(), "missing.yaml")

		// when
		ruleSet := repo.Rules(settings)

		// then
		assert.Len(t, ruleSet, len(repo.Rules(entities.DefaultSettings())))
	})
}

func TestCompatibility(t *testing.T) {
	t.Parallel()

	t.Run("should expose buckets for the core frameworks", func(t *testing.T) {
		t.Parallel()

		// when
		table := rules.NewStaticRuleRepository().Compatibility()

		// then
		for _, pkg := range []string{"langchain", "llama-index", "openai"} {
			assert.NotEmpty(t, table[pkg], "package %q", pkg)
		}
	})
}

func TestRenames(t *testing.T) {
	t.Parallel()

	t.Run("should expose the openai breaking-change note", func(t *testing.T) {
		t.Parallel()

		// when
		renames := rules.NewStaticRuleRepository().Renames()

		// then
		require.Contains(t, renames, "openai")
		assert.NotEmpty(t, renames["openai"].BreakingVersion)
	})
}
