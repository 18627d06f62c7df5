//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/aidep/internal/domain/commands"
	"github.com/rios0rios0/aidep/internal/domain/entities"
	builders "github.com/rios0rios0/aidep/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/aidep/test/infrastructure/repositorydoubles"
)

func TestCheckCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should report conflicts for a project with a broken combination", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &doubles.SpyScannerRepository{
			ManifestPath: "project/requirements.txt",
			Dependencies: map[string]string{
				"langchain": "==0.0.350",
				"openai":    "==1.10.0",
			},
		}
		rules := &doubles.SpyRuleRepository{
			RuleSet: []entities.ConflictRule{
				builders.NewConflictRuleBuilder().
					WithID("langchain-openai").
					WithWorkingVersions(map[string]string{
						"langchain": ">=0.1.0",
						"openai":    ">=1.0.0",
					}).
					BuildConflictRule(),
			},
		}

		cmd := commands.NewCheckCommand(scanner, rules)

		// when
		report, err := cmd.Execute(entities.DefaultSettings(), commands.CheckOptions{Path: "project"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "project/requirements.txt", report.ManifestPath)
		require.Len(t, report.Conflicts, 1)
		assert.Equal(t, "langchain-openai", report.Conflicts[0].RuleID)
		assert.Equal(t, []string{"project"}, scanner.SearchedDirs)
		assert.Equal(t, []string{"project/requirements.txt"}, scanner.ParsedFiles)
	})

	t.Run("should skip rule evaluation when no AI frameworks are declared", func(t *testing.T) {
		t.Parallel()

		// given a scanner whose filter drops everything
		scanner := &doubles.SpyScannerRepository{
			ManifestPath: "requirements.txt",
			Dependencies: map[string]string{"requests": ">=2.0"},
			Frameworks:   []string{"langchain"},
		}
		rules := &doubles.SpyRuleRepository{}

		cmd := commands.NewCheckCommand(scanner, rules)

		// when
		report, err := cmd.Execute(entities.DefaultSettings(), commands.CheckOptions{Path: "."})

		// then
		require.NoError(t, err)
		assert.Empty(t, report.Dependencies)
		assert.Empty(t, report.Conflicts)
		assert.Empty(t, rules.RulesCalls)
	})

	t.Run("should surface a missing manifest", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &doubles.SpyScannerRepository{
			FindManifestErr: errors.New("no requirements file found in ."),
		}

		cmd := commands.NewCheckCommand(scanner, &doubles.SpyRuleRepository{})

		// when
		_, err := cmd.Execute(entities.DefaultSettings(), commands.CheckOptions{Path: "."})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no requirements file")
	})

	t.Run("should wrap parse failures with the manifest path", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &doubles.SpyScannerRepository{
			ManifestPath: "requirements.txt",
			ParseFileErr: errors.New("disk gone"),
		}

		cmd := commands.NewCheckCommand(scanner, &doubles.SpyRuleRepository{})

		// when
		_, err := cmd.Execute(entities.DefaultSettings(), commands.CheckOptions{Path: "."})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requirements.txt")
	})

	t.Run("should hand the settings through to the rule repository", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &doubles.SpyScannerRepository{
			ManifestPath: "requirements.txt",
			Dependencies: map[string]string{"langchain": "==0.1.0"},
		}
		rules := &doubles.SpyRuleRepository{}
		settings := entities.DefaultSettings()
		settings.IgnoreConflicts = []string{"some-rule"}

		cmd := commands.NewCheckCommand(scanner, rules)

		// when
		_, err := cmd.Execute(settings, commands.CheckOptions{Path: "."})

		// then
		require.NoError(t, err)
		require.Len(t, rules.RulesCalls, 1)
		assert.Same(t, settings, rules.RulesCalls[0])
	})
}
