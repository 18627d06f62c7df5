//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/aidep/internal/domain/commands"
	"github.com/rios0rios0/aidep/internal/domain/entities"
	builders "github.com/rios0rios0/aidep/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/aidep/test/infrastructure/repositorydoubles"
)

func TestListCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return the effective rules with their count", func(t *testing.T) {
		t.Parallel()

		// given
		rules := &doubles.SpyRuleRepository{
			RuleSet: []entities.ConflictRule{
				builders.NewConflictRuleBuilder().WithID("one").BuildConflictRule(),
				builders.NewConflictRuleBuilder().WithID("two").BuildConflictRule(),
			},
		}

		cmd := commands.NewListCommand(rules)

		// when
		report, err := cmd.Execute(entities.DefaultSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, report.Total)
		require.Len(t, report.Rules, 2)
		assert.Equal(t, "one", report.Rules[0].ID)
	})

	t.Run("should hand the settings through to the repository", func(t *testing.T) {
		t.Parallel()

		// given
		rules := &doubles.SpyRuleRepository{}
		settings := entities.DefaultSettings()

		cmd := commands.NewListCommand(rules)

		// when
		_, err := cmd.Execute(settings)

		// then
		require.NoError(t, err)
		require.Len(t, rules.RulesCalls, 1)
		assert.Same(t, settings, rules.RulesCalls[0])
	})
}
