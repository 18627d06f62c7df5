//go:build unit

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/aidep/internal/domain/entities"
	"github.com/rios0rios0/aidep/internal/infrastructure/repositories/rules"
)

// These exercise the shipped database end to end through the rule engine,
// pinning the verdicts for the combinations the database was written for.
func TestDatabaseEvaluation(t *testing.T) {
	t.Parallel()

	ruleSet := rules.NewStaticRuleRepository().Rules(entities.DefaultSettings())

	t.Run("should flag langchain 0.0.200 with llama-index 0.7.5", func(t *testing.T) {
		t.Parallel()

		// given neither the working pin (0.0.198) nor the alternative (>=0.1.0) holds
		deps := map[string]string{
			"langchain":   "==0.0.200",
			"llama-index": "==0.7.5",
		}

		// when
		conflicts := entities.Evaluate(deps, ruleSet)

		// then
		require.NotEmpty(t, conflicts)
		ids := conflictIDs(conflicts)
		assert.Contains(t, ids, "langchain-llama-sqlalchemy")
	})

	t.Run("should pass openai 1.0.0 with langchain >=0.2.0", func(t *testing.T) {
		t.Parallel()

		// given both sides of the separate-package rule are satisfied
		deps := map[string]string{
			"openai":    "1.0.0",
			"langchain": ">=0.2.0",
		}

		// when
		conflicts := entities.Evaluate(deps, ruleSet)

		// then
		assert.Empty(t, conflicts)
	})

	t.Run("should pass the modern stack across every rule", func(t *testing.T) {
		t.Parallel()

		// given
		deps := map[string]string{
			"langchain":   "==0.2.0",
			"llama-index": "==0.9.0",
			"openai":      "==1.10.0",
		}

		// when
		conflicts := entities.Evaluate(deps, ruleSet)

		// then
		assert.Empty(t, conflicts)
	})

	t.Run("should return empty for an empty dependency mapping", func(t *testing.T) {
		t.Parallel()

		// when
		conflicts := entities.Evaluate(map[string]string{}, ruleSet)

		// then
		assert.Empty(t, conflicts)
	})

	t.Run("should flag old openai with new langchain", func(t *testing.T) {
		t.Parallel()

		// given
		deps := map[string]string{
			"openai":    "==0.27.0",
			"langchain": "==0.0.350",
		}

		// when
		conflicts := entities.Evaluate(deps, ruleSet)

		// then
		require.NotEmpty(t, conflicts)
		assert.Contains(t, conflictIDs(conflicts), "openai-langchain-breaking")
	})

	t.Run("should flag a pydantic pin outside both known-good sets", func(t *testing.T) {
		t.Parallel()

		// given pydantic 1.5.0 satisfies neither the 1.10.13 pin nor >=2.0.0
		deps := map[string]string{
			"pydantic":  "==1.5.0",
			"langchain": "==0.0.330",
		}

		// when
		conflicts := entities.Evaluate(deps, ruleSet)

		// then
		assert.Equal(t, []string{"pydantic-v2-breaking"}, conflictIDs(conflicts))
	})
}

func conflictIDs(conflicts []entities.EvaluatedConflict) []string {
	ids := make([]string, 0, len(conflicts))
	for _, conflict := range conflicts {
		ids = append(ids, conflict.RuleID)
	}
	return ids
}
