//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/aidep/internal/domain/entities"
	"github.com/rios0rios0/aidep/internal/domain/repositories"
)

// SpyRuleRepository implements repositories.RuleRepository as a configurable spy.
type SpyRuleRepository struct {
	// --- Rules ---
	RuleSet    []entities.ConflictRule
	RulesCalls []*entities.Settings

	// --- Compatibility ---
	Table entities.CompatibilityTable

	// --- Renames ---
	RenameSet map[string]entities.PackageRename
}

var _ repositories.RuleRepository = (*SpyRuleRepository)(nil)

func (r *SpyRuleRepository) Rules(settings *entities.Settings) []entities.ConflictRule {
	r.RulesCalls = append(r.RulesCalls, settings)
	return r.RuleSet
}

func (r *SpyRuleRepository) Compatibility() entities.CompatibilityTable {
	if r.Table == nil {
		return entities.CompatibilityTable{}
	}
	return r.Table
}

func (r *SpyRuleRepository) Renames() map[string]entities.PackageRename {
	if r.RenameSet == nil {
		return map[string]entities.PackageRename{}
	}
	return r.RenameSet
}
