package repositories

import (
	"github.com/rios0rios0/aidep/internal/domain/entities"
)

// RuleRepository provides the static conflict knowledge base: the curated
// conflict rules, the range-keyed compatibility table, and the package
// rename notes. The data is read-only and loaded once at startup.
type RuleRepository interface {
	// Rules returns the effective, ordered rule list for the given
	// settings: the built-in database, extended with the user's custom
	// rules and minus the ignored IDs. A nil settings returns the
	// built-in database unchanged.
	Rules(settings *entities.Settings) []entities.ConflictRule

	// Compatibility returns the range-keyed compatibility table.
	Compatibility() entities.CompatibilityTable

	// Renames returns the package split/rename notes, keyed by package name.
	Renames() map[string]entities.PackageRename
}
