package rules

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/aidep/internal/domain/entities"
	"github.com/rios0rios0/aidep/internal/domain/repositories"
)

const minRulePackages = 2

// StaticRuleRepository serves the built-in conflict database, optionally
// extended with user-defined rules and filtered by the ignore list. The
// built-in data is a process-wide constant; each Rules call only assembles
// a fresh slice over it.
type StaticRuleRepository struct{}

// NewStaticRuleRepository creates the repository over the built-in database.
func NewStaticRuleRepository() *StaticRuleRepository {
	return &StaticRuleRepository{}
}

var _ repositories.RuleRepository = (*StaticRuleRepository)(nil)

// Rules returns the effective rule list for the given settings.
func (r *StaticRuleRepository) Rules(settings *entities.Settings) []entities.ConflictRule {
	rules := make([]entities.ConflictRule, 0, len(conflictDatabase))
	seen := make(map[string]bool, len(conflictDatabase))

	for _, rule := range conflictDatabase {
		if settings != nil && settings.IsConflictIgnored(rule.ID) {
			logger.Debugf("Skipping ignored conflict rule %q", rule.ID)
			continue
		}
		rules = append(rules, rule)
		seen[rule.ID] = true
	}

	for _, rule := range loadCustomRules(settings) {
		if seen[rule.ID] {
			logger.Warnf("Custom rule %q shadows an existing rule ID, skipping", rule.ID)
			continue
		}
		if settings.IsConflictIgnored(rule.ID) {
			continue
		}
		rules = append(rules, rule)
		seen[rule.ID] = true
	}

	return rules
}

// Compatibility returns the range-keyed compatibility table.
func (r *StaticRuleRepository) Compatibility() entities.CompatibilityTable {
	return compatibilityMatrix
}

// Renames returns the package split/rename notes.
func (r *StaticRuleRepository) Renames() map[string]entities.PackageRename {
	return packageRenames
}

// loadCustomRules reads user-defined rules from the configured YAML file.
// Any problem with the file or an individual rule is warned about and
// skipped; custom rules must never break a scan.
func loadCustomRules(settings *entities.Settings) []entities.ConflictRule {
	if settings == nil || settings.CustomRules == "" {
		return nil
	}

	data, err := os.ReadFile(settings.CustomRules)
	if err != nil {
		logger.Warnf("Failed to read custom rules file %q: %v", settings.CustomRules, err)
		return nil
	}

	var custom []entities.ConflictRule
	if unmarshalErr := yaml.Unmarshal(data, &custom); unmarshalErr != nil {
		logger.Warnf("Failed to parse custom rules file %q: %v", settings.CustomRules, unmarshalErr)
		return nil
	}

	valid := make([]entities.ConflictRule, 0, len(custom))
	for _, rule := range custom {
		if validateErr := validateRule(rule); validateErr != nil {
			logger.Warnf("Skipping custom rule %q: %v", rule.ID, validateErr)
			continue
		}
		valid = append(valid, rule)
	}
	return valid
}

// validateRule enforces the rule invariants on user-supplied data.
func validateRule(rule entities.ConflictRule) error {
	switch {
	case rule.ID == "":
		return errMissingID
	case len(rule.Packages) < minRulePackages:
		return errTooFewPackages
	case !rule.Severity.IsValid():
		return errInvalidSeverity
	default:
		return nil
	}
}
