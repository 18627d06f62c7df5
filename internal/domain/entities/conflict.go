package entities

import (
	"strings"

	"github.com/rios0rios0/aidep/internal/domain/version"
)

// ConflictRule describes two or more packages whose version combination is
// known to break, plus the remediation data shown to the user. Rules are
// static: the database is built once at startup and never mutated.
type ConflictRule struct {
	ID              string            `yaml:"id"               json:"id"`
	Packages        []string          `yaml:"packages"         json:"packages"`
	Description     string            `yaml:"description"      json:"description"`
	Severity        Severity          `yaml:"severity"         json:"severity"`
	WorkingVersions map[string]string `yaml:"working_versions" json:"working_versions"`
	Alternative     map[string]string `yaml:"alternative"      json:"alternative,omitempty"`
	Fix             string            `yaml:"fix"              json:"fix"`
	Tip             string            `yaml:"tip"              json:"tip,omitempty"`
}

// EvaluatedConflict is the per-rule result of one evaluation pass: the rule's
// remediation data plus the subset of the caller's dependencies that overlap
// the rule's package set.
type EvaluatedConflict struct {
	RuleID           string            `json:"id"`
	Description      string            `json:"description"`
	Severity         Severity          `json:"severity"`
	AffectedPackages map[string]string `json:"affected_packages"`
	WorkingVersions  map[string]string `json:"working_versions"`
	Alternative      map[string]string `json:"alternative,omitempty"`
	Fix              string            `json:"fix"`
	Tip              string            `json:"tip,omitempty"`
}

// Evaluate checks the declared dependencies (package name, lower-cased, to
// raw specifier) against every rule and returns one EvaluatedConflict per
// rule whose known-good ranges are violated. Results keep the rule-list
// order; rules that do not fire are silently skipped. Evaluate is total:
// malformed specifiers degrade per the LenientMatch policy instead of
// producing an error.
func Evaluate(deps map[string]string, rules []ConflictRule) []EvaluatedConflict {
	lowered := make(map[string]string, len(deps))
	for name, spec := range deps {
		lowered[strings.ToLower(name)] = spec
	}

	conflicts := make([]EvaluatedConflict, 0)
	for _, rule := range rules {
		if !rule.appliesTo(lowered) {
			continue
		}

		affected := rule.affectedPackages(lowered)
		if !isConflicting(affected, rule.WorkingVersions, rule.Alternative) {
			continue
		}

		conflicts = append(conflicts, EvaluatedConflict{
			RuleID:           rule.ID,
			Description:      rule.Description,
			Severity:         rule.Severity,
			AffectedPackages: affected,
			WorkingVersions:  rule.WorkingVersions,
			Alternative:      rule.Alternative,
			Fix:              rule.Fix,
			Tip:              rule.Tip,
		})
	}
	return conflicts
}

// appliesTo is the applicability gate: at least two of the packages named by
// the rule must actually be declared. A rule naming three packages can still
// fire with only two present.
func (r ConflictRule) appliesTo(deps map[string]string) bool {
	declared := 0
	for _, pkg := range r.Packages {
		if _, ok := deps[strings.ToLower(pkg)]; ok {
			declared++
		}
	}
	return declared >= 2 //nolint:mnd // a conflict needs two sides
}

// affectedPackages returns the declared specifiers of the rule's packages,
// keyed by the rule's original package-name casing.
func (r ConflictRule) affectedPackages(deps map[string]string) map[string]string {
	affected := make(map[string]string)
	for _, pkg := range r.Packages {
		if spec, ok := deps[strings.ToLower(pkg)]; ok {
			affected[pkg] = spec
		}
	}
	return affected
}

// isConflicting decides whether the affected versions fall outside the
// rule's known-good ranges. A package whose specifier pins no concrete
// version is skipped. A package that satisfies neither the working specifier
// nor the alternative one (when the rule has one) settles the verdict for
// the whole rule; no further packages are examined.
func isConflicting(affected, working, alternative map[string]string) bool {
	if len(affected) == 0 {
		return false
	}

	for pkg, spec := range affected {
		declared := version.Extract(spec)
		if declared == "" {
			continue
		}

		key := strings.ToLower(pkg)
		workingSpec, ok := working[key]
		if !ok {
			continue
		}

		if version.LenientMatch(declared, workingSpec) {
			continue
		}

		if altSpec, hasAlt := alternative[key]; hasAlt && version.LenientMatch(declared, altSpec) {
			continue
		}

		return true
	}

	return false
}
