package entities

import (
	"strings"

	"github.com/rios0rios0/aidep/internal/domain/version"
)

// CompatibilityEntry associates one version-range key with the other
// packages known to work inside that range. Range keys come in three
// textual forms: an exact dotted version ("0.0.330"), an "X.Y.x" wildcard,
// and an "X.Y.0+" open-ended lower bound.
type CompatibilityEntry struct {
	Range      string              `yaml:"range"      json:"range"`
	Compatible map[string][]string `yaml:"compatible" json:"compatible"`
}

// CompatibilityTable maps a package name (lower-case) to its ordered
// version-range buckets. Buckets are scanned in declaration order and the
// first matching range wins; the data is assumed non-overlapping.
type CompatibilityTable map[string][]CompatibilityEntry

// LookupCompatibility returns the compatible-package map for the declared
// version of pkg, or an empty map when the package is unknown to the table
// or no concrete MAJOR.MINOR can be extracted from its declared specifier.
func LookupCompatibility(
	pkg string,
	deps map[string]string,
	table CompatibilityTable,
) map[string][]string {
	entries, ok := table[strings.ToLower(pkg)]
	if !ok {
		return map[string][]string{}
	}

	current := version.ExtractMajorMinor(deps[strings.ToLower(pkg)])
	if current == "" {
		return map[string][]string{}
	}

	for _, entry := range entries {
		if rangeKeyMatches(current, entry.Range) {
			return entry.Compatible
		}
	}

	return map[string][]string{}
}

// rangeKeyMatches applies the three key-matching rules. Unlike specifier
// matching this fails closed: a key that cannot be compared simply does
// not match.
func rangeKeyMatches(current, key string) bool {
	switch {
	case strings.HasSuffix(key, ".x"):
		return strings.HasPrefix(current, strings.TrimSuffix(key, ".x"))
	case strings.HasSuffix(key, "+"):
		cmp, ok := version.Compare(current, strings.TrimSuffix(key, "+"))
		return ok && cmp >= 0
	default:
		return current == key
	}
}
