// Package version canonicalizes the heterogeneous version strings found in
// Python dependency manifests and decides whether a version satisfies a
// declared specifier.
//
// Everything here is lenient on purpose: the conflict database is heuristic,
// so an unparsable version or specifier must never abort a scan. Matching
// fails open (see LenientMatch) and unrecognized strings pass through
// Normalize unchanged.
package version

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	// shortForm matches MAJOR.MINOR with an optional pre-release suffix
	// glued on (e.g. "1.5", "1.5a1").
	shortForm = regexp.MustCompile(`(?i)^(\d+\.\d+)((?:alpha|beta|rc|a|b|c)\d*)?$`)

	// fullForm matches MAJOR.MINOR.PATCH with an optional pre-release
	// suffix (e.g. "2.0.0", "2.0.0rc1").
	fullForm = regexp.MustCompile(`(?i)^(\d+\.\d+\.\d+)((?:alpha|beta|rc|a|b|c)\d*)?$`)

	// tagForm splits a pre-release suffix into its tag and numeric part.
	tagForm = regexp.MustCompile(`(?i)^(alpha|beta|rc|a|b|c)(\d*)$`)

	// versionNumber extracts the first concrete version number from a raw
	// specifier string, pre-release suffix included.
	versionNumber = regexp.MustCompile(`(?i)(\d+\.\d+\.\d+(?:(?:alpha|beta|rc|a|b|c)\d*)?|\d+\.\d+)`)

	// majorMinor extracts the first MAJOR.MINOR pair from a raw string.
	majorMinor = regexp.MustCompile(`(\d+\.\d+)`)

	// bound matches a single comparison-range clause like ">=1.21.0".
	bound = regexp.MustCompile(`^(>=|<=|>|<)\s*(.+)$`)

	// bare MAJOR.MINOR[.PATCH] prefix, used to recognize wildcard specs.
	wildcardSpec = regexp.MustCompile(`^\d+\.\d+`)

	// canonical pre-release tag names, aliases included.
	tagAliases = map[string]string{
		"a":     "alpha",
		"alpha": "alpha",
		"b":     "beta",
		"beta":  "beta",
		"c":     "rc",
		"rc":    "rc",
	}
)

// Normalize canonicalizes a version string into the comparable
// MAJOR.MINOR.PATCH[-tag[digits]] form:
//
//	"1.5"      -> "1.5.0"
//	"1.5a1"    -> "1.5.0-alpha1"
//	"2.0.0rc1" -> "2.0.0-rc1"
//
// Strings that match none of the recognized shapes are returned unchanged,
// which also makes Normalize idempotent.
func Normalize(raw string) string {
	v := strings.TrimSpace(raw)

	if m := shortForm.FindStringSubmatch(v); m != nil {
		if m[2] == "" {
			return m[1] + ".0"
		}
		return m[1] + ".0-" + canonicalTag(m[2])
	}

	if m := fullForm.FindStringSubmatch(v); m != nil {
		if m[2] == "" {
			return m[1]
		}
		return m[1] + "-" + canonicalTag(m[2])
	}

	return raw
}

// canonicalTag rewrites a pre-release suffix to its canonical lower-case
// tag name, keeping the trailing digits ("A1" -> "alpha1", "c2" -> "rc2").
func canonicalTag(suffix string) string {
	m := tagForm.FindStringSubmatch(suffix)
	if m == nil {
		return strings.ToLower(suffix)
	}
	return tagAliases[strings.ToLower(m[1])] + m[2]
}

// Compare orders two version strings using dotted-numeric ordering extended
// with pre-release ordering (alpha < beta < rc < release). The second return
// value is false when either side does not normalize into a comparable form;
// callers are expected to fail open in that case.
func Compare(a, b string) (int, bool) {
	va := "v" + Normalize(a)
	vb := "v" + Normalize(b)
	if !semver.IsValid(va) || !semver.IsValid(vb) {
		return 0, false
	}
	return semver.Compare(va, vb), true
}

// LenientMatch reports whether version satisfies spec. The version (and the
// right-hand side of "==" specs) is normalized before comparison.
//
// Supported spec shapes:
//   - exact:    "==1.0.0"
//   - range:    ">=1.21.0,<2.0.0" (clauses are ANDed)
//   - wildcard: "1.0" (leading-major containment, intentionally coarse)
//
// Anything else, and any clause that fails to parse, counts as satisfied.
// This is the LenientMatch policy: a missed conflict is preferable to a
// crashed scan or a false positive on input the database never anticipated.
func LenientMatch(version, spec string) bool {
	spec = strings.TrimSpace(spec)

	if strings.Contains(spec, "==") {
		want := strings.TrimSpace(strings.ReplaceAll(spec, "==", ""))
		return Normalize(version) == Normalize(want)
	}

	if strings.ContainsAny(spec, "<>") {
		return rangeMatch(version, spec)
	}

	if wildcardSpec.MatchString(spec) {
		major, _, _ := strings.Cut(spec, ".")
		return strings.HasPrefix(Normalize(version), major)
	}

	return true
}

// rangeMatch evaluates a comma-separated set of comparison clauses. Every
// clause must hold; an unparsable clause makes the whole spec count as
// satisfied.
func rangeMatch(version, spec string) bool {
	for _, clause := range strings.Split(spec, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}

		m := bound.FindStringSubmatch(clause)
		if m == nil {
			return true
		}

		cmp, ok := Compare(version, m[2])
		if !ok {
			return true
		}

		switch m[1] {
		case ">=":
			if cmp < 0 {
				return false
			}
		case "<=":
			if cmp > 0 {
				return false
			}
		case ">":
			if cmp <= 0 {
				return false
			}
		case "<":
			if cmp >= 0 {
				return false
			}
		}
	}
	return true
}

// Extract returns the first concrete version number found in a raw
// specifier ("langchain>=0.1.0" -> "0.1.0"), or "" when the specifier pins
// nothing concrete (empty, "*", a bare operator).
func Extract(spec string) string {
	return versionNumber.FindString(spec)
}

// ExtractMajorMinor returns the first MAJOR.MINOR pair found in a raw
// specifier, or "" when there is none.
func ExtractMajorMinor(spec string) string {
	return majorMinor.FindString(spec)
}
