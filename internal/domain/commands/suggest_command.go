package commands

import (
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/aidep/internal/domain/entities"
	"github.com/rios0rios0/aidep/internal/domain/repositories"
)

// Suggest is the interface for the suggest command (compatibility advice).
type Suggest interface {
	Execute(settings *entities.Settings, opts SuggestOptions) (*SuggestReport, error)
}

// SuggestOptions holds runtime options for a suggest run.
type SuggestOptions struct {
	Package string // Package to look up
	Path    string // Project directory, for matching the declared version
}

// SuggestReport carries the compatibility data for one package. When the
// current project declares the package with a concrete version, Matched
// holds the bucket that version falls into.
type SuggestReport struct {
	Package   string                        `json:"package"`
	Known     bool                          `json:"known"`
	Buckets   []entities.CompatibilityEntry `json:"buckets,omitempty"`
	Supported []string                      `json:"supported,omitempty"`
	Declared  string                        `json:"declared,omitempty"`
	Matched   map[string][]string           `json:"matched,omitempty"`
	Rename    *entities.PackageRename       `json:"rename,omitempty"`
}

// SuggestCommand answers "which versions of X go with what" from the
// compatibility table.
type SuggestCommand struct {
	scanner repositories.ScannerRepository
	rules   repositories.RuleRepository
}

// NewSuggestCommand creates a new SuggestCommand with the given repositories.
func NewSuggestCommand(
	scanner repositories.ScannerRepository,
	rules repositories.RuleRepository,
) *SuggestCommand {
	return &SuggestCommand{
		scanner: scanner,
		rules:   rules,
	}
}

// Execute looks up the compatibility buckets for opts.Package. The project
// scan is best-effort: when no manifest exists or the package is not
// declared, the report simply has no Matched bucket.
func (it *SuggestCommand) Execute(
	_ *entities.Settings,
	opts SuggestOptions,
) (*SuggestReport, error) {
	pkg := strings.ToLower(opts.Package)
	table := it.rules.Compatibility()

	report := &SuggestReport{Package: pkg}

	entries, known := table[pkg]
	if !known {
		report.Supported = supportedPackages(table)
		return report, nil
	}

	report.Known = true
	report.Buckets = entries

	if rename, ok := it.rules.Renames()[pkg]; ok {
		report.Rename = &rename
	}

	deps := it.scanProject(opts.Path)
	if spec, declared := deps[pkg]; declared {
		report.Declared = spec
		report.Matched = entities.LookupCompatibility(pkg, deps, table)
	}

	return report, nil
}

// scanProject reads the project's dependencies, tolerating every failure:
// suggest works standalone, outside any project.
func (it *SuggestCommand) scanProject(path string) map[string]string {
	if path == "" {
		path = "."
	}

	manifest, err := it.scanner.FindManifest(path)
	if err != nil {
		logger.Debugf("No manifest for suggest: %v", err)
		return map[string]string{}
	}

	deps, parseErr := it.scanner.ParseFile(manifest)
	if parseErr != nil {
		logger.Debugf("Failed to parse %q for suggest: %v", manifest, parseErr)
		return map[string]string{}
	}

	return deps
}

// supportedPackages lists the packages the table knows about, sorted for
// stable output.
func supportedPackages(table entities.CompatibilityTable) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
