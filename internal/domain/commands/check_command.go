package commands

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/aidep/internal/domain/entities"
	"github.com/rios0rios0/aidep/internal/domain/repositories"
)

// Check is the interface for the check command (project scan mode).
type Check interface {
	Execute(settings *entities.Settings, opts CheckOptions) (*CheckReport, error)
}

// CheckOptions holds runtime options for a single check run.
type CheckOptions struct {
	Path string // Project directory to scan
}

// CheckReport is the evaluation result handed to the presentation layer.
// The engine sets no exit code; whether a non-empty conflict list fails the
// process is the caller's policy.
type CheckReport struct {
	ManifestPath string                       `json:"manifest"`
	Dependencies map[string]string            `json:"dependencies"`
	Conflicts    []entities.EvaluatedConflict `json:"conflicts"`
}

// CheckCommand orchestrates the scan flow: find the manifest, parse it,
// filter to AI frameworks, and evaluate the rule database.
type CheckCommand struct {
	scanner repositories.ScannerRepository
	rules   repositories.RuleRepository
}

// NewCheckCommand creates a new CheckCommand with the given repositories.
func NewCheckCommand(
	scanner repositories.ScannerRepository,
	rules repositories.RuleRepository,
) *CheckCommand {
	return &CheckCommand{
		scanner: scanner,
		rules:   rules,
	}
}

// Execute scans the project at opts.Path and evaluates the conflict rules.
func (it *CheckCommand) Execute(
	settings *entities.Settings,
	opts CheckOptions,
) (*CheckReport, error) {
	manifest, err := it.scanner.FindManifest(opts.Path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Found manifest: %s", manifest)

	deps, parseErr := it.scanner.ParseFile(manifest)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", manifest, parseErr)
	}

	aiDeps := it.scanner.FilterFrameworks(deps)
	logger.Debugf("Found %d AI framework dependencies (of %d total)", len(aiDeps), len(deps))

	report := &CheckReport{
		ManifestPath: manifest,
		Dependencies: aiDeps,
		Conflicts:    []entities.EvaluatedConflict{},
	}
	if len(aiDeps) == 0 {
		return report, nil
	}

	report.Conflicts = entities.Evaluate(aiDeps, it.rules.Rules(settings))
	return report, nil
}
