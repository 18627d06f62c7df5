package commands

import (
	"fmt"

	"github.com/rios0rios0/aidep/internal/domain/entities"
	"github.com/rios0rios0/aidep/internal/domain/repositories"
)

// Validate is the interface for the validate command (single-file mode).
type Validate interface {
	Execute(settings *entities.Settings, opts ValidateOptions) (*CheckReport, error)
}

// ValidateOptions holds runtime options for a validate run.
type ValidateOptions struct {
	File string // Manifest file to validate
}

// ValidateCommand evaluates one specific manifest file instead of
// auto-detecting it from a project directory.
type ValidateCommand struct {
	scanner repositories.ScannerRepository
	rules   repositories.RuleRepository
}

// NewValidateCommand creates a new ValidateCommand with the given repositories.
func NewValidateCommand(
	scanner repositories.ScannerRepository,
	rules repositories.RuleRepository,
) *ValidateCommand {
	return &ValidateCommand{
		scanner: scanner,
		rules:   rules,
	}
}

// Execute parses opts.File and evaluates the conflict rules against it.
func (it *ValidateCommand) Execute(
	settings *entities.Settings,
	opts ValidateOptions,
) (*CheckReport, error) {
	deps, err := it.scanner.ParseFile(opts.File)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", opts.File, err)
	}

	aiDeps := it.scanner.FilterFrameworks(deps)

	report := &CheckReport{
		ManifestPath: opts.File,
		Dependencies: aiDeps,
		Conflicts:    []entities.EvaluatedConflict{},
	}
	if len(aiDeps) == 0 {
		return report, nil
	}

	report.Conflicts = entities.Evaluate(aiDeps, it.rules.Rules(settings))
	return report, nil
}
