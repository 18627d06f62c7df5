package controllers

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/aidep/internal/domain/commands"
	"github.com/rios0rios0/aidep/internal/domain/entities"
)

// ValidateController handles the "validate" subcommand (single-file mode).
type ValidateController struct {
	command commands.Validate
}

// NewValidateController creates a new ValidateController.
func NewValidateController(command commands.Validate) *ValidateController {
	return &ValidateController{command: command}
}

// GetBind returns the Cobra command metadata for the validate controller.
func (it *ValidateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "validate <file>",
		Short: "Validate one requirements file for conflicts",
		Long: `Validate a specific requirements.txt or pyproject.toml file
against the known conflict database. Exits non-zero when conflicts
are found.`,
	}
}

// Execute runs the single-file validation.
func (it *ValidateController) Execute(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		logger.Error("Missing file argument. Usage: aidep validate <file>")
		return
	}

	settings := resolveSettings(cmd)

	report, err := it.command.Execute(settings, commands.ValidateOptions{File: args[0]})
	if err != nil {
		logger.Errorf("Validation failed: %v", err)
		return
	}

	if settings.OutputFormat == entities.OutputJSON {
		renderJSON(report)
	} else {
		renderValidateText(report)
	}

	if len(report.Conflicts) > 0 {
		os.Exit(1)
	}
}

// renderValidateText prints the human-readable validation result.
func renderValidateText(report *commands.CheckReport) {
	fmt.Printf("Validating: %s\n", report.ManifestPath)

	if len(report.Dependencies) == 0 {
		fmt.Println("\nNo AI framework dependencies to validate.")
		return
	}

	fmt.Printf("\nFound %d AI framework dependencies.\n", len(report.Dependencies))

	if len(report.Conflicts) == 0 {
		fmt.Println("\nValidation passed: no known conflicts detected.")
		return
	}

	fmt.Printf("\nValidation failed: %d potential conflict(s).\n", len(report.Conflicts))
	for _, conflict := range report.Conflicts {
		fmt.Printf("  - [%s] %s\n", conflict.Severity, conflict.Description)
	}
}
