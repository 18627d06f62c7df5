package controllers

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/aidep/internal/domain/commands"
	"github.com/rios0rios0/aidep/internal/domain/entities"
)

// CheckController handles the "check" subcommand (project scan mode).
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [path]",
		Short: "Scan a project for AI framework conflicts",
		Long: `Scan a project for known AI framework dependency conflicts.

Finds the dependency manifest (requirements.txt or pyproject.toml),
extracts the AI framework dependencies, and evaluates them against the
curated conflict database. Exits non-zero when conflicts are found.`,
	}
}

// Execute runs the project scan.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) {
	settings := resolveSettings(cmd)

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	report, err := it.command.Execute(settings, commands.CheckOptions{Path: path})
	if err != nil {
		logger.Errorf("Check failed: %v", err)
		return
	}

	if settings.OutputFormat == entities.OutputJSON {
		renderJSON(report)
	} else {
		renderCheckText(report)
	}

	// Exit-code policy lives here, not in the engine.
	if len(report.Conflicts) > 0 {
		os.Exit(1)
	}
}

// renderCheckText prints the human-readable scan result.
func renderCheckText(report *commands.CheckReport) {
	fmt.Printf("Scanned: %s\n", report.ManifestPath)

	if len(report.Dependencies) == 0 {
		fmt.Println("\nNo AI framework dependencies detected.")
		fmt.Println("This tool focuses on: LangChain, LlamaIndex, OpenAI, CrewAI, etc.")
		return
	}

	fmt.Printf("\nFound %d AI framework dependencies:\n\n", len(report.Dependencies))
	renderDependencyTable(report.Dependencies)

	if len(report.Conflicts) == 0 {
		fmt.Println("\nNo known conflicts detected.")
		fmt.Println("Note: this checks against known issues only; always test in a clean environment.")
		return
	}

	fmt.Printf("\nFound %d potential conflict(s):\n", len(report.Conflicts))
	renderConflicts(report.Conflicts)

	fmt.Println("\nNext steps:")
	fmt.Println("  1. Review the conflicts above")
	fmt.Println("  2. Choose a fix strategy (pinned versions or upgrade all)")
	fmt.Println("  3. Update your requirements file and re-run 'aidep check'")
}
