package controllers

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/aidep/internal/domain/commands"
	"github.com/rios0rios0/aidep/internal/domain/entities"
)

// SuggestController handles the "suggest" subcommand (compatibility advice).
type SuggestController struct {
	command commands.Suggest
}

// NewSuggestController creates a new SuggestController.
func NewSuggestController(command commands.Suggest) *SuggestController {
	return &SuggestController{command: command}
}

// GetBind returns the Cobra command metadata for the suggest controller.
func (it *SuggestController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "suggest <package> [path]",
		Short: "Show compatible version combinations for a package",
		Long: `Show which versions of a package are known to work together with
its common companions, based on the curated compatibility table. When run
inside a project that declares the package, also shows the bucket your
declared version falls into.`,
	}
}

// Execute runs the compatibility lookup.
func (it *SuggestController) Execute(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		logger.Error("Missing package argument. Usage: aidep suggest <package> [path]")
		return
	}

	settings := resolveSettings(cmd)

	opts := commands.SuggestOptions{Package: args[0]}
	if len(args) > 1 {
		opts.Path = args[1]
	}

	report, err := it.command.Execute(settings, opts)
	if err != nil {
		logger.Errorf("Suggest failed: %v", err)
		return
	}

	if settings.OutputFormat == entities.OutputJSON {
		renderJSON(report)
	} else {
		renderSuggestText(report)
	}
}

// renderSuggestText prints the human-readable compatibility advice.
func renderSuggestText(report *commands.SuggestReport) {
	if !report.Known {
		fmt.Printf("No compatibility data for %q.\n", report.Package)
		if len(report.Supported) > 0 {
			fmt.Printf("Supported packages: %s\n", strings.Join(report.Supported, ", "))
		}
		return
	}

	fmt.Printf("Known compatible combinations for %s:\n", report.Package)
	for _, bucket := range report.Buckets {
		fmt.Printf("\n  %s %s works with:\n", report.Package, bucket.Range)
		for companion, versions := range bucket.Compatible {
			fmt.Printf("    %s: %s\n", companion, strings.Join(versions, ", "))
		}
	}

	if report.Declared != "" {
		fmt.Printf("\nYour project declares %s %s.\n", report.Package, report.Declared)
		if len(report.Matched) > 0 {
			fmt.Println("Matching combination:")
			for companion, versions := range report.Matched {
				fmt.Printf("  %s: %s\n", companion, strings.Join(versions, ", "))
			}
		} else {
			fmt.Println("No compatibility bucket covers that version.")
		}
	}

	if report.Rename != nil {
		fmt.Printf("\nHeads up: %s had breaking changes at %s.\n",
			report.Package, report.Rename.BreakingVersion)
		if report.Rename.MigrationGuide != "" {
			fmt.Printf("Migration guide: %s\n", report.Rename.MigrationGuide)
		}
	}
}
