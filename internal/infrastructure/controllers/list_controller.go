package controllers

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/aidep/internal/domain/commands"
	"github.com/rios0rios0/aidep/internal/domain/entities"
)

// ListController handles the "list" subcommand (rule database listing).
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List all known conflict rules",
		Long: `List every conflict rule the tool currently checks, including
custom rules from your config and minus any ignored ones.`,
	}
}

// Execute prints the effective rule database.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) {
	settings := resolveSettings(cmd)

	report, err := it.command.Execute(settings)
	if err != nil {
		logger.Errorf("List failed: %v", err)
		return
	}

	if settings.OutputFormat == entities.OutputJSON {
		renderJSON(report)
		return
	}

	fmt.Printf("Known conflict rules (%d):\n", report.Total)
	for _, rule := range report.Rules {
		fmt.Printf("\n  %s [%s]\n", rule.ID, strings.ToUpper(string(rule.Severity)))
		fmt.Printf("    Packages: %s\n", strings.Join(rule.Packages, ", "))
		fmt.Printf("    %s\n", rule.Description)
	}
}
