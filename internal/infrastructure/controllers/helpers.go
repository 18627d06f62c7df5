package controllers

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/aidep/internal/domain/entities"
)

const tabPadding = 3

// resolveSettings loads the user configuration for one controller run,
// honoring --config, --json, and --verbose. Config problems degrade to the
// defaults; only the user explicitly pointing at a broken file is worth a
// warning, not an abort.
func resolveSettings(cmd *cobra.Command) *entities.Settings {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file: %v (using defaults)", err)
		}
		configPath = found
	}

	settings := entities.DefaultSettings()
	if configPath != "" {
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			logger.Warnf("Failed to load config %q: %v (using defaults)", configPath, err)
		} else {
			logger.Debugf("Using config file: %s", configPath)
			settings = loaded
		}
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		settings.OutputFormat = entities.OutputJSON
	}

	return settings
}

// renderJSON writes any report as indented JSON on stdout.
func renderJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Errorf("Failed to encode JSON output: %v", err)
		return
	}
	fmt.Println(string(data))
}

// renderDependencyTable prints a package/specifier table, sorted by name.
func renderDependencyTable(deps map[string]string) {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "PACKAGE\tVERSION SPEC\t")
	for _, name := range names {
		spec := deps[name]
		if spec == "" {
			spec = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t\n", name, spec)
	}
	w.Flush()
}

// renderConflicts prints each conflict with its remediation data.
func renderConflicts(conflicts []entities.EvaluatedConflict) {
	for i, conflict := range conflicts {
		fmt.Printf("\nConflict #%d: %s\n", i+1, conflict.RuleID)
		fmt.Printf("Severity: %s\n", strings.ToUpper(string(conflict.Severity)))
		fmt.Printf("\n%s\n", conflict.Description)

		fmt.Println("\nAffected packages in your project:")
		names := make([]string, 0, len(conflict.AffectedPackages))
		for name := range conflict.AffectedPackages {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			spec := conflict.AffectedPackages[name]
			if spec == "" {
				spec = "*"
			}
			fmt.Printf("  - %s: %s\n", name, spec)
		}

		fmt.Printf("\nSuggested fix:\n%s\n", conflict.Fix)
		if conflict.Tip != "" {
			fmt.Printf("\nTip: %s\n", conflict.Tip)
		}
	}
}
