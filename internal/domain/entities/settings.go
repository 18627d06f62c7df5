package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the presentation layer.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Settings is the user-facing configuration for aidep. Every field is
// optional; a missing config file yields DefaultSettings.
type Settings struct {
	// StrictMode reserves space for warning on all potential conflicts,
	// not just the curated ones.
	StrictMode bool `yaml:"strict_mode"`

	// IgnoreConflicts lists rule IDs that should never be reported.
	IgnoreConflicts []string `yaml:"ignore_conflicts"`

	// CustomRules is a path to a YAML file with user-defined conflict rules
	// appended after the built-in database.
	CustomRules string `yaml:"custom_rules"`

	// OutputFormat is "text" or "json".
	OutputFormat string `yaml:"output_format"`
}

// DefaultSettings returns the configuration used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{OutputFormat: OutputText}
}

// NewSettings reads and parses a configuration file.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".aidep.yaml",
		".aidep.yml",
		"aidep.yaml",
		"aidep.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// IsConflictIgnored reports whether the given rule ID is in the ignore list.
func (s *Settings) IsConflictIgnored(id string) bool {
	for _, ignored := range s.IgnoreConflicts {
		if ignored == id {
			return true
		}
	}
	return false
}

// validate checks the configuration values that have a closed domain.
func (s *Settings) validate() error {
	if s.OutputFormat != OutputText && s.OutputFormat != OutputJSON {
		return fmt.Errorf("output_format must be %q or %q, got %q",
			OutputText, OutputJSON, s.OutputFormat)
	}
	return nil
}
