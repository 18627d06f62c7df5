package scanner

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/aidep/internal/domain/repositories"
)

// manifestCandidates are checked in order; the first hit wins.
var manifestCandidates = []string{
	"requirements.txt",
	"requirements-dev.txt",
	filepath.Join("requirements", "base.txt"),
	"pyproject.toml",
}

// aiFrameworks are the package-name substrings the checker cares about.
var aiFrameworks = []string{
	"langchain",
	"llama-index",
	"openai",
	"anthropic",
	"crewai",
	"autogen",
	"langflow",
	"transformers",
	"torch",
	"tensorflow",
	"pydantic",
	"sqlalchemy",
	"numpy",
}

// requirementLine matches "package" optionally followed by a specifier
// ("==1.0.0", ">=1.0,<2.0", "~=1.4"). Extras, editable installs, and URL
// requirements deliberately do not match and are skipped.
var requirementLine = regexp.MustCompile(`^([a-zA-Z0-9\-_.]+)\s*([><=~!]+.*)?$`)

// FileScannerRepository implements repositories.ScannerRepository over the
// local filesystem.
type FileScannerRepository struct{}

// NewFileScannerRepository creates a new filesystem scanner.
func NewFileScannerRepository() *FileScannerRepository {
	return &FileScannerRepository{}
}

var _ repositories.ScannerRepository = (*FileScannerRepository)(nil)

// FindManifest returns the first supported manifest file under dir.
func (s *FileScannerRepository) FindManifest(dir string) (string, error) {
	for _, candidate := range manifestCandidates {
		p := filepath.Join(dir, candidate)
		if _, statErr := os.Stat(p); statErr == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf(
		"no requirements file found in %s (expected requirements.txt or pyproject.toml)",
		dir,
	)
}

// ParseFile reads one manifest file into a dependency mapping. The format
// is chosen by the file name; everything that is not a plain requirement
// entry is skipped.
func (s *FileScannerRepository) ParseFile(path string) (map[string]string, error) {
	if strings.HasSuffix(path, ".toml") {
		return s.parsePyproject(path)
	}
	return s.parseRequirements(path)
}

// parseRequirements parses the requirements.txt line grammar.
func (s *FileScannerRepository) parseRequirements(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer file.Close()

	deps := make(map[string]string)

	sc := bufio.NewScanner(file)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Editable installs and VCS URLs carry no comparable version.
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "git+") {
			continue
		}

		if name, spec, ok := parseRequirementLine(line); ok {
			deps[strings.ToLower(name)] = spec
		}
	}
	if scanErr := sc.Err(); scanErr != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, scanErr)
	}

	return deps, nil
}

// parseRequirementLine splits one requirement into name and raw specifier,
// dropping inline comments first.
func parseRequirementLine(line string) (string, string, bool) {
	line, _, _ = strings.Cut(line, "#")
	line = strings.TrimSpace(line)

	m := requirementLine.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// pyproject mirrors the dependency locations aidep understands:
// PEP 621 (project.dependencies), Poetry, and PDM.
type pyproject struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
		PDM struct {
			Dependencies []string `toml:"dependencies"`
		} `toml:"pdm"`
	} `toml:"tool"`
}

// parsePyproject reads pyproject.toml. A file that fails to decode yields
// an empty mapping, not an error; the scan should degrade, not abort.
func (s *FileScannerRepository) parsePyproject(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var doc pyproject
	if unmarshalErr := toml.Unmarshal(data, &doc); unmarshalErr != nil {
		logger.Warnf("Failed to parse %q: %v (skipping)", path, unmarshalErr)
		return map[string]string{}, nil
	}

	deps := make(map[string]string)

	for _, entry := range append(doc.Project.Dependencies, doc.Tool.PDM.Dependencies...) {
		if name, spec, ok := parseRequirementLine(entry); ok {
			deps[strings.ToLower(name)] = spec
		}
	}

	for name, value := range doc.Tool.Poetry.Dependencies {
		if strings.EqualFold(name, "python") {
			continue
		}
		switch v := value.(type) {
		case string:
			deps[strings.ToLower(name)] = v
		case map[string]any:
			if spec, ok := v["version"].(string); ok {
				deps[strings.ToLower(name)] = spec
			}
		}
	}

	return deps, nil
}

// FilterFrameworks keeps only the entries whose name contains a known
// AI-framework substring.
func (s *FileScannerRepository) FilterFrameworks(deps map[string]string) map[string]string {
	filtered := make(map[string]string)
	for name, spec := range deps {
		for _, framework := range aiFrameworks {
			if strings.Contains(strings.ToLower(name), framework) {
				filtered[name] = spec
				break
			}
		}
	}
	return filtered
}
