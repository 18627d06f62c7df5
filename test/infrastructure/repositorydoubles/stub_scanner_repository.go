//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	"github.com/rios0rios0/aidep/internal/domain/repositories"
)

// SpyScannerRepository implements repositories.ScannerRepository as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyScannerRepository struct {
	// --- FindManifest ---
	ManifestPath    string
	FindManifestErr error
	SearchedDirs    []string

	// --- ParseFile ---
	Dependencies map[string]string
	ParseFileErr error
	ParsedFiles  []string

	// --- FilterFrameworks ---
	Frameworks []string
}

var _ repositories.ScannerRepository = (*SpyScannerRepository)(nil)

func (s *SpyScannerRepository) FindManifest(dir string) (string, error) {
	s.SearchedDirs = append(s.SearchedDirs, dir)
	if s.FindManifestErr != nil {
		return "", s.FindManifestErr
	}
	return s.ManifestPath, nil
}

func (s *SpyScannerRepository) ParseFile(path string) (map[string]string, error) {
	s.ParsedFiles = append(s.ParsedFiles, path)
	if s.ParseFileErr != nil {
		return nil, s.ParseFileErr
	}
	return s.Dependencies, nil
}

// FilterFrameworks keeps dependencies whose names contain a configured
// framework substring, mirroring the real repository's behavior. With no
// Frameworks configured, everything passes through.
func (s *SpyScannerRepository) FilterFrameworks(deps map[string]string) map[string]string {
	if len(s.Frameworks) == 0 {
		return deps
	}
	filtered := make(map[string]string)
	for name, spec := range deps {
		for _, framework := range s.Frameworks {
			if strings.Contains(strings.ToLower(name), framework) {
				filtered[name] = spec
				break
			}
		}
	}
	return filtered
}
