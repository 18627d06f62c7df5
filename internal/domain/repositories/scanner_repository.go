package repositories

// ScannerRepository abstracts reading Python dependency manifests from a
// project directory into a flat package -> raw specifier mapping. Package
// names are canonicalized to lower-case; specifiers are kept exactly as
// declared (possibly empty, meaning unconstrained).
type ScannerRepository interface {
	// FindManifest returns the path of the first supported manifest file
	// found under dir (requirements.txt variants, then pyproject.toml).
	FindManifest(dir string) (string, error)

	// ParseFile reads a single manifest file. The format is chosen by the
	// file name. Unparsable entries are skipped, never fatal.
	ParseFile(path string) (map[string]string, error)

	// FilterFrameworks keeps only the AI-framework entries of deps.
	FilterFrameworks(deps map[string]string) map[string]string
}
