package entities

// PackageRename records a package that was split or renamed upstream, with
// pointers the suggest output can surface next to version advice.
type PackageRename struct {
	BreakingVersion string   `json:"breaking_version,omitempty"`
	SplitPackages   []string `json:"split_packages,omitempty"`
	MigrationGuide  string   `json:"migration_guide"`
}
