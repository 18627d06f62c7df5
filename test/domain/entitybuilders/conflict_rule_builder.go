//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/aidep/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ConflictRuleBuilder helps create test conflict rules with a fluent interface.
type ConflictRuleBuilder struct {
	*testkit.BaseBuilder
	id              string
	packages        []string
	description     string
	severity        entities.Severity
	workingVersions map[string]string
	alternative     map[string]string
	fix             string
	tip             string
}

// NewConflictRuleBuilder creates a new conflict rule builder with sensible defaults.
func NewConflictRuleBuilder() *ConflictRuleBuilder {
	return &ConflictRuleBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "test-rule",
		packages:    []string{"langchain", "openai"},
		description: "Test conflict between langchain and openai",
		severity:    entities.SeverityMedium,
		workingVersions: map[string]string{
			"langchain": ">=0.1.0",
			"openai":    ">=1.0.0",
		},
		fix: "pip install 'langchain>=0.1.0' 'openai>=1.0.0'",
	}
}

// WithID sets the rule identifier.
func (b *ConflictRuleBuilder) WithID(id string) *ConflictRuleBuilder {
	b.id = id
	return b
}

// WithPackages sets the involved packages.
func (b *ConflictRuleBuilder) WithPackages(packages ...string) *ConflictRuleBuilder {
	b.packages = packages
	return b
}

// WithDescription sets the description.
func (b *ConflictRuleBuilder) WithDescription(description string) *ConflictRuleBuilder {
	b.description = description
	return b
}

// WithSeverity sets the severity.
func (b *ConflictRuleBuilder) WithSeverity(severity entities.Severity) *ConflictRuleBuilder {
	b.severity = severity
	return b
}

// WithWorkingVersions sets the working version set.
func (b *ConflictRuleBuilder) WithWorkingVersions(versions map[string]string) *ConflictRuleBuilder {
	b.workingVersions = versions
	return b
}

// WithAlternative sets the alternative version set.
func (b *ConflictRuleBuilder) WithAlternative(versions map[string]string) *ConflictRuleBuilder {
	b.alternative = versions
	return b
}

// WithFix sets the fix instructions.
func (b *ConflictRuleBuilder) WithFix(fix string) *ConflictRuleBuilder {
	b.fix = fix
	return b
}

// WithTip sets the optional tip.
func (b *ConflictRuleBuilder) WithTip(tip string) *ConflictRuleBuilder {
	b.tip = tip
	return b
}

// Build creates the rule (satisfies testkit.Builder interface).
func (b *ConflictRuleBuilder) Build() interface{} {
	return b.BuildConflictRule()
}

// BuildConflictRule creates the rule with a concrete return type.
func (b *ConflictRuleBuilder) BuildConflictRule() entities.ConflictRule {
	return entities.ConflictRule{
		ID:              b.id,
		Packages:        b.packages,
		Description:     b.description,
		Severity:        b.severity,
		WorkingVersions: b.workingVersions,
		Alternative:     b.alternative,
		Fix:             b.fix,
		Tip:             b.tip,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ConflictRuleBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "test-rule"
	b.packages = []string{"langchain", "openai"}
	b.description = "Test conflict between langchain and openai"
	b.severity = entities.SeverityMedium
	b.workingVersions = map[string]string{
		"langchain": ">=0.1.0",
		"openai":    ">=1.0.0",
	}
	b.alternative = nil
	b.fix = "pip install 'langchain>=0.1.0' 'openai>=1.0.0'"
	b.tip = ""
	return b
}

// Clone creates a deep copy of the ConflictRuleBuilder.
func (b *ConflictRuleBuilder) Clone() testkit.Builder {
	clone := &ConflictRuleBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		packages:    append([]string(nil), b.packages...),
		description: b.description,
		severity:    b.severity,
		fix:         b.fix,
		tip:         b.tip,
	}
	if b.workingVersions != nil {
		clone.workingVersions = make(map[string]string, len(b.workingVersions))
		for k, v := range b.workingVersions {
			clone.workingVersions[k] = v
		}
	}
	if b.alternative != nil {
		clone.alternative = make(map[string]string, len(b.alternative))
		for k, v := range b.alternative {
			clone.alternative[k] = v
		}
	}
	return clone
}
