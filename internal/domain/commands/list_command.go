package commands

import (
	"github.com/rios0rios0/aidep/internal/domain/entities"
	"github.com/rios0rios0/aidep/internal/domain/repositories"
)

// List is the interface for the list command (rule database listing).
type List interface {
	Execute(settings *entities.Settings) (*ListReport, error)
}

// ListReport is the rule database as shown to the user.
type ListReport struct {
	Total int                     `json:"total"`
	Rules []entities.ConflictRule `json:"rules"`
}

// ListCommand exposes the effective rule database.
type ListCommand struct {
	rules repositories.RuleRepository
}

// NewListCommand creates a new ListCommand with the given repository.
func NewListCommand(rules repositories.RuleRepository) *ListCommand {
	return &ListCommand{rules: rules}
}

// Execute returns every rule the current settings keep enabled.
func (it *ListCommand) Execute(settings *entities.Settings) (*ListReport, error) {
	rules := it.rules.Rules(settings)
	return &ListReport{
		Total: len(rules),
		Rules: rules,
	}, nil
}
