package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/aidep/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewValidateController); err != nil {
		return err
	}
	if err := container.Provide(NewSuggestController); err != nil {
		return err
	}
	if err := container.Provide(NewListController); err != nil {
		return err
	}

	// Aggregate every controller for the root command wiring
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a single slice, in the
// order they appear in the CLI help.
func NewControllers(
	check *CheckController,
	validate *ValidateController,
	suggest *SuggestController,
	list *ListController,
) *[]entities.Controller {
	return &[]entities.Controller{
		check,
		validate,
		suggest,
		list,
	}
}
