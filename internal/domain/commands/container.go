package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewCheckCommand); err != nil {
		return err
	}
	if err := container.Provide(NewValidateCommand); err != nil {
		return err
	}
	if err := container.Provide(NewSuggestCommand); err != nil {
		return err
	}
	if err := container.Provide(NewListCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *CheckCommand) Check {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ValidateCommand) Validate {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SuggestCommand) Suggest {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ListCommand) List {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
