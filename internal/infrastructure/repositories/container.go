package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/aidep/internal/domain/repositories"
	"github.com/rios0rios0/aidep/internal/infrastructure/repositories/rules"
	"github.com/rios0rios0/aidep/internal/infrastructure/repositories/scanner"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(scanner.NewFileScannerRepository); err != nil {
		return err
	}
	if err := container.Provide(rules.NewStaticRuleRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *scanner.FileScannerRepository) domainRepos.ScannerRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *rules.StaticRuleRepository) domainRepos.RuleRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
