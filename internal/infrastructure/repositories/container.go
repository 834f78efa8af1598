package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
	"github.com/rios0rios0/gitinsight/internal/infrastructure/repositories/gitcli"
	"github.com/rios0rios0/gitinsight/internal/infrastructure/repositories/worktree"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(gitcli.NewGitCLIRepository); err != nil {
		return err
	}
	if err := container.Provide(worktree.NewFileRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *gitcli.GitCLIRepository) repositories.GitRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *worktree.FileRepository) repositories.FileRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
