package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []interface{}{
		NewHistoryCommand,
		NewDiffCommand,
		NewBlameCommand,
		NewAnalyzeCommand,
		NewCommitMessageCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *HistoryCommand) History {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *DiffCommand) Diff {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BlameCommand) Blame {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *AnalyzeCommand) Analyze {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *CommitMessageCommand) CommitMessage {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
