package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []interface{}{
		NewLogController,
		NewDiffController,
		NewBlameController,
		NewAnalyzeController,
		NewCommitMessageController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	logController *LogController,
	diffController *DiffController,
	blameController *BlameController,
	analyzeController *AnalyzeController,
	commitMessageController *CommitMessageController,
) *[]entities.Controller {
	return &[]entities.Controller{
		logController,
		diffController,
		blameController,
		analyzeController,
		commitMessageController,
	}
}
