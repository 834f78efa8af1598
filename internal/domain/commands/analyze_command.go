package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitinsight/internal/analyzer"
	"github.com/rios0rios0/gitinsight/internal/domain/entities"
	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
	"github.com/rios0rios0/gitinsight/internal/parser"
)

// Analyze is the interface for the analyze command.
type Analyze interface {
	Execute(ctx context.Context, opts AnalyzeOptions) (entities.ImpactReport, error)
}

// AnalyzeOptions holds runtime options for the analyze command.
type AnalyzeOptions struct {
	RepoDir  string
	Staged   bool
	Revision string
}

// AnalyzeCommand scores the files touched by a change set.
type AnalyzeCommand struct {
	settings       *entities.Settings
	gitRepository  repositories.GitRepository
	fileRepository repositories.FileRepository
}

// NewAnalyzeCommand creates a new AnalyzeCommand.
func NewAnalyzeCommand(
	settings *entities.Settings,
	gitRepository repositories.GitRepository,
	fileRepository repositories.FileRepository,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		settings:       settings,
		gitRepository:  gitRepository,
		fileRepository: fileRepository,
	}
}

// Execute lists the changed files, reads the ones that still exist and
// analyzes their contents.
func (it *AnalyzeCommand) Execute(ctx context.Context, opts AnalyzeOptions) (entities.ImpactReport, error) {
	root, err := it.fileRepository.Root(opts.RepoDir)
	if err != nil {
		return entities.ImpactReport{}, fmt.Errorf("failed to resolve the repository root: %w", err)
	}

	raw, err := it.gitRepository.NameStatus(ctx, root, repositories.DiffQuery{
		Staged:   opts.Staged,
		Revision: opts.Revision,
	})
	if err != nil {
		return entities.ImpactReport{}, fmt.Errorf("failed to list the changed files: %w", err)
	}

	changes := parser.ParseStatus(raw)
	files, err := it.readSources(ctx, root, changes)
	if err != nil {
		return entities.ImpactReport{}, err
	}
	logger.Debugf("Analyzing %d of %d changed files", len(files), len(changes))

	return entities.ImpactReport{
		Changes:  changes,
		Analysis: analyzer.New(analyzer.ConfigFromSettings(it.settings.Analysis)).Analyze(files),
	}, nil
}

// readSources reads every change that was not deleted. A file that cannot be
// read is still handed to the analyzer, carrying its error.
func (it *AnalyzeCommand) readSources(
	ctx context.Context,
	root string,
	changes []entities.FileChange,
) ([]entities.SourceFile, error) {
	files := make([]entities.SourceFile, 0, len(changes))
	for _, change := range changes {
		if change.Status == entities.StatusDeleted {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := it.fileRepository.ReadFile(ctx, root, change.Path)
		files = append(files, entities.SourceFile{
			Path:    change.Path,
			Content: content,
			Err:     err,
		})
	}
	return files, nil
}
