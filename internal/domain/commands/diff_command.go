package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
	"github.com/rios0rios0/gitinsight/internal/parser"
)

// Diff is the interface for the diff command.
type Diff interface {
	Execute(ctx context.Context, opts DiffOptions) (entities.DiffReport, error)
}

// DiffOptions holds runtime options for the diff command.
type DiffOptions struct {
	RepoDir  string
	Staged   bool
	Revision string
	Paths    []string
}

// DiffCommand parses a unified diff into hunks and per-file line counts.
type DiffCommand struct {
	gitRepository repositories.GitRepository
}

// NewDiffCommand creates a new DiffCommand.
func NewDiffCommand(gitRepository repositories.GitRepository) *DiffCommand {
	return &DiffCommand{gitRepository: gitRepository}
}

// Execute runs git diff and parses the result.
func (it *DiffCommand) Execute(ctx context.Context, opts DiffOptions) (entities.DiffReport, error) {
	raw, err := it.gitRepository.Diff(ctx, opts.RepoDir, repositories.DiffQuery{
		Staged:   opts.Staged,
		Revision: opts.Revision,
		Paths:    opts.Paths,
	})
	if err != nil {
		return entities.DiffReport{}, fmt.Errorf("failed to read the diff: %w", err)
	}

	report := entities.DiffReport{DiffResult: parser.ParseDiff(raw)}

	files, err := parser.ParseFileDiffs(raw)
	if err != nil {
		logger.Warnf("Could not split the diff per file: %v", err)
		return report, nil
	}
	report.Files = files

	return report, nil
}
