package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
	"github.com/rios0rios0/gitinsight/internal/parser"
)

// History is the interface for the log command.
type History interface {
	Execute(ctx context.Context, opts HistoryOptions) (entities.History, error)
}

// HistoryOptions holds runtime options for reading the commit history.
type HistoryOptions struct {
	RepoDir  string
	Revision string
	MaxCount int
	Since    time.Time
	Numstat  bool
}

// HistoryCommand reads the commit log and summarizes it.
type HistoryCommand struct {
	gitRepository repositories.GitRepository
}

// NewHistoryCommand creates a new HistoryCommand.
func NewHistoryCommand(gitRepository repositories.GitRepository) *HistoryCommand {
	return &HistoryCommand{gitRepository: gitRepository}
}

// Execute runs git log and parses the result.
func (it *HistoryCommand) Execute(ctx context.Context, opts HistoryOptions) (entities.History, error) {
	raw, err := it.gitRepository.Log(ctx, opts.RepoDir, repositories.LogQuery{
		Revision: opts.Revision,
		MaxCount: opts.MaxCount,
		Since:    opts.Since,
		Numstat:  opts.Numstat,
	})
	if err != nil {
		return entities.History{}, fmt.Errorf("failed to read the commit log: %w", err)
	}

	commits := parser.ParseLog(raw)
	logger.Debugf("Parsed %d commits from %s", len(commits), opts.RepoDir)

	return entities.History{
		Commits: commits,
		Summary: parser.SummarizeLog(commits),
	}, nil
}
