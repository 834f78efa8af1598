package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitinsight/internal/composer"
	"github.com/rios0rios0/gitinsight/internal/domain/entities"
	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
	"github.com/rios0rios0/gitinsight/internal/parser"
)

// ErrNothingStaged is returned when the index holds no changes.
var ErrNothingStaged = errors.New("nothing staged for commit")

// CommitMessage is the interface for the commit-msg command.
type CommitMessage interface {
	Execute(ctx context.Context, opts CommitMessageOptions) (string, error)
}

// CommitMessageOptions holds runtime options for the commit-msg command.
type CommitMessageOptions struct {
	RepoDir string
	Style   entities.CommitStyle
}

// CommitMessageCommand proposes a commit message for the staged changes.
type CommitMessageCommand struct {
	gitRepository repositories.GitRepository
	composer      *composer.Composer
}

// NewCommitMessageCommand creates a new CommitMessageCommand.
func NewCommitMessageCommand(gitRepository repositories.GitRepository) *CommitMessageCommand {
	return &CommitMessageCommand{
		gitRepository: gitRepository,
		composer:      composer.New(composer.DefaultConfig()),
	}
}

// Execute reads the staged changes, enriches them with line counts and
// composes the message.
func (it *CommitMessageCommand) Execute(ctx context.Context, opts CommitMessageOptions) (string, error) {
	query := repositories.DiffQuery{Staged: true}

	raw, err := it.gitRepository.NameStatus(ctx, opts.RepoDir, query)
	if err != nil {
		return "", fmt.Errorf("failed to list the staged files: %w", err)
	}

	changes := parser.ParseStatus(raw)
	if len(changes) == 0 {
		return "", ErrNothingStaged
	}

	patch, err := it.gitRepository.Diff(ctx, opts.RepoDir, query)
	if err != nil {
		return "", fmt.Errorf("failed to read the staged diff: %w", err)
	}
	fileDiffs, err := parser.ParseFileDiffs(patch)
	if err != nil {
		logger.Warnf("Line counts unavailable, composing from file names only: %v", err)
	}
	changes = withLineCounts(changes, fileDiffs)

	message, err := it.composer.Compose(changes, opts.Style)
	if err != nil {
		return "", fmt.Errorf("failed to compose the commit message: %w", err)
	}
	return message, nil
}

// withLineCounts copies additions and deletions from the per-file diff onto
// the matching name-status entries.
func withLineCounts(changes, fileDiffs []entities.FileChange) []entities.FileChange {
	counts := make(map[string]entities.FileChange, len(fileDiffs))
	for _, fileDiff := range fileDiffs {
		counts[fileDiff.Path] = fileDiff
	}

	enriched := make([]entities.FileChange, len(changes))
	for i, change := range changes {
		if counted, ok := counts[change.Path]; ok {
			change.Additions = counted.Additions
			change.Deletions = counted.Deletions
		}
		enriched[i] = change
	}
	return enriched
}
