package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
	"github.com/rios0rios0/gitinsight/internal/parser"
)

// ErrMissingPath is returned when blame is requested without a file.
var ErrMissingPath = errors.New("a file path is required")

// Blame is the interface for the blame command.
type Blame interface {
	Execute(ctx context.Context, opts BlameOptions) ([]entities.BlameLine, error)
}

// BlameOptions holds runtime options for the blame command.
type BlameOptions struct {
	RepoDir  string
	Revision string
	Path     string
}

// BlameCommand attributes every line of a file to its last commit.
type BlameCommand struct {
	gitRepository repositories.GitRepository
}

// NewBlameCommand creates a new BlameCommand.
func NewBlameCommand(gitRepository repositories.GitRepository) *BlameCommand {
	return &BlameCommand{gitRepository: gitRepository}
}

// Execute runs git blame and parses the result.
func (it *BlameCommand) Execute(ctx context.Context, opts BlameOptions) ([]entities.BlameLine, error) {
	if opts.Path == "" {
		return nil, ErrMissingPath
	}

	raw, err := it.gitRepository.Blame(ctx, opts.RepoDir, opts.Revision, opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to blame %s: %w", opts.Path, err)
	}

	return parser.ParseBlame(raw), nil
}
