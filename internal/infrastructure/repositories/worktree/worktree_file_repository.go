package worktree

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
)

// FileRepository implements repositories.FileRepository on top of the go-git
// worktree filesystem. Opened worktrees are cached per directory.
type FileRepository struct {
	worktrees sync.Map // directory -> *git.Worktree
}

var _ repositories.FileRepository = (*FileRepository)(nil)

// NewFileRepository creates a new FileRepository.
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Root resolves the top-level directory of the repository containing dir,
// walking up until a .git is found.
func (it *FileRepository) Root(dir string) (string, error) {
	worktree, err := it.open(dir)
	if err != nil {
		return "", err
	}
	return worktree.Filesystem.Root(), nil
}

// ReadFile reads a path relative to the repository root from the working tree.
func (it *FileRepository) ReadFile(ctx context.Context, repoDir, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	worktree, err := it.open(repoDir)
	if err != nil {
		return "", err
	}

	file, err := worktree.Filesystem.Open(filepath.ToSlash(path))
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}

func (it *FileRepository) open(dir string) (*git.Worktree, error) {
	if cached, ok := it.worktrees.Load(dir); ok {
		return cached.(*git.Worktree), nil
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open the worktree of %s: %w", dir, err)
	}

	if head, headErr := repo.Head(); headErr == nil {
		logger.Debugf("Opened repository %s on %s", worktree.Filesystem.Root(), head.Name().Short())
	} else {
		logger.Debugf("Opened repository %s without a resolvable HEAD: %v", worktree.Filesystem.Root(), headErr)
	}

	actual, _ := it.worktrees.LoadOrStore(dir, worktree)
	return actual.(*git.Worktree), nil
}
