package repositories

import "context"

// FileRepository reads file contents from a repository working tree.
type FileRepository interface {
	// Root resolves the top-level directory of the repository containing dir.
	Root(dir string) (string, error)

	// ReadFile returns the content of a path relative to the repository root.
	ReadFile(ctx context.Context, repoDir, path string) (string, error)
}
