//go:build unit

package worktree_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitinsight/internal/infrastructure/repositories/worktree"
)

func initRepository(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}
	return dir
}

func TestFileRepositoryRoot(t *testing.T) {
	t.Parallel()

	t.Run("should find the root from a nested directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := initRepository(t, map[string]string{"pkg/deep/a.go": "package deep"})
		repository := worktree.NewFileRepository()

		// when
		root, err := repository.Root(filepath.Join(dir, "pkg", "deep"))

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(dir), filepath.Clean(root))
	})

	t.Run("should fail outside of a repository", func(t *testing.T) {
		t.Parallel()

		// given
		repository := worktree.NewFileRepository()

		// when
		_, err := repository.Root(t.TempDir())

		// then
		require.ErrorIs(t, err, git.ErrRepositoryNotExists)
	})
}

func TestFileRepositoryReadFile(t *testing.T) {
	t.Parallel()

	t.Run("should read uncommitted files from the working tree", func(t *testing.T) {
		t.Parallel()

		// given
		dir := initRepository(t, map[string]string{"src/app.js": "if (a) { b(); }\n"})
		repository := worktree.NewFileRepository()

		// when
		content, err := repository.ReadFile(context.Background(), dir, "src/app.js")

		// then
		require.NoError(t, err)
		assert.Equal(t, "if (a) { b(); }\n", content)
	})

	t.Run("should return an error for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		dir := initRepository(t, nil)
		repository := worktree.NewFileRepository()

		// when
		_, err := repository.ReadFile(context.Background(), dir, "gone.go")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gone.go")
	})

	t.Run("should not read after the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		dir := initRepository(t, map[string]string{"a.go": "package a"})
		repository := worktree.NewFileRepository()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := repository.ReadFile(ctx, dir, "a.go")

		// then
		require.ErrorIs(t, err, context.Canceled)
	})
}
