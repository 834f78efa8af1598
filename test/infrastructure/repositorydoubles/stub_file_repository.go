//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
)

// StubFileRepository implements repositories.FileRepository over an in-memory map.
type StubFileRepository struct {
	RootDir string
	RootErr error

	// path -> content; paths missing from the map fail to read
	Files map[string]string

	mu        sync.Mutex
	ReadPaths []string
}

var _ repositories.FileRepository = (*StubFileRepository)(nil)

func (f *StubFileRepository) Root(dir string) (string, error) {
	if f.RootErr != nil {
		return "", f.RootErr
	}
	if f.RootDir != "" {
		return f.RootDir, nil
	}
	return dir, nil
}

func (f *StubFileRepository) ReadFile(_ context.Context, _ string, path string) (string, error) {
	f.mu.Lock()
	f.ReadPaths = append(f.ReadPaths, path)
	f.mu.Unlock()

	if content, ok := f.Files[path]; ok {
		return content, nil
	}
	return "", fmt.Errorf("file not found: %s", path)
}
