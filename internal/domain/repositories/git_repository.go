package repositories

import (
	"context"
	"time"
)

// LogQuery narrows the commits returned by GitRepository.Log.
type LogQuery struct {
	Revision string    // Empty means HEAD
	MaxCount int       // Zero means unlimited
	Since    time.Time // Zero means no lower bound
	Numstat  bool      // Emit per-file numstat lines in addition to the summary line
}

// DiffQuery selects what GitRepository.Diff and GitRepository.NameStatus compare.
type DiffQuery struct {
	Staged   bool   // Compare the index against HEAD
	Revision string // Revision or range, e.g. "HEAD~1" or "main...HEAD"
	Paths    []string
}

// GitRepository abstracts the version-control process collaborator. Every
// method runs the tool in repoDir and returns its captured standard output
// untouched; parsing happens in the core.
type GitRepository interface {
	// Log returns commit log text in the CommitMarker block format.
	Log(ctx context.Context, repoDir string, query LogQuery) (string, error)

	// NameStatus returns `<code><TAB>path` lines for the selected changes.
	NameStatus(ctx context.Context, repoDir string, query DiffQuery) (string, error)

	// Diff returns unified diff text for the selected changes.
	Diff(ctx context.Context, repoDir string, query DiffQuery) (string, error)

	// Blame returns line-porcelain blame text for a file.
	Blame(ctx context.Context, repoDir, revision, path string) (string, error)
}
