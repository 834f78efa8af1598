//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// FileChangeBuilder helps create test file changes with a fluent interface.
type FileChangeBuilder struct {
	*testkit.BaseBuilder
	path      string
	oldPath   string
	status    entities.ChangeStatus
	additions int
	deletions int
}

// NewFileChangeBuilder creates a new file change builder with sensible defaults.
func NewFileChangeBuilder() *FileChangeBuilder {
	return &FileChangeBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "src/main.go",
		status:      entities.StatusModified,
	}
}

// WithPath sets the file path.
func (b *FileChangeBuilder) WithPath(path string) *FileChangeBuilder {
	b.path = path
	return b
}

// WithStatus sets the change status.
func (b *FileChangeBuilder) WithStatus(status entities.ChangeStatus) *FileChangeBuilder {
	b.status = status
	return b
}

// WithRename marks the change as a rename from oldPath.
func (b *FileChangeBuilder) WithRename(oldPath string) *FileChangeBuilder {
	b.status = entities.StatusRenamed
	b.oldPath = oldPath
	return b
}

// WithLineCounts sets the added and deleted line counts.
func (b *FileChangeBuilder) WithLineCounts(additions, deletions int) *FileChangeBuilder {
	b.additions = additions
	b.deletions = deletions
	return b
}

// Build creates the file change (satisfies testkit.Builder interface).
func (b *FileChangeBuilder) Build() interface{} {
	return b.BuildFileChange()
}

// BuildFileChange creates the file change with a concrete return type.
func (b *FileChangeBuilder) BuildFileChange() entities.FileChange {
	change := entities.NewFileChange(b.status, b.path, b.oldPath)
	change.Additions = b.additions
	change.Deletions = b.deletions
	return change
}

// Reset clears the builder state, allowing it to be reused.
func (b *FileChangeBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "src/main.go"
	b.oldPath = ""
	b.status = entities.StatusModified
	b.additions = 0
	b.deletions = 0
	return b
}

// Clone creates a deep copy of the FileChangeBuilder.
func (b *FileChangeBuilder) Clone() testkit.Builder {
	return &FileChangeBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		oldPath:     b.oldPath,
		status:      b.status,
		additions:   b.additions,
		deletions:   b.deletions,
	}
}
