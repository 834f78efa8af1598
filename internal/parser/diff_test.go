//go:build unit

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
	"github.com/rios0rios0/gitinsight/internal/parser"
)

const multiFileDiff = `diff --git a/src/a.go b/src/a.go
index 1111111..2222222 100644
--- a/src/a.go
+++ b/src/a.go
@@ -1,2 +1,3 @@
 package a
+import "fmt"
-var x = 1
+var x = 2
diff --git a/src/new.go b/src/new.go
new file mode 100644
index 0000000..3333333
--- /dev/null
+++ b/src/new.go
@@ -0,0 +1,2 @@
+package a
+func New() {}
`

func TestParseDiff(t *testing.T) {
	t.Parallel()

	t.Run("should parse a single hunk with counts", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "@@ -1,3 +1,4 @@\n line\n+added\n-removed\n"

		// when
		result := parser.ParseDiff(raw)

		// then
		require.Len(t, result.Hunks, 1)
		hunk := result.Hunks[0]
		assert.Equal(t, 1, hunk.OldStart)
		assert.Equal(t, 3, hunk.OldLines)
		assert.Equal(t, 1, hunk.NewStart)
		assert.Equal(t, 4, hunk.NewLines)
		assert.Equal(t, "@@ -1,3 +1,4 @@\n line\n+added\n-removed", hunk.Content)
		assert.Equal(t, 1, result.Additions)
		assert.Equal(t, 1, result.Deletions)
	})

	t.Run("should default missing line counts to zero", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "@@ -7 +9 @@ func main()\n-a\n+b\n"

		// when
		result := parser.ParseDiff(raw)

		// then
		require.Len(t, result.Hunks, 1)
		assert.Equal(t, entities.DiffHunk{
			OldStart: 7,
			OldLines: 0,
			NewStart: 9,
			NewLines: 0,
			Content:  "@@ -7 +9 @@ func main()\n-a\n+b",
		}, result.Hunks[0])
	})

	t.Run("should close the open hunk when a new header starts", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "@@ -1,2 +1,2 @@\n-a\n+b\n@@ -10,2 +10,3 @@\n c\n+d\n"

		// when
		result := parser.ParseDiff(raw)

		// then
		require.Len(t, result.Hunks, 2)
		assert.Equal(t, "@@ -1,2 +1,2 @@\n-a\n+b", result.Hunks[0].Content)
		assert.Equal(t, 10, result.Hunks[1].OldStart)
		assert.Equal(t, 3, result.Hunks[1].NewLines)
		assert.Equal(t, 2, result.Additions)
		assert.Equal(t, 1, result.Deletions)
	})

	t.Run("should not count file level markers", func(t *testing.T) {
		t.Parallel()

		// when
		result := parser.ParseDiff(multiFileDiff)

		// then
		require.Len(t, result.Hunks, 2)
		assert.Equal(t, 4, result.Additions)
		assert.Equal(t, 1, result.Deletions)
		assert.NotContains(t, result.Hunks[0].Content, "diff --git")
		assert.Equal(t, 0, result.Hunks[1].OldStart)
		assert.Equal(t, 2, result.Hunks[1].NewLines)
	})

	t.Run("should yield no hunks for a pure rename", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "diff --git a/old.go b/new.go\nsimilarity index 100%\nrename from old.go\nrename to new.go\n"

		// when
		result := parser.ParseDiff(raw)

		// then
		assert.Empty(t, result.Hunks)
		assert.Zero(t, result.Additions)
		assert.Zero(t, result.Deletions)
	})

	t.Run("should ignore plus and minus lines outside any hunk", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "+stray\n-stray\n"

		// when
		result := parser.ParseDiff(raw)

		// then
		assert.Empty(t, result.Hunks)
		assert.Zero(t, result.Additions)
		assert.Zero(t, result.Deletions)
	})

	t.Run("should yield structurally equal results for identical input", func(t *testing.T) {
		t.Parallel()

		// when
		first := parser.ParseDiff(multiFileDiff)
		second := parser.ParseDiff(multiFileDiff)

		// then
		assert.Equal(t, first, second)
	})
}

func TestParseFileDiffs(t *testing.T) {
	t.Parallel()

	t.Run("should return one change per file with counted lines", func(t *testing.T) {
		t.Parallel()

		// when
		changes, err := parser.ParseFileDiffs(multiFileDiff)

		// then
		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, entities.FileChange{
			Path: "src/a.go", Status: entities.StatusModified, Additions: 2, Deletions: 1,
		}, changes[0])
		assert.Equal(t, entities.FileChange{
			Path: "src/new.go", Status: entities.StatusAdded, Additions: 2,
		}, changes[1])
	})

	t.Run("should detect deleted files", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "diff --git a/gone.go b/gone.go\ndeleted file mode 100644\nindex 1111111..0000000\n" +
			"--- a/gone.go\n+++ /dev/null\n@@ -1,2 +0,0 @@\n-package gone\n-var x = 1\n"

		// when
		changes, err := parser.ParseFileDiffs(raw)

		// then
		require.NoError(t, err)
		require.Len(t, changes, 1)
		assert.Equal(t, entities.StatusDeleted, changes[0].Status)
		assert.Equal(t, "gone.go", changes[0].Path)
		assert.Equal(t, 2, changes[0].Deletions)
	})

	t.Run("should return nothing for empty input", func(t *testing.T) {
		t.Parallel()

		// when
		changes, err := parser.ParseFileDiffs("  \n")

		// then
		require.NoError(t, err)
		assert.Empty(t, changes)
	})
}
