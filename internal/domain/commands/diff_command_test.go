//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitinsight/internal/domain/commands"
	"github.com/rios0rios0/gitinsight/internal/domain/entities"
	"github.com/rios0rios0/gitinsight/internal/domain/repositories"
	doubles "github.com/rios0rios0/gitinsight/test/infrastructure/repositorydoubles"
)

const stagedPatch = `diff --git a/src/app.go b/src/app.go
index 1111111..2222222 100644
--- a/src/app.go
+++ b/src/app.go
@@ -1,2 +1,3 @@
 package app
-var x = 1
+var x = 2
+var y = 3
diff --git a/README.md b/README.md
new file mode 100644
index 0000000..3333333
--- /dev/null
+++ b/README.md
@@ -0,0 +1 @@
+# app
`

func TestDiffCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should parse hunks and per-file counts", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyGitRepository{DiffOutput: stagedPatch}
		cmd := commands.NewDiffCommand(spy)

		// when
		report, err := cmd.Execute(context.Background(), commands.DiffOptions{
			RepoDir: "/work/repo",
			Staged:  true,
		})

		// then
		require.NoError(t, err)
		assert.Len(t, report.Hunks, 2)
		assert.Equal(t, 3, report.Additions)
		assert.Equal(t, 1, report.Deletions)
		assert.Equal(t, []entities.FileChange{
			{Path: "src/app.go", Status: entities.StatusModified, Additions: 2, Deletions: 1},
			{Path: "README.md", Status: entities.StatusAdded, Additions: 1},
		}, report.Files)
		assert.Equal(t, []repositories.DiffQuery{{Staged: true}}, spy.DiffQueries)
	})

	t.Run("should return an empty report for an empty diff", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewDiffCommand(&doubles.SpyGitRepository{})

		// when
		report, err := cmd.Execute(context.Background(), commands.DiffOptions{})

		// then
		require.NoError(t, err)
		assert.Empty(t, report.Hunks)
		assert.Zero(t, report.Additions)
		assert.Empty(t, report.Files)
	})

	t.Run("should wrap the collaborator error", func(t *testing.T) {
		t.Parallel()

		// given
		gitErr := errors.New("bad revision")
		cmd := commands.NewDiffCommand(&doubles.SpyGitRepository{DiffErr: gitErr})

		// when
		_, err := cmd.Execute(context.Background(), commands.DiffOptions{Revision: "nope"})

		// then
		require.ErrorIs(t, err, gitErr)
	})
}
