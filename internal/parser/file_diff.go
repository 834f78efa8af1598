package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

const devNull = "/dev/null"

// ParseFileDiffs splits a multi-file unified diff into one FileChange per
// file, with additions and deletions counted from the hunk bodies.
func ParseFileDiffs(raw string) ([]entities.FileChange, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	fileDiffs, err := diff.ParseMultiFileDiff([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse multi-file diff: %w", err)
	}

	changes := make([]entities.FileChange, 0, len(fileDiffs))
	for _, fileDiff := range fileDiffs {
		change := fileChangeOf(fileDiff)
		for _, hunk := range fileDiff.Hunks {
			additions, deletions := countBodyLines(hunk.Body)
			change.Additions += additions
			change.Deletions += deletions
		}
		changes = append(changes, change)
	}

	return changes, nil
}

func fileChangeOf(fileDiff *diff.FileDiff) entities.FileChange {
	origName := strings.TrimPrefix(fileDiff.OrigName, "a/")
	newName := strings.TrimPrefix(fileDiff.NewName, "b/")

	switch {
	case origName == devNull || hasExtendedHeader(fileDiff, "new file mode"):
		return entities.NewFileChange(entities.StatusAdded, newName, "")
	case newName == devNull || hasExtendedHeader(fileDiff, "deleted file mode"):
		return entities.NewFileChange(entities.StatusDeleted, origName, "")
	case origName != newName:
		return entities.NewFileChange(entities.StatusRenamed, newName, origName)
	default:
		return entities.NewFileChange(entities.StatusModified, newName, "")
	}
}

func hasExtendedHeader(fileDiff *diff.FileDiff, prefix string) bool {
	for _, header := range fileDiff.Extended {
		if strings.HasPrefix(header, prefix) {
			return true
		}
	}
	return false
}

func countBodyLines(body []byte) (int, int) {
	additions, deletions := 0, 0
	for _, line := range bytes.Split(body, []byte("\n")) {
		switch {
		case bytes.HasPrefix(line, []byte("+")):
			additions++
		case bytes.HasPrefix(line, []byte("-")):
			deletions++
		}
	}
	return additions, deletions
}
