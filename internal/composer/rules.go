package composer

import (
	"path"
	"regexp"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

const (
	typeFeat     = "feat"
	typeFix      = "fix"
	typeRefactor = "refactor"
	typeChore    = "chore"

	rootScope     = "root"
	multipleScope = "multiple"
)

// TypeRule maps a change set to a commit type. Rules are evaluated in order
// and the first one that matches wins.
type TypeRule struct {
	Type    string
	Matches func(changes []entities.FileChange) bool
}

// defaultFixPathPattern marks paths that suggest a fix when modified.
var defaultFixPathPattern = regexp.MustCompile(`(?i)(test|spec|fix)`)

// DefaultTypeRules returns feat, fix and refactor rules; anything else is a chore.
func DefaultTypeRules(fixPathPattern *regexp.Regexp) []TypeRule {
	return []TypeRule{
		{Type: typeFeat, Matches: anyChange(func(c entities.FileChange) bool {
			return c.Status == entities.StatusAdded
		})},
		{Type: typeFix, Matches: anyChange(func(c entities.FileChange) bool {
			return c.Status == entities.StatusModified && fixPathPattern.MatchString(c.Path)
		})},
		{Type: typeRefactor, Matches: anyChange(func(c entities.FileChange) bool {
			return c.Status == entities.StatusModified
		})},
	}
}

// DefaultEmojis returns the gitmoji for each commit type.
func DefaultEmojis() map[string]string {
	return map[string]string{
		typeFeat:     "✨",
		typeFix:      "🐛",
		typeRefactor: "♻️",
		typeChore:    "🔧",
	}
}

func anyChange(predicate func(entities.FileChange) bool) func([]entities.FileChange) bool {
	return func(changes []entities.FileChange) bool {
		for _, c := range changes {
			if predicate(c) {
				return true
			}
		}
		return false
	}
}

// actionWords prefixes the description according to the first change.
var actionWords = map[entities.ChangeStatus]string{ //nolint:gochecknoglobals // read-only table
	entities.StatusAdded:    "Add",
	entities.StatusModified: "Update",
	entities.StatusDeleted:  "Remove",
	entities.StatusRenamed:  "Rename",
}

// stem returns the file name without its extension.
func stem(filePath string) string {
	base := path.Base(filePath)
	if trimmed := base[:len(base)-len(path.Ext(base))]; trimmed != "" {
		return trimmed
	}
	return base
}
