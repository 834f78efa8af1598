package parser

import (
	"strings"
	"unicode"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// statusCodes maps the leading letter of a status code to a change status.
// Unknown letters fall back to entities.StatusModified.
var statusCodes = map[rune]entities.ChangeStatus{ //nolint:gochecknoglobals // read-only table
	'A': entities.StatusAdded,
	'M': entities.StatusModified,
	'D': entities.StatusDeleted,
	'R': entities.StatusRenamed,
}

// ParseStatus parses name-status or porcelain status lines. Each line is
// "<code><whitespace><path>" or, for renames, "<code><whitespace><old><whitespace><new>".
// Blank and unparseable lines produce no record.
func ParseStatus(raw string) []entities.FileChange {
	var changes []entities.FileChange

	for _, line := range splitLines(raw) {
		if change, ok := parseStatusLine(line); ok {
			changes = append(changes, change)
		}
	}

	return changes
}

func parseStatusLine(line string) (entities.FileChange, bool) {
	code, paths := splitStatusLine(line)
	if code == "" || len(paths) == 0 {
		return entities.FileChange{}, false
	}

	status, known := statusCodes[unicode.ToUpper([]rune(code)[0])]
	if !known {
		status = entities.StatusModified
	}

	if status == entities.StatusRenamed {
		return entities.NewFileChange(status, paths[len(paths)-1], paths[0]), true
	}

	// copies and other two-path codes keep the destination
	return entities.NewFileChange(status, paths[len(paths)-1], ""), true
}

// splitStatusLine separates the status code from the path tokens. Tab
// separated name-status output keeps paths with spaces intact; space
// separated porcelain output treats the remainder as a single path unless
// the code announces a rename or a copy.
func splitStatusLine(line string) (string, []string) {
	if strings.Contains(line, "\t") {
		fields := strings.Split(line, "\t")
		paths := make([]string, 0, len(fields)-1)
		for _, f := range fields[1:] {
			if p := strings.TrimSpace(f); p != "" {
				paths = append(paths, p)
			}
		}
		return strings.TrimSpace(fields[0]), paths
	}

	code, rest, ok := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	if !ok || rest == "" {
		return "", nil
	}

	if upper := strings.ToUpper(code); strings.HasPrefix(upper, "R") || strings.HasPrefix(upper, "C") {
		tokens := strings.Fields(rest)
		paths := make([]string, 0, len(tokens))
		for _, t := range tokens {
			if t != "->" {
				paths = append(paths, t)
			}
		}
		return code, paths
	}

	return code, []string{rest}
}
