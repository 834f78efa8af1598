package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

const (
	headerSeparator = "|"
	headerFields    = 4 // hash|author|date|subject
	binaryCount     = "-"
)

var (
	// Matches "3 files changed, 10 insertions(+), 2 deletions(-)" with optional clauses.
	summaryPattern = regexp.MustCompile(
		`^(\d+) files? changed(?:, (\d+) insertions?\(\+\))?(?:, (\d+) deletions?\(-\))?`,
	)
	// Matches "<adds>\t<dels>\t<path>" numstat lines; "-" marks binary files.
	numstatPattern = regexp.MustCompile(`^(\d+|-)\t(\d+|-)\t(.+)$`)
	// Matches the compact rename form "dir/{old => new}/file".
	braceRenamePattern = regexp.MustCompile(`^(.*)\{(.*) => (.*)\}(.*)$`)
)

// dateLayouts are the author date formats git can emit, most specific first.
var dateLayouts = []string{ //nolint:gochecknoglobals // read-only table
	time.RFC3339,                     // %aI
	"2006-01-02 15:04:05 -0700",      // %ai
	time.RFC1123Z,                    // %aD
	"Mon, 2 Jan 2006 15:04:05 -0700", // %aD with single digit day
	"Mon Jan 2 15:04:05 2006 -0700",  // %ad
}

// ParseLog splits log text on entities.CommitMarker and parses each block into
// a Commit. Input order is preserved; empty blocks are skipped.
//
// A block is a "hash|author|date|subject" header line, optionally followed by
// numstat lines and a "N files changed, A insertions(+), D deletions(-)"
// summary line. Missing header fields become empty strings, absent summary
// clauses count as zero and an unparseable date becomes entities.InvalidDate.
func ParseLog(raw string) []entities.Commit {
	blocks := strings.Split(raw, entities.CommitMarker)
	commits := make([]entities.Commit, 0, len(blocks))

	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		commits = append(commits, parseCommitBlock(block))
	}

	return commits
}

// SummarizeLog aggregates commits into totals. Authors are listed once, in
// order of first appearance.
func SummarizeLog(commits []entities.Commit) entities.LogSummary {
	summary := entities.LogSummary{
		Commits: len(commits),
		Authors: []string{},
	}

	seen := make(map[string]bool)
	for _, c := range commits {
		if c.Author != "" && !seen[c.Author] {
			seen[c.Author] = true
			summary.Authors = append(summary.Authors, c.Author)
		}
		summary.Additions += c.Stats.Additions
		summary.Deletions += c.Stats.Deletions
		summary.Files += c.Stats.Files
	}

	return summary
}

func parseCommitBlock(block string) entities.Commit {
	var commit entities.Commit
	headerSeen := false
	summarySeen := false

	for _, line := range splitLines(block) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if !headerSeen {
			parseHeader(&commit, trimmed)
			headerSeen = true
			continue
		}

		if change, ok := parseNumstat(trimmed); ok {
			commit.Changes = append(commit.Changes, change)
			continue
		}

		if stats, ok := parseSummary(trimmed); ok {
			commit.Stats = stats
			summarySeen = true
		}
	}

	if !summarySeen && len(commit.Changes) > 0 {
		commit.Stats = statsFromChanges(commit.Changes)
	}

	return commit
}

func parseHeader(commit *entities.Commit, line string) {
	fields := strings.SplitN(line, headerSeparator, headerFields)
	for len(fields) < headerFields {
		fields = append(fields, "")
	}

	commit.Hash = strings.TrimSpace(fields[0])
	commit.Author = strings.TrimSpace(fields[1])
	commit.RawDate = strings.TrimSpace(fields[2])
	commit.Date = parseDate(commit.RawDate)
	commit.Message = strings.TrimSpace(fields[3])
}

// parseDate tries every known layout and falls back to the invalid date sentinel.
func parseDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return entities.InvalidDate
}

func parseSummary(line string) (entities.CommitStats, bool) {
	matches := summaryPattern.FindStringSubmatch(line)
	if matches == nil {
		return entities.CommitStats{}, false
	}

	return entities.CommitStats{
		Files:     atoiOrZero(matches[1]),
		Additions: atoiOrZero(matches[2]),
		Deletions: atoiOrZero(matches[3]),
	}, true
}

func parseNumstat(line string) (entities.FileChange, bool) {
	matches := numstatPattern.FindStringSubmatch(line)
	if matches == nil {
		return entities.FileChange{}, false
	}

	var change entities.FileChange
	if path, oldPath, renamed := splitRenamePath(matches[3]); renamed {
		change = entities.NewFileChange(entities.StatusRenamed, path, oldPath)
	} else {
		change = entities.NewFileChange(entities.StatusModified, path, "")
	}

	if matches[1] != binaryCount {
		change.Additions = atoiOrZero(matches[1])
	}
	if matches[2] != binaryCount {
		change.Deletions = atoiOrZero(matches[2])
	}

	return change, true
}

// splitRenamePath expands numstat rename notation into (new, old) paths.
func splitRenamePath(path string) (string, string, bool) {
	if m := braceRenamePattern.FindStringSubmatch(path); m != nil {
		oldPath := strings.ReplaceAll(m[1]+m[2]+m[4], "//", "/")
		newPath := strings.ReplaceAll(m[1]+m[3]+m[4], "//", "/")
		return newPath, oldPath, true
	}

	if oldPath, newPath, ok := strings.Cut(path, " => "); ok {
		return newPath, oldPath, true
	}

	return path, "", false
}

func statsFromChanges(changes []entities.FileChange) entities.CommitStats {
	stats := entities.CommitStats{Files: len(changes)}
	for _, c := range changes {
		stats.Additions += c.Additions
		stats.Deletions += c.Deletions
	}
	return stats
}
