package parser

import (
	"regexp"
	"strings"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

// hunkHeaderPattern matches "@@ -oldStart[,oldLines] +newStart[,newLines] @@".
var hunkHeaderPattern = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

const (
	fileHeaderPrefix = "diff "
	newFileMarker    = "+++"
	oldFileMarker    = "---"
)

type diffState int

const (
	outsideHunk diffState = iota
	inHunk
)

// diffScanner is the two-state machine behind ParseDiff.
type diffScanner struct {
	state   diffState
	current entities.DiffHunk
	body    []string
	result  entities.DiffResult
}

// ParseDiff parses unified diff text into its hunks and the total number of
// added and deleted lines. Text without hunk headers, such as a pure rename,
// yields no hunks and zero counts.
func ParseDiff(raw string) entities.DiffResult {
	scanner := &diffScanner{
		result: entities.DiffResult{Hunks: []entities.DiffHunk{}},
	}

	for _, line := range splitLines(raw) {
		scanner.feed(line)
	}
	scanner.closeHunk()

	return scanner.result
}

func (it *diffScanner) feed(line string) {
	if matches := hunkHeaderPattern.FindStringSubmatch(line); matches != nil {
		it.closeHunk()
		it.openHunk(line, matches)
		return
	}

	if it.state != inHunk {
		return
	}

	// a new file section ends the hunk of the previous file
	if strings.HasPrefix(line, fileHeaderPrefix) {
		it.closeHunk()
		return
	}

	it.body = append(it.body, line)

	switch {
	case strings.HasPrefix(line, newFileMarker), strings.HasPrefix(line, oldFileMarker):
	case strings.HasPrefix(line, "+"):
		it.result.Additions++
	case strings.HasPrefix(line, "-"):
		it.result.Deletions++
	}
}

func (it *diffScanner) openHunk(header string, matches []string) {
	it.current = entities.DiffHunk{
		OldStart: atoiOrZero(matches[1]),
		OldLines: atoiOrZero(matches[2]),
		NewStart: atoiOrZero(matches[3]),
		NewLines: atoiOrZero(matches[4]),
	}
	it.body = []string{header}
	it.state = inHunk
}

func (it *diffScanner) closeHunk() {
	if it.state != inHunk {
		return
	}

	it.current.Content = strings.Join(it.body, "\n")
	it.result.Hunks = append(it.result.Hunks, it.current)
	it.body = nil
	it.state = outsideHunk
}
