package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

const (
	authorPrefix     = "author "
	authorTimePrefix = "author-time "
	contentPrefix    = "\t"
)

// commitLinePattern matches the "<sha> [<orig line> <final line> [<group size>]]"
// line that opens every porcelain block. Abbreviated hashes are accepted.
var commitLinePattern = regexp.MustCompile(`^[0-9a-f]{7,64}(?: \d+){0,3}$`)

// partialBlame accumulates the metadata of the block being read.
type partialBlame struct {
	hash    string
	author  string
	date    time.Time
	hasDate bool
}

func (p partialBlame) complete() bool {
	return p.hash != "" && p.author != "" && p.hasDate
}

// ParseBlame parses `git blame --line-porcelain` output. A block whose
// hash, author or author-time is missing when its tab-prefixed content line
// arrives is dropped. Line numbers count emitted lines, starting at 1.
func ParseBlame(raw string) []entities.BlameLine {
	var lines []entities.BlameLine
	var partial partialBlame

	for _, line := range splitLines(raw) {
		switch {
		case strings.HasPrefix(line, contentPrefix):
			if partial.complete() {
				lines = append(lines, entities.BlameLine{
					Hash:    partial.hash,
					Author:  partial.author,
					Date:    partial.date,
					Number:  len(lines) + 1,
					Content: strings.TrimPrefix(line, contentPrefix),
				})
			}
			partial = partialBlame{}
		case strings.HasPrefix(line, authorPrefix):
			partial.author = strings.TrimSpace(strings.TrimPrefix(line, authorPrefix))
		case strings.HasPrefix(line, authorTimePrefix):
			partial.date = parseUnixTime(strings.TrimPrefix(line, authorTimePrefix))
			partial.hasDate = true
		case commitLinePattern.MatchString(line):
			partial.hash = strings.Fields(line)[0]
		}
	}

	return lines
}

func parseUnixTime(raw string) time.Time {
	seconds, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return entities.InvalidDate
	}
	return time.Unix(seconds, 0).UTC()
}
