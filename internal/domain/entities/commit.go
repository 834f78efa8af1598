package entities

import "time"

// CommitMarker separates commit blocks in the log text requested from git.
// It is written into the --format argument so every block starts with it.
const CommitMarker = "__GITINSIGHT_COMMIT__"

// InvalidDate is the sentinel stored in Commit.Date and BlameLine.Date when the
// date text could not be parsed. The original text is kept alongside it.
var InvalidDate = time.Time{} //nolint:gochecknoglobals // read-only sentinel

// CommitStats holds the aggregate line-change statistics of a commit.
type CommitStats struct {
	Additions int `yaml:"additions"`
	Deletions int `yaml:"deletions"`
	Files     int `yaml:"files"`
}

// Commit is a single parsed commit from the log output.
type Commit struct {
	Hash    string       `yaml:"hash"`
	Author  string       `yaml:"author"`
	Date    time.Time    `yaml:"date"`
	RawDate string       `yaml:"raw_date"`
	Message string       `yaml:"message"`
	Stats   CommitStats  `yaml:"stats"`
	Changes []FileChange `yaml:"changes,omitempty"`
}

// HasValidDate reports whether the commit date was parsed successfully.
func (c Commit) HasValidDate() bool {
	return !c.Date.Equal(InvalidDate)
}

// LogSummary aggregates a sequence of commits.
type LogSummary struct {
	Commits   int      `yaml:"commits"`
	Authors   []string `yaml:"authors"`
	Additions int      `yaml:"additions"`
	Deletions int      `yaml:"deletions"`
	Files     int      `yaml:"files"`
}

// History is the result of reading the commit log of a repository.
type History struct {
	Commits []Commit   `yaml:"commits"`
	Summary LogSummary `yaml:"summary"`
}
