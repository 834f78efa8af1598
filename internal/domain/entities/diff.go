package entities

// DiffHunk is a contiguous block of a unified diff.
// Content holds the hunk header followed by every captured body line.
type DiffHunk struct {
	OldStart int    `yaml:"old_start"`
	OldLines int    `yaml:"old_lines"`
	NewStart int    `yaml:"new_start"`
	NewLines int    `yaml:"new_lines"`
	Content  string `yaml:"content"`
}

// DiffResult is the parsed form of a unified diff.
type DiffResult struct {
	Hunks     []DiffHunk `yaml:"hunks"`
	Additions int        `yaml:"additions"`
	Deletions int        `yaml:"deletions"`
}

// DiffReport couples the hunk view of a diff with its per-file breakdown.
type DiffReport struct {
	DiffResult `yaml:",inline"`

	Files []FileChange `yaml:"files"`
}
