package entities

// ChangeStatus is the kind of modification applied to a file.
type ChangeStatus string

const (
	StatusAdded    ChangeStatus = "added"
	StatusModified ChangeStatus = "modified"
	StatusDeleted  ChangeStatus = "deleted"
	StatusRenamed  ChangeStatus = "renamed"
)

// FileChange describes one changed file.
// OldPath is set if and only if Status is StatusRenamed.
type FileChange struct {
	Path      string       `yaml:"path"`
	OldPath   string       `yaml:"old_path,omitempty"`
	Status    ChangeStatus `yaml:"status"`
	Additions int          `yaml:"additions"`
	Deletions int          `yaml:"deletions"`
}

// NewFileChange builds a FileChange keeping the OldPath/renamed invariant:
// an old path is only kept for renames, and a rename without one falls back
// to the current path.
func NewFileChange(status ChangeStatus, path, oldPath string) FileChange {
	change := FileChange{Path: path, Status: status}
	if status == StatusRenamed {
		change.OldPath = oldPath
		if change.OldPath == "" {
			change.OldPath = path
		}
	}
	return change
}
