// Package model defines the data structures shared by every commitkind layer.
package model

// Path represents a file system path.
type Path string

// ChangeKind describes how a path changed in the pending change set.
type ChangeKind string

const (
	// ChangeAdded marks a path that does not exist in the last commit.
	ChangeAdded ChangeKind = "added"
	// ChangeModified marks a path whose content differs from the last commit.
	ChangeModified ChangeKind = "modified"
	// ChangeDeleted marks a path that no longer exists in the working tree.
	ChangeDeleted ChangeKind = "deleted"
	// ChangeRenamed marks a path that was moved from OldPath.
	ChangeRenamed ChangeKind = "renamed"
)

// ChangeRecord is one entry of the pending change set, as reported by the
// version-control collaborator. Paths are relative to the repository root.
type ChangeRecord struct {
	Path    Path       `json:"path" yaml:"path"`
	Kind    ChangeKind `json:"kind" yaml:"kind"`
	OldPath Path       `json:"old_path,omitempty" yaml:"old_path,omitempty"` // set for ChangeRenamed only
}

// AfterPath returns the path holding the record's content in the pending
// ("after") tree, or false when the file does not exist there.
func (r ChangeRecord) AfterPath() (Path, bool) {
	if r.Kind == ChangeDeleted {
		return "", false
	}

	return r.Path, true
}

// BeforePath returns the path holding the record's content in the last
// committed ("before") tree, or false when the file did not exist there.
func (r ChangeRecord) BeforePath() (Path, bool) {
	switch r.Kind {
	case ChangeAdded:
		return "", false
	case ChangeRenamed:
		if r.OldPath != "" {
			return r.OldPath, true
		}

		return r.Path, true
	default:
		return r.Path, true
	}
}
