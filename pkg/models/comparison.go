package models

import (
	"time"
)

// Action represents what the sync engine should do with a file
type Action string

const (
	// ActionCopyToCloud copies the local version to the cloud directory
	ActionCopyToCloud Action = "copy_to_cloud"
	// ActionCopyToLocal copies the cloud version to the local directory
	ActionCopyToLocal Action = "copy_to_local"
	// ActionConflict indicates both sides changed and a decision is required
	ActionConflict Action = "conflict"
	// ActionSkip indicates no transfer is needed
	ActionSkip Action = "skip"
)

// FileStat holds the metadata of one side of a comparison.
// A nil *FileStat means the file does not exist on that side; existence is
// never encoded as zero values.
type FileStat struct {
	// Path is the absolute path of the file on this side
	Path string `json:"path" yaml:"path"`

	// Size in bytes
	Size int64 `json:"size" yaml:"size"`

	// ModTime is the last modification time
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// FileComparison is one row of a directory comparison: a filename present in
// the local directory, the cloud directory, or both, with the resolved Action.
type FileComparison struct {
	// Filename is the base name of the file
	Filename string `json:"filename" yaml:"filename"`

	// Local is the local side metadata, nil if the file is cloud-only
	Local *FileStat `json:"local,omitempty" yaml:"local,omitempty"`

	// Cloud is the cloud side metadata, nil if the file is local-only
	Cloud *FileStat `json:"cloud,omitempty" yaml:"cloud,omitempty"`

	// Action is the classification determined by the comparator
	Action Action `json:"action" yaml:"action"`
}

// LocalExists reports whether the file exists on the local side.
func (c *FileComparison) LocalExists() bool {
	return c.Local != nil
}

// CloudExists reports whether the file exists on the cloud side.
func (c *FileComparison) CloudExists() bool {
	return c.Cloud != nil
}

// TransferSize returns the number of bytes the resolved action would move,
// or zero for skip and conflict rows.
func (c *FileComparison) TransferSize() int64 {
	switch c.Action {
	case ActionCopyToCloud:
		if c.Local != nil {
			return c.Local.Size
		}
	case ActionCopyToLocal:
		if c.Cloud != nil {
			return c.Cloud.Size
		}
	}
	return 0
}
