package models

import (
	"time"
)

// ResolutionStrategy defines how a conflicting file pair is resolved.
// The strategy is always selected by the caller, never inferred.
type ResolutionStrategy string

const (
	// KeepLocal overwrites the cloud version with the local bytes
	KeepLocal ResolutionStrategy = "keep_local"
	// KeepCloud overwrites the local version with the cloud bytes
	KeepCloud ResolutionStrategy = "keep_cloud"
	// KeepBoth renames both versions in place, leaving neither canonical
	// path occupied
	KeepBoth ResolutionStrategy = "keep_both"
	// Manual performs no automatic action beyond the safety backups
	Manual ResolutionStrategy = "manual"
)

// IsValid returns true if the strategy is recognized.
func (s ResolutionStrategy) IsValid() bool {
	switch s {
	case KeepLocal, KeepCloud, KeepBoth, Manual:
		return true
	default:
		return false
	}
}

// AllStrategies returns every supported resolution strategy.
func AllStrategies() []ResolutionStrategy {
	return []ResolutionStrategy{KeepLocal, KeepCloud, KeepBoth, Manual}
}

// Description returns a human-readable description of the strategy.
func (s ResolutionStrategy) Description() string {
	switch s {
	case KeepLocal:
		return "Overwrite the cloud version with the local version"
	case KeepCloud:
		return "Overwrite the local version with the cloud version"
	case KeepBoth:
		return "Rename both versions in place and keep them"
	case Manual:
		return "Take no action; only create safety backups"
	default:
		return "Unknown strategy"
	}
}

// ConflictRecord identifies a detected conflict awaiting resolution
type ConflictRecord struct {
	// Filename is the base name of the conflicting file
	Filename string

	// LocalPath and CloudPath are the absolute paths of the two versions
	LocalPath string
	CloudPath string

	// DetectedAt is when the conflict was observed
	DetectedAt time.Time
}

// ConflictSide describes one version of a conflicting file for display
type ConflictSide struct {
	// Path is the absolute path of this version
	Path string `json:"path" yaml:"path"`

	// Size in bytes
	Size int64 `json:"size" yaml:"size"`

	// SizeHuman is the size formatted for display (e.g. "1.2 MB")
	SizeHuman string `json:"size_human" yaml:"size_human"`

	// Modified is the last modification time
	Modified time.Time `json:"modified" yaml:"modified"`
}

// ConflictInfo is a formatted summary of a conflicting file pair, suitable
// for presenting the decision to a user
type ConflictInfo struct {
	// Filename is the base name of the conflicting file
	Filename string `json:"filename" yaml:"filename"`

	// Local and Cloud describe the two versions; nil if a side is missing
	Local *ConflictSide `json:"local,omitempty" yaml:"local,omitempty"`
	Cloud *ConflictSide `json:"cloud,omitempty" yaml:"cloud,omitempty"`
}
