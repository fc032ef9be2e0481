package models

import (
	"time"
)

// ActionResult records the outcome of a single file during a sync run
type ActionResult struct {
	// Filename is the base name of the file
	Filename string `json:"filename" yaml:"filename"`

	// Action is the classification the comparator assigned
	Action Action `json:"action" yaml:"action"`

	// Direction is a human-readable transfer direction ("local → cloud",
	// "cloud → local", "conflict", "skip")
	Direction string `json:"direction" yaml:"direction"`

	// Size is the number of bytes transferred (or that would be, in dry-run)
	Size int64 `json:"size,omitempty" yaml:"size,omitempty"`

	// Success indicates the action completed without error
	Success bool `json:"success" yaml:"success"`

	// DryRun indicates no I/O was performed for this action
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`

	// NeedsResolution is set on conflict rows left for the resolver
	NeedsResolution bool `json:"needs_resolution,omitempty" yaml:"needs_resolution,omitempty"`

	// Error holds the failure message for this file, if any
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SyncResult aggregates the outcome of one sync invocation.
// It is created per run, returned to the caller and never mutated afterward.
type SyncResult struct {
	// RunID uniquely identifies this sync invocation
	RunID string `json:"run_id" yaml:"run_id"`

	// LocalDir and CloudDir are the directory pair that was synchronized
	LocalDir string `json:"local_dir" yaml:"local_dir"`
	CloudDir string `json:"cloud_dir" yaml:"cloud_dir"`

	// DryRun indicates the run performed no filesystem mutation
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// StartTime and EndTime bound the run
	StartTime time.Time `json:"start_time" yaml:"start_time"`
	EndTime   time.Time `json:"end_time" yaml:"end_time"`

	// Success is false only if at least one file errored. Conflicts are an
	// expected outcome and do not clear it.
	Success bool `json:"success" yaml:"success"`

	// FilesSynced counts completed transfers
	FilesSynced int `json:"files_synced" yaml:"files_synced"`

	// FilesSkipped counts files requiring no transfer
	FilesSkipped int `json:"files_skipped" yaml:"files_skipped"`

	// Conflicts counts files left for explicit resolution
	Conflicts int `json:"conflicts" yaml:"conflicts"`

	// Errors holds one message per failed file
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	// Actions holds the per-file outcomes in comparator order
	Actions []ActionResult `json:"actions" yaml:"actions"`
}

// HasConflicts reports whether any file was left unresolved.
func (r *SyncResult) HasConflicts() bool {
	return r.Conflicts > 0
}

// Clean reports whether the run finished with no errors and no conflicts,
// which is the precondition for advancing the last-sync baseline.
func (r *SyncResult) Clean() bool {
	return r.Success && r.Conflicts == 0
}

// SyncSummary tallies comparator output without performing any transfer
type SyncSummary struct {
	TotalFiles  int                 `json:"total_files" yaml:"total_files"`
	CopyToCloud int                 `json:"copy_to_cloud" yaml:"copy_to_cloud"`
	CopyToLocal int                 `json:"copy_to_local" yaml:"copy_to_local"`
	Conflicts   int                 `json:"conflicts" yaml:"conflicts"`
	Skipped     int                 `json:"skipped" yaml:"skipped"`
	Files       map[Action][]string `json:"files" yaml:"files"`
}

// DirectionalCopy records one file handled by a one-way push or pull
type DirectionalCopy struct {
	// Filename is the base name of the file
	Filename string `json:"filename" yaml:"filename"`

	// Copied indicates the file was transferred
	Copied bool `json:"copied" yaml:"copied"`

	// Reason explains a skip ("cloud is newer", "local is newer",
	// "files are equal") or is empty for copies
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Error holds the failure message, if any
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// DirectionalResult aggregates a one-way push or pull
type DirectionalResult struct {
	// Direction is "to_cloud" or "from_cloud"
	Direction string `json:"direction" yaml:"direction"`

	// Forced indicates the newer-wins safety check was bypassed
	Forced bool `json:"forced" yaml:"forced"`

	TotalCopied  int               `json:"total_copied" yaml:"total_copied"`
	TotalSkipped int               `json:"total_skipped" yaml:"total_skipped"`
	Errors       []string          `json:"errors,omitempty" yaml:"errors,omitempty"`
	Files        []DirectionalCopy `json:"files" yaml:"files"`
}
