// Package sync transfers save files between a local directory and its cloud
// counterpart. The engine consumes the comparator's classification, backs up
// anything it is about to overwrite and reports per-file outcomes; conflicts
// are never resolved here.
package sync

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/savesync/savesync/pkg/compare"
	"github.com/savesync/savesync/pkg/fsutil"
	"github.com/savesync/savesync/pkg/logging"
	"github.com/savesync/savesync/pkg/models"
)

// Directions reported per file.
const (
	directionToCloud  = "local → cloud"
	directionToLocal  = "cloud → local"
	directionConflict = "conflict"
	directionSkip     = "skip"
)

// Engine performs sync runs. It holds no state between invocations, so
// concurrent runs against disjoint directory triples need no locking.
type Engine struct {
	logger logging.Logger
}

// New creates a sync engine. A nil logger discards output.
func New(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNull()
	}
	return &Engine{logger: logger}
}

// Options configures one sync run
type Options struct {
	// LocalDir and CloudDir are the directory pair to synchronize
	LocalDir string
	CloudDir string

	// BackupDir receives a copy of every file about to be overwritten
	BackupDir string

	// LastSync is the baseline of the most recent successful sync, nil
	// when unknown
	LastSync *time.Time

	// DryRun classifies and reports without touching the filesystem
	DryRun bool
}

// Sync compares the directory pair and applies the resulting actions.
// Conflicting files are counted and marked needs_resolution but left
// untouched. A per-file failure is recorded and never aborts the rest of
// the run; Success is false only if at least one file errored.
func (e *Engine) Sync(opts Options) *models.SyncResult {
	result := &models.SyncResult{
		RunID:     uuid.NewString(),
		LocalDir:  opts.LocalDir,
		CloudDir:  opts.CloudDir,
		DryRun:    opts.DryRun,
		StartTime: time.Now(),
		Success:   true,
	}

	comparisons := compare.Compare(opts.LocalDir, opts.CloudDir, opts.LastSync)

	if !opts.DryRun {
		var toCloud, toLocal uint64
		for i := range comparisons {
			switch comparisons[i].Action {
			case models.ActionCopyToCloud:
				toCloud += uint64(comparisons[i].TransferSize())
			case models.ActionCopyToLocal:
				toLocal += uint64(comparisons[i].TransferSize())
			}
		}
		if !VerifyDiskSpace(opts.CloudDir, toCloud) {
			e.logger.Warn("cloud directory may not have enough free space", logging.Fields{
				"dir": opts.CloudDir, "required": toCloud,
			})
		}
		if !VerifyDiskSpace(opts.LocalDir, toLocal) {
			e.logger.Warn("local directory may not have enough free space", logging.Fields{
				"dir": opts.LocalDir, "required": toLocal,
			})
		}
	}

	for i := range comparisons {
		comp := &comparisons[i]
		action := models.ActionResult{
			Filename: comp.Filename,
			Action:   comp.Action,
		}

		switch comp.Action {
		case models.ActionCopyToCloud:
			action.Direction = directionToCloud
			action.Size = comp.Local.Size
			e.transfer(opts, comp, comp.Local, comp.Cloud, filepath.Join(opts.CloudDir, comp.Filename), "cloud", &action, result)

		case models.ActionCopyToLocal:
			action.Direction = directionToLocal
			action.Size = comp.Cloud.Size
			e.transfer(opts, comp, comp.Cloud, comp.Local, filepath.Join(opts.LocalDir, comp.Filename), "local", &action, result)

		case models.ActionConflict:
			action.Direction = directionConflict
			action.NeedsResolution = true
			result.Conflicts++
			e.logger.Warn("conflict detected", logging.Fields{
				"file": comp.Filename, "local": comp.Local.Path, "cloud": comp.Cloud.Path,
			})

		case models.ActionSkip:
			action.Direction = directionSkip
			action.Success = true
			result.FilesSkipped++
		}

		result.Actions = append(result.Actions, action)
	}

	result.EndTime = time.Now()

	e.logger.Info("sync finished", logging.Fields{
		"run":       result.RunID,
		"synced":    result.FilesSynced,
		"skipped":   result.FilesSkipped,
		"conflicts": result.Conflicts,
		"errors":    len(result.Errors),
		"dry_run":   result.DryRun,
	})
	return result
}

// transfer copies src over the destination path, backing up the version
// being overwritten first. The backup must complete before the overwrite is
// attempted; a backup failure records the error and leaves the destination
// untouched.
func (e *Engine) transfer(opts Options, comp *models.FileComparison, src, dst *models.FileStat, dstPath, overwrittenSide string, action *models.ActionResult, result *models.SyncResult) {
	if opts.DryRun {
		action.Success = true
		action.DryRun = true
		return
	}

	if dst != nil {
		if _, err := CreateBackup(dst.Path, opts.BackupDir, overwrittenSide); err != nil {
			e.fileError(action, result, fmt.Sprintf("backup of %s failed: %v", comp.Filename, err))
			return
		}
	}

	if err := fsutil.CopyFile(src.Path, dstPath); err != nil {
		e.fileError(action, result, fmt.Sprintf("failed to copy %s: %v", comp.Filename, err))
		return
	}

	action.Success = true
	result.FilesSynced++
	e.logger.Debug("copied", logging.Fields{
		"file": comp.Filename, "direction": action.Direction, "bytes": action.Size,
	})
}

// fileError records a per-file failure without aborting the run.
func (e *Engine) fileError(action *models.ActionResult, result *models.SyncResult, msg string) {
	action.Success = false
	action.Error = msg
	result.Errors = append(result.Errors, msg)
	result.Success = false
	e.logger.Error("sync file error", nil, logging.Fields{"detail": msg})
}

// Summary tallies a comparison list without performing any transfer.
func Summary(comparisons []models.FileComparison) models.SyncSummary {
	summary := models.SyncSummary{
		TotalFiles: len(comparisons),
		Files: map[models.Action][]string{
			models.ActionCopyToCloud: nil,
			models.ActionCopyToLocal: nil,
			models.ActionConflict:    nil,
			models.ActionSkip:        nil,
		},
	}

	for _, comp := range comparisons {
		summary.Files[comp.Action] = append(summary.Files[comp.Action], comp.Filename)
		switch comp.Action {
		case models.ActionCopyToCloud:
			summary.CopyToCloud++
		case models.ActionCopyToLocal:
			summary.CopyToLocal++
		case models.ActionConflict:
			summary.Conflicts++
		case models.ActionSkip:
			summary.Skipped++
		}
	}
	return summary
}
