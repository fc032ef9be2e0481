// Package conflict materializes the outcome of a conflicting file pair.
// Both versions are always backed up before any strategy runs, so no data
// is ever discarded without a recoverable copy.
package conflict

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/savesync/savesync/pkg/fsutil"
	"github.com/savesync/savesync/pkg/logging"
	"github.com/savesync/savesync/pkg/models"
)

// backupTimeFormat matches the sync engine's backup naming timestamp.
const backupTimeFormat = "20060102-150405"

// NoBaselineTolerance is the mtime difference beyond which two files are
// considered conflicting when no last-sync baseline exists. The window
// absorbs filesystem timestamp jitter.
const NoBaselineTolerance = 2 * time.Second

// baselineSlack absorbs timestamp granularity when comparing against the
// last-sync baseline.
const baselineSlack = time.Second

// Resolver detects conflicts, accumulates them for later resolution and
// applies resolution strategies.
type Resolver struct {
	logger  logging.Logger
	pending []models.ConflictRecord
}

// NewResolver creates a resolver. A nil logger discards output.
func NewResolver(logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNull()
	}
	return &Resolver{logger: logger}
}

// Add records a detected conflict in the pending list.
func (r *Resolver) Add(localPath, cloudPath string) {
	r.pending = append(r.pending, models.ConflictRecord{
		Filename:   filepath.Base(localPath),
		LocalPath:  localPath,
		CloudPath:  cloudPath,
		DetectedAt: time.Now(),
	})
}

// Pending returns a copy of the accumulated conflicts.
func (r *Resolver) Pending() []models.ConflictRecord {
	out := make([]models.ConflictRecord, len(r.pending))
	copy(out, r.pending)
	return out
}

// Clear drops all accumulated conflicts.
func (r *Resolver) Clear() {
	r.pending = nil
}

// Detect reports whether the two files are in conflict, independent of the
// comparator. With a baseline, both sides must have been modified after
// lastSync plus slack. Without one, only an mtime difference beyond
// NoBaselineTolerance counts. Missing files never conflict.
func Detect(localPath, cloudPath string, lastSync *time.Time) bool {
	localInfo, err := os.Stat(localPath)
	if err != nil {
		return false
	}
	cloudInfo, err := os.Stat(cloudPath)
	if err != nil {
		return false
	}

	if lastSync == nil {
		diff := localInfo.ModTime().Sub(cloudInfo.ModTime())
		if diff < 0 {
			diff = -diff
		}
		return diff > NoBaselineTolerance
	}

	baseline := lastSync.Add(baselineSlack)
	return localInfo.ModTime().After(baseline) && cloudInfo.ModTime().After(baseline)
}

// Resolve applies a strategy to a conflicting file pair. Both current
// versions are backed up into backupDir first, whatever the strategy; the
// backups must succeed before anything is modified. An unknown strategy is
// a programmer error and fails hard.
func (r *Resolver) Resolve(localPath, cloudPath string, strategy models.ResolutionStrategy, backupDir string) error {
	if !strategy.IsValid() {
		return fmt.Errorf("invalid resolution strategy: %q", strategy)
	}

	if _, err := CreateBackups(localPath, cloudPath, backupDir); err != nil {
		return fmt.Errorf("conflict backup: %w", err)
	}

	switch strategy {
	case models.KeepLocal:
		if err := fsutil.CopyFile(localPath, cloudPath); err != nil {
			return fmt.Errorf("overwrite cloud version: %w", err)
		}
		if err := fsutil.Touch(cloudPath); err != nil {
			return fmt.Errorf("refresh cloud timestamp: %w", err)
		}

	case models.KeepCloud:
		if err := fsutil.CopyFile(cloudPath, localPath); err != nil {
			return fmt.Errorf("overwrite local version: %w", err)
		}
		if err := fsutil.Touch(localPath); err != nil {
			return fmt.Errorf("refresh local timestamp: %w", err)
		}

	case models.KeepBoth:
		timestamp := time.Now().Format(backupTimeFormat)
		if err := renameAside(localPath, timestamp, "local"); err != nil {
			return err
		}
		if err := renameAside(cloudPath, timestamp, "cloud"); err != nil {
			return err
		}

	case models.Manual:
		// Backups only; the caller decides what happens next.
		r.logger.Info("backups created, left for manual resolution", logging.Fields{
			"file": filepath.Base(localPath),
		})
		return nil
	}

	r.logger.Info("conflict resolved", logging.Fields{
		"file": filepath.Base(localPath), "strategy": string(strategy),
	})
	return nil
}

// renameAside renames path to <stem>.<timestamp>.<side><ext> in place,
// leaving the canonical path unoccupied.
func renameAside(path, timestamp, side string) error {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	renamed := fmt.Sprintf("%s.%s.%s%s", stem, timestamp, side, ext)
	if err := os.Rename(path, renamed); err != nil {
		return fmt.Errorf("rename %s version aside: %w", side, err)
	}
	return nil
}

// CreateBackups copies both versions of a conflicting pair into backupDir
// under <name>.<timestamp>.<side>.conflict and returns the backup paths by
// side. The naming convention must be preserved for interoperability with
// existing backups. A side whose file is missing is skipped.
func CreateBackups(localPath, cloudPath, backupDir string) (map[string]string, error) {
	if err := fsutil.EnsureDir(backupDir); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}

	timestamp := time.Now().Format(backupTimeFormat)
	backups := make(map[string]string)

	for side, path := range map[string]string{"local": localPath, "cloud": cloudPath} {
		if !fsutil.FileExists(path) {
			continue
		}
		name := fmt.Sprintf("%s.%s.%s.conflict", filepath.Base(path), timestamp, side)
		backupPath := filepath.Join(backupDir, name)
		if err := fsutil.CopyFile(path, backupPath); err != nil {
			return backups, fmt.Errorf("back up %s version: %w", side, err)
		}
		backups[side] = backupPath
	}

	return backups, nil
}

// Info returns a formatted summary of a conflicting pair for presenting
// the decision to a user. A missing side is nil.
func Info(localPath, cloudPath string) models.ConflictInfo {
	info := models.ConflictInfo{Filename: filepath.Base(localPath)}
	info.Local = sideInfo(localPath)
	info.Cloud = sideInfo(cloudPath)
	return info
}

func sideInfo(path string) *models.ConflictSide {
	stat, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return &models.ConflictSide{
		Path:      path,
		Size:      stat.Size(),
		SizeHuman: humanize.Bytes(uint64(stat.Size())),
		Modified:  stat.ModTime(),
	}
}
