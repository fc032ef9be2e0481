// Package compare classifies the files of a local/cloud directory pair into
// sync actions. The comparison is a three-way merge that uses the last-sync
// baseline as the common-ancestor proxy: no content hashing, modification
// times only.
package compare

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/savesync/savesync/pkg/fsutil"
	"github.com/savesync/savesync/pkg/models"
)

// Slack absorbs filesystem timestamp granularity when comparing a side's
// modification time against the last-sync baseline.
const Slack = time.Second

// Compare classifies every top-level file present in localDir or cloudDir
// and returns one row per filename, ordered by filename ascending. A
// missing directory on either side is treated as empty. lastSync is the
// baseline of the most recent successful sync, or nil when unknown.
func Compare(localDir, cloudDir string, lastSync *time.Time) []models.FileComparison {
	localNames := mapset.NewThreadUnsafeSet(fsutil.ListFiles(localDir)...)
	cloudNames := mapset.NewThreadUnsafeSet(fsutil.ListFiles(cloudDir)...)

	names := localNames.Union(cloudNames).ToSlice()
	sort.Strings(names)

	comparisons := make([]models.FileComparison, 0, len(names))
	for _, name := range names {
		comp := models.FileComparison{Filename: name}

		if localNames.Contains(name) {
			comp.Local = statFile(filepath.Join(localDir, name))
		}
		if cloudNames.Contains(name) {
			comp.Cloud = statFile(filepath.Join(cloudDir, name))
		}

		comp.Action = classify(&comp, lastSync)
		comparisons = append(comparisons, comp)
	}

	return comparisons
}

// classify applies the three-way classification rules to one file.
func classify(comp *models.FileComparison, lastSync *time.Time) models.Action {
	switch {
	case comp.LocalExists() && !comp.CloudExists():
		return models.ActionCopyToCloud
	case !comp.LocalExists() && comp.CloudExists():
		return models.ActionCopyToLocal
	case !comp.LocalExists() && !comp.CloudExists():
		return models.ActionSkip
	}

	if lastSync != nil {
		// Three-way: a side counts as modified only when its mtime is past
		// the baseline plus slack.
		baseline := lastSync.Add(Slack)
		localModified := comp.Local.ModTime.After(baseline)
		cloudModified := comp.Cloud.ModTime.After(baseline)

		switch {
		case localModified && cloudModified:
			return models.ActionConflict
		case localModified:
			return models.ActionCopyToCloud
		case cloudModified:
			return models.ActionCopyToLocal
		default:
			return models.ActionSkip
		}
	}

	// No baseline: the strictly newer side wins.
	switch {
	case comp.Local.ModTime.After(comp.Cloud.ModTime):
		return models.ActionCopyToCloud
	case comp.Cloud.ModTime.After(comp.Local.ModTime):
		return models.ActionCopyToLocal
	default:
		return models.ActionSkip
	}
}

// statFile reads the metadata of one side, or nil when the file vanished
// between listing and stat.
func statFile(path string) *models.FileStat {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}
	return &models.FileStat{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}
