package sync

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/savesync/savesync/pkg/fsutil"
	"github.com/savesync/savesync/pkg/logging"
	"github.com/savesync/savesync/pkg/models"
)

// Skip reasons reported by the directional primitives. These strings are
// part of the result contract.
const (
	ReasonCloudNewer = "cloud is newer"
	ReasonLocalNewer = "local is newer"
	ReasonEqual      = "files are equal"
)

// ToCloud pushes every local file to the cloud directory. Without force, a
// file is copied only when the local version is strictly newer than the
// cloud one or the cloud file is absent; force copies unconditionally.
func (e *Engine) ToCloud(localDir, cloudDir string, force bool) *models.DirectionalResult {
	return e.oneWay(localDir, cloudDir, "to_cloud", ReasonCloudNewer, force)
}

// FromCloud pulls every cloud file into the local directory under the same
// newer-wins rule, overridable by force.
func (e *Engine) FromCloud(localDir, cloudDir string, force bool) *models.DirectionalResult {
	return e.oneWay(cloudDir, localDir, "from_cloud", ReasonLocalNewer, force)
}

// oneWay copies the top-level files of srcDir into dstDir.
// destNewerReason is reported when the destination is strictly newer and
// force is unset.
func (e *Engine) oneWay(srcDir, dstDir, direction, destNewerReason string, force bool) *models.DirectionalResult {
	result := &models.DirectionalResult{
		Direction: direction,
		Forced:    force,
	}

	for _, name := range sortedFiles(srcDir) {
		srcPath := filepath.Join(srcDir, name)
		dstPath := filepath.Join(dstDir, name)
		entry := models.DirectionalCopy{Filename: name}

		if !force {
			if reason, skip := skipReason(srcPath, dstPath, destNewerReason); skip {
				entry.Reason = reason
				result.TotalSkipped++
				result.Files = append(result.Files, entry)
				continue
			}
		}

		if err := fsutil.CopyFile(srcPath, dstPath); err != nil {
			msg := fmt.Sprintf("failed to copy %s: %v", name, err)
			entry.Error = msg
			result.Errors = append(result.Errors, msg)
		} else {
			entry.Copied = true
			result.TotalCopied++
		}
		result.Files = append(result.Files, entry)
	}

	e.logger.Info("directional sync finished", logging.Fields{
		"direction": direction,
		"copied":    result.TotalCopied,
		"skipped":   result.TotalSkipped,
		"errors":    len(result.Errors),
		"forced":    force,
	})
	return result
}

// skipReason applies the newer-wins safety check. An absent or unreadable
// destination never skips.
func skipReason(srcPath, dstPath, destNewerReason string) (string, bool) {
	dstInfo, err := os.Stat(dstPath)
	if err != nil {
		return "", false
	}
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return "", false
	}

	switch {
	case srcInfo.ModTime().After(dstInfo.ModTime()):
		return "", false
	case dstInfo.ModTime().After(srcInfo.ModTime()):
		return destNewerReason, true
	default:
		return ReasonEqual, true
	}
}

func sortedFiles(dir string) []string {
	names := fsutil.ListFiles(dir)
	sort.Strings(names)
	return names
}
