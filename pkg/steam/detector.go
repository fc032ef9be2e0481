// Package steam locates a Steam installation and the per-user shortcut
// containers holding non-Steam game entries.
package steam

import (
	"os"
	"path/filepath"

	"github.com/savesync/savesync/internal/platform"
	"github.com/savesync/savesync/pkg/fsutil"
	"github.com/savesync/savesync/pkg/logging"
	"github.com/savesync/savesync/pkg/models"
	"github.com/savesync/savesync/pkg/vdf"
)

// Detector finds the Steam installation, its user profiles and the shortcut
// containers they own.
type Detector struct {
	osType platform.OSType
	logger logging.Logger

	installPath  string
	userdataPath string
}

// NewDetector creates a detector for the given platform. A nil logger
// discards output.
func NewDetector(osType platform.OSType, logger logging.Logger) *Detector {
	if logger == nil {
		logger = logging.NewNull()
	}
	return &Detector{osType: osType, logger: logger}
}

// InstallPath probes the well-known installation locations and returns the
// first that looks like a real Steam install, or "" if none is found.
// The result is cached for subsequent calls.
func (d *Detector) InstallPath() string {
	if d.installPath != "" {
		return d.installPath
	}

	for _, candidate := range platform.SteamCandidates(d.osType) {
		if !fsutil.DirExists(candidate) {
			continue
		}
		// A valid install carries a launcher script/binary or a userdata tree.
		if fsutil.FileExists(filepath.Join(candidate, "steam.sh")) ||
			fsutil.FileExists(filepath.Join(candidate, "steam.exe")) ||
			fsutil.DirExists(filepath.Join(candidate, "userdata")) {
			d.installPath = candidate
			return candidate
		}
	}
	return ""
}

// UserdataPath returns the userdata directory of the detected install, or
// "" when Steam or the directory is absent.
func (d *Detector) UserdataPath() string {
	if d.userdataPath != "" {
		return d.userdataPath
	}

	install := d.InstallPath()
	if install == "" {
		return ""
	}

	userdata := filepath.Join(install, "userdata")
	if !fsutil.DirExists(userdata) {
		return ""
	}
	d.userdataPath = userdata
	return userdata
}

// UserIDs returns the numeric user profile ids found under userdata, sorted
// ascending.
func (d *Detector) UserIDs() []string {
	userdata := d.UserdataPath()
	if userdata == "" {
		return nil
	}

	entries, err := os.ReadDir(userdata)
	if err != nil {
		return nil
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() && isNumeric(entry.Name()) {
			ids = append(ids, entry.Name())
		}
	}
	return ids
}

// ShortcutsPath returns the path of the shortcut container for a user id,
// or "" when the user has none.
func (d *Detector) ShortcutsPath(userID string) string {
	userdata := d.UserdataPath()
	if userdata == "" {
		return ""
	}

	path := filepath.Join(userdata, userID, "config", "shortcuts.vdf")
	if !fsutil.FileExists(path) {
		return ""
	}
	return path
}

// DetectShortcuts decodes the shortcut containers of every user profile and
// returns the combined game records. A malformed container for one user is
// logged and skipped; one corrupt file never aborts the batch.
func (d *Detector) DetectShortcuts() []models.ShortcutRecord {
	var all []models.ShortcutRecord

	for _, userID := range d.UserIDs() {
		path := d.ShortcutsPath(userID)
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			d.logger.Warn("skipping unreadable shortcuts file", logging.Fields{
				"user": userID, "path": path, "error": err.Error(),
			})
			continue
		}

		records, err := vdf.ParseShortcuts(data)
		if err != nil {
			d.logger.Warn("skipping malformed shortcuts file", logging.Fields{
				"user": userID, "path": path, "error": err.Error(),
			})
			continue
		}

		for i := range records {
			records[i].UserID = userID
		}
		all = append(all, records...)

		d.logger.Debug("decoded shortcuts", logging.Fields{
			"user": userID, "games": len(records),
		})
	}

	return all
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
