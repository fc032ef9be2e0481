package sync

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/savesync/savesync/pkg/fsutil"
)

// BackupTimeFormat is the timestamp embedded in backup filenames. The
// resulting names sort lexicographically by creation time.
const BackupTimeFormat = "20060102-150405"

// CreateBackup copies filePath into backupDir under the name
// <original>.<YYYYMMDD-HHMMSS>.<side>.backup and returns the backup path.
// The naming convention is shared with existing backups and must not
// change. sideLabel identifies which side the content came from ("local" or
// "cloud").
func CreateBackup(filePath, backupDir, sideLabel string) (string, error) {
	if !fsutil.FileExists(filePath) {
		return "", fmt.Errorf("backup source does not exist: %s", filePath)
	}

	if err := fsutil.EnsureDir(backupDir); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	name := fmt.Sprintf("%s.%s.%s.backup",
		filepath.Base(filePath), time.Now().Format(BackupTimeFormat), sideLabel)
	backupPath := filepath.Join(backupDir, name)

	if err := fsutil.CopyFile(filePath, backupPath); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	return backupPath, nil
}
