package sync

import (
	"github.com/shirou/gopsutil/v4/disk"
)

// VerifyDiskSpace reports whether the filesystem holding destDir has at
// least required bytes free. The check is advisory: when usage cannot be
// determined (unsupported filesystem, missing path) availability is
// assumed and true is returned. The engine never blocks a copy on this
// check alone.
func VerifyDiskSpace(destDir string, required uint64) bool {
	usage, err := disk.Usage(destDir)
	if err != nil {
		return true
	}
	return usage.Free >= required
}
