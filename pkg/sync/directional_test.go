package sync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectional(t *testing.T) {
	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	engine := New(nil)

	t.Run("PushCopiesMissingFiles", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save1.dat", "one", base)
		h.createLocal("save2.dat", "two", base)

		result := engine.ToCloud(h.localDir, h.cloudDir, false)

		assert.Equal(t, "to_cloud", result.Direction)
		assert.Equal(t, 2, result.TotalCopied)
		assert.Equal(t, 0, result.TotalSkipped)
		assert.Equal(t, "one", h.readFile(filepath.Join(h.cloudDir, "save1.dat")))
	})

	t.Run("PushSkipsNewerCloudFile", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save.dat", "old local", base)
		h.createCloud("save.dat", "new cloud", base.Add(time.Minute))

		result := engine.ToCloud(h.localDir, h.cloudDir, false)

		assert.Equal(t, 0, result.TotalCopied)
		assert.Equal(t, 1, result.TotalSkipped)
		require.Len(t, result.Files, 1)
		assert.Equal(t, ReasonCloudNewer, result.Files[0].Reason)
		assert.Equal(t, "new cloud", h.readFile(filepath.Join(h.cloudDir, "save.dat")))
	})

	t.Run("PushForceOverwritesNewerCloudFile", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save.dat", "old local", base)
		h.createCloud("save.dat", "new cloud", base.Add(time.Minute))

		result := engine.ToCloud(h.localDir, h.cloudDir, true)

		assert.True(t, result.Forced)
		assert.Equal(t, 1, result.TotalCopied)
		assert.Equal(t, "old local", h.readFile(filepath.Join(h.cloudDir, "save.dat")))
	})

	t.Run("PushCopiesNewerLocalFile", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save.dat", "new local", base.Add(time.Minute))
		h.createCloud("save.dat", "old cloud", base)

		result := engine.ToCloud(h.localDir, h.cloudDir, false)

		assert.Equal(t, 1, result.TotalCopied)
		assert.Equal(t, "new local", h.readFile(filepath.Join(h.cloudDir, "save.dat")))
	})

	t.Run("EqualTimesSkip", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save.dat", "a", base)
		h.createCloud("save.dat", "b", base)

		result := engine.ToCloud(h.localDir, h.cloudDir, false)

		assert.Equal(t, 1, result.TotalSkipped)
		require.Len(t, result.Files, 1)
		assert.Equal(t, ReasonEqual, result.Files[0].Reason)
	})

	t.Run("PullSkipsNewerLocalFile", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save.dat", "new local", base.Add(time.Minute))
		h.createCloud("save.dat", "old cloud", base)

		result := engine.FromCloud(h.localDir, h.cloudDir, false)

		assert.Equal(t, "from_cloud", result.Direction)
		assert.Equal(t, 1, result.TotalSkipped)
		require.Len(t, result.Files, 1)
		assert.Equal(t, ReasonLocalNewer, result.Files[0].Reason)
		assert.Equal(t, "new local", h.readFile(filepath.Join(h.localDir, "save.dat")))
	})

	t.Run("PullCopiesNewerCloudFile", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save.dat", "old local", base)
		h.createCloud("save.dat", "new cloud", base.Add(time.Minute))

		result := engine.FromCloud(h.localDir, h.cloudDir, false)

		assert.Equal(t, 1, result.TotalCopied)
		assert.Equal(t, "new cloud", h.readFile(filepath.Join(h.localDir, "save.dat")))
	})

	t.Run("FilesProcessedInNameOrder", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("z.sav", "z", base)
		h.createLocal("a.sav", "a", base)
		h.createLocal("m.sav", "m", base)

		result := engine.ToCloud(h.localDir, h.cloudDir, false)

		require.Len(t, result.Files, 3)
		assert.Equal(t, "a.sav", result.Files[0].Filename)
		assert.Equal(t, "m.sav", result.Files[1].Filename)
		assert.Equal(t, "z.sav", result.Files[2].Filename)
	})

	t.Run("EmptySourceDirectory", func(t *testing.T) {
		h := newTestHelper(t)
		result := engine.ToCloud(h.localDir, h.cloudDir, false)
		assert.Equal(t, 0, result.TotalCopied)
		assert.Empty(t, result.Files)
	})

	t.Run("CopyErrorRecorded", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save.dat", "x", base)
		require.NoError(t, os.MkdirAll(filepath.Join(h.cloudDir, "save.dat"), 0o755))

		result := engine.ToCloud(h.localDir, h.cloudDir, true)

		assert.Len(t, result.Errors, 1)
		require.Len(t, result.Files, 1)
		assert.False(t, result.Files[0].Copied)
		assert.NotEmpty(t, result.Files[0].Error)
	})
}
