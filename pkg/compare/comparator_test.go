package compare

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savesync/savesync/pkg/models"
)

// testHelper manages a local/cloud directory pair for comparator tests.
type testHelper struct {
	t        *testing.T
	localDir string
	cloudDir string
}

func newTestHelper(t *testing.T) *testHelper {
	t.Helper()
	tempDir := t.TempDir()

	h := &testHelper{
		t:        t,
		localDir: filepath.Join(tempDir, "local"),
		cloudDir: filepath.Join(tempDir, "cloud"),
	}
	require.NoError(t, os.MkdirAll(h.localDir, 0o755))
	require.NoError(t, os.MkdirAll(h.cloudDir, 0o755))
	return h
}

func (h *testHelper) createLocal(name string, content string, modTime time.Time) {
	h.t.Helper()
	h.create(filepath.Join(h.localDir, name), content, modTime)
}

func (h *testHelper) createCloud(name string, content string, modTime time.Time) {
	h.t.Helper()
	h.create(filepath.Join(h.cloudDir, name), content, modTime)
}

func (h *testHelper) create(path, content string, modTime time.Time) {
	h.t.Helper()
	require.NoError(h.t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(h.t, os.Chtimes(path, modTime, modTime))
}

func TestCompare(t *testing.T) {
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	t.Run("LocalOnly", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save1.dat", "local", base)

		comps := Compare(h.localDir, h.cloudDir, nil)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionCopyToCloud, comps[0].Action)
		assert.True(t, comps[0].LocalExists())
		assert.False(t, comps[0].CloudExists())
	})

	t.Run("CloudOnly", func(t *testing.T) {
		h := newTestHelper(t)
		h.createCloud("save1.dat", "cloud", base)

		comps := Compare(h.localDir, h.cloudDir, nil)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionCopyToLocal, comps[0].Action)
	})

	t.Run("OneSidedAlwaysCopiesRegardlessOfBaseline", func(t *testing.T) {
		h := newTestHelper(t)
		// older than the baseline on purpose
		h.createLocal("old.sav", "old", base.Add(-time.Hour))
		lastSync := base

		comps := Compare(h.localDir, h.cloudDir, &lastSync)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionCopyToCloud, comps[0].Action)
	})

	t.Run("BothModifiedSinceBaselineIsConflict", func(t *testing.T) {
		h := newTestHelper(t)
		lastSync := base
		h.createLocal("save.dat", "local", base.Add(time.Minute))
		h.createCloud("save.dat", "cloud", base.Add(2*time.Minute))

		comps := Compare(h.localDir, h.cloudDir, &lastSync)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionConflict, comps[0].Action)
	})

	t.Run("OnlyLocalModifiedSinceBaseline", func(t *testing.T) {
		h := newTestHelper(t)
		lastSync := base
		h.createLocal("save.dat", "new", base.Add(time.Minute))
		h.createCloud("save.dat", "old", base.Add(-time.Minute))

		comps := Compare(h.localDir, h.cloudDir, &lastSync)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionCopyToCloud, comps[0].Action)
	})

	t.Run("OnlyCloudModifiedSinceBaseline", func(t *testing.T) {
		h := newTestHelper(t)
		lastSync := base
		h.createLocal("save.dat", "old", base.Add(-time.Minute))
		h.createCloud("save.dat", "new", base.Add(time.Minute))

		comps := Compare(h.localDir, h.cloudDir, &lastSync)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionCopyToLocal, comps[0].Action)
	})

	t.Run("NeitherModifiedSinceBaseline", func(t *testing.T) {
		h := newTestHelper(t)
		lastSync := base
		h.createLocal("save.dat", "same", base.Add(-time.Minute))
		h.createCloud("save.dat", "same", base.Add(-2*time.Minute))

		comps := Compare(h.localDir, h.cloudDir, &lastSync)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionSkip, comps[0].Action)
	})

	t.Run("WithinSlackOfBaselineIsNotModified", func(t *testing.T) {
		h := newTestHelper(t)
		lastSync := base
		// exactly at baseline+slack, not after it
		h.createLocal("save.dat", "a", base.Add(Slack))
		h.createCloud("save.dat", "b", base.Add(time.Minute))

		comps := Compare(h.localDir, h.cloudDir, &lastSync)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionCopyToLocal, comps[0].Action)
	})

	t.Run("NoBaselineNewerLocalWins", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save.dat", "new", base.Add(time.Minute))
		h.createCloud("save.dat", "old", base)

		comps := Compare(h.localDir, h.cloudDir, nil)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionCopyToCloud, comps[0].Action)
	})

	t.Run("NoBaselineNewerCloudWins", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save.dat", "old", base)
		h.createCloud("save.dat", "new", base.Add(time.Minute))

		comps := Compare(h.localDir, h.cloudDir, nil)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionCopyToLocal, comps[0].Action)
	})

	t.Run("NoBaselineEqualTimesSkip", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("save.dat", "a", base)
		h.createCloud("save.dat", "b", base)

		comps := Compare(h.localDir, h.cloudDir, nil)
		require.Len(t, comps, 1)
		assert.Equal(t, models.ActionSkip, comps[0].Action)
	})

	t.Run("OrderedByFilename", func(t *testing.T) {
		h := newTestHelper(t)
		h.createLocal("c.sav", "c", base)
		h.createLocal("a.sav", "a", base)
		h.createCloud("b.sav", "b", base)

		comps := Compare(h.localDir, h.cloudDir, nil)
		require.Len(t, comps, 3)
		assert.Equal(t, "a.sav", comps[0].Filename)
		assert.Equal(t, "b.sav", comps[1].Filename)
		assert.Equal(t, "c.sav", comps[2].Filename)
	})

	t.Run("MissingDirectoriesTreatedAsEmpty", func(t *testing.T) {
		comps := Compare("/nonexistent/local", "/nonexistent/cloud", nil)
		assert.Empty(t, comps)
	})

	t.Run("SubdirectoriesIgnored", func(t *testing.T) {
		h := newTestHelper(t)
		require.NoError(t, os.MkdirAll(filepath.Join(h.localDir, "nested"), 0o755))
		h.createLocal("top.sav", "x", base)

		comps := Compare(h.localDir, h.cloudDir, nil)
		require.Len(t, comps, 1)
		assert.Equal(t, "top.sav", comps[0].Filename)
	})
}

func TestTransferSize(t *testing.T) {
	h := newTestHelper(t)
	base := time.Now().Add(-time.Hour)
	h.createLocal("save.dat", "12345", base.Add(time.Minute))
	h.createCloud("save.dat", "12", base)

	comps := Compare(h.localDir, h.cloudDir, nil)
	require.Len(t, comps, 1)
	assert.Equal(t, models.ActionCopyToCloud, comps[0].Action)
	assert.Equal(t, int64(5), comps[0].TransferSize())
}
