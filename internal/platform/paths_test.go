package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	homedir "github.com/mitchellh/go-homedir"
)

func TestExpandPath(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	t.Run("Tilde", func(t *testing.T) {
		assert.Equal(t, filepath.Join(home, "saves"), ExpandPath("~/saves"))
	})

	t.Run("EnvVar", func(t *testing.T) {
		t.Setenv("SAVESYNC_TEST_DIR", "/data")
		assert.Equal(t, filepath.Join("/data", "saves"), ExpandPath("$SAVESYNC_TEST_DIR/saves"))
	})

	t.Run("WindowsStyleVars", func(t *testing.T) {
		assert.Equal(t,
			filepath.Join(home, "AppData", "Roaming", "Game"),
			ExpandPath(filepath.Join("%APPDATA%", "Game")))
		assert.Equal(t, home, ExpandPath("%USERPROFILE%"))
	})

	t.Run("PlainPathUntouched", func(t *testing.T) {
		assert.Equal(t, filepath.Clean("/var/lib/saves"), ExpandPath("/var/lib/saves"))
	})
}

func TestSteamCandidates(t *testing.T) {
	t.Run("Linux", func(t *testing.T) {
		candidates := SteamCandidates(Linux)
		require.NotEmpty(t, candidates)
		assert.Contains(t, candidates[0], ".local")
	})

	t.Run("Windows", func(t *testing.T) {
		candidates := SteamCandidates(Windows)
		require.Len(t, candidates, 2)
		assert.Contains(t, candidates[0], "Steam")
	})
}

func TestSaveRootsOnlyExisting(t *testing.T) {
	for _, root := range SaveRoots(Current()) {
		assert.DirExists(t, root)
	}
}

func TestProfileSaveSubdirs(t *testing.T) {
	subdirs := ProfileSaveSubdirs()
	assert.Contains(t, subdirs, filepath.Join("AppData", "Roaming"))
	assert.Contains(t, subdirs, "Saved Games")
}
