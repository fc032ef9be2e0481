// Package platform resolves the operating-system specific directories the
// save search and configuration layers depend on: home-relative expansions,
// launcher installation candidates and the well-known save roots.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// OSType identifies the platform family the tool is running on
type OSType string

const (
	// Linux covers Linux and other Unix-like systems
	Linux OSType = "linux"
	// Windows covers Windows hosts
	Windows OSType = "windows"
)

// Current returns the OSType of the running host. Non-Windows systems are
// treated as Linux.
func Current() OSType {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Linux
}

// ExpandPath expands ~, $VARS and Windows-style %VARS% in a configured path
// and normalizes the result.
func ExpandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		expanded = path
	}

	expanded = os.ExpandEnv(expanded)

	if home, err := homedir.Dir(); err == nil {
		replacer := strings.NewReplacer(
			"%USERPROFILE%", home,
			"%APPDATA%", filepath.Join(home, "AppData", "Roaming"),
			"%LOCALAPPDATA%", filepath.Join(home, "AppData", "Local"),
			"%DOCUMENTS%", filepath.Join(home, "Documents"),
		)
		expanded = replacer.Replace(expanded)
	}

	return filepath.Clean(expanded)
}

// SteamCandidates returns the installation paths to probe for a Steam
// install on the given platform, highest priority first.
func SteamCandidates(osType OSType) []string {
	if osType == Windows {
		return []string{
			`C:\Program Files (x86)\Steam`,
			`C:\Program Files\Steam`,
		}
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".steam", "steam"),
		// Flatpak install keeps its own prefix
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	}
}

// SaveRoots returns the well-known directories games write save data under
// on the given platform. Only roots that exist are returned.
func SaveRoots(osType OSType) []string {
	home, err := homedir.Dir()
	if err != nil {
		return nil
	}

	var roots []string
	if osType == Windows {
		roots = []string{
			filepath.Join(home, "Documents"),
			filepath.Join(home, "Documents", "My Games"),
			filepath.Join(home, "Saved Games"),
			filepath.Join(home, "AppData", "Roaming"),
			filepath.Join(home, "AppData", "Local"),
			filepath.Join(home, "AppData", "LocalLow"),
		}
	} else {
		roots = []string{
			filepath.Join(home, ".local", "share"),
			filepath.Join(home, ".config"),
			filepath.Join(home, "Documents"),
			filepath.Join(home, "Documents", "My Games"),
		}
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			roots = append(roots, xdg)
		}
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			roots = append(roots, xdg)
		}
	}

	var existing []string
	for _, root := range roots {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			existing = append(existing, root)
		}
	}
	return existing
}

// ProfileSaveSubdirs lists the user-profile subtrees inside an embedded
// Windows-style prefix that commonly hold save data.
func ProfileSaveSubdirs() []string {
	return []string{
		filepath.Join("AppData", "Local"),
		filepath.Join("AppData", "Roaming"),
		filepath.Join("AppData", "LocalLow"),
		"Documents",
		filepath.Join("Documents", "My Games"),
		"Saved Games",
	}
}
