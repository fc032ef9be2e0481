package models

// ShortcutRecord is one non-Steam game entry decoded from a shortcuts
// container. Records are immutable after construction and are not persisted
// by the core; the configuration layer owns persistence.
type ShortcutRecord struct {
	// Name is the display name of the game
	Name string

	// Exe is the configured executable path, quoting preserved as stored
	Exe string

	// StartDir is the working directory the game is launched from
	StartDir string

	// AppID is the numeric application id assigned by the launcher
	AppID uint32

	// UserID is the id of the user profile the shortcut belongs to
	UserID string
}

// SaveCandidate is a directory judged likely to contain save data.
// Candidates are produced in descending confidence order: lower Tier wins,
// then higher FileCount, then lexicographic path.
type SaveCandidate struct {
	// Path is the absolute directory path
	Path string

	// Tier is the search tier that produced the candidate (1 = compat
	// prefix, 2 = install directory, 3 = common OS save roots)
	Tier int

	// FileCount is the number of save-like files observed under Path
	FileCount int
}
