package vdf

import (
	"github.com/savesync/savesync/pkg/models"
)

// ParseShortcuts decodes a shortcuts container and extracts its game
// entries. The expected layout is {"shortcuts": {"0": {fields...}, ...}}.
// Entries without a name are dropped; they cannot be valid shortcuts.
func ParseShortcuts(data []byte) ([]models.ShortcutRecord, error) {
	root, err := Parse(data)
	if err != nil {
		return nil, err
	}

	shortcuts := root.GetFold("shortcuts", "Shortcuts")
	if shortcuts == nil || shortcuts.Kind() != KindMap {
		return nil, nil
	}

	var records []models.ShortcutRecord
	for _, entry := range shortcuts.Entries() {
		if entry.Value.Kind() != KindMap {
			continue
		}
		if rec, ok := extractShortcut(entry.Value); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// extractShortcut pulls the relevant fields out of one indexed entry.
// Field casing varies between launcher versions, hence the fallbacks.
func extractShortcut(node *Value) (models.ShortcutRecord, bool) {
	var rec models.ShortcutRecord

	if v := node.GetFold("AppName", "appname"); v != nil {
		rec.Name, _ = v.Str()
	}
	if rec.Name == "" {
		return rec, false
	}

	if v := node.GetFold("Exe", "exe"); v != nil {
		rec.Exe, _ = v.Str()
	}
	if v := node.GetFold("StartDir", "startdir"); v != nil {
		rec.StartDir, _ = v.Str()
	}
	if v := node.GetFold("appid", "AppID", "appID"); v != nil {
		rec.AppID, _ = v.Uint32()
	}

	return rec, true
}
