package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/savesync/savesync/pkg/config"
	"github.com/savesync/savesync/pkg/models"
)

func sampleResult() *models.SyncResult {
	start := time.Now().Add(-time.Second)
	return &models.SyncResult{
		RunID:       "run-1",
		LocalDir:    "/local",
		CloudDir:    "/cloud",
		StartTime:   start,
		EndTime:     time.Now(),
		Success:     true,
		FilesSynced: 1,
		Conflicts:   1,
		Actions: []models.ActionResult{
			{Filename: "a.sav", Action: models.ActionCopyToCloud, Direction: "local → cloud", Size: 12, Success: true},
			{Filename: "b.sav", Action: models.ActionConflict, Direction: "conflict", NeedsResolution: true},
		},
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		format string
		name   string
	}{
		{"human", FormatHuman},
		{"", FormatHuman},
		{"json", FormatJSON},
		{"yaml", FormatYAML},
	}
	for _, tt := range tests {
		f, err := New(tt.format, &buf)
		require.NoError(t, err)
		assert.Equal(t, tt.name, f.Name())
	}

	_, err := New("xml", &buf)
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	t.Run("SyncResult", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewJSONFormatter(&buf)
		require.NoError(t, f.SyncResult(sampleResult()))

		var decoded models.SyncResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "run-1", decoded.RunID)
		assert.Len(t, decoded.Actions, 2)
		assert.Equal(t, models.ActionConflict, decoded.Actions[1].Action)
	})

	t.Run("Comparisons", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewJSONFormatter(&buf)
		comps := []models.FileComparison{
			{Filename: "a.sav", Action: models.ActionSkip},
		}
		require.NoError(t, f.Comparisons("/local", "/cloud", comps))

		var decoded comparisonReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "/local", decoded.LocalDir)
		require.Len(t, decoded.Comparisons, 1)
		assert.Nil(t, decoded.Comparisons[0].Local)
	})

	t.Run("Games", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewJSONFormatter(&buf)
		games := []*config.GameConfig{{Name: "G", LocalDir: "/l", CloudDir: "/c"}}
		require.NoError(t, f.Games(games))

		var decoded []config.GameConfig
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "G", decoded[0].Name)
	})
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewYAMLFormatter(&buf)
	require.NoError(t, f.SyncResult(sampleResult()))

	var decoded models.SyncResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, 1, decoded.Conflicts)
}

func TestHumanFormatter(t *testing.T) {
	t.Run("SyncResult", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewHumanFormatter(&buf)
		require.NoError(t, f.SyncResult(sampleResult()))

		out := buf.String()
		assert.Contains(t, out, "a.sav")
		assert.Contains(t, out, "b.sav")
		assert.Contains(t, out, "conflict")
		assert.Contains(t, out, "Synced 1")
	})

	t.Run("EmptyConflicts", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewHumanFormatter(&buf)
		require.NoError(t, f.Conflicts(nil))
		assert.Contains(t, buf.String(), "No pending conflicts")
	})

	t.Run("DirectionalResult", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewHumanFormatter(&buf)
		result := &models.DirectionalResult{
			Direction:    "to_cloud",
			TotalCopied:  1,
			TotalSkipped: 1,
			Files: []models.DirectionalCopy{
				{Filename: "a.sav", Copied: true},
				{Filename: "b.sav", Reason: "cloud is newer"},
			},
		}
		require.NoError(t, f.DirectionalResult(result))

		out := buf.String()
		assert.Contains(t, out, "a.sav")
		assert.Contains(t, out, "cloud is newer")
		assert.Contains(t, out, "copied 1")
	})

	t.Run("GamesNeverSynced", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewHumanFormatter(&buf)
		games := []*config.GameConfig{{Name: "G", LocalDir: "/l", CloudDir: "/c"}}
		require.NoError(t, f.Games(games))
		assert.Contains(t, buf.String(), "never")
	})
}
