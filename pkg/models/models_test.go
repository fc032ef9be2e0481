package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionConstants(t *testing.T) {
	tests := []struct {
		action Action
		value  string
	}{
		{ActionCopyToCloud, "copy_to_cloud"},
		{ActionCopyToLocal, "copy_to_local"},
		{ActionConflict, "conflict"},
		{ActionSkip, "skip"},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.value, string(tt.action))
		})
	}
}

func TestFileComparison(t *testing.T) {
	t.Run("Existence", func(t *testing.T) {
		comp := FileComparison{
			Filename: "save.dat",
			Local:    &FileStat{Path: "/local/save.dat", Size: 10},
		}
		assert.True(t, comp.LocalExists())
		assert.False(t, comp.CloudExists())
	})

	t.Run("TransferSize", func(t *testing.T) {
		comp := FileComparison{
			Local:  &FileStat{Size: 10},
			Cloud:  &FileStat{Size: 20},
			Action: ActionCopyToCloud,
		}
		assert.Equal(t, int64(10), comp.TransferSize())

		comp.Action = ActionCopyToLocal
		assert.Equal(t, int64(20), comp.TransferSize())

		comp.Action = ActionConflict
		assert.Equal(t, int64(0), comp.TransferSize())

		comp.Action = ActionSkip
		assert.Equal(t, int64(0), comp.TransferSize())
	})
}

func TestResolutionStrategy(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for _, s := range AllStrategies() {
			assert.True(t, s.IsValid(), string(s))
			assert.NotEqual(t, "Unknown strategy", s.Description())
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		assert.False(t, ResolutionStrategy("newest").IsValid())
		assert.False(t, ResolutionStrategy("").IsValid())
	})
}

func TestSyncResult(t *testing.T) {
	t.Run("CleanRequiresNoErrorsAndNoConflicts", func(t *testing.T) {
		r := SyncResult{Success: true}
		assert.True(t, r.Clean())
		assert.False(t, r.HasConflicts())

		r.Conflicts = 1
		assert.False(t, r.Clean())
		assert.True(t, r.HasConflicts())

		r = SyncResult{Success: false}
		assert.False(t, r.Clean())
	})
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "is required"}
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "is required")
}

func TestFileStatNilMeansAbsent(t *testing.T) {
	comp := FileComparison{Filename: "gone.sav", Action: ActionSkip}
	assert.False(t, comp.LocalExists())
	assert.False(t, comp.CloudExists())
	assert.Equal(t, int64(0), comp.TransferSize())
}
