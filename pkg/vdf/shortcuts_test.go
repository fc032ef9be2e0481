package vdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildShortcuts assembles a shortcuts container in the layout written by
// the launcher: {"shortcuts": {"0": {...}, "1": {...}}}.
func buildShortcuts(entries ...func(*containerBuilder)) []byte {
	b := &containerBuilder{}
	b.openMap("shortcuts")
	for i, entry := range entries {
		b.openMap(indexKey(i))
		entry(b)
		b.closeMap()
	}
	b.closeMap()
	return b.buf
}

func indexKey(i int) string {
	return string(rune('0' + i))
}

func TestParseShortcuts(t *testing.T) {
	t.Run("TwoGames", func(t *testing.T) {
		data := buildShortcuts(
			func(b *containerBuilder) {
				b.str("AppName", "Hollow Knight")
				b.str("Exe", `"/games/hk/hk.exe"`)
				b.str("StartDir", `"/games/hk"`)
				b.uint32("appid", 3417347081)
			},
			func(b *containerBuilder) {
				b.str("appname", "Celeste")
				b.str("exe", `"/games/celeste/celeste.exe"`)
				b.str("startdir", `"/games/celeste"`)
			},
		)

		records, err := ParseShortcuts(data)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "Hollow Knight", records[0].Name)
		assert.Equal(t, `"/games/hk/hk.exe"`, records[0].Exe)
		assert.Equal(t, `"/games/hk"`, records[0].StartDir)
		assert.Equal(t, uint32(3417347081), records[0].AppID)

		// lowercase field variant
		assert.Equal(t, "Celeste", records[1].Name)
		assert.Equal(t, uint32(0), records[1].AppID)
	})

	t.Run("NamelessEntryDropped", func(t *testing.T) {
		data := buildShortcuts(
			func(b *containerBuilder) {
				b.str("Exe", "/games/x.exe")
			},
			func(b *containerBuilder) {
				b.str("AppName", "Real Game")
			},
		)

		records, err := ParseShortcuts(data)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Real Game", records[0].Name)
	})

	t.Run("NoShortcutsKey", func(t *testing.T) {
		b := &containerBuilder{}
		b.str("unrelated", "data")

		records, err := ParseShortcuts(b.buf)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("EmptyShortcutsMap", func(t *testing.T) {
		b := &containerBuilder{}
		b.openMap("shortcuts").closeMap()

		records, err := ParseShortcuts(b.buf)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("MalformedContainerYieldsNoRecords", func(t *testing.T) {
		data := buildShortcuts(func(b *containerBuilder) {
			b.str("AppName", "Valid Game")
		})
		data = append(data, 0x05)
		data = append(data, []byte("junk\x00")...)

		records, err := ParseShortcuts(data)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
		assert.Nil(t, records)
	})

	t.Run("CapitalizedShortcutsKey", func(t *testing.T) {
		b := &containerBuilder{}
		b.openMap("Shortcuts")
		b.openMap("0")
		b.str("AppName", "Game")
		b.closeMap()
		b.closeMap()

		records, err := ParseShortcuts(b.buf)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})
}
