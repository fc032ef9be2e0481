package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/savesync/savesync/internal/platform"
	"github.com/savesync/savesync/pkg/fsutil"
	"github.com/savesync/savesync/pkg/models"
)

// GameConfig describes one synchronized game.
type GameConfig struct {
	Name     string `mapstructure:"name" json:"name" yaml:"name"`
	LocalDir string `mapstructure:"local_dir" json:"local_dir" yaml:"local_dir"`
	CloudDir string `mapstructure:"cloud_dir" json:"cloud_dir" yaml:"cloud_dir"`
	AppID    uint32 `mapstructure:"app_id" json:"app_id,omitempty" yaml:"app_id,omitempty"`
	LastSync string `mapstructure:"last_sync" json:"last_sync,omitempty" yaml:"last_sync,omitempty"`
}

// Validate checks that the game configuration is usable.
func (g *GameConfig) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return &models.ValidationError{Field: "name", Message: "game name is required"}
	}
	if g.LocalDir == "" {
		return &models.ValidationError{Field: "local_dir", Message: "local directory is required"}
	}
	if g.CloudDir == "" {
		return &models.ValidationError{Field: "cloud_dir", Message: "cloud directory is required"}
	}
	if g.LastSync != "" {
		if _, err := time.Parse(time.RFC3339, g.LastSync); err != nil {
			return &models.ValidationError{Field: "last_sync", Message: "must be an RFC 3339 timestamp"}
		}
	}
	return nil
}

// LastSyncTime returns the parsed last-sync timestamp, or nil when the game
// has never been synchronized.
func (g *GameConfig) LastSyncTime() *time.Time {
	if g.LastSync == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, g.LastSync)
	if err != nil {
		return nil
	}
	return &t
}

// SetLastSync records t as the last successful synchronization time.
func (g *GameConfig) SetLastSync(t time.Time) {
	g.LastSync = t.Format(time.RFC3339)
}

// ExpandedLocalDir returns the local directory with environment variables and
// the home shorthand expanded.
func (g *GameConfig) ExpandedLocalDir() string { return platform.ExpandPath(g.LocalDir) }

// ExpandedCloudDir returns the cloud directory with environment variables and
// the home shorthand expanded.
func (g *GameConfig) ExpandedCloudDir() string { return platform.ExpandPath(g.CloudDir) }

// gameFileName maps a game name to its config file name.
func gameFileName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, string(filepath.Separator), "_")
	return s + ".toml"
}

// GamePath returns the config file path for the named game.
func (m *Manager) GamePath(name string) string {
	return filepath.Join(m.GamesDir(), gameFileName(name))
}

// ListGames returns all configured games sorted by name.
func (m *Manager) ListGames() ([]*GameConfig, error) {
	files := fsutil.ListFiles(m.GamesDir())

	var games []*GameConfig
	for _, f := range files {
		if filepath.Ext(f) != ".toml" {
			continue
		}
		g, err := m.loadGameFile(filepath.Join(m.GamesDir(), f))
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	sort.Slice(games, func(i, j int) bool { return games[i].Name < games[j].Name })
	return games, nil
}

// LoadGame loads the named game's configuration.
func (m *Manager) LoadGame(name string) (*GameConfig, error) {
	path := m.GamePath(name)
	if !fsutil.FileExists(path) {
		return nil, fmt.Errorf("game %q is not configured", name)
	}
	return m.loadGameFile(path)
}

func (m *Manager) loadGameFile(path string) (*GameConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read game config %s: %w", path, err)
	}

	g := &GameConfig{}
	if err := v.Unmarshal(g); err != nil {
		return nil, fmt.Errorf("parse game config %s: %w", path, err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return g, nil
}

// SaveGame writes the game's configuration as TOML.
func (m *Manager) SaveGame(g *GameConfig) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}
	if err := fsutil.EnsureDir(m.GamesDir()); err != nil {
		return fmt.Errorf("create games directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("name", g.Name)
	v.Set("local_dir", g.LocalDir)
	v.Set("cloud_dir", g.CloudDir)
	if g.AppID != 0 {
		v.Set("app_id", g.AppID)
	}
	if g.LastSync != "" {
		v.Set("last_sync", g.LastSync)
	}

	path := m.GamePath(g.Name)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write game config %s: %w", path, err)
	}
	return nil
}

// UpdateLastSync records t as the named game's last sync time and persists it.
func (m *Manager) UpdateLastSync(name string, t time.Time) error {
	g, err := m.LoadGame(name)
	if err != nil {
		return err
	}
	g.SetLastSync(t)
	return m.SaveGame(g)
}
