package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/savesync/savesync/internal/platform"
	"github.com/savesync/savesync/pkg/fsutil"
)

const (
	configFileName = "config.toml"
	gamesDirName   = "games"
	backupsDirName = "backups"
	logsDirName    = "logs"
)

// Manager owns the on-disk configuration tree:
//
//	<root>/<hostname>/config.toml
//	<root>/<hostname>/games/<game>.toml
//	<root>/<hostname>/backups/
//	<root>/<hostname>/logs/
type Manager struct {
	hostname  string
	configDir string
}

// NewManager creates a manager rooted at root, or at the default location
// (the user config directory) when root is empty.
func NewManager(root string) (*Manager, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("determine hostname: %w", err)
	}

	if root == "" {
		root, err = DefaultRoot()
		if err != nil {
			return nil, err
		}
	} else {
		root = platform.ExpandPath(root)
	}

	return &Manager{
		hostname:  hostname,
		configDir: filepath.Join(root, hostname),
	}, nil
}

// DefaultRoot returns the default configuration root.
func DefaultRoot() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("determine config directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "savesync"), nil
}

// Hostname returns the hostname this configuration tree is scoped to.
func (m *Manager) Hostname() string { return m.hostname }

// ConfigDir returns the host-scoped configuration directory.
func (m *Manager) ConfigDir() string { return m.configDir }

// GamesDir returns the per-game configuration directory.
func (m *Manager) GamesDir() string { return filepath.Join(m.configDir, gamesDirName) }

// BackupsDir returns the backup directory.
func (m *Manager) BackupsDir() string { return filepath.Join(m.configDir, backupsDirName) }

// LogsDir returns the log directory.
func (m *Manager) LogsDir() string { return filepath.Join(m.configDir, logsDirName) }

// ConfigPath returns the global config file path.
func (m *Manager) ConfigPath() string { return filepath.Join(m.configDir, configFileName) }

// Initialized reports whether the configuration tree exists.
func (m *Manager) Initialized() bool {
	return fsutil.DirExists(m.configDir) && fsutil.FileExists(m.ConfigPath())
}

// Initialize creates the directory tree and a default global config file if
// one does not exist yet.
func (m *Manager) Initialize() error {
	for _, dir := range []string{m.configDir, m.GamesDir(), m.BackupsDir(), m.LogsDir()} {
		if err := fsutil.EnsureDir(dir); err != nil {
			return fmt.Errorf("create config directory %s: %w", dir, err)
		}
	}

	if !fsutil.FileExists(m.ConfigPath()) {
		if err := m.Save(Default(m.hostname)); err != nil {
			return err
		}
	}
	return nil
}

// Load reads and validates the global configuration.
func (m *Manager) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(m.ConfigPath())
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", m.ConfigPath(), err)
	}

	cfg := Default(m.hostname)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", m.ConfigPath(), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes the global configuration as TOML.
func (m *Manager) Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("system.os", cfg.System.OS)
	v.Set("system.hostname", cfg.System.Hostname)
	v.Set("general.cloud_directory", cfg.General.CloudDirectory)
	v.Set("general.backup_directory", cfg.General.BackupDirectory)
	v.Set("general.log_level", cfg.General.LogLevel)
	v.Set("general.log_format", cfg.General.LogFormat)
	v.Set("detection.steam_enabled", cfg.Detection.SteamEnabled)
	v.Set("detection.custom_paths", cfg.Detection.CustomPaths)

	if err := fsutil.EnsureDir(m.configDir); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(m.ConfigPath()); err != nil {
		return fmt.Errorf("write config %s: %w", m.ConfigPath(), err)
	}
	return nil
}

// ResolveBackupDir resolves the configured backup directory, which may be
// relative to the config root.
func (m *Manager) ResolveBackupDir(cfg *Config) string {
	dir := cfg.General.BackupDirectory
	if dir == "" {
		return m.BackupsDir()
	}
	dir = platform.ExpandPath(dir)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(m.configDir, dir)
	}
	return dir
}
