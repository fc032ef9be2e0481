// Package config persists the tool's configuration: one TOML file of global
// settings plus one TOML file per tracked game, scoped under the hostname so
// several machines can share one synced config tree.
package config

import (
	"github.com/savesync/savesync/internal/platform"
	"github.com/savesync/savesync/pkg/models"
)

// Config represents the global application configuration
type Config struct {
	System    SystemConfig    `mapstructure:"system"`
	General   GeneralConfig   `mapstructure:"general"`
	Detection DetectionConfig `mapstructure:"detection"`
}

// SystemConfig records the host this configuration belongs to
type SystemConfig struct {
	OS       string `mapstructure:"os"`
	Hostname string `mapstructure:"hostname"`
}

// GeneralConfig holds sync-wide settings
type GeneralConfig struct {
	// CloudDirectory is the root of the synced cloud storage mount
	CloudDirectory string `mapstructure:"cloud_directory"`

	// BackupDirectory receives overwrite and conflict backups; relative
	// paths resolve against the config root
	BackupDirectory string `mapstructure:"backup_directory"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is "text" or "json"
	LogFormat string `mapstructure:"log_format"`
}

// DetectionConfig holds game discovery settings
type DetectionConfig struct {
	// SteamEnabled toggles the shortcut container scan
	SteamEnabled bool `mapstructure:"steam_enabled"`

	// CustomPaths are extra roots consulted by the save search
	CustomPaths []string `mapstructure:"custom_paths"`
}

// Default returns the default configuration for the current host.
func Default(hostname string) *Config {
	return &Config{
		System: SystemConfig{
			OS:       string(platform.Current()),
			Hostname: hostname,
		},
		General: GeneralConfig{
			CloudDirectory:  "",
			BackupDirectory: "backups",
			LogLevel:        "info",
			LogFormat:       "text",
		},
		Detection: DetectionConfig{
			SteamEnabled: true,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &models.ValidationError{
			Field:   "general.log_level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	switch c.General.LogFormat {
	case "text", "json":
	default:
		return &models.ValidationError{
			Field:   "general.log_format",
			Message: "must be 'text' or 'json'",
		}
	}

	return nil
}
