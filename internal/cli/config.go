package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or initialize the savesync configuration.`,
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigGamesCommand())

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var cloudDir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration tree for this host",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			if err := m.Initialize(); err != nil {
				return err
			}

			if cloudDir != "" {
				cfg, err := m.Load()
				if err != nil {
					return err
				}
				cfg.General.CloudDirectory = cloudDir
				if err := m.Save(cfg); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration created at %s\n", m.ConfigDir())
			return nil
		},
	}

	cmd.Flags().StringVar(&cloudDir, "cloud-dir", "", "base cloud directory for synchronized saves")
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, cfg, err := requireInitialized()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Config file:      %s\n", m.ConfigPath())
			fmt.Fprintf(w, "Hostname:         %s\n", cfg.System.Hostname)
			fmt.Fprintf(w, "OS:               %s\n", cfg.System.OS)
			fmt.Fprintf(w, "Cloud directory:  %s\n", cfg.General.CloudDirectory)
			fmt.Fprintf(w, "Backup directory: %s\n", m.ResolveBackupDir(cfg))
			fmt.Fprintf(w, "Log level:        %s\n", cfg.General.LogLevel)
			fmt.Fprintf(w, "Log format:       %s\n", cfg.General.LogFormat)
			fmt.Fprintf(w, "Steam detection:  %v\n", cfg.Detection.SteamEnabled)
			return nil
		},
	}
}

func newConfigGamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List configured games",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := requireInitialized()
			if err != nil {
				return err
			}

			formatter, err := newFormatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			games, err := m.ListGames()
			if err != nil {
				return err
			}
			return formatter.Games(games)
		},
	}
}
