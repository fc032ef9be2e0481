package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/savesync/savesync/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "savesync",
		Short: "Game save file synchronization utility",
		Long: `savesync keeps game save files synchronized between a local machine and
a shared cloud directory. It compares both sides against the last sync
time, copies one-sided changes, reports two-sided changes as conflicts
and can detect non-Steam shortcut games and their save locations.`,
		Version:       cli.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewSyncCommand())
	rootCmd.AddCommand(cli.NewPushCommand())
	rootCmd.AddCommand(cli.NewPullCommand())
	rootCmd.AddCommand(cli.NewStatusCommand())
	rootCmd.AddCommand(cli.NewConflictsCommand())
	rootCmd.AddCommand(cli.NewResolveCommand())
	rootCmd.AddCommand(cli.NewDetectCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
