package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/savesync/savesync/pkg/config"
	"github.com/savesync/savesync/pkg/logging"
	"github.com/savesync/savesync/pkg/output"
	"github.com/savesync/savesync/pkg/sync"
)

// SyncFlags holds sync command flags
type SyncFlags struct {
	All    bool
	DryRun bool
}

var syncFlags SyncFlags

// NewSyncCommand creates the sync command
func NewSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [game...]",
		Short: "Synchronize save files with the cloud directory",
		Long: `Synchronize each game's local save directory with its cloud directory.
Files changed on only one side since the last sync are copied to the other.
Files changed on both sides are reported as conflicts and left untouched.`,
		RunE: runSync,
	}

	cmd.Flags().BoolVarP(&syncFlags.All, "all", "a", false, "synchronize every configured game")
	cmd.Flags().BoolVar(&syncFlags.DryRun, "dry-run", false, "report what would happen without modifying any file")

	return cmd
}

func runSync(cmd *cobra.Command, args []string) error {
	m, cfg, err := requireInitialized()
	if err != nil {
		return err
	}

	logger := createLogger(cfg)
	defer logger.Close()

	formatter, err := newFormatter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	games, err := resolveGames(m, args, syncFlags.All)
	if err != nil {
		return err
	}

	var bar *pb.ProgressBar
	if len(games) > 1 && formatter.Name() == output.FormatHuman && !globalFlags.Quiet {
		bar = pb.StartNew(len(games))
		defer bar.Finish()
	}

	engine := sync.New(logger)

	var failures int
	for _, g := range games {
		if err := syncGame(m, engine, formatter, logger, g); err != nil {
			logger.Error("sync failed", err, logging.Fields{"game": g.Name})
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", g.Name, err)
			failures++
		}
		if bar != nil {
			bar.Increment()
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d game(s) failed to sync", failures)
	}
	return nil
}

func syncGame(m *config.Manager, engine *sync.Engine, formatter output.Formatter, logger logging.Logger, g *config.GameConfig) error {
	if err := validateGameDirs(g); err != nil {
		return err
	}

	if !syncFlags.DryRun {
		unlock, err := lockGame(m, g.Name)
		if err != nil {
			return err
		}
		defer unlock()
	}

	cfg, err := m.Load()
	if err != nil {
		return err
	}

	result := engine.Sync(sync.Options{
		LocalDir:  g.ExpandedLocalDir(),
		CloudDir:  g.ExpandedCloudDir(),
		BackupDir: m.ResolveBackupDir(cfg),
		LastSync:  g.LastSyncTime(),
		DryRun:    syncFlags.DryRun,
	})

	if err := formatter.SyncResult(result); err != nil {
		return err
	}

	// The baseline only moves forward after a run with no errors and no
	// conflicts; otherwise the next run re-examines the same files.
	if !result.DryRun && result.Clean() {
		if err := m.UpdateLastSync(g.Name, time.Now()); err != nil {
			return fmt.Errorf("record last sync time: %w", err)
		}
	}

	if !result.Success {
		return fmt.Errorf("completed with %d error(s)", len(result.Errors))
	}
	return nil
}
