package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/savesync/savesync/internal/platform"
	"github.com/savesync/savesync/pkg/config"
	"github.com/savesync/savesync/pkg/fsutil"
	"github.com/savesync/savesync/pkg/logging"
	"github.com/savesync/savesync/pkg/savefind"
	"github.com/savesync/savesync/pkg/steam"
)

// DetectFlags holds detect command flags
type DetectFlags struct {
	DryRun    bool
	Overwrite bool
}

var detectFlags DetectFlags

// NewDetectCommand creates the detect command
func NewDetectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect Steam shortcut games and their save locations",
		Long: `Scan the Steam installation for non-Steam shortcut games, search for
their save directories and create a game configuration for each match.
Already configured games are left untouched unless --overwrite is given.`,
		RunE: runDetect,
	}

	cmd.Flags().BoolVar(&detectFlags.DryRun, "dry-run", false, "report detections without writing game configs")
	cmd.Flags().BoolVar(&detectFlags.Overwrite, "overwrite", false, "replace existing game configs")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string) error {
	m, cfg, err := requireInitialized()
	if err != nil {
		return err
	}

	if !cfg.Detection.SteamEnabled {
		return fmt.Errorf("steam detection is disabled in the configuration")
	}
	if !detectFlags.DryRun && cfg.General.CloudDirectory == "" {
		return fmt.Errorf("no cloud directory configured (set it with 'savesync config init --cloud-dir <path>')")
	}

	logger := createLogger(cfg)
	defer logger.Close()

	w := cmd.OutOrStdout()
	osType := platform.Current()

	detector := steam.NewDetector(osType, logger)
	steamPath := detector.InstallPath()
	if steamPath == "" {
		return fmt.Errorf("no Steam installation found")
	}
	fmt.Fprintf(w, "Steam installation: %s\n", steamPath)

	shortcuts := detector.DetectShortcuts()
	if len(shortcuts) == 0 {
		fmt.Fprintln(w, "No non-Steam shortcut games found")
		return nil
	}

	finder := savefind.NewFinder(osType, steamPath, logger)
	finder.AddCustomRoots(cfg.Detection.CustomPaths)

	var created, skipped int
	for _, sc := range shortcuts {
		fmt.Fprintf(w, "\n%s\n", sc.Name)

		candidates := finder.FindSaveDirs(sc)
		if len(candidates) == 0 {
			fmt.Fprintln(w, "  no save location found")
			continue
		}
		for _, c := range candidates {
			fmt.Fprintf(w, "  candidate: %s (%d save files)\n", c.Path, c.FileCount)
		}

		if detectFlags.DryRun {
			continue
		}

		if fsutil.FileExists(m.GamePath(sc.Name)) && !detectFlags.Overwrite {
			fmt.Fprintln(w, "  already configured, skipping")
			skipped++
			continue
		}

		g := &config.GameConfig{
			Name:     sc.Name,
			LocalDir: candidates[0].Path,
			CloudDir: filepath.Join(platform.ExpandPath(cfg.General.CloudDirectory), savefind.CleanGameName(sc.Name)),
			AppID:    sc.AppID,
		}
		if err := m.SaveGame(g); err != nil {
			logger.Error("save game config", err, logging.Fields{"game": sc.Name})
			fmt.Fprintf(w, "  error: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "  configured: %s\n", m.GamePath(sc.Name))
		created++
	}

	if !detectFlags.DryRun {
		fmt.Fprintf(w, "\nConfigured %d game(s), skipped %d\n", created, skipped)
	}
	return nil
}
