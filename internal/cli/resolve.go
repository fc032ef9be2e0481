package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/savesync/savesync/pkg/conflict"
	"github.com/savesync/savesync/pkg/models"
)

// ResolveFlags holds resolve command flags
type ResolveFlags struct {
	Strategy string
}

var resolveFlags ResolveFlags

// NewResolveCommand creates the resolve command
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <game> <filename>",
		Short: "Resolve a conflicting file pair",
		Long: `Resolve a conflict between a game's local and cloud version of a file.

Both versions are backed up before any strategy is applied.

Strategies:
  keep_local  ` + models.KeepLocal.Description() + `
  keep_cloud  ` + models.KeepCloud.Description() + `
  keep_both   ` + models.KeepBoth.Description() + `
  manual      ` + models.Manual.Description(),
		Args: cobra.ExactArgs(2),
		RunE: runResolve,
	}

	cmd.Flags().StringVarP(&resolveFlags.Strategy, "strategy", "s", "", "resolution strategy: keep_local, keep_cloud, keep_both, manual (required)")
	cmd.MarkFlagRequired("strategy")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	m, cfg, err := requireInitialized()
	if err != nil {
		return err
	}

	logger := createLogger(cfg)
	defer logger.Close()

	strategy := models.ResolutionStrategy(strings.ToLower(resolveFlags.Strategy))
	if !strategy.IsValid() {
		return fmt.Errorf("invalid strategy %q (valid: keep_local, keep_cloud, keep_both, manual)", resolveFlags.Strategy)
	}

	gameName, filename := args[0], args[1]
	if filepath.Base(filename) != filename {
		return fmt.Errorf("filename must be a base name, not a path: %s", filename)
	}

	g, err := m.LoadGame(gameName)
	if err != nil {
		return err
	}
	if err := validateGameDirs(g); err != nil {
		return err
	}

	unlock, err := lockGame(m, g.Name)
	if err != nil {
		return err
	}
	defer unlock()

	localPath := filepath.Join(g.ExpandedLocalDir(), filename)
	cloudPath := filepath.Join(g.ExpandedCloudDir(), filename)

	resolver := conflict.NewResolver(logger)
	if err := resolver.Resolve(localPath, cloudPath, strategy, m.ResolveBackupDir(cfg)); err != nil {
		return fmt.Errorf("resolve %s: %w", filename, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Resolved %s with strategy %s\n", filename, strategy)
	return nil
}
