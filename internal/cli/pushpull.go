package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savesync/savesync/pkg/models"
	"github.com/savesync/savesync/pkg/sync"
)

// DirectionalFlags holds push and pull command flags
type DirectionalFlags struct {
	Force bool
}

var pushFlags DirectionalFlags
var pullFlags DirectionalFlags

// NewPushCommand creates the push command
func NewPushCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push <game>",
		Short: "Copy local save files to the cloud directory",
		Long: `Copy the game's local save files to its cloud directory.
Files whose cloud version is newer are skipped unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirectional(cmd, args[0], pushFlags.Force, true)
		},
	}

	cmd.Flags().BoolVarP(&pushFlags.Force, "force", "f", false, "overwrite even when the cloud version is newer")
	return cmd
}

// NewPullCommand creates the pull command
func NewPullCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull <game>",
		Short: "Copy cloud save files to the local directory",
		Long: `Copy the game's cloud save files to its local directory.
Files whose local version is newer are skipped unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirectional(cmd, args[0], pullFlags.Force, false)
		},
	}

	cmd.Flags().BoolVarP(&pullFlags.Force, "force", "f", false, "overwrite even when the local version is newer")
	return cmd
}

func runDirectional(cmd *cobra.Command, name string, force, toCloud bool) error {
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

	g, err := m.LoadGame(name)
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

	engine := sync.New(logger)

	var result *models.DirectionalResult
	if toCloud {
		result = engine.ToCloud(g.ExpandedLocalDir(), g.ExpandedCloudDir(), force)
	} else {
		result = engine.FromCloud(g.ExpandedLocalDir(), g.ExpandedCloudDir(), force)
	}

	if err := formatter.DirectionalResult(result); err != nil {
		return err
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("completed with %d error(s)", len(result.Errors))
	}
	return nil
}
