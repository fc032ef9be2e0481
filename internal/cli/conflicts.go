package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/savesync/savesync/pkg/compare"
	"github.com/savesync/savesync/pkg/conflict"
	"github.com/savesync/savesync/pkg/models"
)

// ConflictsFlags holds conflicts command flags
type ConflictsFlags struct {
	All bool
}

var conflictsFlags ConflictsFlags

// NewConflictsCommand creates the conflicts command
func NewConflictsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts [game...]",
		Short: "List files changed on both sides since the last sync",
		RunE:  runConflicts,
	}

	cmd.Flags().BoolVarP(&conflictsFlags.All, "all", "a", false, "check every configured game")
	return cmd
}

func runConflicts(cmd *cobra.Command, args []string) error {
	m, _, err := requireInitialized()
	if err != nil {
		return err
	}

	formatter, err := newFormatter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	games, err := resolveGames(m, args, conflictsFlags.All)
	if err != nil {
		return err
	}

	var infos []models.ConflictInfo
	for _, g := range games {
		local := g.ExpandedLocalDir()
		cloud := g.ExpandedCloudDir()
		for _, comp := range compare.Compare(local, cloud, g.LastSyncTime()) {
			if comp.Action != models.ActionConflict {
				continue
			}
			infos = append(infos, conflict.Info(
				filepath.Join(local, comp.Filename),
				filepath.Join(cloud, comp.Filename),
			))
		}
	}

	return formatter.Conflicts(infos)
}
