package cli

import (
	"github.com/spf13/cobra"

	"github.com/savesync/savesync/pkg/compare"
)

// StatusFlags holds status command flags
type StatusFlags struct {
	All bool
}

var statusFlags StatusFlags

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [game...]",
		Short: "Show what a sync would do without changing anything",
		RunE:  runStatus,
	}

	cmd.Flags().BoolVarP(&statusFlags.All, "all", "a", false, "show status for every configured game")
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	m, _, err := requireInitialized()
	if err != nil {
		return err
	}

	formatter, err := newFormatter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	games, err := resolveGames(m, args, statusFlags.All)
	if err != nil {
		return err
	}

	for _, g := range games {
		local := g.ExpandedLocalDir()
		cloud := g.ExpandedCloudDir()
		comparisons := compare.Compare(local, cloud, g.LastSyncTime())
		if err := formatter.Comparisons(local, cloud, comparisons); err != nil {
			return err
		}
	}
	return nil
}
