package cmd

import (
	"rad-sync/internal/intent"

	"github.com/spf13/cobra"
)

// newStatusCmd creates the status command.
func newStatusCmd(provider *AppProvider) *cobra.Command {
	sortBy := intent.DefaultSortBy

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Display the sync status of a repository",
		Long: `Display whether other nodes are in sync or out of sync with this
node's signed references. By default the current repository is shown;
use --rid to pick another one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			req := intent.StatusRequest{
				SortBy: sortBy,
				RID:    provider.RID,
			}
			return app.Engine.Status(cmd.Context(), req)
		},
	}

	cmd.Flags().Var(&sortBy, "sort-by", "Sort the table by column (nid, alias, or status)")

	return cmd
}
