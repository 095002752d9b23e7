package cli

import (
	"github.com/spf13/cobra"

	"github.com/ruvais-p/koaladb"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <collection>",
		Short: "Print collection statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := openCollection(rootOpts, args[0])
			if err != nil {
				return err
			}

			stats := map[string]any{
				"collection": coll.Name(),
				"documents":  coll.Count(nil),
			}
			if id, _, ok := coll.OldestDocument(koaladb.CreatedAtField); ok {
				stats["oldest"] = id
			}
			if id, _, ok := coll.NewestDocument(koaladb.CreatedAtField); ok {
				stats["newest"] = id
			}
			return printJSON(cmd.OutOrStdout(), stats)
		},
	}
}
