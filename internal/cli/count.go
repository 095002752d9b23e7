package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count <collection> [query]",
		Short: "Count matching documents",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := openCollection(rootOpts, args[0])
			if err != nil {
				return err
			}
			queryArg := ""
			if len(args) == 2 {
				queryArg = args[1]
			}
			q, err := parseQuery(queryArg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), coll.Count(q))
			return nil
		},
	}
}
