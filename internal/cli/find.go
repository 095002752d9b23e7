package cli

import (
	"github.com/spf13/cobra"
)

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find <collection> [query]",
		Short: "Print matching documents as JSON",
		Long: `Print every document matching a JSON query, keyed by id.

The query maps field names to literals (equality) or operator objects:

  koala find users '{"age": {"$gte": 21}, "active": true}'

Operators: $gt $lt $gte $lte $ne $in $nin. Without a query, prints the whole
collection.`,
		Args: cobra.RangeArgs(1, 2),
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
			return printJSON(cmd.OutOrStdout(), docsToAny(coll.Find(q)))
		},
	}
}
