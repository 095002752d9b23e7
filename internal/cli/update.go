package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var queryArg string

	cmd := &cobra.Command{
		Use:   "update <collection> <id|-> <json>",
		Short: "Merge JSON fields into documents",
		Long: `Merge a JSON object into one document by id, or into every match of
--query when the id argument is "-".`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := openCollection(rootOpts, args[0])
			if err != nil {
				return err
			}
			fields, err := parseFields(args[2])
			if err != nil {
				return err
			}

			if args[1] != "-" {
				return coll.Update(args[1], fields)
			}

			q, err := parseQuery(queryArg)
			if err != nil {
				return err
			}
			n, err := coll.UpdateMany(q, fields)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %d document(s)\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&queryArg, "query", "", "JSON query selecting documents to update")
	return cmd
}
