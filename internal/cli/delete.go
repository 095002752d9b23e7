package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var queryArg string

	cmd := &cobra.Command{
		Use:   "delete <collection> [id]",
		Short: "Delete documents and their media files",
		Long: `Delete one document by id, or every match of --query. Media files the
removed documents reference are deleted from the content store.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := openCollection(rootOpts, args[0])
			if err != nil {
				return err
			}

			if len(args) == 2 {
				return coll.Delete(args[1])
			}
			if queryArg == "" {
				return fmt.Errorf("pass an id or --query")
			}
			q, err := parseQuery(queryArg)
			if err != nil {
				return err
			}
			n, err := coll.DeleteMany(q)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d document(s)\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&queryArg, "query", "", "JSON query selecting documents to delete")
	return cmd
}
