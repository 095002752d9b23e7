package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruvais-p/koaladb"
)

// NewCleanupCommand creates the cleanup command.
func NewCleanupCommand(rootOpts *RootOptions) *cobra.Command {
	var days int
	var fieldName string

	cmd := &cobra.Command{
		Use:   "cleanup <collection>",
		Short: "Delete documents older than N days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := openCollection(rootOpts, args[0])
			if err != nil {
				return err
			}
			n, err := coll.CleanupOlderThan(days, fieldName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d document(s)\n", n)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "age threshold in days")
	cmd.Flags().StringVar(&fieldName, "field", koaladb.CreatedAtField, "timestamp field to age against")
	return cmd
}
