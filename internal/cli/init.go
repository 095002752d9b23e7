package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init [collection...]",
		Short: "Initialize the database directory and declare collections",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(rootOpts)
			if err != nil {
				return err
			}
			for _, name := range args {
				if err := db.CreateCollection(name); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "database initialized at %s\n", db.Root())
			return nil
		},
	}
}
