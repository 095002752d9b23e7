package cli

import (
	"github.com/spf13/cobra"

	"github.com/ruvais-p/koaladb/field"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <collection> <id>",
		Short: "Print one document as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := openCollection(rootOpts, args[0])
			if err != nil {
				return err
			}
			doc, err := coll.Get(args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), field.FieldsToAny(doc))
		},
	}
}
