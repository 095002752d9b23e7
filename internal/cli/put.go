package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruvais-p/koaladb"
)

// NewPutCommand creates the put command.
func NewPutCommand(rootOpts *RootOptions) *cobra.Command {
	var id string
	var noTimestamps bool

	cmd := &cobra.Command{
		Use:   "put <collection> <json>",
		Short: "Create a document from a JSON object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := openCollection(rootOpts, args[0])
			if err != nil {
				return err
			}
			fields, err := parseFields(args[1])
			if err != nil {
				return err
			}

			var createOpts []koaladb.CreateOption
			if id != "" {
				createOpts = append(createOpts, koaladb.WithID(id))
			}
			if noTimestamps {
				createOpts = append(createOpts, koaladb.WithoutTimestamps())
			}
			doc, err := coll.Create(createOpts...)
			if err != nil {
				return err
			}

			if len(fields) > 0 {
				var writeOpts []koaladb.WriteOption
				if noTimestamps {
					writeOpts = append(writeOpts, koaladb.WithoutTimestamp())
				}
				if _, err := doc.Add(fields, writeOpts...); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "document id (generated when empty)")
	cmd.Flags().BoolVar(&noTimestamps, "no-timestamps", false, "skip automatic lifecycle timestamps")
	return cmd
}
