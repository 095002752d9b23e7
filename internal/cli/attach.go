package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAttachCommand creates the attach command.
func NewAttachCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "attach <collection> <id> <field> <file>...",
		Short: "Copy files into the content store and reference them from a document",
		Long: `Copy one or more local files into the shared content store and record the
references in the named field: a single path for one file, an array of paths
for several.`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := openCollection(rootOpts, args[0])
			if err != nil {
				return err
			}
			id, fieldName, files := args[1], args[2], args[3:]

			if len(files) == 1 {
				rel, err := coll.StoreMediaFile(files[0], id, fieldName)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), rel)
				return nil
			}

			rels, err := coll.StoreMediaFiles(files, id, fieldName)
			if err != nil {
				return err
			}
			for _, rel := range rels {
				fmt.Fprintln(cmd.OutOrStdout(), rel)
			}
			return nil
		},
	}
}
