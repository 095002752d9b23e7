// Package cli implements the koala command line front-end.
//
// Every command goes through the public koaladb API; nothing here touches
// backing files directly.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ruvais-p/koaladb"
	"github.com/ruvais-p/koaladb/field"
	"github.com/ruvais-p/koaladb/query"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Path    string
	Verbose bool
}

// NewRootCommand creates the root command for the koala CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "koala",
		Short: "KoalaDB - embedded document store",
		Long:  "Inspect and edit a KoalaDB database directory from the command line.",
	}

	cmd.PersistentFlags().StringVarP(&opts.Path, "path", "p", "KoalaDB", "database directory")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewCollectionsCommand(opts))
	cmd.AddCommand(NewPutCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewFindCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewCleanupCommand(opts))
	cmd.AddCommand(NewAttachCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// openDB opens the database the global flags point at.
func openDB(opts *RootOptions) (*koaladb.DB, error) {
	logger := koaladb.NoopLogger()
	if opts.Verbose {
		logger = koaladb.NewTextLogger(slog.LevelDebug)
	}
	return koaladb.Open(opts.Path, koaladb.WithLogger(logger))
}

// openCollection opens the database and one collection in it.
func openCollection(opts *RootOptions, name string) (*koaladb.Collection, error) {
	db, err := openDB(opts)
	if err != nil {
		return nil, err
	}
	return db.Collection(name)
}

// parseFields parses a JSON object argument into typed fields.
func parseFields(arg string) (field.Fields, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(arg), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}
	return field.FieldsFromAny(raw)
}

// parseQuery parses an optional JSON query argument. Empty input means
// match-everything.
func parseQuery(arg string) (*query.Query, error) {
	if arg == "" {
		return nil, nil
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(arg), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON query: %w", err)
	}
	return query.FromMap(raw)
}

// printJSON renders a value as indented JSON on the command's stdout.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// docsToAny converts a result set for JSON printing.
func docsToAny(docs map[string]field.Fields) map[string]map[string]any {
	out := make(map[string]map[string]any, len(docs))
	for id, f := range docs {
		out[id] = field.FieldsToAny(f)
	}
	return out
}
