package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navionguy/vb6parse/cst"
	"github.com/navionguy/vb6parse/sourcefile"
)

func newTreeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Parse a source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := sourcefile.Load(args[0])
			if err != nil {
				return err
			}

			tree, diags := cst.Parse(sf.Contents(), sf.FileName())

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(tree.ToJSON()); err != nil {
					return err
				}
			} else {
				fmt.Print(tree.DebugTree())
			}

			printDiagnostics(sf.FileName(), sf.Contents(), diags)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the tree as JSON")
	return cmd
}
