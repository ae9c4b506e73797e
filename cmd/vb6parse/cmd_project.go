package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/navionguy/vb6parse/project"
	"github.com/navionguy/vb6parse/sourcefile"
)

func newProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project <file.vbp>",
		Short: "Parse a project file and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := sourcefile.Load(args[0])
			if err != nil {
				return err
			}

			proj, diags := project.Parse(sf)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(proj); err != nil {
				return err
			}

			printDiagnostics(sf.FileName(), sf.Contents(), diags)
			return nil
		},
	}
}
