package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navionguy/vb6parse/cst"
	"github.com/navionguy/vb6parse/sourcefile"
	"github.com/navionguy/vb6parse/vb6diag"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse source files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitWithErrors := false

			for _, path := range args {
				sf, err := sourcefile.Load(path)
				if err != nil {
					return err
				}

				_, diags := cst.Parse(sf.Contents(), sf.FileName())
				printDiagnostics(sf.FileName(), sf.Contents(), diags)
				if len(diags) > 0 {
					exitWithErrors = true
				}
			}

			if exitWithErrors {
				os.Exit(1)
			}
			return nil
		},
	}
}

// printDiagnostics writes file:line prefixed diagnostics to
// stderr, one per line.
func printDiagnostics(fileName, source string, diags []vb6diag.Diagnostic) {
	ctx := vb6diag.NewContext(fileName, source)
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s:%d: %s: %s\n", fileName, ctx.LineAt(d.Span), d.Severity, d.Message())
	}
}
