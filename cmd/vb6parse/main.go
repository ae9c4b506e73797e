package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vb6parse",
		Short: "Lossless parsing tools for VB6 source and project files",
	}

	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
