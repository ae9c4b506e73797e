package main

import (
	"github.com/spf13/cobra"

	"github.com/navionguy/vb6parse/parseserv"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP parse service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return parseserv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}
