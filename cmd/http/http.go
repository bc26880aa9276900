package http

import "github.com/spf13/cobra"

func NewHTTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "HTTP API server commands",
		Long:  "Commands for running the estagiário tracking HTTP API.",
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
