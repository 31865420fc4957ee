package cli

import (
	mcpadapter "github.com/unitcheck/unitcheck/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the unitcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start unitcheck MCP server (stdio)",
		Long:  "Start the unitcheck MCP server using stdio transport. This lets AI assistants validate assessment text, look up units, and run coverage evaluations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewUnitcheckMCPServer(offline)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Resolve units from the built-in table only")

	return cmd
}
