package main

import (
	"fmt"

	"github.com/DOCtorActoAntohich/fsa/internal/cli"
	"github.com/DOCtorActoAntohich/fsa/pkg/adapters/mcp"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes validate_fsa, fsa_to_regex and fsa_graph as MCP tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		cfg.MaxLength = cfg.ServerMaxLength()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		engine, closeEngine, err := cli.NewEngine(ctx, cfg, logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer closeEngine()

		srv := mcp.NewServer(engine, logger)

		switch transport {
		case "stdio":
			// Logs go to stderr so they cannot corrupt JSON-RPC on stdout.
			logger.Info("Starting FSA MCP Server (Stdio)")
			return srv.ServeStdio()
		case "sse":
			return srv.ServeSSE(ctx, cfg.HTTP.Port)
		default:
			return fmt.Errorf("unknown transport %q (expected stdio or sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringP("transport", "t", "stdio", "Transport: stdio, sse")
	mcpCmd.Flags().IntP("port", "p", 8080, "Port for the sse transport")
	addServerEngineFlags(mcpCmd)
}
