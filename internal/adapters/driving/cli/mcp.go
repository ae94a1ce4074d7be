package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/quickread-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can extract
readable article text and look through reading history.

By default, the server communicates over stdio using JSON-RPC.
Use --port to serve over HTTP instead, for example with MCP Inspector.

Examples:
  # Stdio mode (default)
  quickread mcp serve

  # HTTP mode
  quickread mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "quickread": {
        "command": "/path/to/quickread",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// serveMCP runs the server. Replaced in tests.
var serveMCP = func(ctx context.Context, server *mcp.Server, addr string) error {
	if addr != "" {
		return server.RunHTTP(ctx, addr)
	}
	return server.Run(ctx)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{Capture: captureService}
	if historyService != nil {
		ports.History = historyService
	}
	if settingsService != nil {
		ports.Settings = settingsService
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watchConfig != nil {
		go func() {
			if err := watchConfig(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	addr := ""
	if port > 0 {
		addr = fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
	}
	return serveMCP(ctx, server, addr)
}
