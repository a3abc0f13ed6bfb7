package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tripweaver/tripweaver"
	mcpAdapter "github.com/tripweaver/tripweaver/internal/adapters/mcp"
	"github.com/tripweaver/tripweaver/pkg/config"
	"github.com/tripweaver/tripweaver/pkg/domain"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts TripWeaver as an MCP Server.
This exposes the weather, flight and hotel lookups as tools for external AI
agents, plus the full plan_trip tool when a model credential is configured.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		var planner mcpAdapter.Planner
		reg := tripweaver.NewToolRegistry(cfg, slog.Default(), nil)
		if p, err := tripweaver.New(cfg); err == nil {
			planner = p
			reg = p.Registry()
		} else if !errors.Is(err, domain.ErrModelCredentialMissing) {
			log.Fatalf("Error initializing planner: %v", err)
		} else {
			slog.Warn("No model API key configured, the plan_trip tool is disabled")
		}

		srv := mcpAdapter.NewServer(reg, planner, tripweaver.Version)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			slog.Info("Starting TripWeaver MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting TripWeaver MCP Server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil && err != http.ErrServerClosed {
				slog.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		default:
			log.Fatalf("Unknown transport: %s (expected stdio or sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport to use: stdio or sse")
	mcpCmd.Flags().IntP("port", "p", 8090, "Port for the SSE transport")
}
