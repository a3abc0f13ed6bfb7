// Package mcp exposes the trip planning tools over the Model Context
// Protocol, so external agents can call the same weather, flight and hotel
// lookups the built-in planner uses.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tripweaver/tripweaver/pkg/domain"
	"github.com/tripweaver/tripweaver/pkg/registry"
	"github.com/tripweaver/tripweaver/pkg/tools/catalog"
	"github.com/tripweaver/tripweaver/pkg/tools/weather"
)

// Planner runs one planning request end to end. Nil means no model
// credential is configured; the plan_trip tool is then not registered and
// only the individual lookup tools are exposed.
type Planner interface {
	PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.PlanResult, error)
}

// Server wraps the tool registry and exposes it as an MCP server.
type Server struct {
	registry  *registry.Registry
	planner   Planner
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(reg *registry.Registry, planner Planner, version string) *Server {
	s := &Server{
		registry:  reg,
		planner:   planner,
		mcpServer: server.NewMCPServer("tripweaver-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: lookup_weather
	s.mcpServer.AddTool(mcp.NewTool(weather.ToolName,
		mcp.WithDescription("Look up the current weather and a short forecast for a city. Degrades to an advisory string when live data is unavailable."),
		mcp.WithString("city", mcp.Required(), mcp.Description("Destination city name")),
	), s.registryHandler(weather.ToolName))

	// TOOL: list_flights
	s.mcpServer.AddTool(mcp.NewTool(catalog.FlightsToolName,
		mcp.WithDescription("List example flight options to a city."),
		mcp.WithString("city", mcp.Required(), mcp.Description("Destination city name")),
	), s.registryHandler(catalog.FlightsToolName))

	// TOOL: list_hotels
	s.mcpServer.AddTool(mcp.NewTool(catalog.HotelsToolName,
		mcp.WithDescription("List example hotel options in a city."),
		mcp.WithString("city", mcp.Required(), mcp.Description("Destination city name")),
	), s.registryHandler(catalog.HotelsToolName))

	if s.planner == nil {
		return
	}

	// TOOL: plan_trip
	s.mcpServer.AddTool(mcp.NewTool("plan_trip",
		mcp.WithDescription("Run the full planning agent for a destination and trip length. Returns the structured plan, or the raw model output when it could not be used."),
		mcp.WithString("city", mcp.Required(), mcp.Description("Destination city name")),
		mcp.WithNumber("days", mcp.Description("Trip length in days (default 5)")),
	), s.handlePlanTrip)
}

// registryHandler adapts a registered tool to an MCP tool handler.
func (s *Server) registryHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		out, err := s.registry.Execute(ctx, name, args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", name, err)), nil
		}
		jsonBytes, err := json.Marshal(out)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s result encode failed: %v", name, err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	}
}

func (s *Server) handlePlanTrip(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	req := domain.TripRequest{Days: 5}
	if city, ok := args["city"].(string); ok {
		req.City = strings.TrimSpace(city)
	}
	if days, ok := args["days"].(float64); ok {
		req.Days = int(days)
	}

	result, err := s.planner.PlanTrip(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("plan_trip failed: %v", err)), nil
	}

	payload := map[string]any{"raw_text": result.RawText}
	if result.OK() {
		payload["plan"] = result.Parsed
	} else {
		payload["parse_error"] = result.ParseError
	}
	jsonBytes, _ := json.Marshal(payload)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
