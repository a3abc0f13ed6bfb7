package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/tripweaver/tripweaver"
	"github.com/tripweaver/tripweaver/internal/adapters/httpapi"
	"github.com/tripweaver/tripweaver/pkg/config"
	"github.com/tripweaver/tripweaver/pkg/domain"
	"github.com/tripweaver/tripweaver/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the planner behind an HTML form and a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if addr != "" {
			cfg.ListenAddr = addr
		}

		if !cfg.HasWeatherCredential() {
			slog.Warn("No weather API key configured, weather lookups will degrade to an advisory")
		}

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		metrics := observability.NewMetrics(registry)

		var planner httpapi.Planner
		p, err := tripweaver.New(cfg,
			tripweaver.WithLogger(slog.Default()),
			tripweaver.WithLifecycleHooks(metrics.Hooks()),
		)
		switch {
		case err == nil:
			planner = p
		case errors.Is(err, domain.ErrModelCredentialMissing):
			// Serve anyway; every planning route answers with a
			// configuration notice until a key is provided.
			slog.Warn("No model API key configured, planning is disabled")
		default:
			fmt.Printf("Error initializing planner: %v\n", err)
			os.Exit(1)
		}

		handler := httpapi.NewHandler(planner,
			httpapi.WithLogger(slog.Default()),
			httpapi.WithGatherer(registry),
			httpapi.WithVersion(tripweaver.Version),
		)

		srv := &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting TripWeaver Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("TripWeaver Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (overrides config, default :8080)")
}
