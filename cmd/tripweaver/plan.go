package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tripweaver/tripweaver"
	"github.com/tripweaver/tripweaver/internal/presentation/tui"
	"github.com/tripweaver/tripweaver/internal/renderer"
	"github.com/tripweaver/tripweaver/pkg/config"
	"github.com/tripweaver/tripweaver/pkg/domain"
)

var planCmd = &cobra.Command{
	Use:   "plan [city]",
	Short: "Plan a trip from the terminal",
	Long:  `Runs the planning agent once for a destination city and prints the plan.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		days, _ := cmd.Flags().GetInt("days")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		if !cfg.HasWeatherCredential() {
			slog.Warn("No weather API key configured, weather lookups will degrade to an advisory")
		}

		planner, err := tripweaver.New(cfg)
		if err != nil {
			if errors.Is(err, domain.ErrModelCredentialMissing) {
				fmt.Println("No model API key configured. Set TRIPWEAVER_MODEL_API_KEY (or GOOGLE_API_KEY / OPENAI_API_KEY).")
			} else {
				fmt.Printf("Error initializing planner: %v\n", err)
			}
			os.Exit(1)
		}

		req := domain.TripRequest{City: strings.Join(args, " "), Days: days}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		isTTY := term.IsTerminal(int(os.Stdout.Fd()))
		if isTTY {
			tui.PrintBanner()
			fmt.Printf("Planning a %d-day trip to %s...\n", req.Days, req.City)
		}

		result, err := planner.PlanTrip(ctx, req)
		if err != nil {
			fmt.Printf("Planning failed: %v\n", err)
			os.Exit(1)
		}

		markdown := renderer.Markdown(renderer.Render(req, result))

		if isTTY {
			render := tui.NewRenderer()
			if out, err := render(markdown); err == nil {
				fmt.Print(out)
				return
			}
		}
		fmt.Println(markdown)
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().IntP("days", "d", 5, "Trip length in days (1-30)")
}
