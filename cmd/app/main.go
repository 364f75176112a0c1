package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"weatherdash.app/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "weatherdash",
	Short: "Weather dashboard server",
	Long: `weatherdash serves a personal weather dashboard: current conditions,
hourly, 3 day and 7 day forecasts, a city map and saved preferences.
Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file if present
		_ = godotenv.Load()
		logger.NewWithWriter(os.Stderr, logger.ParseLevel(os.Getenv("LOG_LEVEL"))).
			WithField("service", cmd.Root().Name()).
			SetDefault()
	},
	RunE: runServe,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
