package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
	"weatherdash.app/internal/adapters/display"
	"weatherdash.app/internal/app"
	"weatherdash.app/internal/config"
)

var forecastJSON bool

var forecastCmd = &cobra.Command{
	Use:   "forecast <city>",
	Short: "Print the dashboard for a city and exit",
	Long: `Fetch the weather for a city and print the dashboard as text, using
the saved theme, units and favorites.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runForecast,
}

func init() {
	forecastCmd.Flags().BoolVar(&forecastJSON, "json", false, "print the dashboard snapshot as JSON")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	// the one-shot command never writes the provider log file
	cfg.Weather.EnableLogging = false

	surface := display.NewTextSurface()
	application, err := app.NewApplicationWithConfig(cfg, app.ContainerOptions{Surface: surface.SnapshotSurface})
	if err != nil {
		return err
	}
	defer application.Close()

	ctx := cmd.Context()
	controller := application.Controller()
	controller.Start(ctx)
	if err := controller.Search(ctx, strings.Join(args, " ")); err != nil {
		return err
	}

	if forecastJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(surface.Snapshot())
	}
	return surface.Render(cmd.OutOrStdout())
}
