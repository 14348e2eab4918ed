package main

import (
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rm-hull/restaurant-insights-api/cmd"
)

func main() {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:   "restaurant-insights",
		Short: "Restaurant insights dashboard API",
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./data/restaurants.db", "Path to the restaurants SQLite database")

	var opts cmd.ApiServerOptions
	apiServerCmd := &cobra.Command{
		Use:   "api-server",
		Short: "Start the HTTP API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			opts.DbPath = dbPath
			return cmd.ApiServer(opts)
		},
	}
	apiServerCmd.Flags().IntVar(&opts.Port, "port", 8080, "Port to run HTTP server on")
	apiServerCmd.Flags().BoolVar(&opts.Debug, "debug", false, "Enable debugging (pprof) - WARNING: do not enable in production")
	apiServerCmd.Flags().StringVar(&opts.CsvPath, "csv", "", "CSV file or URL to import on start-up and on the refresh schedule")
	apiServerCmd.Flags().StringVar(&opts.Schedule, "refresh", "", "CRON schedule for re-importing --csv (default every 6 hours)")
	apiServerCmd.Flags().DurationVar(&opts.TTL, "ttl", 5*time.Minute, "How long a loaded dataset is served before re-reading the database")

	var csvPath string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import restaurants from a CSV file or URL, dropping incomplete rows",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Import(dbPath, csvPath)
		},
	}
	importCmd.Flags().StringVar(&csvPath, "csv", "./data/Dataset.csv", "CSV file or URL to import")

	var city string
	var useSample bool
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard statistics as JSON",
		RunE: func(c *cobra.Command, _ []string) error {
			var filter *string
			if c.Flags().Changed("city") {
				filter = &city
			}
			return cmd.Summary(os.Stdout, dbPath, filter, useSample)
		},
	}
	summaryCmd.Flags().StringVar(&city, "city", "", "Only include restaurants in this city (exact match)")
	summaryCmd.Flags().BoolVar(&useSample, "sample", false, "Use the embedded sample dataset instead of the database")

	rootCmd.AddCommand(apiServerCmd, importCmd, summaryCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
