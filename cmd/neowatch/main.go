package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rnjane/neowatch/cmd/neowatch/commands"
	"github.com/rnjane/neowatch/config"
	"github.com/rnjane/neowatch/logger"
)

var rootCmd = &cobra.Command{
	Use:   "neowatch",
	Short: "neowatch - Explore near-Earth objects and their close approaches",
	Long: `neowatch - Explore past and future close approaches of near-Earth objects.

neowatch loads NASA's NEO catalog and close-approach data into an in-memory
database and answers ad-hoc queries over it.

Available commands:
  inspect - Look up a single NEO by designation or name
  query   - Filter close approaches and display or export the results
  config  - Show or initialize configuration
  version - Show version information

Examples:
  neowatch inspect --pdes 433              # Show NEO 433 (Eros)
  neowatch inspect --name Halley -a        # Show an NEO with its approaches
  neowatch query --date 2020-01-01        # Approaches on a calendar date
  neowatch query --max-distance 0.05 --hazardous --limit 5
  neowatch query --start-date 2030-01-01 --outfile results.csv`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		jsonLogs := false
		if cfg, err := config.Load(); err == nil {
			jsonLogs = cfg.Log.JSON
		}

		if err := logger.Initialize(verbosity, jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.QueryCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
