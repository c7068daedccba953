// Package commands implements the neowatch CLI subcommands.
package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rnjane/neowatch/config"
	"github.com/rnjane/neowatch/errors"
	"github.com/rnjane/neowatch/neo/ingestion"
	"github.com/rnjane/neowatch/neo/storage"
)

// registerDataFlags adds the data-file override flags shared by commands
// that load the database.
func registerDataFlags(cmd *cobra.Command) {
	cmd.Flags().String("neofile", "", "Path to the NEO CSV catalog (overrides config)")
	cmd.Flags().String("cadfile", "", "Path to the close-approach JSON data (overrides config)")
}

// loadDatabase loads both data files and links them into an in-memory
// database. File locations come from config unless overridden by flags.
func loadDatabase(cmd *cobra.Command) (*storage.NEODatabase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	neoPath := cfg.Data.NEOPath
	if override, _ := cmd.Flags().GetString("neofile"); override != "" {
		neoPath = override
	}
	cadPath := cfg.Data.CADPath
	if override, _ := cmd.Flags().GetString("cadfile"); override != "" {
		cadPath = override
	}

	neos, err := ingestion.LoadNEOs(neoPath)
	if err != nil {
		return nil, errors.WithHint(err, "set data.neo_path in the config or pass --neofile")
	}
	approaches, err := ingestion.LoadApproaches(cadPath)
	if err != nil {
		return nil, errors.WithHint(err, "set data.cad_path in the config or pass --cadfile")
	}

	return storage.NewNEODatabase(neos, approaches), nil
}

// parseDateFlag parses a changed --date-style flag as a calendar date.
// Returns nil when the flag was not given.
func parseDateFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	raw, _ := cmd.Flags().GetString(name)
	t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return nil, errors.NewInvalidRequestError("--%s must be a YYYY-MM-DD date, got %q", name, raw)
	}
	return &t, nil
}

// floatFlag returns a pointer to a changed float flag's value, or nil when
// the flag was not given. An explicit zero is a real bound.
func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}
