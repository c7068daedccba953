package commands

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rnjane/neowatch/config"
	"github.com/rnjane/neowatch/display"
	"github.com/rnjane/neowatch/errors"
	"github.com/rnjane/neowatch/logger"
	"github.com/rnjane/neowatch/neo/export"
	"github.com/rnjane/neowatch/neo/query"
	"github.com/rnjane/neowatch/neo/types"
)

var (
	queryLimit   int
	queryOutfile string
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter close approaches and display or export the results",
	Long: `query - Query close approaches

Filter the close-approach data by date, distance, velocity, NEO diameter,
and hazard status. All given criteria must hold (logical AND). Results are
shown as a table, or written to a CSV/JSON file with --outfile.

Examples:
  neowatch query --date 2020-01-01
  neowatch query --start-date 2020-01-01 --end-date 2020-12-31
  neowatch query --max-distance 0.05 --hazardous
  neowatch query --min-velocity 20 --limit 5 --outfile fast.json`,

	RunE: runQueryCommand,
}

func init() {
	QueryCmd.Flags().String("date", "", "Approach occurs on this date (YYYY-MM-DD)")
	QueryCmd.Flags().String("start-date", "", "Approach occurs on or after this date (YYYY-MM-DD)")
	QueryCmd.Flags().String("end-date", "", "Approach occurs on or before this date (YYYY-MM-DD)")
	QueryCmd.Flags().Float64("min-distance", 0, "Minimum approach distance (au)")
	QueryCmd.Flags().Float64("max-distance", 0, "Maximum approach distance (au)")
	QueryCmd.Flags().Float64("min-velocity", 0, "Minimum relative velocity (km/s)")
	QueryCmd.Flags().Float64("max-velocity", 0, "Maximum relative velocity (km/s)")
	QueryCmd.Flags().Float64("min-diameter", 0, "Minimum NEO diameter (km)")
	QueryCmd.Flags().Float64("max-diameter", 0, "Maximum NEO diameter (km)")
	QueryCmd.Flags().Bool("hazardous", false, "Only potentially hazardous NEOs")
	QueryCmd.Flags().Bool("not-hazardous", false, "Only non-hazardous NEOs")
	QueryCmd.MarkFlagsMutuallyExclusive("hazardous", "not-hazardous")

	QueryCmd.Flags().IntVarP(&queryLimit, "limit", "l", -1, "Maximum number of results (0 = unlimited)")
	QueryCmd.Flags().StringVarP(&queryOutfile, "outfile", "o", "", "Write results to this .csv or .json file")
	registerDataFlags(QueryCmd)
}

func runQueryCommand(cmd *cobra.Command, args []string) error {
	criteria, err := buildCriteria(cmd)
	if err != nil {
		return err
	}

	database, err := loadDatabase(cmd)
	if err != nil {
		return err
	}

	filters := criteria.Filters()
	logger.Debugw("running query", "filters", len(filters))

	limit := queryLimit
	if limit < 0 {
		// Not given on the command line: fall back to the configured default
		limit = 0
		if cfg, err := config.Load(); err == nil {
			limit = cfg.Query.Limit
		}
	}

	results := query.Limit(database.Query(filters), limit)

	if queryOutfile != "" {
		return writeResults(results, queryOutfile)
	}

	if display.ShouldOutputJSON(cmd) {
		return displayResultsJSON(results)
	}

	rows, err := display.ApproachTable(results)
	if err != nil {
		return err
	}
	if rows > 0 {
		pterm.Printf("\n%d close approach(es)\n", rows)
	}
	return nil
}

// buildCriteria translates the command's changed flags into query criteria.
// Flags left at their defaults produce no filter.
func buildCriteria(cmd *cobra.Command) (query.Criteria, error) {
	var c query.Criteria
	var err error

	if c.Date, err = parseDateFlag(cmd, "date"); err != nil {
		return c, err
	}
	if c.StartDate, err = parseDateFlag(cmd, "start-date"); err != nil {
		return c, err
	}
	if c.EndDate, err = parseDateFlag(cmd, "end-date"); err != nil {
		return c, err
	}

	c.DistanceMin = floatFlag(cmd, "min-distance")
	c.DistanceMax = floatFlag(cmd, "max-distance")
	c.VelocityMin = floatFlag(cmd, "min-velocity")
	c.VelocityMax = floatFlag(cmd, "max-velocity")
	c.DiameterMin = floatFlag(cmd, "min-diameter")
	c.DiameterMax = floatFlag(cmd, "max-diameter")

	if cmd.Flags().Changed("hazardous") {
		hazardous := true
		c.Hazardous = &hazardous
	} else if cmd.Flags().Changed("not-hazardous") {
		hazardous := false
		c.Hazardous = &hazardous
	}

	return c, nil
}

// writeResults routes to the CSV or JSON writer based on the file extension.
func writeResults(results iter.Seq[*types.CloseApproach], path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return export.WriteCSV(results, path)
	case ".json":
		return export.WriteJSON(results, path)
	default:
		return errors.WithHint(
			errors.NewInvalidRequestError("cannot infer output format from %q", path),
			"use a .csv or .json file extension")
	}
}

func displayResultsJSON(results iter.Seq[*types.CloseApproach]) error {
	type row struct {
		types.ApproachRecord
		NEO *types.NEORecord `json:"neo,omitempty"`
	}

	rows := []row{}
	for ca := range results {
		r := row{ApproachRecord: ca.Serialize()}
		if ca.NEO != nil {
			view := ca.NEO.Serialize()
			r.NEO = &view
		}
		rows = append(rows, r)
	}
	return display.OutputJSON(rows)
}
