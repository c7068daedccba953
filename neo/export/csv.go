// Package export writes query results to flat files. The CSV writer emits
// one fixed-column row per close approach; the JSON writer emits one object
// per approach with the NEO fields nested under a "neo" key.
package export

import (
	"encoding/csv"
	"iter"
	"math"
	"os"
	"strconv"

	"github.com/rnjane/neowatch/errors"
	"github.com/rnjane/neowatch/logger"
	"github.com/rnjane/neowatch/neo/types"
)

// csvColumns is the fixed column order of the CSV output.
var csvColumns = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// WriteCSV writes a stream of close approaches to a CSV file, one row per
// approach with its NEO's fields merged in. Orphan approaches get an empty
// NEO view.
func WriteCSV(results iter.Seq[*types.CloseApproach], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create CSV output")
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(csvColumns); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	rows := 0
	for ca := range results {
		approach := ca.Serialize()
		neo := neoView(ca)

		row := []string{
			approach.DatetimeUTC,
			formatFloat(float64(approach.DistanceAU)),
			formatFloat(float64(approach.VelocityKMS)),
			neo.Designation,
			neo.Name,
			formatFloat(float64(neo.DiameterKM)),
			strconv.FormatBool(neo.PotentiallyHazardous),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
		rows++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush CSV output")
	}

	logger.Infow("wrote CSV results", "path", path, "rows", rows)
	return nil
}

// neoView returns the NEO serialization view for an approach, or an empty
// view for orphans.
func neoView(ca *types.CloseApproach) types.NEORecord {
	if ca.NEO == nil {
		return types.NEORecord{DiameterKM: types.Float(math.NaN())}
	}
	return ca.NEO.Serialize()
}

// formatFloat renders a float cell; unknown values stay the literal "NaN"
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
