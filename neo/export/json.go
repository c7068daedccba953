package export

import (
	"encoding/json"
	"iter"
	"os"

	"github.com/rnjane/neowatch/errors"
	"github.com/rnjane/neowatch/logger"
	"github.com/rnjane/neowatch/neo/types"
)

// jsonRow is one close approach with its NEO view nested under "neo".
type jsonRow struct {
	DatetimeUTC string          `json:"datetime_utc"`
	DistanceAU  types.Float     `json:"distance_au"`
	VelocityKMS types.Float     `json:"velocity_km_s"`
	NEO         types.NEORecord `json:"neo"`
}

// WriteJSON writes a stream of close approaches to a JSON file as an array
// of objects. Unknown numeric values (NaN) are encoded as null; orphan
// approaches get an empty NEO view.
func WriteJSON(results iter.Seq[*types.CloseApproach], path string) error {
	rows := []jsonRow{}
	for ca := range results {
		approach := ca.Serialize()
		rows = append(rows, jsonRow{
			DatetimeUTC: approach.DatetimeUTC,
			DistanceAU:  approach.DistanceAU,
			VelocityKMS: approach.VelocityKMS,
			NEO:         neoView(ca),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create JSON output")
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rows); err != nil {
		return errors.Wrap(err, "failed to write JSON output")
	}

	logger.Infow("wrote JSON results", "path", path, "rows", len(rows))
	return nil
}
