// Package ingestion extracts NEO and close-approach records from the NASA
// data files: a CSV catalog of near-Earth objects and the JPL close-approach
// data (CAD) JSON envelope.
//
// The loaders deal with the data set's quirks (missing names, unknown
// diameters) and hand fully formed entities to the database; nothing past
// this package parses raw text.
package ingestion

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/rnjane/neowatch/errors"
	"github.com/rnjane/neowatch/logger"
	"github.com/rnjane/neowatch/neo/types"
)

// Columns of interest in the NEO CSV catalog.
const (
	colDesignation = "pdes"
	colName        = "name"
	colDiameter    = "diameter"
	colHazardous   = "pha"
)

// LoadNEOs reads near-Earth objects from a CSV catalog. An empty diameter
// cell means the diameter is unknown; the "pha" column carries "Y" for
// potentially hazardous objects.
func LoadNEOs(path string) ([]*types.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open NEO catalog")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read NEO catalog header")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colDesignation, colName, colDiameter, colHazardous} {
		if _, ok := cols[required]; !ok {
			return nil, errors.Newf("NEO catalog is missing column %q", required)
		}
	}

	var neos []*types.NearEarthObject
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read NEO catalog row")
		}

		diameter := 0.0
		if cell := row[cols[colDiameter]]; cell != "" {
			diameter, err = strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "bad diameter for %q", row[cols[colDesignation]])
			}
		}

		neos = append(neos, types.NewNearEarthObject(
			row[cols[colDesignation]],
			row[cols[colName]],
			diameter,
			row[cols[colHazardous]] == "Y",
		))
	}

	logger.Infow("loaded NEO catalog", "path", path, "count", len(neos))
	return neos, nil
}
