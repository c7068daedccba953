package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/rnjane/neowatch/errors"
	"github.com/rnjane/neowatch/logger"
	"github.com/rnjane/neowatch/neo/types"
)

// Fields of interest in the CAD JSON envelope.
const (
	fieldDesignation = "des"
	fieldTime        = "cd"
	fieldDistance    = "dist"
	fieldVelocity    = "v_rel"
)

// cadDocument is the JPL close-approach data envelope: a positional field
// list plus one row of values per approach.
type cadDocument struct {
	Fields []string `json:"fields"`
	Data   [][]any  `json:"data"`
}

// LoadApproaches reads close approaches from a CAD JSON file.
func LoadApproaches(path string) ([]*types.CloseApproach, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open close-approach data")
	}

	var doc cadDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse close-approach data")
	}

	fields := make(map[string]int, len(doc.Fields))
	for i, name := range doc.Fields {
		fields[name] = i
	}
	for _, required := range []string{fieldDesignation, fieldTime, fieldDistance, fieldVelocity} {
		if _, ok := fields[required]; !ok {
			return nil, errors.Newf("close-approach data is missing field %q", required)
		}
	}

	approaches := make([]*types.CloseApproach, 0, len(doc.Data))
	for i, row := range doc.Data {
		if len(row) != len(doc.Fields) {
			return nil, errors.Newf("close-approach row %d has %d values, want %d", i, len(row), len(doc.Fields))
		}

		distance, err := cellFloat(row[fields[fieldDistance]])
		if err != nil {
			return nil, errors.Wrapf(err, "bad distance in row %d", i)
		}
		velocity, err := cellFloat(row[fields[fieldVelocity]])
		if err != nil {
			return nil, errors.Wrapf(err, "bad velocity in row %d", i)
		}

		approach, err := types.NewCloseApproach(
			cellString(row[fields[fieldDesignation]]),
			cellString(row[fields[fieldTime]]),
			distance,
			velocity,
		)
		if err != nil {
			return nil, errors.Wrapf(err, "bad close-approach row %d", i)
		}
		approaches = append(approaches, approach)
	}

	logger.Infow("loaded close-approach data", "path", path, "count", len(approaches))
	return approaches, nil
}

// cellString renders a CAD cell as a string. The data set stores values as
// JSON strings, but tolerate numbers and nulls.
func cellString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

// cellFloat parses a CAD numeric cell, which arrives as a JSON string or number.
func cellFloat(v any) (float64, error) {
	switch val := v.(type) {
	case string:
		return strconv.ParseFloat(val, 64)
	case float64:
		return val, nil
	case nil:
		return 0, nil
	default:
		return 0, errors.Newf("unexpected value %v (%T)", v, v)
	}
}
