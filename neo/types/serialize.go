package types

import (
	"math"
	"strconv"
)

// Float is a float64 whose JSON form degrades gracefully for unknown values.
// JSON has no NaN literal, so unknown diameters, distances, and velocities
// are encoded as null.
type Float float64

// MarshalJSON encodes the value as a JSON number, or null when NaN.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if v != v { // NaN
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// UnmarshalJSON decodes a JSON number or null (null becomes NaN).
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// NEORecord is the serialization view of a NearEarthObject exposed to the
// flat-file writers.
type NEORecord struct {
	Designation          string `json:"designation"`
	Name                 string `json:"name"`
	DiameterKM           Float  `json:"diameter_km"`
	PotentiallyHazardous bool   `json:"potentially_hazardous"`
}

// ApproachRecord is the serialization view of a CloseApproach exposed to the
// flat-file writers.
type ApproachRecord struct {
	DatetimeUTC string `json:"datetime_utc"`
	DistanceAU  Float  `json:"distance_au"`
	VelocityKMS Float  `json:"velocity_km_s"`
}
