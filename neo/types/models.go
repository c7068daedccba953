// Package types defines the near-Earth object data model.
//
// A NearEarthObject has a unique primary designation, an optional IAU name,
// an estimated diameter, and a hazard flag. A CloseApproach records one pass
// of an NEO near Earth with a timestamp, nominal distance, and relative
// velocity. An NEO owns the collection of its close approaches, and each
// close approach keeps a non-owning back-reference to its NEO once the
// database links them.
//
// Source data is quirky: names can be missing and diameters unknown. Unknown
// numeric values are carried as NaN so that arithmetic and comparisons stay
// type-valid (and filters on them simply never match).
package types

import (
	"fmt"
	"math"
	"time"
)

// NearEarthObject is a near-Earth object (NEO).
type NearEarthObject struct {
	Designation string  // primary designation, unique across the data set
	Name        string  // IAU name, empty when the source has none
	Diameter    float64 // estimated diameter in kilometers, NaN when unknown
	Hazardous   bool    // potentially hazardous object flag

	// Approaches holds this object's close approaches in input order.
	// Empty until the database performs linkage; appended to, never removed.
	Approaches []*CloseApproach
}

// NewNearEarthObject creates a NearEarthObject. A zero diameter from the
// source means the diameter is unknown and is stored as NaN.
func NewNearEarthObject(designation, name string, diameter float64, hazardous bool) *NearEarthObject {
	return &NearEarthObject{
		Designation: designation,
		Name:        name,
		Diameter:    orNaN(diameter),
		Hazardous:   hazardous,
	}
}

// Fullname returns the designation with the name appended when one exists.
func (n *NearEarthObject) Fullname() string {
	if n.Name != "" {
		return fmt.Sprintf("%s %s", n.Designation, n.Name)
	}
	return n.Designation
}

// String returns a human-readable description of this object.
func (n *NearEarthObject) String() string {
	hazard := "is not"
	if n.Hazardous {
		hazard = "is"
	}
	return fmt.Sprintf("NEO %s has a diameter of %.3f km and %s a potentially hazardous object.",
		n.Fullname(), n.Diameter, hazard)
}

// Serialize returns the flat-file view of this object.
func (n *NearEarthObject) Serialize() NEORecord {
	return NEORecord{
		Designation:          n.Designation,
		Name:                 n.Name,
		DiameterKM:           Float(n.Diameter),
		PotentiallyHazardous: n.Hazardous,
	}
}

// CloseApproach is a close approach to Earth by an NEO.
type CloseApproach struct {
	Designation string    // primary designation of the approaching NEO
	Time        time.Time // approach time in UTC
	Distance    float64   // nominal approach distance in astronomical units, NaN when unknown
	Velocity    float64   // relative approach velocity in km/s, NaN when unknown

	// NEO is the non-owning back-reference to the approaching object.
	// Nil until linkage, and stays nil for approaches whose designation
	// matches no loaded NEO.
	NEO *NearEarthObject
}

// NewCloseApproach creates a CloseApproach from source fields. The timestamp
// is the compact calendar form used by the close-approach data set, e.g.
// "1900-Jan-01 00:00". Zero distance or velocity from the source means the
// value is unknown and is stored as NaN.
func NewCloseApproach(designation, timestamp string, distance, velocity float64) (*CloseApproach, error) {
	t, err := ParseApproachTime(timestamp)
	if err != nil {
		return nil, err
	}
	return &CloseApproach{
		Designation: designation,
		Time:        t,
		Distance:    orNaN(distance),
		Velocity:    orNaN(velocity),
	}, nil
}

// TimeStr returns the approach time formatted for display and serialization.
// The input data carries no seconds, so neither does the output.
func (ca *CloseApproach) TimeStr() string {
	return FormatApproachTime(ca.Time)
}

// String returns a human-readable description of this approach.
func (ca *CloseApproach) String() string {
	who := ca.Designation
	if ca.NEO != nil {
		who = ca.NEO.Fullname()
	}
	return fmt.Sprintf("At %s, %s approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.",
		ca.TimeStr(), who, ca.Distance, ca.Velocity)
}

// Serialize returns the flat-file view of this approach.
func (ca *CloseApproach) Serialize() ApproachRecord {
	return ApproachRecord{
		DatetimeUTC: ca.TimeStr(),
		DistanceAU:  Float(ca.Distance),
		VelocityKMS: Float(ca.Velocity),
	}
}

// orNaN maps the source's zero/absent sentinel to NaN
func orNaN(v float64) float64 {
	if v == 0 {
		return math.NaN()
	}
	return v
}
