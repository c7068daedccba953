// Package query provides composable filter predicates over close approaches
// and lazy bounding of result streams.
//
// Each filter pairs a comparison operator with a reference value and extracts
// one attribute from a close approach (or its linked NEO). A slice of filters
// is a conjunctive query specification: the database yields the approaches
// for which every filter matches.
package query

import (
	"fmt"
	"time"

	"github.com/rnjane/neowatch/errors"
	"github.com/rnjane/neowatch/neo/types"
)

// Comparator is the binary comparison applied between an extracted attribute
// and a filter's reference value.
type Comparator int

const (
	Equal   Comparator = iota // attribute == reference
	AtMost                    // attribute <= reference
	AtLeast                   // attribute >= reference
)

// String returns the infix form of the comparator.
func (c Comparator) String() string {
	switch c {
	case Equal:
		return "=="
	case AtMost:
		return "<="
	case AtLeast:
		return ">="
	default:
		return fmt.Sprintf("Comparator(%d)", int(c))
	}
}

// matchFloat applies the comparator to float attributes. All comparisons
// against NaN are false, so filters never match unknown values.
func (c Comparator) matchFloat(got, ref float64) bool {
	switch c {
	case Equal:
		return got == ref
	case AtMost:
		return got <= ref
	case AtLeast:
		return got >= ref
	default:
		return false
	}
}

// matchBool applies the comparator to boolean attributes. Only equality is
// meaningful for booleans.
func (c Comparator) matchBool(got, ref bool) bool {
	return c == Equal && got == ref
}

// matchDate applies the comparator to calendar dates.
func (c Comparator) matchDate(got, ref time.Time) bool {
	switch c {
	case Equal:
		return got.Equal(ref)
	case AtMost:
		return !got.After(ref)
	case AtLeast:
		return !got.Before(ref)
	default:
		return false
	}
}

// Filter is a reusable boolean test over a close approach's (or its linked
// NEO's) attributes. Filters are stateless and safe to reuse across queries.
type Filter interface {
	// Matches reports whether the approach satisfies this criterion.
	Matches(a *types.CloseApproach) bool
	fmt.Stringer
}

// DistanceFilter compares an approach's nominal distance (au).
type DistanceFilter struct {
	Op    Comparator
	Value float64
}

func (f DistanceFilter) Matches(a *types.CloseApproach) bool {
	return f.Op.matchFloat(a.Distance, f.Value)
}

func (f DistanceFilter) String() string {
	return fmt.Sprintf("distance %s %v au", f.Op, f.Value)
}

// VelocityFilter compares an approach's relative velocity (km/s).
type VelocityFilter struct {
	Op    Comparator
	Value float64
}

func (f VelocityFilter) Matches(a *types.CloseApproach) bool {
	return f.Op.matchFloat(a.Velocity, f.Value)
}

func (f VelocityFilter) String() string {
	return fmt.Sprintf("velocity %s %v km/s", f.Op, f.Value)
}

// DiameterFilter compares the linked NEO's diameter (km).
// An orphan approach (no linked NEO) never matches.
type DiameterFilter struct {
	Op    Comparator
	Value float64
}

func (f DiameterFilter) Matches(a *types.CloseApproach) bool {
	if a.NEO == nil {
		return false
	}
	return f.Op.matchFloat(a.NEO.Diameter, f.Value)
}

func (f DiameterFilter) String() string {
	return fmt.Sprintf("diameter %s %v km", f.Op, f.Value)
}

// HazardousFilter compares the linked NEO's hazard flag.
// An orphan approach (no linked NEO) never matches.
type HazardousFilter struct {
	Op    Comparator
	Value bool
}

func (f HazardousFilter) Matches(a *types.CloseApproach) bool {
	if a.NEO == nil {
		return false
	}
	return f.Op.matchBool(a.NEO.Hazardous, f.Value)
}

func (f HazardousFilter) String() string {
	return fmt.Sprintf("hazardous %s %t", f.Op, f.Value)
}

// DateFilter compares the calendar-date portion of an approach's time.
// Time of day never participates in the comparison.
type DateFilter struct {
	Op    Comparator
	Value time.Time
}

func (f DateFilter) Matches(a *types.CloseApproach) bool {
	return f.Op.matchDate(types.DateOnly(a.Time), types.DateOnly(f.Value))
}

func (f DateFilter) String() string {
	return fmt.Sprintf("date %s %s", f.Op, f.Value.Format("2006-01-02"))
}

// Attribute identifies which close-approach attribute a filter extracts.
type Attribute string

const (
	AttrDistance  Attribute = "distance"
	AttrVelocity  Attribute = "velocity"
	AttrDiameter  Attribute = "diameter"
	AttrHazardous Attribute = "hazardous"
	AttrDate      Attribute = "date"
)

// NewFilter builds a filter for the named attribute. It returns
// errors.ErrUnsupportedCriterion for an attribute no filter knows how to
// extract, and errors.ErrInvalidRequest when the reference value's type does
// not fit the attribute.
func NewFilter(attr Attribute, op Comparator, value any) (Filter, error) {
	switch attr {
	case AttrDistance, AttrVelocity, AttrDiameter:
		v, ok := value.(float64)
		if !ok {
			return nil, errors.NewInvalidRequestError("%s filter needs a float64 reference, got %T", attr, value)
		}
		switch attr {
		case AttrDistance:
			return DistanceFilter{Op: op, Value: v}, nil
		case AttrVelocity:
			return VelocityFilter{Op: op, Value: v}, nil
		default:
			return DiameterFilter{Op: op, Value: v}, nil
		}
	case AttrHazardous:
		v, ok := value.(bool)
		if !ok {
			return nil, errors.NewInvalidRequestError("hazardous filter needs a bool reference, got %T", value)
		}
		return HazardousFilter{Op: op, Value: v}, nil
	case AttrDate:
		v, ok := value.(time.Time)
		if !ok {
			return nil, errors.NewInvalidRequestError("date filter needs a time.Time reference, got %T", value)
		}
		return DateFilter{Op: op, Value: v}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedCriterion, "attribute %q", attr)
	}
}
