package query

import "time"

// Criteria collects the user's optional query criteria. A nil field means the
// criterion was not specified and produces no filter; an explicit zero value
// is a real bound.
type Criteria struct {
	Date      *time.Time // approach occurs on this calendar date
	StartDate *time.Time // approach occurs on or after this date
	EndDate   *time.Time // approach occurs on or before this date

	DistanceMin *float64
	DistanceMax *float64
	VelocityMin *float64
	VelocityMax *float64
	DiameterMin *float64
	DiameterMax *float64

	Hazardous *bool
}

// Filters produces one filter per present criterion: equality for the exact
// date and hazard flag, at-least for minimums and start bounds, at-most for
// maximums and end bounds. The order is fixed for reproducibility; AND is
// commutative so it does not affect results.
func (c Criteria) Filters() []Filter {
	var filters []Filter

	if c.Date != nil {
		filters = append(filters, DateFilter{Op: Equal, Value: *c.Date})
	}
	if c.StartDate != nil {
		filters = append(filters, DateFilter{Op: AtLeast, Value: *c.StartDate})
	}
	if c.EndDate != nil {
		filters = append(filters, DateFilter{Op: AtMost, Value: *c.EndDate})
	}

	if c.VelocityMin != nil {
		filters = append(filters, VelocityFilter{Op: AtLeast, Value: *c.VelocityMin})
	}
	if c.VelocityMax != nil {
		filters = append(filters, VelocityFilter{Op: AtMost, Value: *c.VelocityMax})
	}

	if c.DistanceMin != nil {
		filters = append(filters, DistanceFilter{Op: AtLeast, Value: *c.DistanceMin})
	}
	if c.DistanceMax != nil {
		filters = append(filters, DistanceFilter{Op: AtMost, Value: *c.DistanceMax})
	}

	if c.Hazardous != nil {
		filters = append(filters, HazardousFilter{Op: Equal, Value: *c.Hazardous})
	}

	if c.DiameterMin != nil {
		filters = append(filters, DiameterFilter{Op: AtLeast, Value: *c.DiameterMin})
	}
	if c.DiameterMax != nil {
		filters = append(filters, DiameterFilter{Op: AtMost, Value: *c.DiameterMax})
	}

	return filters
}
