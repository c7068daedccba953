package types

import (
	"time"

	"github.com/rnjane/neowatch/errors"
)

const (
	// approachTimeLayout is the compact calendar form used by the
	// close-approach data set, e.g. "1900-Jan-01 00:00".
	approachTimeLayout = "2006-Jan-02 15:04"

	// displayTimeLayout is the form used for human output and
	// serialization, e.g. "1900-01-01 00:00". Seconds are dropped
	// because the input data carries none.
	displayTimeLayout = "2006-01-02 15:04"
)

// ParseApproachTime parses a compact close-approach timestamp into a UTC time.
func ParseApproachTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(approachTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid approach timestamp %q", s)
	}
	return t, nil
}

// FormatApproachTime formats an approach time for display and serialization.
func FormatApproachTime(t time.Time) string {
	return t.Format(displayTimeLayout)
}

// DateOnly truncates a timestamp to its UTC calendar date. Date filters
// compare calendar dates, never times of day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.In(time.UTC).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
