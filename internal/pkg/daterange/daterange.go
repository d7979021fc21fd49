// Package daterange holds the pure interval arithmetic used by the
// reservation engine: night counting for pricing and half-open overlap
// testing for availability.
package daterange

import "time"

// Days returns the whole-day span between from and to, used as the
// nights multiplier when pricing a stay. Negative spans clamp to 0;
// callers validate ordering before pricing.
func Days(from, to time.Time) int {
	d := to.Sub(from) / (24 * time.Hour)
	if d < 0 {
		return 0
	}
	return int(d)
}

// Overlaps reports whether the half-open intervals [aFrom, aTo) and
// [bFrom, bTo) intersect. Touching endpoints do not overlap: a checkout
// and a new check-in on the same instant are both allowed.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && bFrom.Before(aTo)
}
