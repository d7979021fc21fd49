package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestDays(t *testing.T) {
	assert.Equal(t, 0, Days(day(0), day(0)))
	assert.Equal(t, 1, Days(day(0), day(1)))
	assert.Equal(t, 2, Days(day(0), day(2)))
	assert.Equal(t, 14, Days(day(3), day(17)))
}

func TestDays_NegativeSpanClampsToZero(t *testing.T) {
	assert.Equal(t, 0, Days(day(5), day(2)))
}

func TestDays_PartialDayTruncates(t *testing.T) {
	from := day(0)
	to := day(1).Add(6 * time.Hour)
	assert.Equal(t, 1, Days(from, to))
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                   string
		aFrom, aTo, bFrom, bTo int
		want                   bool
	}{
		{"disjoint", 0, 10, 20, 30, false},
		{"touching endpoints do not overlap", 0, 10, 10, 20, false},
		{"partial overlap", 0, 10, 5, 15, true},
		{"contained", 0, 10, 2, 8, true},
		{"identical", 0, 10, 0, 10, true},
		{"single instant inside", 0, 10, 9, 11, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(day(tc.aFrom), day(tc.aTo), day(tc.bFrom), day(tc.bTo))
			assert.Equal(t, tc.want, got)
			// symmetry
			assert.Equal(t, tc.want, Overlaps(day(tc.bFrom), day(tc.bTo), day(tc.aFrom), day(tc.aTo)))
		})
	}
}
