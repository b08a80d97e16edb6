package generic

import "time"

// =============================================================================
// PERIOD - Half-open interval of wall-clock time
// =============================================================================

// Period is the interval [Start, End).
//
// Examples:
//   - A robot shift: 2038-01-01T20:15 - 2038-01-02T04:15
//   - A pay segment: Friday 20:15 - Friday 23:00 (standard day rate)
type Period struct {
	Start TimePoint
	End   TimePoint
}

func NewPeriod(start, end TimePoint) Period { return Period{Start: start, End: end} }

// Valid reports whether Start strictly precedes End.
func (p Period) Valid() bool { return p.Start.Before(p.End) }

// Duration returns End - Start.
func (p Period) Duration() time.Duration { return p.End.Sub(p.Start) }

// Contains returns true if t is within [Start, End).
func (p Period) Contains(t TimePoint) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// SplitAt cuts the period at t. If t is outside (Start, End) the second
// period is empty.
func (p Period) SplitAt(t TimePoint) (Period, Period) {
	if !t.After(p.Start) || !t.Before(p.End) {
		return p, Period{Start: p.End, End: p.End}
	}
	return Period{Start: p.Start, End: t}, Period{Start: t, End: p.End}
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + ")"
}
