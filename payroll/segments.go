package payroll

import (
	"github.com/warp/robot-pay/generic"
)

// Segments partitions the shift into maximal pieces of constant RateClass.
// Classification can only change at midnight or at a day-window boundary, so
// the shift is cut at those instants and equal neighbours are merged (for
// example Saturday night running into Sunday night).
func Segments(shift Shift, rates RateTable) ([]Segment, error) {
	if err := shift.Validate(); err != nil {
		return nil, err
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return segments(shift, rates), nil
}

func segments(shift Shift, rates RateTable) []Segment {
	var out []Segment
	for rest := shift.Period(); rest.Valid(); {
		var head generic.Period
		head, rest = rest.SplitAt(rates.nextBoundary(rest.Start))
		class := rates.Classify(head.Start)

		if n := len(out); n > 0 && out[n-1].Class == class {
			out[n-1].End = head.End
		} else {
			out = append(out, Segment{Start: head.Start, End: head.End, Class: class})
		}
	}
	return out
}

// nextBoundary returns the first instant after tp at which the class could
// change: the next midnight or a day-window edge on tp's date.
func (t RateTable) nextBoundary(tp generic.TimePoint) generic.TimePoint {
	next := tp.NextMidnight()
	w := t.dayWindow(tp.IsWeekend())
	for _, edge := range []generic.ClockTime{w.Start, w.End} {
		b := tp.At(edge)
		if b.After(tp) && b.Before(next) {
			next = b
		}
	}
	return next
}
