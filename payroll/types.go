/*
Package payroll prices a robot's work shift.

PURPOSE:
  Given one continuous shift and a table of four rate windows, compute the
  amount owed. Weekdays pay the standard rates, Saturdays and Sundays pay
  the extra rates; each day is split into a day window and the night window
  that wraps midnight. After every eight hours of paid work the robot takes
  one unpaid hour of break.

KEY CONCEPTS:
  - Shift: the interval being priced
  - RateWindow / RateTable: per-minute rates by time of day and day type
  - RateClass: which of the four windows applies to an instant
  - Segment: maximal piece of the shift with a single RateClass
  - BreakAccumulator: tracks worked time since the last break
  - Breakdown: paid time per class, break time, and the total

CALCULATION:
  Classification is always done per instant, from that instant's own
  calendar date and time of day, so a shift crossing midnight (or a
  weekend boundary) is re-classified as it goes. Break time is unpaid
  whatever window it falls in.

USAGE:
  shift, _ := payroll.NewShift(start, end)
  total, err := payroll.ComputePay(shift, payroll.ReferenceRateTable())

SEE ALSO:
  - calculator.go: Calculator and strategies
  - segments.go: Analytical segmentation
  - breaks.go: Break policy and accumulator
  - factory/input.go: JSON adapter
*/
package payroll

import (
	"time"

	"github.com/warp/robot-pay/generic"
)

// =============================================================================
// RATE CLASS
// =============================================================================

// RateClass identifies one of the four rate windows. The string form is the
// key used in input documents.
type RateClass string

const (
	StandardDay   RateClass = "standardDay"
	StandardNight RateClass = "standardNight"
	ExtraDay      RateClass = "extraDay"
	ExtraNight    RateClass = "extraNight"
)

// RateClasses lists every class in display order.
var RateClasses = []RateClass{StandardDay, StandardNight, ExtraDay, ExtraNight}

func (c RateClass) IsWeekend() bool { return c == ExtraDay || c == ExtraNight }
func (c RateClass) IsNight() bool   { return c == StandardNight || c == ExtraNight }
func (c RateClass) String() string  { return string(c) }

func classFor(weekend, night bool) RateClass {
	switch {
	case weekend && night:
		return ExtraNight
	case weekend:
		return ExtraDay
	case night:
		return StandardNight
	default:
		return StandardDay
	}
}

// =============================================================================
// RATE WINDOW / RATE TABLE
// =============================================================================

// RateWindow pays Rate for every minute whose time of day is in [Start, End).
// Night windows have Start > End and wrap past midnight.
type RateWindow struct {
	Start generic.ClockTime
	End   generic.ClockTime
	Rate  generic.Rate
}

func (w RateWindow) Contains(c generic.ClockTime) bool { return c.Within(w.Start, w.End) }

// RateTable holds the four windows. StandardDay/StandardNight must cover the
// day without gap or overlap, as must ExtraDay/ExtraNight.
type RateTable struct {
	StandardDay   RateWindow
	StandardNight RateWindow
	ExtraDay      RateWindow
	ExtraNight    RateWindow
}

// =============================================================================
// SHIFT
// =============================================================================

// Shift is the interval [Start, End) the robot works.
type Shift struct {
	Start generic.TimePoint
	End   generic.TimePoint
}

// NewShift builds a validated shift. start and end may carry any location;
// each minute is classified by the wall clock of that location, and paid by
// real elapsed time.
func NewShift(start, end time.Time) (Shift, error) {
	s := Shift{Start: generic.TimePoint{Time: start}, End: generic.TimePoint{Time: end}}
	if err := s.Validate(); err != nil {
		return Shift{}, err
	}
	return s, nil
}

// Validate fails with *generic.InvalidShiftError unless Start < End.
func (s Shift) Validate() error {
	if !s.Period().Valid() {
		return &generic.InvalidShiftError{Start: s.Start, End: s.End}
	}
	return nil
}

func (s Shift) Period() generic.Period { return generic.NewPeriod(s.Start, s.End) }
func (s Shift) Duration() time.Duration { return s.End.Sub(s.Start) }
func (s Shift) String() string { return s.Period().String() }

// =============================================================================
// SEGMENT
// =============================================================================

// Segment is a maximal sub-interval of a shift with a constant RateClass.
type Segment struct {
	Start generic.TimePoint
	End   generic.TimePoint
	Class RateClass
}

func (s Segment) Duration() time.Duration { return s.End.Sub(s.Start) }

// =============================================================================
// BREAKDOWN
// =============================================================================

// Breakdown is the full result of pricing a shift.
type Breakdown struct {
	Total generic.Amount
	Paid  map[RateClass]time.Duration // paid time per class
	Break time.Duration               // unpaid break time inside the shift

	Breaks []generic.Period // when each break was taken
}

func newBreakdown() Breakdown {
	return Breakdown{Total: generic.NewAmount(0), Paid: make(map[RateClass]time.Duration, len(RateClasses))}
}

// Worked returns the total paid time across all classes.
func (b Breakdown) Worked() time.Duration {
	var d time.Duration
	for _, p := range b.Paid {
		d += p
	}
	return d
}

// PaidMinutes returns the paid time for class c in (possibly fractional) minutes.
func (b Breakdown) PaidMinutes(c RateClass) float64 { return b.Paid[c].Minutes() }

// Amount returns the pay earned in class c.
func (b Breakdown) Amount(c RateClass, rates RateTable) generic.Amount {
	return rates.Window(c).Rate.For(b.Paid[c])
}
