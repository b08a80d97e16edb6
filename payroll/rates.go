package payroll

import (
	"fmt"

	"github.com/warp/robot-pay/generic"
)

// Window returns the window for class c.
func (t RateTable) Window(c RateClass) RateWindow {
	switch c {
	case StandardDay:
		return t.StandardDay
	case StandardNight:
		return t.StandardNight
	case ExtraDay:
		return t.ExtraDay
	default:
		return t.ExtraNight
	}
}

// dayWindow returns the day window that governs weekday or weekend dates.
func (t RateTable) dayWindow(weekend bool) RateWindow {
	if weekend {
		return t.ExtraDay
	}
	return t.StandardDay
}

// Classify returns the class that applies at tp. Weekend is decided by tp's
// own calendar date; anything outside the day window is night.
func (t RateTable) Classify(tp generic.TimePoint) RateClass {
	weekend := tp.IsWeekend()
	night := !t.dayWindow(weekend).Contains(tp.Clock())
	return classFor(weekend, night)
}

// RateAt returns the per-minute rate that applies at tp.
func (t RateTable) RateAt(tp generic.TimePoint) generic.Rate {
	return t.Window(t.Classify(tp)).Rate
}

// Validate checks every window, that each day/night pair is complementary and
// that weekdays and weekends share the same day/night boundaries. The first
// problem found is returned as *generic.InvalidRateWindowError.
func (t RateTable) Validate() error {
	for _, c := range RateClasses {
		if err := validateWindow(c, t.Window(c)); err != nil {
			return err
		}
	}
	if err := validatePair(StandardDay, t.StandardDay, StandardNight, t.StandardNight); err != nil {
		return err
	}
	if err := validatePair(ExtraDay, t.ExtraDay, ExtraNight, t.ExtraNight); err != nil {
		return err
	}
	if t.ExtraDay.Start != t.StandardDay.Start || t.ExtraDay.End != t.StandardDay.End {
		return &generic.InvalidRateWindowError{
			Window: ExtraDay.String(),
			Reason: fmt.Sprintf("window %s-%s does not match %s %s-%s",
				t.ExtraDay.Start, t.ExtraDay.End, StandardDay, t.StandardDay.Start, t.StandardDay.End),
		}
	}
	return nil
}

func validateWindow(c RateClass, w RateWindow) error {
	if w.Rate.IsNegative() {
		return &generic.InvalidRateWindowError{Window: c.String(), Reason: fmt.Sprintf("negative value %s", w.Rate.PerMinute)}
	}
	for _, b := range []generic.ClockTime{w.Start, w.End} {
		if !b.Valid() {
			return &generic.InvalidRateWindowError{Window: c.String(), Reason: fmt.Sprintf("boundary %s outside the day", b)}
		}
		// Rates are per minute, so boundaries must land on the minute grid.
		if !b.IsWholeMinute() {
			return &generic.InvalidRateWindowError{Window: c.String(), Reason: fmt.Sprintf("boundary %s is not a whole minute", b)}
		}
	}
	return nil
}

func validatePair(dc RateClass, day RateWindow, nc RateClass, night RateWindow) error {
	if !day.Start.Before(day.End) {
		return &generic.InvalidRateWindowError{
			Window: dc.String(),
			Reason: fmt.Sprintf("day window %s-%s must start before it ends", day.Start, day.End),
		}
	}
	if night.Start != day.End || night.End != day.Start {
		return &generic.InvalidRateWindowError{
			Window: nc.String(),
			Reason: fmt.Sprintf("night window %s-%s does not complement %s %s-%s", night.Start, night.End, dc, day.Start, day.End),
		}
	}
	return nil
}
