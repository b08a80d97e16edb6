package payroll

import "github.com/warp/robot-pay/generic"

// =============================================================================
// PRESET RATE TABLES
// =============================================================================

// UniformRateTable builds a table whose day windows run [dayStart, dayEnd) on
// every day of the week, with night windows covering the rest.
func UniformRateTable(dayStart, dayEnd generic.ClockTime, standardDay, standardNight, extraDay, extraNight generic.Rate) RateTable {
	return RateTable{
		StandardDay:   RateWindow{Start: dayStart, End: dayEnd, Rate: standardDay},
		StandardNight: RateWindow{Start: dayEnd, End: dayStart, Rate: standardNight},
		ExtraDay:      RateWindow{Start: dayStart, End: dayEnd, Rate: extraDay},
		ExtraNight:    RateWindow{Start: dayEnd, End: dayStart, Rate: extraNight},
	}
}

// ReferenceRateTable is the sample table: day 07:00-23:00, rates 20/25/30/35.
func ReferenceRateTable() RateTable {
	return UniformRateTable(
		generic.NewClockTime(7, 0, 0),
		generic.NewClockTime(23, 0, 0),
		generic.NewRate(20),
		generic.NewRate(25),
		generic.NewRate(30),
		generic.NewRate(35),
	)
}

// FlatRateTable pays the same rate around the clock.
func FlatRateTable(rate generic.Rate) RateTable {
	return UniformRateTable(generic.NewClockTime(7, 0, 0), generic.NewClockTime(23, 0, 0), rate, rate, rate, rate)
}
