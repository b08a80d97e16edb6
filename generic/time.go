package generic

import (
	"fmt"
	"time"
)

// =============================================================================
// TIME POINT - Absolute instant, read through its location's wall clock
// =============================================================================

// Layouts accepted on the wire. Timestamps carry no zone; they are read as UTC
// so every calendar day is exactly 24 hours long.
const (
	TimestampLayout = "2006-01-02T15:04:05"
	ClockLayout     = "15:04:05"
)

type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day, hour, min int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, hour, min, 0, 0, time.UTC)}
}

// ParseTimePoint parses an ISO 8601 local date-time such as "2038-01-01T20:15:00".
func ParseTimePoint(s string) (TimePoint, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return TimePoint{}, err
	}
	return TimePoint{Time: t}, nil
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool { return tp.Time.Before(other.Time) }
func (tp TimePoint) Equal(other TimePoint) bool  { return tp.Time.Equal(other.Time) }
func (tp TimePoint) After(other TimePoint) bool  { return tp.Time.After(other.Time) }

// Arithmetic
func (tp TimePoint) Add(d time.Duration) TimePoint { return TimePoint{Time: tp.Time.Add(d)} }
func (tp TimePoint) AddDays(n int) TimePoint       { return TimePoint{Time: tp.Time.AddDate(0, 0, n)} }
func (tp TimePoint) Sub(other TimePoint) time.Duration {
	return tp.Time.Sub(other.Time)
}

// StartOfDay returns midnight of the calendar day containing tp.
func (tp TimePoint) StartOfDay() TimePoint {
	y, m, d := tp.Time.Date()
	return TimePoint{Time: time.Date(y, m, d, 0, 0, 0, 0, tp.Time.Location())}
}

// NextMidnight returns midnight of the following calendar day.
func (tp TimePoint) NextMidnight() TimePoint {
	y, m, d := tp.Time.Date()
	return TimePoint{Time: time.Date(y, m, d+1, 0, 0, 0, 0, tp.Time.Location())}
}

// At returns the instant on tp's calendar day whose wall clock reads c. In a
// zone with daylight saving that is not always StartOfDay plus c.
func (tp TimePoint) At(c ClockTime) TimePoint {
	y, m, d := tp.Time.Date()
	h, min, sec, nsec := c.split()
	return TimePoint{Time: time.Date(y, m, d, h, min, sec, nsec, tp.Time.Location())}
}

// TruncateMinute drops seconds and below.
func (tp TimePoint) TruncateMinute() TimePoint { return TimePoint{Time: tp.Time.Truncate(time.Minute)} }

// Properties
func (tp TimePoint) Weekday() time.Weekday { return tp.Time.Weekday() }
func (tp TimePoint) IsWeekend() bool {
	wd := tp.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
func (tp TimePoint) IsWorkday() bool { return !tp.IsWeekend() }
func (tp TimePoint) IsZero() bool    { return tp.Time.IsZero() }

// Clock returns the wall-clock time of day of tp in its own location.
func (tp TimePoint) Clock() ClockTime {
	return NewClockTime(tp.Time.Hour(), tp.Time.Minute(), tp.Time.Second()) + ClockTime(tp.Time.Nanosecond())
}

func (tp TimePoint) String() string { return tp.Time.Format(TimestampLayout) }

// =============================================================================
// CLOCK TIME - Time of day, independent of date
// =============================================================================

// ClockTime is an offset from midnight in [0, 24h).
type ClockTime time.Duration

const (
	Midnight ClockTime = 0
	EndOfDay           = ClockTime(24 * time.Hour)
)

func NewClockTime(hour, min, sec int) ClockTime {
	return ClockTime(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute + time.Duration(sec)*time.Second)
}

// ParseClockTime parses "HH:MM:SS".
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, err
	}
	return NewClockTime(t.Hour(), t.Minute(), t.Second()), nil
}

func (c ClockTime) Duration() time.Duration  { return time.Duration(c) }
func (c ClockTime) Before(o ClockTime) bool  { return c < o }
func (c ClockTime) IsWholeMinute() bool      { return time.Duration(c)%time.Minute == 0 }
func (c ClockTime) Valid() bool              { return c >= Midnight && c < EndOfDay }

// Within reports whether c lies in [start, end). A window with start > end wraps
// past midnight.
func (c ClockTime) Within(start, end ClockTime) bool {
	if start <= end {
		return c >= start && c < end
	}
	return c >= start || c < end
}

func (c ClockTime) split() (hour, min, sec, nsec int) {
	d := time.Duration(c)
	return int(d / time.Hour), int(d % time.Hour / time.Minute), int(d % time.Minute / time.Second), int(d % time.Second)
}

func (c ClockTime) String() string {
	h, m, s, _ := c.split()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// =============================================================================
// TIME UTILITIES
// =============================================================================

func MinDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

func EarliestOf(a, b TimePoint) TimePoint {
	if a.Before(b) {
		return a
	}
	return b
}
