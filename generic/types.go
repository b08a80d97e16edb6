/*
Package generic provides the time and money primitives of the pay engine.

PURPOSE:
  This package contains domain-agnostic types shared by the payroll core and
  its adapters. Nothing here knows about robots, rate tables or breaks.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A monetary quantity (decimal, never float)
  - Rate: An amount paid per minute of work

KEY CONCEPTS ELSEWHERE:
  - TimePoint / ClockTime (time.go): instants and times of day
  - Period (period.go): half-open intervals [Start, End)
  - Errors (errors.go): sentinel and structured errors

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Determinism: Pure values, no clocks read, no global state
  3. Type Safety: Rates and amounts are distinct types

USAGE:
  rate := generic.NewRate(25)
  pay := rate.For(90 * time.Minute) // 2250
*/
package generic

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Money owed
// =============================================================================

type Amount struct {
	Value decimal.Decimal
}

func NewAmount(value int64) Amount { return Amount{Value: decimal.NewFromInt(value)} }
func NewAmountFromDecimal(d decimal.Decimal) Amount { return Amount{Value: d} }

func (a Amount) Add(b Amount) Amount       { return Amount{Value: a.Value.Add(b.Value)} }
func (a Amount) IsZero() bool              { return a.Value.IsZero() }
func (a Amount) IsNegative() bool          { return a.Value.IsNegative() }
func (a Amount) Equal(b Amount) bool       { return a.Value.Equal(b.Value) }
func (a Amount) LessThan(b Amount) bool    { return a.Value.LessThan(b.Value) }
func (a Amount) GreaterThan(b Amount) bool { return a.Value.GreaterThan(b.Value) }
func (a Amount) String() string            { return a.Value.String() }

// =============================================================================
// RATE - Amount per minute
// =============================================================================

var minuteNanos = decimal.NewFromInt(int64(time.Minute))

type Rate struct {
	PerMinute decimal.Decimal
}

func NewRate(perMinute int64) Rate { return Rate{PerMinute: decimal.NewFromInt(perMinute)} }
func NewRateFromDecimal(d decimal.Decimal) Rate { return Rate{PerMinute: d} }

func (r Rate) IsNegative() bool { return r.PerMinute.IsNegative() }
func (r Rate) Equal(o Rate) bool { return r.PerMinute.Equal(o.PerMinute) }

// For prices d at this rate. Whole minutes are exact; fractions of a minute
// are prorated by elapsed nanoseconds.
func (r Rate) For(d time.Duration) Amount {
	if d%time.Minute == 0 {
		return Amount{Value: r.PerMinute.Mul(decimal.NewFromInt(int64(d / time.Minute)))}
	}
	return Amount{Value: r.PerMinute.Mul(decimal.NewFromInt(int64(d))).Div(minuteNanos)}
}

func (r Rate) String() string { return r.PerMinute.String() + "/min" }
