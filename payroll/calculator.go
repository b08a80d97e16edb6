package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/robot-pay/generic"
)

// =============================================================================
// STRATEGY
// =============================================================================

// Strategy selects how the shift is walked. Both produce the same Breakdown.
type Strategy string

const (
	// StrategySegments walks maximal segments and accrues each as a block.
	StrategySegments Strategy = "segments"

	// StrategyMinuteSweep walks the shift one wall-clock minute at a time.
	// Kept as the reference the segment walk is checked against.
	StrategyMinuteSweep Strategy = "minute_sweep"
)

// ParseStrategy accepts the config/flag spelling of a strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySegments, "":
		return StrategySegments, nil
	case StrategyMinuteSweep:
		return StrategyMinuteSweep, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want %q or %q)", s, StrategySegments, StrategyMinuteSweep)
	}
}

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator prices shifts. The zero value uses DefaultBreakPolicy and
// StrategySegments. It holds no mutable state and is safe to share.
type Calculator struct {
	Breaks   BreakPolicy
	Strategy Strategy
}

// NewCalculator returns a calculator after validating its configuration.
func NewCalculator(breaks BreakPolicy, strategy Strategy) (Calculator, error) {
	if err := breaks.Validate(); err != nil {
		return Calculator{}, err
	}
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return Calculator{}, err
	}
	return Calculator{Breaks: breaks, Strategy: strategy}, nil
}

// ComputePay prices shift with the default calculator.
func ComputePay(shift Shift, rates RateTable) (decimal.Decimal, error) {
	return Calculator{}.ComputePay(shift, rates)
}

// ComputePay returns the total owed for shift at full decimal precision.
func (c Calculator) ComputePay(shift Shift, rates RateTable) (decimal.Decimal, error) {
	b, err := c.Compute(shift, rates)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Total.Value, nil
}

// Compute prices shift and reports how the time was spent.
//
// Errors:
//   - *generic.InvalidShiftError when shift.Start is not before shift.End
//   - *generic.InvalidRateWindowError when rates are unusable
//   - generic.ErrInvalidBreakPolicy when the calculator is misconfigured
func (c Calculator) Compute(shift Shift, rates RateTable) (Breakdown, error) {
	if err := shift.Validate(); err != nil {
		return Breakdown{}, err
	}
	if err := rates.Validate(); err != nil {
		return Breakdown{}, err
	}
	breaks := c.breaks()
	if err := breaks.Validate(); err != nil {
		return Breakdown{}, err
	}

	acc := NewBreakAccumulator(breaks)
	b := newBreakdown()

	switch c.Strategy {
	case StrategyMinuteSweep:
		sweep(shift, rates, acc, &b)
	case StrategySegments, "":
		for _, seg := range segments(shift, rates) {
			paid, unpaid := acc.Advance(seg.Duration())
			b.Paid[seg.Class] += paid
			b.Break += unpaid
		}
	default:
		return Breakdown{}, fmt.Errorf("unknown strategy %q", c.Strategy)
	}

	for _, class := range RateClasses {
		b.Total = b.Total.Add(b.Amount(class, rates))
	}
	b.Breaks = breaks.Periods(shift)
	return b, nil
}

func (c Calculator) breaks() BreakPolicy {
	if c.Breaks.IsZero() {
		return DefaultBreakPolicy
	}
	return c.Breaks
}

// sweep walks the shift one tick at a time. Ticks follow the wall-clock minute
// grid, so only the first and last tick can be shorter than a minute; those
// are prorated by their exact length. Ticks consumed entirely by a break are
// never classified.
func sweep(shift Shift, rates RateTable, acc *BreakAccumulator, b *Breakdown) {
	for tick := shift.Start; tick.Before(shift.End); {
		next := generic.EarliestOf(tick.TruncateMinute().Add(time.Minute), shift.End)

		paid, unpaid := acc.Advance(next.Sub(tick))
		b.Break += unpaid
		if paid > 0 {
			b.Paid[rates.Classify(tick)] += paid
		}
		tick = next
	}
}
