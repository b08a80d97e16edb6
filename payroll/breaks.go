package payroll

import (
	"fmt"
	"time"

	"github.com/warp/robot-pay/generic"
)

// =============================================================================
// BREAK POLICY
// =============================================================================

// BreakPolicy says how much unpaid Break follows every Work span of paid time.
type BreakPolicy struct {
	Work  time.Duration
	Break time.Duration
}

// DefaultBreakPolicy is one hour off after every eight hours worked.
var DefaultBreakPolicy = BreakPolicy{Work: 8 * time.Hour, Break: time.Hour}

func (p BreakPolicy) IsZero() bool { return p == BreakPolicy{} }

func (p BreakPolicy) Validate() error {
	if p.Work <= 0 {
		return fmt.Errorf("%w: work span %s must be positive", generic.ErrInvalidBreakPolicy, p.Work)
	}
	if p.Break < 0 {
		return fmt.Errorf("%w: break span %s must not be negative", generic.ErrInvalidBreakPolicy, p.Break)
	}
	return nil
}

// Periods returns when the breaks fall inside shift: each one starts after
// Work of paid time and is cut short by the end of the shift. Breaks of zero
// length are not reported.
func (p BreakPolicy) Periods(shift Shift) []generic.Period {
	if p.Break <= 0 || p.Work <= 0 {
		return nil
	}
	var out []generic.Period
	for start := shift.Start.Add(p.Work); start.Before(shift.End); start = start.Add(p.Work + p.Break) {
		out = append(out, generic.NewPeriod(start, generic.EarliestOf(start.Add(p.Break), shift.End)))
	}
	return out
}

func (p BreakPolicy) String() string {
	return fmt.Sprintf("%s break every %s", p.Break, p.Work)
}

// =============================================================================
// BREAK ACCUMULATOR
// =============================================================================

// BreakAccumulator tracks paid time since the last break. Once Work has been
// accrued the next Break of elapsed time is unpaid and does not accrue; then
// the counter starts again from zero.
type BreakAccumulator struct {
	policy    BreakPolicy
	worked    time.Duration
	breakLeft time.Duration
}

func NewBreakAccumulator(policy BreakPolicy) *BreakAccumulator {
	return &BreakAccumulator{policy: policy}
}

// OnBreak reports whether the next instant is unpaid.
func (a *BreakAccumulator) OnBreak() bool { return a.breakLeft > 0 }

// Worked returns paid time accrued since the last break ended.
func (a *BreakAccumulator) Worked() time.Duration { return a.worked }

// Advance consumes d of elapsed time and splits it into paid and break time.
// d may span any number of work/break cycles.
func (a *BreakAccumulator) Advance(d time.Duration) (paid, unpaid time.Duration) {
	for d > 0 {
		if a.breakLeft > 0 {
			step := generic.MinDuration(d, a.breakLeft)
			a.breakLeft -= step
			unpaid += step
			d -= step
			if a.breakLeft == 0 {
				a.worked = 0
			}
			continue
		}

		step := generic.MinDuration(d, a.policy.Work-a.worked)
		a.worked += step
		paid += step
		d -= step
		if a.worked == a.policy.Work {
			a.breakLeft = a.policy.Break
			if a.breakLeft == 0 {
				a.worked = 0
			}
		}
	}
	return paid, unpaid
}
