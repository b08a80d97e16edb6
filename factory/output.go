package factory

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/robot-pay/payroll"
)

// =============================================================================
// OUTPUT SCHEMA TYPES
// =============================================================================

// ResultJSON is the pricing result, rendered as {"value": <number>}.
type ResultJSON struct {
	Value decimal.Decimal
}

func (r ResultJSON) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value json.Number `json:"value"`
	}{number(r.Value)})
}

// BreakdownJSON extends the result with how the shift's time was spent.
type BreakdownJSON struct {
	Value         json.Number      `json:"value"`
	WorkedMinutes json.Number      `json:"workedMinutes"`
	BreakMinutes  json.Number      `json:"breakMinutes"`
	Classes       []ClassTotalJSON `json:"classes"`
	Breaks        []BreakJSON      `json:"breaks"`
}

// ClassTotalJSON is the paid time and pay for one rate class.
type ClassTotalJSON struct {
	Class   string      `json:"class"`
	Minutes json.Number `json:"minutes"`
	Rate    json.Number `json:"rate"`
	Amount  json.Number `json:"amount"`
}

// BreakJSON is one unpaid break inside the shift.
type BreakJSON struct {
	Start   string      `json:"start"`
	End     string      `json:"end"`
	Minutes json.Number `json:"minutes"`
}

// SegmentJSON is one maximal uniform-rate piece of a shift.
type SegmentJSON struct {
	Start   string      `json:"start"`
	End     string      `json:"end"`
	Class   string      `json:"class"`
	Minutes json.Number `json:"minutes"`
}

// MarshalJSON writes value as a JSON number rather than decimal's quoted form.
func (w RateWindowJSON) MarshalJSON() ([]byte, error) {
	type window struct {
		Start string       `json:"start"`
		End   string       `json:"end"`
		Value *json.Number `json:"value,omitempty"`
	}
	out := window{Start: w.Start, End: w.End}
	if w.Value != nil {
		n := number(*w.Value)
		out.Value = &n
	}
	return json.Marshal(out)
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

// ToResultJSON wraps a total.
func ToResultJSON(total decimal.Decimal) ResultJSON {
	return ResultJSON{Value: total}
}

// ToBreakdownJSON renders a breakdown, listing every class in display order.
func ToBreakdownJSON(b payroll.Breakdown, rates payroll.RateTable) BreakdownJSON {
	out := BreakdownJSON{
		Value:         number(b.Total.Value),
		WorkedMinutes: minutes(b.Worked()),
		BreakMinutes:  minutes(b.Break),
		Classes:       make([]ClassTotalJSON, 0, len(payroll.RateClasses)),
		Breaks:        make([]BreakJSON, 0, len(b.Breaks)),
	}
	for _, c := range payroll.RateClasses {
		out.Classes = append(out.Classes, ClassTotalJSON{
			Class:   c.String(),
			Minutes: minutes(b.Paid[c]),
			Rate:    number(rates.Window(c).Rate.PerMinute),
			Amount:  number(b.Amount(c, rates).Value),
		})
	}
	for _, p := range b.Breaks {
		out.Breaks = append(out.Breaks, BreakJSON{
			Start:   p.Start.String(),
			End:     p.End.String(),
			Minutes: minutes(p.Duration()),
		})
	}
	return out
}

// ToSegmentsJSON renders segments.
func ToSegmentsJSON(segs []payroll.Segment) []SegmentJSON {
	out := make([]SegmentJSON, len(segs))
	for i, s := range segs {
		out[i] = SegmentJSON{
			Start:   s.Start.String(),
			End:     s.End.String(),
			Class:   s.Class.String(),
			Minutes: minutes(s.Duration()),
		}
	}
	return out
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

var nanosPerMinute = decimal.NewFromInt(int64(time.Minute))

func minutes(d time.Duration) json.Number {
	if d%time.Minute == 0 {
		return json.Number(decimal.NewFromInt(int64(d / time.Minute)).String())
	}
	return number(decimal.NewFromInt(int64(d)).Div(nanosPerMinute))
}
