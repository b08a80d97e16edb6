/*
Package factory converts between JSON documents and payroll values.

PURPOSE:
  The pay engine itself only knows payroll.Shift and payroll.RateTable. This
  package is the adapter on both sides of it: it parses the input document
  into those types and renders results back to JSON. The CLI and the HTTP
  API both go through here so they accept and emit the same shapes.

INPUT SCHEMA:
  {
    "shift": {
      "start": "2038-01-01T20:15:00",
      "end":   "2038-01-02T04:15:00"
    },
    "roboRate": {
      "standardDay":   {"start": "07:00:00", "end": "23:00:00", "value": 20},
      "standardNight": {"start": "23:00:00", "end": "07:00:00", "value": 25},
      "extraDay":      {"start": "07:00:00", "end": "23:00:00", "value": 30},
      "extraNight":    {"start": "23:00:00", "end": "07:00:00", "value": 35}
    }
  }

  Timestamps are local date-times without a zone. Values are per-minute
  rates and may be JSON numbers or numeric strings.

OUTPUT SCHEMA:
  {"value": 13725}

ERRORS:
  Every parse failure is a *generic.MalformedInputError naming the field.
  Semantic checks (start before end, complementary windows) are left to
  the payroll package.

SEE ALSO:
  - payroll/types.go: Target types
  - factory/output.go: Result rendering
*/
package factory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/warp/robot-pay/generic"
	"github.com/warp/robot-pay/payroll"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// InputJSON is the JSON representation of one pricing request.
type InputJSON struct {
	Shift    *ShiftJSON    `json:"shift"`
	RoboRate *RoboRateJSON `json:"roboRate"`
}

// ShiftJSON holds ISO 8601 local date-times.
type ShiftJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RoboRateJSON holds the four rate windows keyed by class name.
type RoboRateJSON struct {
	StandardDay   *RateWindowJSON `json:"standardDay"`
	StandardNight *RateWindowJSON `json:"standardNight"`
	ExtraDay      *RateWindowJSON `json:"extraDay"`
	ExtraNight    *RateWindowJSON `json:"extraNight"`
}

// RateWindowJSON is one window; Start and End are "HH:MM:SS".
type RateWindowJSON struct {
	Start string           `json:"start"`
	End   string           `json:"end"`
	Value *decimal.Decimal `json:"value"`
}

// Input is a parsed, not yet validated, pricing request.
type Input struct {
	Shift payroll.Shift
	Rates payroll.RateTable
}

// =============================================================================
// PARSING
// =============================================================================

// ParseInput decodes a JSON document.
func ParseInput(data []byte) (Input, error) {
	var ij InputJSON
	if err := json.Unmarshal(data, &ij); err != nil {
		return Input{}, &generic.MalformedInputError{Err: err}
	}
	return FromJSON(ij)
}

// ReadInput decodes a JSON document from r.
func ReadInput(r io.Reader) (Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Input{}, &generic.MalformedInputError{Err: err}
	}
	return ParseInput(data)
}

// ReadInputFile decodes the JSON document at path.
func ReadInputFile(path string) (Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return Input{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return ReadInput(f)
}

// FromJSON converts the schema types into payroll values.
func FromJSON(ij InputJSON) (Input, error) {
	if ij.Shift == nil {
		return Input{}, missing("shift")
	}
	if ij.RoboRate == nil {
		return Input{}, missing("roboRate")
	}

	start, err := parseTimestamp("shift.start", ij.Shift.Start)
	if err != nil {
		return Input{}, err
	}
	end, err := parseTimestamp("shift.end", ij.Shift.End)
	if err != nil {
		return Input{}, err
	}

	rates, err := parseRoboRate(*ij.RoboRate)
	if err != nil {
		return Input{}, err
	}

	return Input{
		Shift: payroll.Shift{Start: start, End: end},
		Rates: rates,
	}, nil
}

func parseRoboRate(rj RoboRateJSON) (payroll.RateTable, error) {
	var table payroll.RateTable
	targets := []struct {
		class payroll.RateClass
		src   *RateWindowJSON
		dst   *payroll.RateWindow
	}{
		{payroll.StandardDay, rj.StandardDay, &table.StandardDay},
		{payroll.StandardNight, rj.StandardNight, &table.StandardNight},
		{payroll.ExtraDay, rj.ExtraDay, &table.ExtraDay},
		{payroll.ExtraNight, rj.ExtraNight, &table.ExtraNight},
	}

	for _, tg := range targets {
		w, err := parseRateWindow("roboRate."+tg.class.String(), tg.src)
		if err != nil {
			return payroll.RateTable{}, err
		}
		*tg.dst = w
	}
	return table, nil
}

func parseRateWindow(field string, wj *RateWindowJSON) (payroll.RateWindow, error) {
	if wj == nil {
		return payroll.RateWindow{}, missing(field)
	}
	start, err := parseClock(field+".start", wj.Start)
	if err != nil {
		return payroll.RateWindow{}, err
	}
	end, err := parseClock(field+".end", wj.End)
	if err != nil {
		return payroll.RateWindow{}, err
	}
	if wj.Value == nil {
		return payroll.RateWindow{}, missing(field + ".value")
	}
	return payroll.RateWindow{Start: start, End: end, Rate: generic.NewRateFromDecimal(*wj.Value)}, nil
}

func parseTimestamp(field, s string) (generic.TimePoint, error) {
	if s == "" {
		return generic.TimePoint{}, missing(field)
	}
	tp, err := generic.ParseTimePoint(s)
	if err != nil {
		return generic.TimePoint{}, &generic.MalformedInputError{Field: field, Err: err}
	}
	return tp, nil
}

func parseClock(field, s string) (generic.ClockTime, error) {
	if s == "" {
		return 0, missing(field)
	}
	c, err := generic.ParseClockTime(s)
	if err != nil {
		return 0, &generic.MalformedInputError{Field: field, Err: err}
	}
	return c, nil
}

func missing(field string) error {
	return &generic.MalformedInputError{Field: field, Err: errors.New("required field missing")}
}

// =============================================================================
// RENDERING INPUT
// =============================================================================

// ToJSON converts payroll values back into the input schema.
func ToJSON(shift payroll.Shift, rates payroll.RateTable) InputJSON {
	window := func(w payroll.RateWindow) *RateWindowJSON {
		v := w.Rate.PerMinute
		return &RateWindowJSON{Start: w.Start.String(), End: w.End.String(), Value: &v}
	}
	return InputJSON{
		Shift: &ShiftJSON{Start: shift.Start.String(), End: shift.End.String()},
		RoboRate: &RoboRateJSON{
			StandardDay:   window(rates.StandardDay),
			StandardNight: window(rates.StandardNight),
			ExtraDay:      window(rates.ExtraDay),
			ExtraNight:    window(rates.ExtraNight),
		},
	}
}
