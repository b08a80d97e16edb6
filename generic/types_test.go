package generic

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRate_For(t *testing.T) {
	r := NewRate(25)

	assert.True(t, r.For(60*time.Minute).Equal(NewAmount(1500)))
	assert.True(t, r.For(0).IsZero())
	// 90 seconds prorated
	assert.Equal(t, "37.5", r.For(90*time.Second).String())

	frac := NewRateFromDecimal(decimal.RequireFromString("0.1"))
	assert.Equal(t, "0.3", frac.For(3*time.Minute).String())
}

func TestAmount_Arithmetic(t *testing.T) {
	a := NewAmount(10).Add(NewAmountFromDecimal(decimal.RequireFromString("2.5")))

	assert.Equal(t, "12.5", a.String())
	assert.True(t, a.GreaterThan(NewAmount(12)))
	assert.True(t, a.LessThan(NewAmount(13)))
}

func TestErrors_Classification(t *testing.T) {
	shiftErr := &InvalidShiftError{Start: NewTimePoint(2038, 1, 1, 0, 0), End: NewTimePoint(2038, 1, 1, 0, 0)}
	rateErr := &InvalidRateWindowError{Window: "standardNight", Reason: "gap"}
	inputErr := &MalformedInputError{Field: "shift.start", Err: errors.New("bad time")}

	assert.ErrorIs(t, shiftErr, ErrInvalidShift)
	assert.ErrorIs(t, rateErr, ErrInvalidRateWindow)
	assert.ErrorIs(t, inputErr, ErrMalformedInput)

	for _, err := range []error{shiftErr, rateErr, inputErr, fmt.Errorf("wrapped: %w", rateErr)} {
		assert.True(t, IsClientError(err), "%v", err)
	}
	assert.False(t, IsClientError(errors.New("boom")))
	assert.True(t, IsNotFound(fmt.Errorf("%w: night-owl", ErrScenarioNotFound)))

	assert.Equal(t, "invalid_shift", ErrorCode(shiftErr))
	assert.Equal(t, "invalid_rate_window", ErrorCode(rateErr))
	assert.Equal(t, "malformed_input", ErrorCode(inputErr))
	assert.Equal(t, "internal", ErrorCode(errors.New("boom")))

	assert.Contains(t, inputErr.Error(), "shift.start")
	assert.Contains(t, shiftErr.Error(), "2038-01-01T00:00:00")
}
