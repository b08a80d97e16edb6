package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/robot-pay/generic"
	"github.com/warp/robot-pay/payroll"
)

func TestBreakAccumulator_MinuteByMinute(t *testing.T) {
	acc := payroll.NewBreakAccumulator(payroll.DefaultBreakPolicy)

	for i := 0; i < 480; i++ {
		paid, unpaid := acc.Advance(time.Minute)
		assert.Equal(t, time.Minute, paid)
		assert.Zero(t, unpaid)
	}
	assert.True(t, acc.OnBreak())
	assert.Equal(t, 8*time.Hour, acc.Worked())

	for i := 0; i < 59; i++ {
		paid, unpaid := acc.Advance(time.Minute)
		assert.Zero(t, paid)
		assert.Equal(t, time.Minute, unpaid)
	}
	// Break time does not accrue.
	assert.Equal(t, 8*time.Hour, acc.Worked())

	acc.Advance(time.Minute)
	assert.False(t, acc.OnBreak())
	assert.Zero(t, acc.Worked())
}

func TestBreakAccumulator_BlockAdvanceSpansCycles(t *testing.T) {
	acc := payroll.NewBreakAccumulator(payroll.DefaultBreakPolicy)

	paid, unpaid := acc.Advance(20 * time.Hour)

	// 8 paid + 1 break + 8 paid + 1 break + 2 paid
	assert.Equal(t, 18*time.Hour, paid)
	assert.Equal(t, 2*time.Hour, unpaid)
	assert.Equal(t, 2*time.Hour, acc.Worked())
}

func TestBreakAccumulator_SplitBlocksMatchSingleBlock(t *testing.T) {
	whole := payroll.NewBreakAccumulator(payroll.DefaultBreakPolicy)
	wantPaid, wantUnpaid := whole.Advance(31*time.Hour + 17*time.Minute)

	split := payroll.NewBreakAccumulator(payroll.DefaultBreakPolicy)
	var paid, unpaid time.Duration
	for _, d := range []time.Duration{7 * time.Hour, 90 * time.Minute, 13 * time.Second, 22*time.Hour + 46*time.Minute + 47*time.Second} {
		p, u := split.Advance(d)
		paid += p
		unpaid += u
	}

	assert.Equal(t, wantPaid, paid)
	assert.Equal(t, wantUnpaid, unpaid)
}

func TestBreakAccumulator_ZeroBreak(t *testing.T) {
	acc := payroll.NewBreakAccumulator(payroll.BreakPolicy{Work: 8 * time.Hour})

	paid, unpaid := acc.Advance(25 * time.Hour)

	assert.Equal(t, 25*time.Hour, paid)
	assert.Zero(t, unpaid)
}

func TestBreakPolicy_Validate(t *testing.T) {
	assert.NoError(t, payroll.DefaultBreakPolicy.Validate())
	assert.ErrorIs(t, payroll.BreakPolicy{Work: -time.Hour}.Validate(), generic.ErrInvalidBreakPolicy)
	assert.ErrorIs(t, payroll.BreakPolicy{Work: time.Hour, Break: -time.Minute}.Validate(), generic.ErrInvalidBreakPolicy)
}

func TestBreakPolicy_Periods(t *testing.T) {
	shift := newShift(t, "2025-03-10T00:00:00", "2025-03-11T02:00:00")

	tests := []struct {
		name   string
		policy payroll.BreakPolicy
		shift  payroll.Shift
		want   [][2]string
	}{
		{
			name:   "two full breaks",
			policy: payroll.DefaultBreakPolicy,
			shift:  shift,
			want: [][2]string{
				{"2025-03-10T08:00:00", "2025-03-10T09:00:00"},
				{"2025-03-10T17:00:00", "2025-03-10T18:00:00"},
			},
		},
		{
			name:   "break cut by shift end",
			policy: payroll.DefaultBreakPolicy,
			shift:  newShift(t, "2025-03-10T08:00:00", "2025-03-10T16:30:00"),
			want:   [][2]string{{"2025-03-10T16:00:00", "2025-03-10T16:30:00"}},
		},
		{
			name:   "shift ends exactly at the work limit",
			policy: payroll.DefaultBreakPolicy,
			shift:  newShift(t, "2038-01-01T20:15:00", "2038-01-02T04:15:00"),
		},
		{
			name:   "zero-length breaks",
			policy: payroll.BreakPolicy{Work: time.Hour},
			shift:  shift,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.Periods(tt.shift)

			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, w[0], got[i].Start.String())
				assert.Equal(t, w[1], got[i].End.String())
			}
		})
	}
}
