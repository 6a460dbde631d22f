package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
)

func TestExtractIntervals_SlotGrid(t *testing.T) {
	tests := []struct {
		name   string
		slots  map[string]schedule.Status
		target schedule.Status
		invert bool
		want   []schedule.Interval
	}{
		{
			name: "consecutive off slots merge",
			slots: map[string]schedule.Status{
				"10:00": schedule.StatusOff,
				"10:30": schedule.StatusOff,
				"11:00": schedule.StatusOn,
			},
			target: schedule.StatusOff,
			want:   []schedule.Interval{{From: "10:00", To: "11:00"}},
		},
		{
			name: "trailing off runs to end of day",
			slots: map[string]schedule.Status{
				"23:00": schedule.StatusOn,
				"23:30": schedule.StatusOff,
			},
			target: schedule.StatusOff,
			want:   []schedule.Interval{{From: "23:30", To: "24:00"}},
		},
		{
			name: "separate runs stay separate",
			slots: map[string]schedule.Status{
				"08:00": schedule.StatusOff,
				"08:30": schedule.StatusOn,
				"09:00": schedule.StatusOff,
				"09:30": schedule.StatusOn,
			},
			target: schedule.StatusOff,
			want: []schedule.Interval{
				{From: "08:00", To: "08:30"},
				{From: "09:00", To: "09:30"},
			},
		},
		{
			name: "possible slots extracted independently",
			slots: map[string]schedule.Status{
				"12:00": schedule.StatusOff,
				"12:30": schedule.StatusPossible,
				"13:00": schedule.StatusPossible,
				"13:30": schedule.StatusOn,
			},
			target: schedule.StatusPossible,
			want:   []schedule.Interval{{From: "12:30", To: "13:30"}},
		},
		{
			name: "inverted view lists explicit on slots",
			slots: map[string]schedule.Status{
				"10:00": schedule.StatusOff,
				"10:30": schedule.StatusOn,
				"11:00": schedule.StatusOn,
				"11:30": schedule.StatusPossible,
			},
			target: schedule.StatusOff,
			invert: true,
			want:   []schedule.Interval{{From: "10:30", To: "11:30"}},
		},
		{
			name: "end of day key in grid is ignored",
			slots: map[string]schedule.Status{
				"23:30": schedule.StatusOff,
				"24:00": schedule.StatusOff,
			},
			target: schedule.StatusOff,
			want:   []schedule.Interval{{From: "23:30", To: "24:00"}},
		},
		{
			name:   "no matching slots",
			slots:  map[string]schedule.Status{"10:00": schedule.StatusOn},
			target: schedule.StatusOff,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schedule.NewSlotGrid(tt.slots)
			got := schedule.ExtractIntervals(s, tt.target, tt.invert)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractIntervals_IntervalList(t *testing.T) {
	t.Run("off windows pass through", func(t *testing.T) {
		s := schedule.NewIntervalList([]string{"08:00-12:00", "16:00-20:00"})
		got := schedule.ExtractIntervals(s, schedule.StatusOff, false)
		assert.Equal(t, []schedule.Interval{
			{From: "08:00", To: "12:00"},
			{From: "16:00", To: "20:00"},
		}, got)
	})

	t.Run("unsorted windows come out sorted", func(t *testing.T) {
		s := schedule.NewIntervalList([]string{"16:00-20:00", "08:00-12:00"})
		got := schedule.ExtractIntervals(s, schedule.StatusOff, false)
		assert.Equal(t, []schedule.Interval{
			{From: "08:00", To: "12:00"},
			{From: "16:00", To: "20:00"},
		}, got)
	})

	t.Run("possible is not representable", func(t *testing.T) {
		s := schedule.NewIntervalList([]string{"08:00-12:00"})
		assert.Nil(t, schedule.ExtractIntervals(s, schedule.StatusPossible, false))
	})

	t.Run("inverted view is the complement", func(t *testing.T) {
		s := schedule.NewIntervalList([]string{"00:00-06:00", "20:00-24:00"})
		got := schedule.ExtractIntervals(s, schedule.StatusOff, true)
		assert.Equal(t, []schedule.Interval{{From: "06:00", To: "20:00"}}, got)
	})

	t.Run("complementing twice restores the windows", func(t *testing.T) {
		original := []string{"06:00-09:00", "12:00-16:00", "20:00-24:00"}
		inverted := schedule.ExtractIntervals(schedule.NewIntervalList(original), schedule.StatusOff, true)

		windows := make([]string, 0, len(inverted))
		for _, iv := range inverted {
			windows = append(windows, iv.From+"-"+iv.To)
		}
		got := schedule.ExtractIntervals(schedule.NewIntervalList(windows), schedule.StatusOff, true)
		assert.Equal(t, []schedule.Interval{
			{From: "06:00", To: "09:00"},
			{From: "12:00", To: "16:00"},
			{From: "20:00", To: "24:00"},
		}, got)
	})

	t.Run("repeated calls give the same result", func(t *testing.T) {
		s := schedule.NewIntervalList([]string{"16:00-20:00", "08:00-12:00"})
		first := schedule.ExtractIntervals(s, schedule.StatusOff, false)
		second := schedule.ExtractIntervals(s, schedule.StatusOff, false)
		assert.Equal(t, first, second)

		firstInv := schedule.ExtractIntervals(s, schedule.StatusOff, true)
		secondInv := schedule.ExtractIntervals(s, schedule.StatusOff, true)
		assert.Equal(t, firstInv, secondInv)
	})

	t.Run("complement of empty list is the whole day", func(t *testing.T) {
		s := schedule.NewIntervalList(nil)
		got := schedule.ExtractIntervals(s, schedule.StatusOff, true)
		assert.Equal(t, []schedule.Interval{{From: "00:00", To: "24:00"}}, got)
	})

	t.Run("window ending at 00:00 runs to end of day", func(t *testing.T) {
		s := schedule.NewIntervalList([]string{"22:00-00:00"})
		got := schedule.ExtractIntervals(s, schedule.StatusOff, false)
		assert.Equal(t, []schedule.Interval{{From: "22:00", To: "24:00"}}, got)
	})

	t.Run("malformed window is skipped", func(t *testing.T) {
		s := schedule.NewIntervalList([]string{"garbage", "08:00-09:00"})
		got := schedule.ExtractIntervals(s, schedule.StatusOff, false)
		assert.Equal(t, []schedule.Interval{{From: "08:00", To: "09:00"}}, got)
	})
}

func TestExtractIntervals_Nil(t *testing.T) {
	assert.Nil(t, schedule.ExtractIntervals(nil, schedule.StatusOff, false))
}

func TestTotals_SlotGrid(t *testing.T) {
	s := schedule.NewSlotGrid(map[string]schedule.Status{
		"10:00": schedule.StatusOff,
		"10:30": schedule.StatusOff,
		"11:00": schedule.StatusOff,
		"11:30": schedule.StatusPossible,
		"12:00": schedule.StatusOn,
		"12:30": schedule.StatusOn,
	})

	assert.InDelta(t, 1.5, schedule.TotalOff(s), 0.001)
	assert.InDelta(t, 0.5, schedule.TotalPossible(s), 0.001)
	assert.InDelta(t, 1.0, schedule.TotalOn(s), 0.001)
}

func TestTotals_SlotGrid_DerivedOn(t *testing.T) {
	// no explicit ON slots, so the powered time is the day remainder
	s := schedule.NewSlotGrid(map[string]schedule.Status{
		"10:00": schedule.StatusOff,
		"10:30": schedule.StatusOff,
		"11:00": schedule.StatusPossible,
	})

	assert.InDelta(t, 1.0, schedule.TotalOff(s), 0.001)
	assert.InDelta(t, 0.5, schedule.TotalPossible(s), 0.001)
	assert.InDelta(t, 22.5, schedule.TotalOn(s), 0.001)
	assert.InDelta(t, 24.0, schedule.TotalOff(s)+schedule.TotalPossible(s)+schedule.TotalOn(s), 0.01)
}

func TestTotals_IntervalList(t *testing.T) {
	s := schedule.NewIntervalList([]string{"08:00-12:30", "20:00-24:00"})

	assert.InDelta(t, 8.5, schedule.TotalOff(s), 0.001)
	assert.Zero(t, schedule.TotalPossible(s))
	assert.InDelta(t, 15.5, schedule.TotalOn(s), 0.001)
	assert.InDelta(t, 24.0, schedule.TotalOff(s)+schedule.TotalOn(s), 0.01)
}

func TestTotals_Nil(t *testing.T) {
	assert.Zero(t, schedule.TotalOff(nil))
	assert.Zero(t, schedule.TotalPossible(nil))
	assert.Zero(t, schedule.TotalOn(nil))
}

func TestInterval_DurationHours(t *testing.T) {
	tests := []struct {
		iv   schedule.Interval
		want float64
	}{
		{schedule.Interval{From: "10:00", To: "11:30"}, 1.5},
		{schedule.Interval{From: "22:00", To: "24:00"}, 2},
		{schedule.Interval{From: "00:00", To: "24:00"}, 24},
		{schedule.Interval{From: "23:00", To: "01:00"}, 2}, // wrapped
		{schedule.Interval{From: "bad", To: "01:00"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.iv.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.iv.DurationHours(), 0.001)
		})
	}
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{label: "00:00", want: 0},
		{label: "06:30", want: 390},
		{label: "23:59", want: 1439},
		{label: "24:00", want: 1440},
		{label: "24:30", wantErr: true},
		{label: "25:00", wantErr: true},
		{label: "10:60", wantErr: true},
		{label: "abc", wantErr: true},
		{label: "10", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := schedule.TimeToMinutes(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", schedule.MinutesToTime(0))
	assert.Equal(t, "06:30", schedule.MinutesToTime(390))
	assert.Equal(t, "24:00", schedule.MinutesToTime(1440))
	assert.Equal(t, "24:00", schedule.MinutesToTime(1500))
}

func TestCanonical(t *testing.T) {
	a := []schedule.Interval{{From: "08:00", To: "09:00"}, {From: "10:00", To: "11:00"}}
	b := []schedule.Interval{{From: "10:00", To: "11:00"}, {From: "08:00", To: "09:00"}}

	assert.Equal(t, schedule.Canonical(a), schedule.Canonical(b))
	assert.Equal(t, "08:00-09:00;10:00-11:00", schedule.Canonical(a))
	assert.Empty(t, schedule.Canonical(nil))
}

func TestCanonical_GridAndListAgree(t *testing.T) {
	grid := schedule.NewSlotGrid(map[string]schedule.Status{
		"08:00": schedule.StatusOff,
		"08:30": schedule.StatusOff,
		"09:00": schedule.StatusOn,
	})
	list := schedule.NewIntervalList([]string{"08:00-09:00"})

	gridNorm := schedule.Canonical(schedule.ExtractIntervals(grid, schedule.StatusOff, false))
	listNorm := schedule.Canonical(schedule.ExtractIntervals(list, schedule.StatusOff, false))
	assert.Equal(t, gridNorm, listNorm)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "2", schedule.FormatHours(2))
	assert.Equal(t, "1.5", schedule.FormatHours(1.5))
	assert.Equal(t, "0", schedule.FormatHours(0))
	assert.Equal(t, "8.5", schedule.FormatHours(8.5))
}
