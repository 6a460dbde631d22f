package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dima123dm/SvitloMonitorBot/pkg/clock"
)

func TestUntilNextRun(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Duration
	}{
		{
			name: "before target today",
			now:  time.Date(2026, 9, 1, 1, 30, 0, 0, time.UTC),
			hour: 3,
			want: 90 * time.Minute,
		},
		{
			name: "exactly at target rolls to tomorrow",
			now:  time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC),
			hour: 3,
			want: 24 * time.Hour,
		},
		{
			name: "after target rolls to tomorrow",
			now:  time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			hour: 3,
			want: 15 * time.Hour,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Service{hour: tt.hour, clock: clock.NewMock(tt.now)}
			assert.Equal(t, tt.want, s.untilNextRun())
		})
	}
}
