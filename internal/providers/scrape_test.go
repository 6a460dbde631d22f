package providers

import (
	"context"
	_ "embed"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
)

//go:embed testdata/shutdowns_page.html
var shutdownsPage []byte

func TestScrapeProvider_Fetch(t *testing.T) {
	type fields struct {
		loadPage func(context.Context, string) ([]byte, error)
	}
	tests := []struct {
		name    string
		fields  fields
		check   func(*testing.T, Region)
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "success",
			fields: fields{
				loadPage: func(_ context.Context, _ string) ([]byte, error) {
					return shutdownsPage, nil
				},
			},
			check: func(t *testing.T, got Region) {
				t.Helper()
				assert.Equal(t, "Львівська область", got.Name)
				require.Contains(t, got.Schedule, "1.1")
				require.Contains(t, got.Schedule, "1.2")

				today := got.Schedule["1.1"]["2026-09-01"]
				require.NotNil(t, today)
				assert.Equal(t, []schedule.Interval{
					{From: "08:00", To: "12:00"},
					{From: "16:00", To: "20:00"},
				}, schedule.ExtractIntervals(today, schedule.StatusOff, false))

				tomorrow := got.Schedule["1.1"]["2026-09-02"]
				require.NotNil(t, tomorrow)
				assert.Equal(t, []schedule.Interval{{From: "10:00", To: "14:00"}},
					schedule.ExtractIntervals(tomorrow, schedule.StatusOff, false))
			},
			wantErr: assert.NoError,
		},
		{
			name: "error_no_schedule_root",
			fields: fields{
				loadPage: func(_ context.Context, _ string) ([]byte, error) {
					return []byte("<html><body>nothing here</body></html>"), nil
				},
			},
			wantErr: assert.Error,
		},
		{
			name: "error_load_page",
			fields: fields{
				loadPage: func(_ context.Context, _ string) ([]byte, error) {
					return nil, assert.AnError
				},
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.Error(t, err, i...) && assert.ErrorIs(t, err, assert.AnError) && assert.ErrorContains(t, err, "load shutdowns page: ")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ScrapeProvider{
				baseURL:  "http://localhost/shutdowns/",
				region:   "Львівська область",
				timeout:  time.Second,
				loadPage: tt.fields.loadPage,
			}
			got, err := p.Fetch(t.Context())

			if !tt.wantErr(t, err, "ScrapeProvider.Fetch()") {
				return
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}
