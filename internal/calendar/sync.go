package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
)

// Calendar event color IDs (Google Calendar palette)
const (
	colorIDOff   = "11" // Tomato — red
	colorIDMaybe = "5"  // Banana — yellow
)

const (
	summaryOff   = "Power off"
	summaryMaybe = "Possible outage"
)

// SnapshotReader provides the latest known schedule for one subscription pair.
type SnapshotReader interface {
	Get(key schedule.Key) (schedule.Snapshot, bool)
}

// Clock provides current time (for today/tomorrow and the event window).
type Clock interface {
	Now() time.Time
}

// SyncService mirrors the outage schedule of a single region/queue pair into a
// Google Calendar: delete our previous events in the window, then recreate
// them from the current snapshot.
type SyncService struct {
	client *Client
	cache  SnapshotReader
	key    schedule.Key
	clock  Clock
	loc    *time.Location
	log    *slog.Logger
}

func NewSyncService(client *Client, cache SnapshotReader, key schedule.Key, clock Clock, loc *time.Location, log *slog.Logger) *SyncService {
	return &SyncService{
		client: client,
		cache:  cache,
		key:    key,
		clock:  clock,
		loc:    loc,
		log:    log.With("component", "calendar_sync"),
	}
}

// Sync performs a full sync: delete our events in [today 00:00, tomorrow
// 23:59:59], then create events from the cached snapshot. A snapshot from a
// previous day is skipped: stale data would resurrect yesterday's events.
func (s *SyncService) Sync(ctx context.Context) error {
	now := s.clock.Now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	tomorrow := today.AddDate(0, 0, 1)

	snap, ok := s.cache.Get(s.key)
	if !ok || snap.Date != today.Format("2006-01-02") {
		s.log.DebugContext(ctx, "skipping calendar sync: no current snapshot", "region", s.key.Region, "queue", s.key.Queue)
		return nil
	}

	timeMin := today
	timeMax := tomorrow.Add(24*time.Hour - time.Second)

	s.log.InfoContext(ctx, "starting calendar sync",
		"timeMin", timeMin.Format(time.RFC3339), "timeMax", timeMax.Format(time.RFC3339))

	ids, err := s.client.ListOurEvents(ctx, timeMin, timeMax)
	if err != nil {
		return fmt.Errorf("calendar sync: list: %w", err)
	}
	for _, id := range ids {
		if err := s.client.DeleteEvent(ctx, id); err != nil {
			return fmt.Errorf("calendar sync: delete %s: %w", id, err)
		}
	}

	desc := fmt.Sprintf("Черга %s, %s", s.key.Queue, s.key.Region)
	toCreate := append(eventsForDay(snap.Today, today, s.loc), eventsForDay(snap.Tomorrow, tomorrow, s.loc)...)
	for _, ev := range toCreate {
		if _, err := s.client.InsertEvent(ctx, ev.summary, ev.start, ev.end, ev.colorID, desc); err != nil {
			return fmt.Errorf("calendar sync: insert: %w", err)
		}
	}

	s.log.InfoContext(ctx, "calendar sync completed", "deleted", len(ids), "created", len(toCreate))
	return nil
}

// CleanupStale deletes our events in the past lookbackDays (not including
// today). Window: [today - lookbackDays at 00:00, yesterday at 23:59:59].
func (s *SyncService) CleanupStale(ctx context.Context, lookbackDays int) error {
	now := s.clock.Now().In(s.loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	yesterdayEnd := todayStart.Add(-time.Second)
	timeMin := todayStart.AddDate(0, 0, -lookbackDays)

	ids, err := s.client.ListOurEvents(ctx, timeMin, yesterdayEnd)
	if err != nil {
		return fmt.Errorf("calendar cleanup: list: %w", err)
	}
	for _, id := range ids {
		if err := s.client.DeleteEvent(ctx, id); err != nil {
			return fmt.Errorf("calendar cleanup: delete %s: %w", id, err)
		}
	}
	s.log.InfoContext(ctx, "calendar stale cleanup completed", "deleted", len(ids))
	return nil
}

type eventPayload struct {
	summary string
	start   time.Time
	end     time.Time
	colorID string
}

// eventsForDay builds payloads for one day's schedule: confirmed outages in
// red, possible ones in yellow. A nil schedule yields nothing.
func eventsForDay(raw *schedule.RawSchedule, day time.Time, loc *time.Location) []eventPayload {
	if raw == nil {
		return nil
	}

	var out []eventPayload
	for _, iv := range schedule.ExtractIntervals(raw, schedule.StatusOff, false) {
		out = append(out, payloadFor(iv, day, loc, summaryOff, colorIDOff))
	}
	for _, iv := range schedule.ExtractIntervals(raw, schedule.StatusPossible, false) {
		out = append(out, payloadFor(iv, day, loc, summaryMaybe, colorIDMaybe))
	}
	return out
}

func payloadFor(iv schedule.Interval, day time.Time, loc *time.Location, summary, colorID string) eventPayload {
	return eventPayload{
		summary: summary,
		start:   timeInDay(iv.From, day, loc),
		end:     timeInDay(iv.To, day, loc),
		colorID: colorID,
	}
}

// timeInDay places a "15:04" label on the given day. "24:00" is midnight at
// the start of the next day.
func timeInDay(label string, day time.Time, loc *time.Location) time.Time {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	minutes, err := schedule.TimeToMinutes(label)
	if err != nil {
		return startOfDay
	}
	return startOfDay.Add(time.Duration(minutes) * time.Minute)
}
