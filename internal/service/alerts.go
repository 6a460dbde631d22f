package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dima123dm/SvitloMonitorBot/internal/dal"
	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
	"github.com/dima123dm/SvitloMonitorBot/pkg/clock"
)

//go:generate mockgen -package mocks -destination mocks/alerts.go . StatsReader

// leadTimes are the supported minutes-before-event warning offsets.
var leadTimes = []int{5, 15, 30, 60}

type StatsReader interface {
	GetOffHours(region, queue, date string) (float64, bool, error)
}

// alertKey identifies one logical alert occurrence: pair, timepoint, kind and
// lead. Each key fires at most once per calendar day.
type alertKey string

func buildAlertKey(key schedule.Key, timepoint, kind string, lead int) alertKey {
	return alertKey(fmt.Sprintf("%s_%s_%s_%s_%d", key.Region, key.Queue, timepoint, kind, lead))
}

// Alerts is the discrete-time alert engine. It is driven by a once-per-minute
// tick and scans the schedule cache for interval boundaries matching the lead
// times. The firing ledger and digest markers live in memory and reset at
// midnight. A tick that skips past a target minute silently misses that
// occurrence; that is the accepted polling trade-off, not a bug.
type Alerts struct {
	cache     *schedule.Cache
	stats     StatsReader
	broadcast Broadcast
	clock     Clock

	digestHour int

	fired      map[alertKey]struct{}
	digestSent map[schedule.Key]string

	log *slog.Logger
	mx  *sync.Mutex
}

func NewAlerts(
	cache *schedule.Cache,
	stats StatsReader,
	broadcast Broadcast,
	clk Clock,
	digestHour int,
	log *slog.Logger,
) *Alerts {
	return &Alerts{
		cache:     cache,
		stats:     stats,
		broadcast: broadcast,
		clock:     clk,

		digestHour: digestHour,

		fired:      make(map[alertKey]struct{}),
		digestSent: make(map[schedule.Key]string),

		log: log.With("component", "service").With("service", "alerts"),
		mx:  &sync.Mutex{},
	}
}

// MarkScheduleSent records that a pair already got a schedule broadcast for
// the date, suppressing the morning digest. Called by the poller on diff
// broadcasts and by the digest pass itself.
func (s *Alerts) MarkScheduleSent(key schedule.Key, date string) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.digestSent[key] = date
}

// Tick runs one minute of the engine: midnight reset, morning digest, lead
// warnings and exact-time restored notices.
func (s *Alerts) Tick(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	now := s.clock.Now()
	currTime := now.Format("15:04")
	today := clock.DateKey(now)

	if currTime == schedule.StartOfDay {
		s.resetDay(today)
	}

	if now.Hour() == s.digestHour && now.Minute() == 0 {
		s.morningDigest(ctx, now, today)
	}

	// target clock time per lead
	targets := make(map[int]string, len(leadTimes))
	for _, lead := range leadTimes {
		targets[lead] = now.Add(time.Duration(lead) * time.Minute).Format("15:04")
	}

	for _, key := range s.cache.Keys() {
		snap, ok := s.cache.Get(key)
		if !ok || snap.Today == nil {
			continue
		}

		todayIntervals := schedule.ExtractIntervals(snap.Today, schedule.StatusOff, false)
		tomorrowIntervals := schedule.ExtractIntervals(snap.Tomorrow, schedule.StatusOff, false)

		s.checkOutagePre(ctx, key, todayIntervals, tomorrowIntervals, targets)
		s.checkReturnPre(ctx, key, todayIntervals, targets)
		s.checkPossiblePre(ctx, key, schedule.ExtractIntervals(snap.Today, schedule.StatusPossible, false), targets)
		s.checkMidnightOutage(ctx, key, tomorrowIntervals, targets)
		s.checkRestoredNow(ctx, key, currTime, todayIntervals, tomorrowIntervals)
	}

	return nil
}

// resetDay clears the firing ledger and stale digest markers at midnight.
func (s *Alerts) resetDay(today string) {
	s.log.Info("midnight reset", "fired", len(s.fired))
	s.fired = make(map[alertKey]struct{})
	for key, date := range s.digestSent {
		if date != today {
			delete(s.digestSent, key)
		}
	}
}

// morningDigest sends a per-pair schedule summary once a day. Pairs whose
// yesterday and today both had zero off-hours are marked handled without
// sending, so quiet weeks do not produce daily "all clear" spam.
func (s *Alerts) morningDigest(ctx context.Context, now time.Time, today string) {
	yesterday := clock.DateKey(now.AddDate(0, 0, -1))

	for _, key := range s.cache.Keys() {
		snap, ok := s.cache.Get(key)
		if !ok || snap.Date != today || snap.Today == nil {
			continue
		}
		if s.digestSent[key] == today {
			continue
		}

		todayOff := schedule.TotalOff(snap.Today)
		yesterdayOff, found, err := s.stats.GetOffHours(key.Region, key.Queue, yesterday)
		if err != nil {
			s.log.ErrorContext(ctx, "failed to get yesterday's off hours", "region", key.Region, "queue", key.Queue, "error", err)
		}

		if todayOff == 0 && (!found || yesterdayOff == 0) {
			s.digestSent[key] = today
			continue
		}

		header := DigestHeader()
		textB := header + "\n" + RenderDayBody(snap.Today, key.Queue, today, false, dal.DisplayModeBlackout)
		textL := header + "\n" + RenderDayBody(snap.Today, key.Queue, today, false, dal.DisplayModeLight)

		if err := s.broadcast.Broadcast(ctx, key.Region, key.Queue, textB, textL, Gate{Kind: KindChanges}); err != nil {
			s.log.ErrorContext(ctx, "failed to broadcast digest", "region", key.Region, "queue", key.Queue, "error", err)
		}
		s.digestSent[key] = today
	}
}

// checkOutagePre warns before confirmed outage starts. An interval starting at
// the day's own midnight is skipped here: it is the continuation of
// yesterday's outage and handled by the cross-midnight check of the previous
// day.
func (s *Alerts) checkOutagePre(ctx context.Context, key schedule.Key, today, tomorrow []schedule.Interval, targets map[int]string) {
	for _, iv := range today {
		if iv.From == schedule.StartOfDay {
			continue
		}

		for _, lead := range leadTimes {
			if targets[lead] != iv.From {
				continue
			}

			ak := buildAlertKey(key, iv.From, "out_pre", lead)
			if s.hasFired(ak) {
				continue
			}

			msg := OutagePreMessage(lead, describeOutageEnd(iv.To, tomorrow))
			s.fire(ctx, key, ak, msg, Gate{Kind: KindOutagePre, LeadMinutes: lead})
		}
	}
}

// checkReturnPre warns before a scheduled return of power.
func (s *Alerts) checkReturnPre(ctx context.Context, key schedule.Key, today []schedule.Interval, targets map[int]string) {
	for _, iv := range today {
		if iv.To == schedule.EndOfDay {
			continue
		}

		for _, lead := range leadTimes {
			if targets[lead] != iv.To {
				continue
			}

			ak := buildAlertKey(key, iv.To, "ret_pre", lead)
			if s.hasFired(ak) {
				continue
			}

			s.fire(ctx, key, ak, ReturnPreMessage(lead, iv.To), Gate{Kind: KindReturnPre, LeadMinutes: lead})
		}
	}
}

// checkPossiblePre warns before grey-zone windows, reusing the outage gate.
func (s *Alerts) checkPossiblePre(ctx context.Context, key schedule.Key, possible []schedule.Interval, targets map[int]string) {
	for _, iv := range possible {
		if iv.From == schedule.StartOfDay {
			continue
		}

		for _, lead := range leadTimes {
			if targets[lead] != iv.From {
				continue
			}

			ak := buildAlertKey(key, iv.From, "poss_pre", lead)
			if s.hasFired(ak) {
				continue
			}

			s.fire(ctx, key, ak, PossiblePreMessage(lead, iv.To), Gate{Kind: KindPossiblePre, LeadMinutes: lead})
		}
	}
}

// checkMidnightOutage covers the day boundary: an outage opening tomorrow at
// 00:00 cannot be seen as a same-day interval start, so it gets its own key.
func (s *Alerts) checkMidnightOutage(ctx context.Context, key schedule.Key, tomorrow []schedule.Interval, targets map[int]string) {
	if len(tomorrow) == 0 || tomorrow[0].From != schedule.StartOfDay {
		return
	}

	for _, lead := range leadTimes {
		if targets[lead] != schedule.StartOfDay {
			continue
		}

		ak := buildAlertKey(key, schedule.StartOfDay, "tom_pre", lead)
		if s.hasFired(ak) {
			continue
		}

		endDesc := "кінця дня"
		if tomorrow[0].To != schedule.EndOfDay {
			endDesc = tomorrow[0].To
		}
		s.fire(ctx, key, ak, OutagePreMidnightMessage(lead, endDesc), Gate{Kind: KindOutagePre, LeadMinutes: lead})
	}
}

// checkRestoredNow fires the immediate "power restored" notice at the exact
// scheduled end of a confirmed outage.
func (s *Alerts) checkRestoredNow(ctx context.Context, key schedule.Key, currTime string, today, tomorrow []schedule.Interval) {
	for _, iv := range today {
		if iv.To != currTime || iv.To == schedule.EndOfDay {
			continue
		}

		ak := buildAlertKey(key, iv.To, "on", 0)
		if s.hasFired(ak) {
			continue
		}

		s.fire(ctx, key, ak, RestoredMessage(iv.To, findNextOutage(iv.To, today, tomorrow)), Gate{Kind: KindReturnNow})
	}
}

func (s *Alerts) hasFired(ak alertKey) bool {
	_, ok := s.fired[ak]
	return ok
}

// fire broadcasts the message under the gate and records the key. A delivery
// failure still counts as fired: retrying a half-delivered fan-out would
// duplicate messages for everyone who already got it.
func (s *Alerts) fire(ctx context.Context, key schedule.Key, ak alertKey, msg string, gate Gate) {
	if err := s.broadcast.Broadcast(ctx, key.Region, key.Queue, msg, msg, gate); err != nil {
		s.log.ErrorContext(ctx, "failed to broadcast alert", "key", string(ak), "error", err)
	}
	s.fired[ak] = struct{}{}
	s.log.InfoContext(ctx, "alert fired", "key", string(ak))
}

// describeOutageEnd renders when power returns, following the outage into
// tomorrow's first interval when it continues across midnight.
func describeOutageEnd(end string, tomorrow []schedule.Interval) string {
	if end != schedule.EndOfDay {
		return end
	}

	if len(tomorrow) > 0 && tomorrow[0].From == schedule.StartOfDay {
		if tomorrow[0].To == schedule.EndOfDay {
			return "завтра до кінця дня"
		}
		return "завтра до " + tomorrow[0].To
	}

	return "кінця дня"
}

// findNextOutage returns the human description of the next outage after the
// given time, today first and then tomorrow, or "" when none is scheduled.
func findNextOutage(after string, today, tomorrow []schedule.Interval) string {
	for _, iv := range today {
		if iv.From > after {
			return "сьогодні о " + iv.From
		}
	}
	if len(tomorrow) > 0 {
		return "завтра о " + tomorrow[0].From
	}
	return ""
}
