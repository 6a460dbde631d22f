package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dima123dm/SvitloMonitorBot/internal/dal"
	"github.com/dima123dm/SvitloMonitorBot/internal/providers"
	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
	"github.com/dima123dm/SvitloMonitorBot/pkg/clock"
)

//go:generate mockgen -package mocks -destination mocks/poller.go . Source,PairsStore,StatsStore,DigestMarker

type Clock interface {
	Now() time.Time
}

type (
	Source interface {
		Fetch(ctx context.Context) (*providers.Feed, error)
	}

	PairsStore interface {
		GetSubscriptionPairs() ([]dal.SubscriptionPair, error)
	}

	StatsStore interface {
		PutDailyStat(stat dal.DailyStat) error
		CleanupStats(cutoff string) error
	}

	// DigestMarker lets the poller suppress the morning digest for pairs that
	// already received a schedule broadcast earlier the same day.
	DigestMarker interface {
		MarkScheduleSent(key schedule.Key, date string)
	}
)

// Poller is the diff detector: each cycle it fetches the merged feed,
// normalizes confirmed-off intervals, compares them with the cached snapshot
// and broadcasts meaningful changes. The cache is the only thing it mutates.
type Poller struct {
	source    Source
	cache     *schedule.Cache
	pairs     PairsStore
	stats     StatsStore
	broadcast Broadcast
	digests   DigestMarker
	clock     Clock

	warmedUp bool
	log      *slog.Logger
	mx       *sync.Mutex
}

func NewPoller(
	source Source,
	cache *schedule.Cache,
	pairs PairsStore,
	stats StatsStore,
	broadcast Broadcast,
	digests DigestMarker,
	clk Clock,
	log *slog.Logger,
) *Poller {
	return &Poller{
		source:    source,
		cache:     cache,
		pairs:     pairs,
		stats:     stats,
		broadcast: broadcast,
		digests:   digests,
		clock:     clk,

		log: log.With("component", "service").With("service", "poller"),
		mx:  &sync.Mutex{},
	}
}

// Refresh runs one poll cycle. A failed fetch aborts the whole cycle and
// leaves the cache untouched; a single pair's failure is logged and skipped.
func (p *Poller) Refresh(ctx context.Context) error {
	p.mx.Lock()
	defer p.mx.Unlock()

	now := p.clock.Now()
	today := clock.DateKey(now)
	tomorrow := clock.DateKey(now.AddDate(0, 0, 1))

	cutoff := clock.DateKey(now.AddDate(0, 0, -dal.StatsRetentionDays()))
	if err := p.stats.CleanupStats(cutoff); err != nil {
		p.log.ErrorContext(ctx, "failed to clean up old stats", "error", err)
	}

	feed, err := p.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch schedules: %w", err)
	}

	pairs, err := p.pairs.GetSubscriptionPairs()
	if err != nil {
		return fmt.Errorf("get subscription pairs: %w", err)
	}

	for _, pair := range pairs {
		p.processPair(ctx, feed, pair, today, tomorrow)
	}

	// The warm-up cycle only fills the cache: there is no baseline to diff
	// against, so nothing was broadcast on it.
	p.warmedUp = true

	return nil
}

func (p *Poller) processPair(ctx context.Context, feed *providers.Feed, pair dal.SubscriptionPair, today, tomorrow string) {
	key := schedule.Key{Region: pair.Region, Queue: pair.Queue}
	log := p.log.With("region", pair.Region, "queue", pair.Queue)

	todaySch := feed.Lookup(pair.Region, pair.Queue, today)
	tomorrowSch := feed.Lookup(pair.Region, pair.Queue, tomorrow)

	var cachedToday, cachedTomorrow *schedule.RawSchedule
	if snap, ok := p.cache.Get(key); ok && snap.Date == today {
		cachedToday = snap.Today
		cachedTomorrow = snap.Tomorrow
	}

	if todaySch != nil {
		p.saveStat(ctx, pair, today, todaySch, log)
		p.diffToday(ctx, pair, today, todaySch, cachedToday, log)
	}

	switch {
	case tomorrowSch != nil && cachedTomorrow == nil:
		p.saveStat(ctx, pair, tomorrow, tomorrowSch, log)
		p.announceTomorrow(ctx, pair, tomorrow, tomorrowSch, log)
	case tomorrowSch != nil && cachedTomorrow != nil:
		p.diffTomorrow(ctx, pair, tomorrow, tomorrowSch, cachedTomorrow, log)
	}

	p.cache.Upsert(key, today, todaySch, tomorrowSch)
}

// diffToday broadcasts when confirmed-off intervals changed against the cached
// baseline. Changes confined to POSSIBLE slots compare equal on purpose: grey
// zones are too noisy to notify about.
func (p *Poller) diffToday(ctx context.Context, pair dal.SubscriptionPair, today string, fresh, cached *schedule.RawSchedule, log *slog.Logger) {
	if cached == nil {
		return
	}

	freshNorm := schedule.Canonical(schedule.ExtractIntervals(fresh, schedule.StatusOff, false))
	cachedNorm := schedule.Canonical(schedule.ExtractIntervals(cached, schedule.StatusOff, false))
	if freshNorm == cachedNorm {
		return
	}

	log.InfoContext(ctx, "today's confirmed intervals changed")
	if !p.warmedUp {
		return
	}

	header := ChangeTodayHeader(today)
	textB := header + "\n" + RenderDayBody(fresh, pair.Queue, today, false, dal.DisplayModeBlackout)
	textL := header + "\n" + RenderDayBody(fresh, pair.Queue, today, false, dal.DisplayModeLight)

	if err := p.broadcast.Broadcast(ctx, pair.Region, pair.Queue, textB, textL, Gate{Kind: KindChanges}); err != nil {
		log.ErrorContext(ctx, "failed to broadcast today's change", "error", err)
		return
	}

	p.digests.MarkScheduleSent(schedule.Key{Region: pair.Region, Queue: pair.Queue}, today)
}

// announceTomorrow fires when tomorrow's schedule first appears with real
// outages. This is a first announcement, not a diff, so it is not gated on
// the warm-up flag.
func (p *Poller) announceTomorrow(ctx context.Context, pair dal.SubscriptionPair, tomorrow string, fresh *schedule.RawSchedule, log *slog.Logger) {
	if schedule.TotalOff(fresh) == 0 {
		return
	}

	log.InfoContext(ctx, "tomorrow's schedule published")

	header := ChangeTomorrowHeader(tomorrow)
	textB := header + "\n" + RenderDayBody(fresh, pair.Queue, tomorrow, true, dal.DisplayModeBlackout)
	textL := header + "\n" + RenderDayBody(fresh, pair.Queue, tomorrow, true, dal.DisplayModeLight)

	if err := p.broadcast.Broadcast(ctx, pair.Region, pair.Queue, textB, textL, Gate{Kind: KindChanges}); err != nil {
		log.ErrorContext(ctx, "failed to broadcast tomorrow's schedule", "error", err)
	}
}

func (p *Poller) diffTomorrow(ctx context.Context, pair dal.SubscriptionPair, tomorrow string, fresh, cached *schedule.RawSchedule, log *slog.Logger) {
	freshNorm := schedule.Canonical(schedule.ExtractIntervals(fresh, schedule.StatusOff, false))
	cachedNorm := schedule.Canonical(schedule.ExtractIntervals(cached, schedule.StatusOff, false))
	if freshNorm == cachedNorm {
		return
	}

	p.saveStat(ctx, pair, tomorrow, fresh, log)

	log.InfoContext(ctx, "tomorrow's confirmed intervals changed")
	if !p.warmedUp {
		return
	}

	header := ChangeTomorrowHeader(tomorrow)
	textB := header + "\n" + RenderDayBody(fresh, pair.Queue, tomorrow, true, dal.DisplayModeBlackout)
	textL := header + "\n" + RenderDayBody(fresh, pair.Queue, tomorrow, true, dal.DisplayModeLight)

	if err := p.broadcast.Broadcast(ctx, pair.Region, pair.Queue, textB, textL, Gate{Kind: KindChanges}); err != nil {
		log.ErrorContext(ctx, "failed to broadcast tomorrow's change", "error", err)
	}
}

func (p *Poller) saveStat(ctx context.Context, pair dal.SubscriptionPair, date string, s *schedule.RawSchedule, log *slog.Logger) {
	stat := dal.DailyStat{
		Date:     date,
		Region:   pair.Region,
		Queue:    pair.Queue,
		OffHours: schedule.TotalOff(s),
	}
	if err := p.stats.PutDailyStat(stat); err != nil {
		log.ErrorContext(ctx, "failed to save daily stat", "date", date, "error", err)
	}
}
