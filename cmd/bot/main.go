package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tc "github.com/Roma7-7-7/telegram"

	"github.com/dima123dm/SvitloMonitorBot/internal/backup"
	"github.com/dima123dm/SvitloMonitorBot/internal/calendar"
	"github.com/dima123dm/SvitloMonitorBot/internal/config"
	"github.com/dima123dm/SvitloMonitorBot/internal/dal"
	"github.com/dima123dm/SvitloMonitorBot/internal/providers"
	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
	"github.com/dima123dm/SvitloMonitorBot/internal/service"
	"github.com/dima123dm/SvitloMonitorBot/internal/telegram"
	"github.com/dima123dm/SvitloMonitorBot/pkg/clock"
)

const calendarSyncInterval = 30 * time.Minute

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.New(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	loc, err := time.LoadLocation(conf.Location)
	if err != nil {
		log.Error("Failed to load location", "location", conf.Location, "error", err)
		os.Exit(1)
	}
	clk := clock.NewWithLocation(loc)

	store, err := dal.NewBoltDB(conf.DBPath, clk)
	if err != nil {
		log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	api := providers.NewAPIProvider(conf.APIURL, conf.FetchTimeout)
	var scrape providers.RegionSource
	if conf.ScrapeURL != "" {
		scrape = providers.NewScrapeProvider(conf.ScrapeURL, conf.ScrapeRegion, conf.FetchTimeout)
	}
	source := providers.NewMergedProvider(api, scrape, log)

	cache := schedule.NewCache()
	sender := tc.NewClient(http.DefaultClient, conf.TelegramToken)
	broadcaster := service.NewBroadcaster(store, sender, conf.BroadcastPause, log)
	alerts := service.NewAlerts(cache, store, broadcaster, clk, conf.MorningDigestHour, log)
	poller := service.NewPoller(source, cache, store, store, broadcaster, alerts, clk, log)

	handler := telegram.NewHandler(store, store, cache, source, clk, log)
	bot, err := telegram.NewBot(conf.TelegramToken, handler, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		refreshSchedules(ctx, poller, conf.UpdateInterval, log.With("component", "schedule").With("action", "refresh"))
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		tickAlerts(ctx, alerts, clk, log.With("component", "schedule").With("action", "alerts"))
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		backup.New(bot.Telebot(), conf.AdminChatID, store.Path(), conf.BackupHour, clk, log).Run(ctx)
	}()

	if conf.CalendarEnabled {
		calClient, err := calendar.NewClient(ctx, conf.CalendarCredentialsPath, conf.CalendarID, loc)
		if err != nil {
			log.Error("Failed to create calendar client", "error", err)
			os.Exit(1)
		}
		calSync := calendar.NewSyncService(calClient, cache,
			schedule.Key{Region: conf.CalendarRegion, Queue: conf.CalendarQueue}, clk, loc, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			syncCalendar(ctx, calSync, log.With("component", "schedule").With("action", "calendar"))
		}()
	}

	log.Info("Starting bot")
	if err := bot.Start(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("Failed to start bot", "error", err)
		}
	}

	wg.Wait()
	log.Info("Stopped bot")
}

func refreshSchedules(ctx context.Context, svc *service.Poller, delay time.Duration, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped refresh schedules")
	}()

	log.InfoContext(ctx, "Starting refresh schedules")
	for {
		if err := svc.Refresh(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, providers.ErrUpstreamUnavailable) {
				log.WarnContext(ctx, "Error refreshing schedules", "error", err)
			} else {
				log.ErrorContext(ctx, "Error refreshing schedules", "error", err)
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// tickAlerts runs the alert engine once per wall-clock minute. Each sleep is
// aligned to the next minute boundary so lead times compare against exact
// "15:04" labels.
func tickAlerts(ctx context.Context, svc *service.Alerts, clk *clock.Clock, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped alerts ticker")
	}()

	log.InfoContext(ctx, "Starting alerts ticker")
	for {
		now := clk.Now()
		untilNextMinute := time.Duration(60-now.Second())*time.Second - time.Duration(now.Nanosecond())

		select {
		case <-ctx.Done():
			return
		case <-time.After(untilNextMinute):
		}

		if err := svc.Tick(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.ErrorContext(ctx, "Error processing alerts", "error", err)
		}
	}
}

func syncCalendar(ctx context.Context, svc *calendar.SyncService, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped calendar sync")
	}()

	log.InfoContext(ctx, "Starting calendar sync")
	if err := svc.CleanupStale(ctx, 7); err != nil { //nolint:mnd
		log.WarnContext(ctx, "Error cleaning up stale calendar events", "error", err)
	}

	for {
		if err := svc.Sync(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.ErrorContext(ctx, "Error syncing calendar", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(calendarSyncInterval):
		}
	}
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
