package backup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
)

type Clock interface {
	Now() time.Time
}

// Service sends the database file to the admin chat once a day at a fixed
// hour. It is an independent long sleeper with no shared state beyond reading
// the file from disk.
type Service struct {
	bot         *tb.Bot
	adminChatID int64
	dbPath      string
	hour        int
	clock       Clock

	log *slog.Logger
}

func New(bot *tb.Bot, adminChatID int64, dbPath string, hour int, clk Clock, log *slog.Logger) *Service {
	return &Service{
		bot:         bot,
		adminChatID: adminChatID,
		dbPath:      dbPath,
		hour:        hour,
		clock:       clk,

		log: log.With("component", "backup"),
	}
}

// Run sleeps until the next scheduled hour, sends the backup, and repeats
// until the context is cancelled.
func (s *Service) Run(ctx context.Context) {
	if s.adminChatID == 0 {
		s.log.Info("no admin chat configured, backups disabled")
		return
	}

	s.log.Info("backup task started", "hour", s.hour)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("backup task stopped")
			return
		case <-time.After(s.untilNextRun()):
		}

		if err := s.send(); err != nil {
			s.log.ErrorContext(ctx, "failed to send backup", "error", err)
		} else {
			s.log.InfoContext(ctx, "backup sent")
		}

		// guard against firing twice within the same minute
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Minute):
		}
	}
}

func (s *Service) untilNextRun() time.Duration {
	now := s.clock.Now()
	target := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, now.Location())
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Sub(now)
}

func (s *Service) send() error {
	doc := &tb.Document{
		File:     tb.FromDisk(s.dbPath),
		FileName: "svitlo-monitor.db",
		Caption:  fmt.Sprintf("📦 **Автоматичний бекап бази даних**\n📅 %s", s.clock.Now().Format("2006-01-02 15:04")),
	}

	if _, err := s.bot.Send(&tb.Chat{ID: s.adminChatID}, doc, tb.ModeMarkdown); err != nil {
		return fmt.Errorf("send backup document: %w", err)
	}
	return nil
}
