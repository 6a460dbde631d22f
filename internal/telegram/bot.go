package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
)

type Bot struct {
	bot *tb.Bot

	handler *Handler

	log *slog.Logger
}

func NewBot(token string, handler *Handler, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		handler: handler,

		log: log.With("component", "bot"),
	}, nil
}

// Telebot returns the underlying bot for collaborators that send directly
// (e.g. the backup task's document upload).
func (b *Bot) Telebot() *tb.Bot {
	return b.bot
}

func (b *Bot) Start(ctx context.Context) error {
	b.bot.Handle("/start", b.handler.Start)
	b.bot.Handle("/schedule", b.handler.ScheduleToday)
	b.bot.Handle("/tomorrow", b.handler.ScheduleTomorrow)
	b.bot.Handle("/stats", b.handler.Stats)
	b.bot.Handle("/settings", b.handler.Settings)
	b.bot.Handle("/stop", b.handler.Stop)

	b.bot.Handle(tb.OnCallback, b.handler.Callback)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}
