package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Roma7-7-7/telegram"

	"github.com/dima123dm/SvitloMonitorBot/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/dispatch.go . UsersStore,TelegramClient,Broadcast

// NotifyKind is the notification class a broadcast belongs to. Together with
// the lead minutes it forms the dispatch predicate evaluated against each
// subscriber's preferences.
type NotifyKind int

const (
	KindChanges NotifyKind = iota + 1
	KindOutagePre
	KindPossiblePre
	KindReturnPre
	KindReturnNow
)

// Gate decides whether a particular subscriber receives a broadcast.
type Gate struct {
	Kind        NotifyKind
	LeadMinutes int
}

// allows evaluates the gate against stored preferences. Lead-time warnings
// only pass for users whose configured lead equals the matched one.
func (g Gate) allows(s dal.Settings) bool {
	switch g.Kind {
	case KindChanges:
		return s.NotifyChanges
	case KindOutagePre, KindPossiblePre:
		return s.NotifyOutage && s.NotifyBefore == g.LeadMinutes
	case KindReturnPre:
		return s.NotifyReturn && s.NotifyReturnBefore == g.LeadMinutes
	case KindReturnNow:
		return s.NotifyReturn
	default:
		return false
	}
}

type (
	UsersStore interface {
		GetUsersByPair(region, queue string) ([]dal.User, error)
		DeleteUser(chatID int64) error
	}

	TelegramClient interface {
		SendMessage(ctx context.Context, chatID, msg string) error
	}

	// Broadcast is the dispatch contract the poller and the alert engine use.
	Broadcast interface {
		Broadcast(ctx context.Context, region, queue, textBlackout, textLight string, gate Gate) error
	}
)

// Broadcaster fans a message pair out to all subscribers of a (region, queue),
// filtering by the gate and choosing the variant per display mode.
type Broadcaster struct {
	users    UsersStore
	telegram TelegramClient

	pause time.Duration
	log   *slog.Logger
}

func NewBroadcaster(users UsersStore, telegram TelegramClient, pause time.Duration, log *slog.Logger) *Broadcaster {
	return &Broadcaster{
		users:    users,
		telegram: telegram,
		pause:    pause,
		log:      log.With("component", "service").With("service", "broadcaster"),
	}
}

// Broadcast delivers to every passing subscriber. A single recipient failure
// never interrupts the fan-out; a blocked recipient is purged. The pause
// between sends respects Telegram flood limits.
func (b *Broadcaster) Broadcast(ctx context.Context, region, queue, textBlackout, textLight string, gate Gate) error {
	users, err := b.users.GetUsersByPair(region, queue)
	if err != nil {
		return fmt.Errorf("get users for %s/%s: %w", region, queue, err)
	}

	for _, u := range users {
		if !gate.allows(u.Settings) {
			continue
		}

		text := textBlackout
		if u.Settings.DisplayMode == dal.DisplayModeLight {
			text = textLight
		}

		if err := b.telegram.SendMessage(ctx, strconv.FormatInt(u.ChatID, 10), text); err != nil {
			if errors.Is(err, telegram.ErrForbidden) {
				b.log.InfoContext(ctx, "bot blocked by user, purging", "chatID", u.ChatID)
				if err := b.users.DeleteUser(u.ChatID); err != nil {
					b.log.ErrorContext(ctx, "failed to purge user", "chatID", u.ChatID, "error", err)
				}
				continue
			}
			b.log.ErrorContext(ctx, "failed to send message", "chatID", u.ChatID, "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck // caller handles cancellation
		case <-time.After(b.pause):
		}
	}

	return nil
}
