package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/dima123dm/SvitloMonitorBot/internal/dal"
	"github.com/dima123dm/SvitloMonitorBot/internal/providers"
	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
	"github.com/dima123dm/SvitloMonitorBot/internal/service"
	"github.com/dima123dm/SvitloMonitorBot/pkg/clock"
)

//go:generate mockgen -package mocks -destination mocks/handler.go . UsersStore,StatsStore,Source

const (
	genericErrorMsg  = "Щось пішло не так. Будь ласка, спробуйте пізніше."
	notSubscribedMsg = "Ви ще не обрали чергу. Натисніть /start щоб підписатись."
	statsDays        = 7
)

type (
	UsersStore interface {
		GetUser(chatID int64) (dal.User, bool, error)
		PutUser(u dal.User) error
		DeleteUser(chatID int64) error
	}

	StatsStore interface {
		GetRecentStats(region, queue string, limit int) ([]dal.DailyStat, error)
	}

	// ScheduleReader answers request-time views from the cache so the bot
	// never re-fetches upstream on a user command.
	ScheduleReader interface {
		Get(key schedule.Key) (schedule.Snapshot, bool)
	}

	Source interface {
		Fetch(ctx context.Context) (*providers.Feed, error)
	}

	Clock interface {
		Now() time.Time
	}
)

type Handler struct {
	users  UsersStore
	stats  StatsStore
	cache  ScheduleReader
	source Source
	clock  Clock

	log *slog.Logger
}

func NewHandler(users UsersStore, stats StatsStore, cache ScheduleReader, source Source, clk Clock, log *slog.Logger) *Handler {
	return &Handler{
		users:  users,
		stats:  stats,
		cache:  cache,
		source: source,
		clock:  clk,
		log:    log.With("component", "telegram").With("handler", "commands"),
	}
}

func (h *Handler) Start(c tb.Context) error {
	text := "👋 **Вітаю! Це бот Моніторингу Світла.**\n\n" +
		"Я допоможу вам:\n" +
		"💡 Дізнатися актуальний графік.\n" +
		"🔔 Отримувати сповіщення.\n" +
		"📊 Переглядати статистику.\n\n" +
		"👇 **Оберіть вашу область:**"
	return h.sendRegionsMenu(c, text)
}

func (h *Handler) sendRegionsMenu(c tb.Context, text string) error {
	feed, err := h.source.Fetch(context.Background())
	if err != nil {
		h.log.Error("failed to fetch feed for regions menu", "error", err)
		return c.Send("⚠️ Помилка отримання даних.")
	}

	markup := &tb.ReplyMarkup{}
	var rows []tb.Row
	var row tb.Row
	for _, region := range feed.Regions {
		row = append(row, markup.Data(region.Name, "reg", region.Name))
		if len(row) == 2 { //nolint:mnd // two buttons per row
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	markup.Inline(rows...)

	return c.Send(text, markup, tb.ModeMarkdown)
}

func (h *Handler) ScheduleToday(c tb.Context) error {
	return h.scheduleView(c, false)
}

func (h *Handler) ScheduleTomorrow(c tb.Context) error {
	return h.scheduleView(c, true)
}

func (h *Handler) scheduleView(c tb.Context, tomorrow bool) error {
	user, found, err := h.users.GetUser(c.Sender().ID)
	if err != nil {
		h.log.Error("failed to get user", "chatID", c.Sender().ID, "error", err)
		return c.Send(genericErrorMsg)
	}
	if !found || user.Region == "" {
		return c.Send(notSubscribedMsg)
	}

	now := h.clock.Now()
	date := clock.DateKey(now)
	if tomorrow {
		date = clock.DateKey(now.AddDate(0, 0, 1))
	}

	var raw *schedule.RawSchedule
	if snap, ok := h.cache.Get(schedule.Key{Region: user.Region, Queue: user.Queue}); ok && snap.Date == clock.DateKey(now) {
		raw = snap.Today
		if tomorrow {
			raw = snap.Tomorrow
		}
	}

	msg := service.RenderDayMessage(raw, user.Queue, date, tomorrow, user.Settings.DisplayMode)
	return c.Send(msg, tb.ModeMarkdown)
}

func (h *Handler) Stats(c tb.Context) error {
	user, found, err := h.users.GetUser(c.Sender().ID)
	if err != nil {
		h.log.Error("failed to get user", "chatID", c.Sender().ID, "error", err)
		return c.Send(genericErrorMsg)
	}
	if !found || user.Region == "" {
		return c.Send(notSubscribedMsg)
	}

	stats, err := h.stats.GetRecentStats(user.Region, user.Queue, statsDays)
	if err != nil {
		h.log.Error("failed to get stats", "chatID", c.Sender().ID, "error", err)
		return c.Send(genericErrorMsg)
	}

	return c.Send(service.RenderStats(user.Region, user.Queue, stats), tb.ModeMarkdown)
}

func (h *Handler) Settings(c tb.Context) error {
	user, found, err := h.users.GetUser(c.Sender().ID)
	if err != nil {
		h.log.Error("failed to get user", "chatID", c.Sender().ID, "error", err)
		return c.Send(genericErrorMsg)
	}
	if !found {
		return c.Send(notSubscribedMsg)
	}

	return c.Send(settingsText(user.Settings), settingsMarkup(user.Settings), tb.ModeMarkdown)
}

func (h *Handler) Stop(c tb.Context) error {
	if err := h.users.DeleteUser(c.Sender().ID); err != nil {
		h.log.Error("failed to delete user", "chatID", c.Sender().ID, "error", err)
		return c.Send(genericErrorMsg)
	}
	return c.Send("Ви відписані. Повернутись: /start")
}

// Callback routes inline button presses. Data formats:
//
//	reg|<region>           region picked, show its queues
//	q|<region>|<queue>     queue picked, save the subscription
//	set|<field>[|<value>]  settings toggle or lead-minutes choice
func (h *Handler) Callback(c tb.Context) error {
	data := strings.TrimSpace(c.Callback().Data)
	// telebot prefixes unique callback data with "\f<unique>|"
	data = strings.TrimPrefix(data, "\f")

	parts := strings.Split(data, "|")
	if len(parts) == 0 {
		return c.Respond()
	}

	switch parts[0] {
	case "reg":
		if len(parts) < 2 { //nolint:mnd
			return c.Respond()
		}
		return h.queuesMenu(c, parts[1])
	case "q":
		if len(parts) < 3 { //nolint:mnd
			return c.Respond()
		}
		return h.subscribe(c, parts[1], parts[2])
	case "set":
		return h.toggleSetting(c, parts[1:])
	default:
		return c.Respond()
	}
}

func (h *Handler) queuesMenu(c tb.Context, region string) error {
	feed, err := h.source.Fetch(context.Background())
	if err != nil {
		h.log.Error("failed to fetch feed for queues menu", "error", err)
		return c.Edit("⚠️ Помилка отримання даних.")
	}

	queues := feed.Queues(region)
	if len(queues) == 0 {
		return c.Edit("⚠️ Для цієї області немає черг.")
	}
	sort.Strings(queues)

	markup := &tb.ReplyMarkup{}
	var rows []tb.Row
	var row tb.Row
	for _, q := range queues {
		row = append(row, markup.Data("Черга "+q, "q", region, q))
		if len(row) == 3 { //nolint:mnd // three buttons per row
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	markup.Inline(rows...)

	return c.Edit(fmt.Sprintf("**%s**\n👇 Оберіть вашу чергу:", region), markup, tb.ModeMarkdown)
}

func (h *Handler) subscribe(c tb.Context, region, queue string) error {
	chatID := c.Sender().ID

	user, found, err := h.users.GetUser(chatID)
	if err != nil {
		h.log.Error("failed to get user", "chatID", chatID, "error", err)
		return c.Edit(genericErrorMsg)
	}
	if !found {
		user = dal.User{ChatID: chatID, Settings: dal.DefaultSettings()}
	}
	user.Region = region
	user.Queue = queue

	if err := h.users.PutUser(user); err != nil {
		h.log.Error("failed to save user", "chatID", chatID, "error", err)
		return c.Edit(genericErrorMsg)
	}

	h.log.Info("user subscribed", "chatID", chatID, "region", region, "queue", queue)
	return c.Edit(fmt.Sprintf("✅ Готово! Ви підписані:\n**%s**, черга **%s**\n\nГрафік: /schedule\nНалаштування: /settings", region, queue), tb.ModeMarkdown)
}

func (h *Handler) toggleSetting(c tb.Context, args []string) error {
	if len(args) == 0 {
		return c.Respond()
	}

	chatID := c.Sender().ID
	user, found, err := h.users.GetUser(chatID)
	if err != nil || !found {
		h.log.Error("failed to get user for settings", "chatID", chatID, "error", err)
		return c.Edit(genericErrorMsg)
	}

	s := &user.Settings
	switch args[0] {
	case "outage":
		s.NotifyOutage = !s.NotifyOutage
	case "return":
		s.NotifyReturn = !s.NotifyReturn
	case "changes":
		s.NotifyChanges = !s.NotifyChanges
	case "mode":
		if s.DisplayMode == dal.DisplayModeLight {
			s.DisplayMode = dal.DisplayModeBlackout
		} else {
			s.DisplayMode = dal.DisplayModeLight
		}
	case "before":
		if len(args) < 2 { //nolint:mnd
			return c.Respond()
		}
		mins, err := strconv.Atoi(args[1])
		if err != nil {
			return c.Respond()
		}
		s.NotifyBefore = mins
	case "retbefore":
		if len(args) < 2 { //nolint:mnd
			return c.Respond()
		}
		mins, err := strconv.Atoi(args[1])
		if err != nil {
			return c.Respond()
		}
		s.NotifyReturnBefore = mins
	default:
		return c.Respond()
	}

	if err := h.users.PutUser(user); err != nil {
		h.log.Error("failed to save settings", "chatID", chatID, "error", err)
		return c.Edit(genericErrorMsg)
	}

	return c.Edit(settingsText(user.Settings), settingsMarkup(user.Settings), tb.ModeMarkdown)
}

func onOff(v bool) string {
	if v {
		return "✅"
	}
	return "❌"
}

func settingsText(s dal.Settings) string {
	mode := "🌑 Відключення"
	if s.DisplayMode == dal.DisplayModeLight {
		mode = "💡 Світло"
	}
	return fmt.Sprintf("⚙️ **Налаштування сповіщень**\n\n"+
		"%s Про відключення (за %d хв)\n"+
		"%s Про включення (за %d хв)\n"+
		"%s Про зміни графіку\n"+
		"Режим відображення: %s",
		onOff(s.NotifyOutage), s.NotifyBefore,
		onOff(s.NotifyReturn), s.NotifyReturnBefore,
		onOff(s.NotifyChanges), mode)
}

func settingsMarkup(s dal.Settings) *tb.ReplyMarkup {
	markup := &tb.ReplyMarkup{}

	leadRow := tb.Row{}
	for _, m := range []int{5, 15, 30, 60} {
		label := strconv.Itoa(m)
		if s.NotifyBefore == m {
			label = "• " + label + " •"
		}
		leadRow = append(leadRow, markup.Data(label, "set", "before", strconv.Itoa(m)))
	}

	markup.Inline(
		tb.Row{markup.Data(onOff(s.NotifyOutage)+" Відключення", "set", "outage")},
		tb.Row{markup.Data(onOff(s.NotifyReturn)+" Включення", "set", "return")},
		tb.Row{markup.Data(onOff(s.NotifyChanges)+" Зміни графіку", "set", "changes")},
		leadRow,
		tb.Row{markup.Data("Режим відображення", "set", "mode")},
	)

	return markup
}
