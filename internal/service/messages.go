package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dima123dm/SvitloMonitorBot/internal/dal"
	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
	"github.com/dima123dm/SvitloMonitorBot/pkg/clock"
)

var weekdaysUA = map[time.Weekday]string{
	time.Monday:    "Понеділок",
	time.Tuesday:   "Вівторок",
	time.Wednesday: "Середа",
	time.Thursday:  "Четвер",
	time.Friday:    "П'ятниця",
	time.Saturday:  "Субота",
	time.Sunday:    "Неділя",
}

// niceDate renders a "2006-01-02" key as "DD.MM"; falls back to the raw key
// when it does not parse.
func niceDate(date string) string {
	t, err := time.Parse(clock.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02.01")
}

// ChangeTodayHeader heads a diff broadcast for today's schedule.
func ChangeTodayHeader(date string) string {
	return fmt.Sprintf("🔄 📅 **Оновлено графік на СЬОГОДНІ! (%s)**", niceDate(date))
}

// ChangeTomorrowHeader heads a diff or first-announcement broadcast for
// tomorrow's schedule.
func ChangeTomorrowHeader(date string) string {
	return fmt.Sprintf("🔄 🔮 **Оновлено графік на ЗАВТРА! (%s)**", niceDate(date))
}

// DigestHeader heads the morning digest.
func DigestHeader() string {
	return "☀️ **Добрий ранок! Графік на сьогодні:**"
}

// DefaultDayHeader is the header used for request-time schedule views.
func DefaultDayHeader(date string, tomorrow bool) string {
	t, err := time.Parse(clock.DateLayout, date)
	day := ""
	if err == nil {
		day = fmt.Sprintf(", %s (%s)", t.Format("02.01"), weekdaysUA[t.Weekday()])
	}

	if tomorrow {
		return "🔮 **Графік відключень світла на завтра" + day + "**"
	}
	return "💡 **Графік відключень світла на сьогодні" + day + "**"
}

// RenderDayBody renders the schedule body (everything under the header) for
// one day and display mode. The blackout mode lists confirmed-off windows,
// the light mode the inverted powered windows.
func RenderDayBody(s *schedule.RawSchedule, queue, date string, tomorrow bool, mode string) string {
	if s == nil {
		if tomorrow {
			return "🕒 **Графік на завтра ще не оприлюднено.**"
		}
		return "⏳ **Дані оновлюються...**"
	}

	light := mode == dal.DisplayModeLight
	intervals := schedule.ExtractIntervals(s, schedule.StatusOff, light)

	if tomorrow && len(intervals) == 0 && !light {
		return fmt.Sprintf("🕒 **Графік на завтра (%s) ще не оприлюднено.**\n(Або відключень не планується)", niceDate(date))
	}

	var body string
	switch {
	case len(intervals) == 0 && light:
		body = "💡 **Світло весь день.**"
	case len(intervals) == 0:
		body = "✅ **Відключень не передбачено.**"
	default:
		icon := "🕒"
		if light {
			icon = "💡"
		}
		lines := make([]string, 0, len(intervals))
		for _, iv := range intervals {
			lines = append(lines, fmt.Sprintf("%s **%s — %s** _(%s год)_",
				icon, iv.From, iv.To, schedule.FormatHours(iv.DurationHours())))
		}
		body = strings.Join(lines, "\n")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👤 Черга: **%s**\n", queue))
	sb.WriteString("──────────────────\n")
	sb.WriteString(body)
	sb.WriteString("\n──────────────────\n")

	if light {
		sb.WriteString(fmt.Sprintf("💡 Зі світлом: **%s год.**", schedule.FormatHours(schedule.TotalOn(s))))
	} else if total := schedule.TotalOff(s); total > 0 {
		sb.WriteString(fmt.Sprintf("⚡️ Всього: **%s год.**", schedule.FormatHours(total)))
	}

	return sb.String()
}

// RenderDayMessage is the full request-time view: default header plus body.
func RenderDayMessage(s *schedule.RawSchedule, queue, date string, tomorrow bool, mode string) string {
	return DefaultDayHeader(date, tomorrow) + "\n" + RenderDayBody(s, queue, date, tomorrow, mode)
}

// OutagePreMessage warns about an upcoming confirmed outage. endDesc already
// carries the cross-midnight phrasing when needed.
func OutagePreMessage(lead int, endDesc string) string {
	return fmt.Sprintf("⏳ **Скоро відключення (через %d хв).**\nСвітла не буде до **%s**.", lead, endDesc)
}

// OutagePreMidnightMessage is the cross-midnight variant fired when tomorrow's
// first off window starts at midnight.
func OutagePreMidnightMessage(lead int, endDesc string) string {
	return fmt.Sprintf("⏳ **Скоро відключення (через %d хв, о 00:00).**\nСвітла не буде до **%s**.", lead, endDesc)
}

// ReturnPreMessage warns about an upcoming scheduled return of power.
func ReturnPreMessage(lead int, at string) string {
	return fmt.Sprintf("💡 **Світло з'явиться орієнтовно через %d хв (о %s).**", lead, at)
}

// PossiblePreMessage warns about an upcoming grey-zone window.
func PossiblePreMessage(lead int, end string) string {
	return fmt.Sprintf("⚠️ **Увага! Через %d хв можливе відключення.**\nСіра зона графіку (до %s).", lead, end)
}

// RestoredMessage fires at the scheduled end of an outage. nextDesc is the
// human description of the next outage, empty when there is none.
func RestoredMessage(at, nextDesc string) string {
	nextInfo := "✅ Далі без відключень."
	if nextDesc != "" {
		nextInfo = fmt.Sprintf("Наступне відключення: **%s**.", nextDesc)
	}
	return fmt.Sprintf("⚡️ **Світло повертається!**\nВключення за графіком (%s).\n%s", at, nextInfo)
}

// RenderStats renders the 7-day off-hours report for the bot's analytics view.
func RenderStats(region, queue string, stats []dal.DailyStat) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 **Статистика відключень**\n%s, черга **%s**\n──────────────────\n", region, queue))

	if len(stats) == 0 {
		sb.WriteString("Даних поки немає.")
		return sb.String()
	}

	var total float64
	for _, st := range stats {
		sb.WriteString(fmt.Sprintf("%s — **%s год**\n", niceDate(st.Date), schedule.FormatHours(st.OffHours)))
		total += st.OffHours
	}
	sb.WriteString(fmt.Sprintf("──────────────────\nРазом за %d дн.: **%s год**", len(stats), schedule.FormatHours(total)))

	return sb.String()
}
