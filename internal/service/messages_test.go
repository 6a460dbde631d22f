package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dima123dm/SvitloMonitorBot/internal/dal"
	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
	"github.com/dima123dm/SvitloMonitorBot/internal/service"
)

func TestHeaders(t *testing.T) {
	assert.Equal(t, "🔄 📅 **Оновлено графік на СЬОГОДНІ! (01.09)**", service.ChangeTodayHeader("2026-09-01"))
	assert.Equal(t, "🔄 🔮 **Оновлено графік на ЗАВТРА! (02.09)**", service.ChangeTomorrowHeader("2026-09-02"))
	assert.Contains(t, service.DefaultDayHeader("2026-09-01", false), "сьогодні, 01.09 (Вівторок)")
	assert.Contains(t, service.DefaultDayHeader("2026-09-02", true), "завтра, 02.09 (Середа)")

	// unparsable date falls back to the raw key
	assert.Equal(t, "🔄 📅 **Оновлено графік на СЬОГОДНІ! (bad)**", service.ChangeTodayHeader("bad"))
}

func TestRenderDayBody_Blackout(t *testing.T) {
	s := schedule.NewIntervalList([]string{"08:00-12:30", "20:00-24:00"})

	got := service.RenderDayBody(s, "1.1", "2026-09-01", false, dal.DisplayModeBlackout)

	assert.Contains(t, got, "Черга: **1.1**")
	assert.Contains(t, got, "🕒 **08:00 — 12:30** _(4.5 год)_")
	assert.Contains(t, got, "🕒 **20:00 — 24:00** _(4 год)_")
	assert.Contains(t, got, "⚡️ Всього: **8.5 год.**")
}

func TestRenderDayBody_Light(t *testing.T) {
	s := schedule.NewIntervalList([]string{"08:00-12:00"})

	got := service.RenderDayBody(s, "1.1", "2026-09-01", false, dal.DisplayModeLight)

	assert.Contains(t, got, "💡 **00:00 — 08:00**")
	assert.Contains(t, got, "💡 **12:00 — 24:00**")
	assert.Contains(t, got, "💡 Зі світлом: **20 год.**")
	assert.NotContains(t, got, "Всього")
}

func TestRenderDayBody_Empty(t *testing.T) {
	t.Run("nil today", func(t *testing.T) {
		assert.Equal(t, "⏳ **Дані оновлюються...**",
			service.RenderDayBody(nil, "1.1", "2026-09-01", false, dal.DisplayModeBlackout))
	})

	t.Run("nil tomorrow", func(t *testing.T) {
		assert.Equal(t, "🕒 **Графік на завтра ще не оприлюднено.**",
			service.RenderDayBody(nil, "1.1", "2026-09-02", true, dal.DisplayModeBlackout))
	})

	t.Run("no outages today", func(t *testing.T) {
		s := schedule.NewIntervalList(nil)
		got := service.RenderDayBody(s, "1.1", "2026-09-01", false, dal.DisplayModeBlackout)
		assert.Contains(t, got, "✅ **Відключень не передбачено.**")
	})

	t.Run("no outages tomorrow reads as unpublished", func(t *testing.T) {
		s := schedule.NewIntervalList(nil)
		got := service.RenderDayBody(s, "1.1", "2026-09-02", true, dal.DisplayModeBlackout)
		assert.Contains(t, got, "Графік на завтра (02.09) ще не оприлюднено")
	})

	t.Run("light mode with no outages", func(t *testing.T) {
		s := schedule.NewIntervalList(nil)
		got := service.RenderDayBody(s, "1.1", "2026-09-01", false, dal.DisplayModeLight)
		assert.Contains(t, got, "💡 **Світло весь день.**")
	})
}

func TestRenderStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := service.RenderStats("Львівська область", "1.1", nil)
		assert.Contains(t, got, "Даних поки немає.")
	})

	t.Run("totals", func(t *testing.T) {
		got := service.RenderStats("Львівська область", "1.1", []dal.DailyStat{
			{Date: "2026-08-30", OffHours: 4},
			{Date: "2026-08-31", OffHours: 2.5},
		})
		assert.Contains(t, got, "30.08 — **4 год**")
		assert.Contains(t, got, "31.08 — **2.5 год**")
		assert.Contains(t, got, "Разом за 2 дн.: **6.5 год**")
	})
}

func TestAlertMessages(t *testing.T) {
	assert.Equal(t, "⏳ **Скоро відключення (через 15 хв).**\nСвітла не буде до **14:00**.",
		service.OutagePreMessage(15, "14:00"))
	assert.Equal(t, "⏳ **Скоро відключення (через 5 хв, о 00:00).**\nСвітла не буде до **02:00**.",
		service.OutagePreMidnightMessage(5, "02:00"))
	assert.Equal(t, "💡 **Світло з'явиться орієнтовно через 30 хв (о 12:30).**",
		service.ReturnPreMessage(30, "12:30"))
	assert.Equal(t, "⚠️ **Увага! Через 60 хв можливе відключення.**\nСіра зона графіку (до 13:00).",
		service.PossiblePreMessage(60, "13:00"))
	assert.Equal(t, "⚡️ **Світло повертається!**\nВключення за графіком (12:00).\n✅ Далі без відключень.",
		service.RestoredMessage("12:00", ""))
	assert.Equal(t, "⚡️ **Світло повертається!**\nВключення за графіком (12:00).\nНаступне відключення: **сьогодні о 18:00**.",
		service.RestoredMessage("12:00", "сьогодні о 18:00"))
}
