package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	minutesPerDay  = 24 * 60
	slotHours      = 0.5
	hoursPerDay    = 24.0
	minutesPerHour = 60
)

// Interval is a contiguous time range within one day. From and To are "HH:MM"
// labels; To may be the EndOfDay sentinel meaning midnight of the next day.
type Interval struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (i Interval) String() string {
	return i.From + "-" + i.To
}

// DurationHours returns the interval length in hours, never negative.
// A To computed before From (malformed upstream text) is wrapped by 24h.
func (i Interval) DurationHours() float64 {
	from, err := TimeToMinutes(i.From)
	if err != nil {
		return 0
	}

	if i.To == EndOfDay {
		return hoursPerDay - float64(from)/minutesPerHour
	}

	to, err := TimeToMinutes(i.To)
	if err != nil {
		return 0
	}

	diff := float64(to-from) / minutesPerHour
	if diff < 0 {
		diff += hoursPerDay
	}
	return diff
}

// ExtractIntervals converts a raw schedule into canonical intervals for the
// target status. With invert=true it returns the "light" view instead: the
// explicit ON slots of a grid, or the complement of an interval-list's
// confirmed-off windows. The result is sorted ascending by start and
// non-overlapping.
func ExtractIntervals(s *RawSchedule, target Status, invert bool) []Interval {
	if s == nil {
		return nil
	}

	switch s.kind {
	case kindSlotGrid:
		return extractFromGrid(s, target, invert)
	case kindIntervalList:
		return extractFromWindows(s, target, invert)
	default:
		return nil
	}
}

func extractFromGrid(s *RawSchedule, target Status, invert bool) []Interval {
	match := func(st Status) bool { return st == target }
	if invert {
		match = func(st Status) bool { return st == StatusOn }
	}

	var res []Interval
	var start string
	active := false

	for _, label := range s.gridLabels() {
		if match(s.grid[label]) {
			if !active {
				start = label
				active = true
			}
			continue
		}
		if active {
			res = append(res, Interval{From: start, To: label})
			active = false
		}
	}
	if active {
		res = append(res, Interval{From: start, To: EndOfDay})
	}

	return res
}

func extractFromWindows(s *RawSchedule, target Status, invert bool) []Interval {
	// the interval-list form carries confirmed-off windows only
	if target == StatusPossible {
		return nil
	}

	offs := parseWindows(s.windows)
	if target == StatusOff && !invert {
		res := make([]Interval, len(offs))
		for i, w := range offs {
			res[i] = Interval{From: MinutesToTime(w.from), To: MinutesToTime(w.to)}
		}
		return res
	}

	return complement(offs)
}

type minuteSpan struct {
	from, to int
}

// parseWindows converts "HH:MM-HH:MM" strings to minute spans sorted by start.
// A window whose end does not exceed its start (malformed or inverted scrape
// text) is treated as running to the end of the day.
func parseWindows(windows []string) []minuteSpan {
	res := make([]minuteSpan, 0, len(windows))

	for _, w := range windows {
		fromStr, toStr, found := strings.Cut(w, "-")
		if !found {
			continue
		}

		from, err := TimeToMinutes(strings.TrimSpace(fromStr))
		if err != nil {
			continue
		}
		to, err := TimeToMinutes(strings.TrimSpace(toStr))
		if err != nil || to <= from {
			to = minutesPerDay
		}

		res = append(res, minuteSpan{from: from, to: to})
	}

	sort.Slice(res, func(i, j int) bool { return res[i].from < res[j].from })
	return res
}

// complement sweeps sorted off spans and emits the light gaps between them
// over the 24h day.
func complement(offs []minuteSpan) []Interval {
	var res []Interval
	lastEnd := 0

	for _, w := range offs {
		if w.from > lastEnd {
			res = append(res, Interval{From: MinutesToTime(lastEnd), To: MinutesToTime(w.from)})
		}
		if w.to > lastEnd {
			lastEnd = w.to
		}
	}
	if lastEnd < minutesPerDay {
		res = append(res, Interval{From: MinutesToTime(lastEnd), To: EndOfDay})
	}

	return res
}

// TotalOff returns the confirmed-off hours of the day.
func TotalOff(s *RawSchedule) float64 {
	if s == nil {
		return 0
	}

	switch s.kind {
	case kindSlotGrid:
		return countGrid(s, StatusOff) * slotHours
	case kindIntervalList:
		var sum float64
		for _, iv := range ExtractIntervals(s, StatusOff, false) {
			sum += iv.DurationHours()
		}
		return roundTenth(sum)
	default:
		return 0
	}
}

// TotalPossible returns the grey-zone hours. The interval-list form cannot
// represent POSSIBLE, so it always reports 0 there.
func TotalPossible(s *RawSchedule) float64 {
	if s == nil || s.kind != kindSlotGrid {
		return 0
	}
	return countGrid(s, StatusPossible) * slotHours
}

// TotalOn returns the powered hours. For grids with explicit ON slots their
// count is used; otherwise missing slots are assumed on and the value is
// derived from the day remainder.
func TotalOn(s *RawSchedule) float64 {
	if s == nil {
		return 0
	}

	switch s.kind {
	case kindSlotGrid:
		if on := countGrid(s, StatusOn); on > 0 {
			return on * slotHours
		}
		res := hoursPerDay - TotalOff(s) - TotalPossible(s)
		if res < 0 {
			return 0
		}
		return res
	case kindIntervalList:
		res := hoursPerDay - TotalOff(s)
		if res < 0 {
			return 0
		}
		return res
	default:
		return 0
	}
}

func countGrid(s *RawSchedule, target Status) float64 {
	var n int
	for label, st := range s.grid {
		if label == EndOfDay {
			continue
		}
		if st == target {
			n++
		}
	}
	return float64(n)
}

// FormatHours renders an hour total the way messages show it: integer when
// exact, one decimal otherwise.
func FormatHours(h float64) string {
	if h == float64(int(h)) {
		return strconv.Itoa(int(h))
	}
	return strconv.FormatFloat(h, 'f', 1, 64)
}

// TimeToMinutes parses an "HH:MM" label to minutes since midnight.
// The EndOfDay sentinel maps to 1440.
func TimeToMinutes(label string) (int, error) {
	hStr, mStr, found := strings.Cut(label, ":")
	if !found {
		return 0, fmt.Errorf("invalid time label: %s", label)
	}

	h, err := strconv.Atoi(hStr)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", label, err)
	}
	m, err := strconv.Atoi(mStr)
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", label, err)
	}

	if h == 24 && m == 0 {
		return minutesPerDay, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time label out of range: %s", label)
	}

	return h*minutesPerHour + m, nil
}

// MinutesToTime is the inverse of TimeToMinutes; 1440 maps back to EndOfDay.
func MinutesToTime(minutes int) string {
	if minutes >= minutesPerDay {
		return EndOfDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

// Canonical serializes intervals as a sorted comparable string. Two interval
// lists are considered equal for diff purposes iff their canonical forms match.
func Canonical(intervals []Interval) string {
	parts := make([]string, len(intervals))
	for i, iv := range intervals {
		parts[i] = iv.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

func roundTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
