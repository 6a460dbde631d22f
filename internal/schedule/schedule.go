package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Status is a half-hour slot status code as served by the upstream feed.
type Status int

const (
	StatusOn       Status = 1 // confirmed power
	StatusOff      Status = 2 // confirmed outage
	StatusPossible Status = 3 // grey zone, may or may not be off
)

// EndOfDay is the day-end sentinel label. It may appear as an interval end
// ("until midnight") but is never a slot of its own.
const EndOfDay = "24:00"

// StartOfDay is the first slot label of a day.
const StartOfDay = "00:00"

type kind int

const (
	kindSlotGrid kind = iota + 1
	kindIntervalList
)

// RawSchedule is one calendar day of one queue, in whichever of the two
// upstream representations it arrived:
//
//   - slot-grid: half-hour label ("00:00".."23:30") -> Status
//   - interval-list: ordered "HH:MM-HH:MM" strings of confirmed-off windows
//
// Construct via NewSlotGrid or NewIntervalList; consumers dispatch on the tag
// through ExtractIntervals and the Total* functions.
type RawSchedule struct {
	kind    kind
	grid    map[string]Status
	windows []string
}

// NewSlotGrid wraps a slot-grid representation.
func NewSlotGrid(slots map[string]Status) *RawSchedule {
	return &RawSchedule{kind: kindSlotGrid, grid: slots}
}

// NewIntervalList wraps an interval-list representation.
func NewIntervalList(windows []string) *RawSchedule {
	return &RawSchedule{kind: kindIntervalList, windows: windows}
}

// IsSlotGrid reports whether the schedule is in slot-grid form.
func (s *RawSchedule) IsSlotGrid() bool {
	return s != nil && s.kind == kindSlotGrid
}

// gridLabels returns the grid's slot labels in ascending time order,
// excluding the EndOfDay sentinel if the upstream included it as a key.
func (s *RawSchedule) gridLabels() []string {
	labels := make([]string, 0, len(s.grid))
	for label := range s.grid {
		if label == EndOfDay {
			continue
		}
		labels = append(labels, label)
	}
	// fixed-width HH:MM labels sort correctly as strings
	sort.Strings(labels)
	return labels
}

// UnmarshalJSON dispatches on the upstream payload shape: a JSON object is a
// slot-grid, a JSON array is an interval-list.
func (s *RawSchedule) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return fmt.Errorf("empty schedule payload")
	}

	switch trimmed[0] {
	case '{':
		var grid map[string]Status
		if err := json.Unmarshal(data, &grid); err != nil {
			return fmt.Errorf("unmarshal slot grid: %w", err)
		}
		*s = RawSchedule{kind: kindSlotGrid, grid: grid}
		return nil
	case '[':
		var windows []string
		if err := json.Unmarshal(data, &windows); err != nil {
			return fmt.Errorf("unmarshal interval list: %w", err)
		}
		*s = RawSchedule{kind: kindIntervalList, windows: windows}
		return nil
	default:
		return fmt.Errorf("unexpected schedule payload prefix %q", trimmed[0])
	}
}

// MarshalJSON writes the schedule back in its original representation.
func (s RawSchedule) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case kindSlotGrid:
		return json.Marshal(s.grid) //nolint:wrapcheck // plain passthrough
	case kindIntervalList:
		return json.Marshal(s.windows) //nolint:wrapcheck // plain passthrough
	default:
		return nil, fmt.Errorf("marshal schedule with unknown kind %d", s.kind)
	}
}
