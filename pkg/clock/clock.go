package clock

import "time"

// DateLayout is the canonical date key format used across storage and cache.
const DateLayout = "2006-01-02"

type Clock struct {
	loc *time.Location
}

func New() *Clock {
	return &Clock{}
}

func NewWithLocation(loc *time.Location) *Clock {
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	now := time.Now()
	if c.loc != nil {
		now = now.In(c.loc)
	}
	return now
}

// DateKey formats a time as a canonical date key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Mock is a fixed or scripted clock for tests.
type Mock struct {
	value func() time.Time
}

func NewMock(value time.Time) *Mock {
	return &Mock{
		value: func() time.Time {
			return value
		},
	}
}

func NewMockF(value func() time.Time) *Mock {
	return &Mock{
		value: value,
	}
}

func (m *Mock) Now() time.Time {
	return m.value()
}

func (m *Mock) Set(t time.Time) {
	m.value = func() time.Time {
		return t
	}
}

func (m *Mock) SetF(value func() time.Time) {
	m.value = value
}
