package schedule

import "sync"

// Key identifies one tracked subscription pair.
type Key struct {
	Region string
	Queue  string
}

// Snapshot is the last known raw schedule pair for a Key. Today and Tomorrow
// stay nil until the upstream publishes them.
type Snapshot struct {
	Date     string
	Today    *RawSchedule
	Tomorrow *RawSchedule
}

// Cache holds per-subscription schedule snapshots. It is the only state shared
// between the poller and the alert engine, so all access goes through the
// mutex and iteration works on a copied key set.
type Cache struct {
	mx        sync.RWMutex
	snapshots map[Key]Snapshot
}

func NewCache() *Cache {
	return &Cache{snapshots: make(map[Key]Snapshot)}
}

// Get returns the stored snapshot for the key.
func (c *Cache) Get(key Key) (Snapshot, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	snap, ok := c.snapshots[key]
	return snap, ok
}

// Keys returns a copy of the tracked key set, safe to iterate while the
// poller keeps mutating entries.
func (c *Cache) Keys() []Key {
	c.mx.RLock()
	defer c.mx.RUnlock()

	res := make([]Key, 0, len(c.snapshots))
	for k := range c.snapshots {
		res = append(res, k)
	}
	return res
}

// Upsert stores a fresh snapshot. While the stored date equals the incoming
// one, a nil today/tomorrow never overwrites a known value: a single failed
// upstream fetch must not wipe good same-day data. After a date rollover the
// incoming values win as-is.
func (c *Cache) Upsert(key Key, date string, today, tomorrow *RawSchedule) {
	c.mx.Lock()
	defer c.mx.Unlock()

	old, ok := c.snapshots[key]
	sameDay := ok && old.Date == date

	if sameDay && today == nil {
		today = old.Today
	}
	if sameDay && tomorrow == nil {
		tomorrow = old.Tomorrow
	}

	c.snapshots[key] = Snapshot{Date: date, Today: today, Tomorrow: tomorrow}
}

// Len reports the number of tracked pairs.
func (c *Cache) Len() int {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return len(c.snapshots)
}
