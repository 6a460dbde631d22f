package dal

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.etcd.io/bbolt"
)

// statsRetentionDays is how long daily off-hour records are kept.
const statsRetentionDays = 7

// DailyStat is the recorded off-hours total of one (region, queue) for one day.
type DailyStat struct {
	Date     string  `json:"date"` // "2006-01-02"
	Region   string  `json:"region"`
	Queue    string  `json:"queue"`
	OffHours float64 `json:"off_hours"`
}

func statKey(date, region, queue string) []byte {
	return []byte(fmt.Sprintf("%s_%s_%s", date, region, queue))
}

// PutDailyStat records (or overwrites) the off-hours total for a day.
func (s *BoltDB) PutDailyStat(stat DailyStat) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(&stat)
		if err != nil {
			return fmt.Errorf("marshal daily stat: %w", err)
		}
		key := statKey(stat.Date, stat.Region, stat.Queue)
		if err := tx.Bucket([]byte(statsBucket)).Put(key, data); err != nil {
			return fmt.Errorf("put daily stat %s: %w", key, err)
		}
		return nil
	})
}

// GetOffHours returns the recorded off-hours for a pair on a specific date.
func (s *BoltDB) GetOffHours(region, queue, date string) (float64, bool, error) {
	var res float64
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(statsBucket)).Get(statKey(date, region, queue))
		if data == nil {
			return nil
		}

		var stat DailyStat
		if err := json.Unmarshal(data, &stat); err != nil {
			return fmt.Errorf("unmarshal daily stat: %w", err)
		}
		res = stat.OffHours
		found = true
		return nil
	})

	return res, found, err
}

// GetRecentStats returns up to limit most recent records for a pair, oldest
// first. Keys start with the date so a full scan keeps chronological order.
func (s *BoltDB) GetRecentStats(region, queue string, limit int) ([]DailyStat, error) {
	var res []DailyStat

	err := s.db.View(func(tx *bbolt.Tx) error {
		suffix := fmt.Sprintf("_%s_%s", region, queue)
		return tx.Bucket([]byte(statsBucket)).ForEach(func(k, v []byte) error {
			if !strings.HasSuffix(string(k), suffix) {
				return nil
			}
			var stat DailyStat
			if err := json.Unmarshal(v, &stat); err != nil {
				return fmt.Errorf("unmarshal daily stat %s: %w", k, err)
			}
			res = append(res, stat)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(res, func(i, j int) bool { return res[i].Date < res[j].Date })
	if limit > 0 && len(res) > limit {
		res = res[len(res)-limit:]
	}
	return res, nil
}

// CleanupStats drops records older than the retention window. cutoff is the
// oldest date to keep, "2006-01-02".
func (s *BoltDB) CleanupStats(cutoff string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(statsBucket))
		c := b.Cursor()

		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			date, _, found := strings.Cut(string(k), "_")
			if !found || date >= cutoff {
				continue
			}
			if err := b.Delete(k); err != nil {
				return fmt.Errorf("delete stat %s: %w", k, err)
			}
		}
		return nil
	})
}

// StatsRetentionDays exposes the retention window to callers computing cutoffs.
func StatsRetentionDays() int {
	return statsRetentionDays
}
