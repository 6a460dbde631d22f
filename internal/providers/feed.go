package providers

import (
	"github.com/dima123dm/SvitloMonitorBot/internal/schedule"
)

// Feed is the merged single-source-of-truth view of all regions: for every
// region, per-queue per-date raw schedules in whichever representation the
// source used.
type Feed struct {
	Regions []Region `json:"regions"`
}

// Region is one oblast with its queue schedules keyed by queue name and then
// by "2006-01-02" date.
type Region struct {
	Name     string                                       `json:"name_ua"`
	Schedule map[string]map[string]*schedule.RawSchedule `json:"schedule"`
}

// Lookup returns the raw schedule for (region, queue, date), or nil when the
// feed has no entry for it. Region names are unique in the feed, so the first
// name match is the only one.
func (f *Feed) Lookup(region, queue, date string) *schedule.RawSchedule {
	if f == nil {
		return nil
	}
	for i := range f.Regions {
		if f.Regions[i].Name != region {
			continue
		}
		byDate, ok := f.Regions[i].Schedule[queue]
		if !ok {
			return nil
		}
		return byDate[date]
	}
	return nil
}

// Queues lists the queue names of a region, for menu rendering.
func (f *Feed) Queues(region string) []string {
	if f == nil {
		return nil
	}
	for i := range f.Regions {
		if f.Regions[i].Name != region {
			continue
		}
		res := make([]string, 0, len(f.Regions[i].Schedule))
		for q := range f.Regions[i].Schedule {
			res = append(res, q)
		}
		return res
	}
	return nil
}

// replaceRegion swaps (or appends) a region entry by name.
func (f *Feed) replaceRegion(r Region) {
	for i := range f.Regions {
		if f.Regions[i].Name == r.Name {
			f.Regions[i] = r
			return
		}
	}
	f.Regions = append(f.Regions, r)
}
