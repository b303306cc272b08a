// Package streak computes consecutive-day activity streaks.
package streak

import (
	"sort"
	"time"
)

// Current returns the learner's activity streak as of today.
//
// Activity timestamps are reduced to distinct calendar dates in today's
// location and sorted newest first. Any activity counts as a streak of 1.
// The walk then moves past the newest date and keeps counting while each
// following date is exactly today minus the streak so far.
func Current(activity []time.Time, today time.Time) int {
	dates := Dates(activity, today.Location())
	if len(dates) == 0 {
		return 0
	}

	anchor := Date(today, today.Location())
	streak := 1
	for _, d := range dates[1:] {
		if !d.Equal(anchor.AddDate(0, 0, -streak)) {
			break
		}
		streak++
	}
	return streak
}

// Dates returns the distinct calendar dates of ts in loc, newest first.
func Dates(ts []time.Time, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool, len(ts))
	dates := make([]time.Time, 0, len(ts))
	for _, t := range ts {
		d := Date(t, loc)
		if seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}

// Date truncates t to midnight of its calendar day in loc.
func Date(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
