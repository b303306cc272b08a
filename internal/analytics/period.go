package analytics

import (
	"time"

	"github.com/remaimber-it/quizengine/internal/apperr"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod accepts day, month or year. An empty string means month.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodMonth, nil
	case PeriodDay, PeriodMonth, PeriodYear:
		return Period(s), nil
	}
	return "", apperr.Invalid("period", "must be day, month or year, got %q", s)
}

// Bucket is a half-open interval [Start, End) labelled for display.
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// Buckets splits the trailing window of p ending at now into fixed intervals,
// oldest first. The last bucket is the hour, day or month containing now.
//
//	day   - 24 hourly buckets labelled "15:00"
//	month - 30 daily buckets labelled by day of month, "07"
//	year  - 12 monthly buckets labelled "Jan"
//
// Boundaries are computed in now's location.
func Buckets(p Period, now time.Time) []Bucket {
	loc := now.Location()
	y, mo, d := now.Date()

	switch p {
	case PeriodDay:
		end := time.Date(y, mo, d, now.Hour(), 0, 0, 0, loc).Add(time.Hour)
		out := make([]Bucket, 24)
		for i := range out {
			start := end.Add(-time.Duration(24-i) * time.Hour)
			out[i] = Bucket{Label: start.Format("15:00"), Start: start, End: start.Add(time.Hour)}
		}
		return out

	case PeriodYear:
		end := time.Date(y, mo, 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
		return monthBuckets(end, 12)

	default:
		end := time.Date(y, mo, d, 0, 0, 0, 0, loc).AddDate(0, 0, 1)
		out := make([]Bucket, 30)
		for i := range out {
			start := end.AddDate(0, 0, -(30 - i))
			out[i] = Bucket{Label: start.Format("02"), Start: start, End: end.AddDate(0, 0, -(29 - i))}
		}
		return out
	}
}

func monthBuckets(end time.Time, n int) []Bucket {
	out := make([]Bucket, n)
	for i := range out {
		start := end.AddDate(0, -(n - i), 0)
		out[i] = Bucket{Label: start.Format("Jan"), Start: start, End: end.AddDate(0, -(n-i)+1, 0)}
	}
	return out
}

// Window returns the span covered by Buckets(p, now).
func Window(p Period, now time.Time) (start, end time.Time) {
	b := Buckets(p, now)
	return b[0].Start, b[len(b)-1].End
}

// locate returns the index of the bucket containing t, or -1.
func locate(buckets []Bucket, t time.Time) int {
	lo, hi := 0, len(buckets)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case t.Before(buckets[mid].Start):
			hi = mid
		case !t.Before(buckets[mid].End):
			lo = mid + 1
		default:
			return mid
		}
	}
	return -1
}
