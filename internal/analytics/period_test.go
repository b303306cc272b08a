package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/remaimber-it/quizengine/internal/apperr"
)

var now = time.Date(2026, 5, 20, 15, 42, 0, 0, time.UTC)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"", PeriodMonth},
		{"day", PeriodDay},
		{"month", PeriodMonth},
		{"year", PeriodYear},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if err != nil {
			t.Fatalf("ParsePeriod(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePeriod(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParsePeriod("week"); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Errorf("expected invalid argument for week, got %v", err)
	}
}

func TestBuckets(t *testing.T) {
	tests := []struct {
		period     Period
		count      int
		firstLabel string
		lastLabel  string
		lastStart  time.Time
		firstStart time.Time
	}{
		{PeriodDay, 24, "16:00", "15:00",
			time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 5, 19, 16, 0, 0, 0, time.UTC)},
		{PeriodMonth, 30, "21", "20",
			time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)},
		{PeriodYear, 12, "Jun", "May",
			time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			b := Buckets(tt.period, now)
			if len(b) != tt.count {
				t.Fatalf("expected %d buckets, got %d", tt.count, len(b))
			}
			if b[0].Label != tt.firstLabel || b[len(b)-1].Label != tt.lastLabel {
				t.Errorf("labels = %q..%q, want %q..%q", b[0].Label, b[len(b)-1].Label, tt.firstLabel, tt.lastLabel)
			}
			if !b[0].Start.Equal(tt.firstStart) {
				t.Errorf("first start = %v, want %v", b[0].Start, tt.firstStart)
			}
			if !b[len(b)-1].Start.Equal(tt.lastStart) {
				t.Errorf("last start = %v, want %v", b[len(b)-1].Start, tt.lastStart)
			}
			for i := 1; i < len(b); i++ {
				if !b[i-1].End.Equal(b[i].Start) {
					t.Fatalf("gap between bucket %d and %d", i-1, i)
				}
			}
			last := b[len(b)-1]
			if now.Before(last.Start) || !now.Before(last.End) {
				t.Errorf("now %v not inside last bucket [%v, %v)", now, last.Start, last.End)
			}
		})
	}
}

func TestBuckets_MonthAcrossYearBoundary(t *testing.T) {
	b := Buckets(PeriodYear, time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC))
	if b[0].Label != "Feb" || b[11].Label != "Jan" {
		t.Errorf("labels = %q..%q, want Feb..Jan", b[0].Label, b[11].Label)
	}
	if b[0].Start.Year() != 2025 {
		t.Errorf("expected window to start in 2025, got %v", b[0].Start)
	}
}

func TestLocate(t *testing.T) {
	b := Buckets(PeriodDay, now)

	if i := locate(b, b[5].Start); i != 5 {
		t.Errorf("start of bucket 5 located in %d", i)
	}
	if i := locate(b, b[5].End); i != 6 {
		t.Errorf("end of bucket 5 must fall in bucket 6, got %d", i)
	}
	if i := locate(b, b[0].Start.Add(-time.Nanosecond)); i != -1 {
		t.Errorf("expected -1 before the window, got %d", i)
	}
	if i := locate(b, b[23].End); i != -1 {
		t.Errorf("expected -1 after the window, got %d", i)
	}
}

func TestWindow(t *testing.T) {
	start, end := Window(PeriodMonth, now)
	if !start.Equal(time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2026, 5, 21, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window = [%v, %v)", start, end)
	}
}
