package analytics

import (
	"testing"
	"time"

	"github.com/remaimber-it/quizengine/internal/domain/attempt"
	"github.com/remaimber-it/quizengine/internal/domain/subject"
)

func closed(learnerID, subjectID string, correct, attempted int, at time.Time) attempt.Attempt {
	a := attempt.New(learnerID, subjectID, attempted, at)
	if _, err := a.Close(correct, attempted, at); err != nil {
		panic(err)
	}
	return *a
}

func TestAccuracySeries_Month(t *testing.T) {
	today := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	open := attempt.New("ana", "math", 10, today)

	attempts := []attempt.Attempt{
		closed("ana", "math", 3, 4, today),
		closed("ben", "math", 1, 4, today.Add(2*time.Hour)),
		closed("ana", "math", 2, 3, yesterday),
		closed("ana", "math", 9, 9, today.AddDate(0, 0, -45)),
		*open,
	}

	points := AccuracySeries(PeriodMonth, now, attempts)

	if len(points) != 30 {
		t.Fatalf("expected 30 points, got %d", len(points))
	}
	if points[29].Label != "20" || points[29].Value != 500 {
		t.Errorf("today = %+v, want {20 500}", points[29])
	}
	if points[28].Label != "19" || points[28].Value != 667 {
		t.Errorf("yesterday = %+v, want {19 667}", points[28])
	}
	for i := 0; i < 28; i++ {
		if points[i].Value != 0 {
			t.Errorf("bucket %d = %d, want 0", i, points[i].Value)
		}
	}
}

func TestAccuracySeries_EmptyBucketsAreZero(t *testing.T) {
	for _, p := range []Period{PeriodDay, PeriodMonth, PeriodYear} {
		points := AccuracySeries(p, now, nil)
		if len(points) != len(Buckets(p, now)) {
			t.Fatalf("%s: expected every bucket to be present, got %d", p, len(points))
		}
		for _, pt := range points {
			if pt.Value != 0 || pt.Label == "" {
				t.Errorf("%s: unexpected point %+v", p, pt)
			}
		}
	}
}

func TestAccuracySeries_DayUsesHalfOpenHours(t *testing.T) {
	b := Buckets(PeriodDay, now)
	attempts := []attempt.Attempt{
		closed("ana", "math", 1, 1, b[10].End),
		closed("ana", "math", 0, 1, b[10].Start),
	}

	points := AccuracySeries(PeriodDay, now, attempts)

	if points[10].Value != 0 {
		t.Errorf("bucket 10 = %d, want 0", points[10].Value)
	}
	if points[11].Value != 1000 {
		t.Errorf("bucket 11 = %d, want 1000", points[11].Value)
	}
}

func TestSubjectPerformance(t *testing.T) {
	subjects := []subject.Subject{
		{ID: "c", Name: "Chemistry"},
		{ID: "b", Name: "Biology"},
		{ID: "a", Name: "Algebra"},
	}
	attempts := []attempt.Attempt{
		closed("ana", "a", 8, 10, now),
		closed("ana", "b", 1, 8, now),
		closed("ana", "unknown", 5, 5, now),
	}

	got := SubjectPerformance(subjects, attempts)

	want := []SubjectAccuracy{
		{SubjectID: "a", Name: "Algebra", Accuracy: 80, Attempts: 1},
		{SubjectID: "b", Name: "Biology", Accuracy: 12, Attempts: 1},
		{SubjectID: "c", Name: "Chemistry", Accuracy: 0, Attempts: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSubjectPerformance_RatioOfSums(t *testing.T) {
	subjects := []subject.Subject{{ID: "a", Name: "Algebra"}}
	attempts := []attempt.Attempt{
		closed("ana", "a", 1, 1, now),
		closed("ben", "a", 0, 9, now),
	}

	got := SubjectPerformance(subjects, attempts)

	if got[0].Accuracy != 10 {
		t.Errorf("accuracy = %d, want 10", got[0].Accuracy)
	}
}

func TestMonthlyAccuracy_MeanOfRatios(t *testing.T) {
	attempts := []attempt.Attempt{
		closed("ana", "a", 1, 1, now),
		closed("ana", "a", 0, 9, now.AddDate(0, 0, -1)),
		closed("ana", "a", 2, 3, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)),
	}

	points := MonthlyAccuracy(now, attempts)

	if len(points) != 12 {
		t.Fatalf("expected 12 months, got %d", len(points))
	}
	if points[11].Label != "May" || points[11].Value != 50 {
		t.Errorf("May = %+v, want {May 50}", points[11])
	}
	if points[8].Label != "Feb" || points[8].Value != 66.67 {
		t.Errorf("Feb = %+v, want {Feb 66.67}", points[8])
	}
	if points[9].Value != 0 || points[10].Value != 0 {
		t.Error("months without attempts must be 0")
	}
}

func TestSummarize(t *testing.T) {
	open := attempt.New("ana", "a", 10, now)
	attempts := []attempt.Attempt{
		closed("ana", "a", 1, 1, now),
		closed("ana", "a", 2, 2, now),
		closed("ana", "a", 2, 3, now),
		*open,
	}

	got := Summarize(attempts)

	want := QuizStats{Attempts: 3, AverageScore: 16.67, TopScore: 20}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
	if empty := Summarize(nil); empty != (QuizStats{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", empty)
	}
}
