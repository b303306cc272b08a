package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/remaimber-it/quizengine/internal/domain/attempt"
	"github.com/remaimber-it/quizengine/internal/domain/subject"
)

const (
	// SeriesScale is the multiplier of the accuracy trend series.
	SeriesScale = 1000
	// PercentScale is the multiplier of per-subject percentages.
	PercentScale = 100
)

// Point is one labelled value of a time series.
type Point struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// MonthlyPoint is one month of the mean-of-ratios subject summary.
type MonthlyPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SubjectAccuracy is one row of the subject performance board.
type SubjectAccuracy struct {
	SubjectID string `json:"subject_id"`
	Name      string `json:"name"`
	Accuracy  int    `json:"accuracy"`
	Attempts  int    `json:"attempts"`
}

// QuizStats summarises the stored scores of a set of attempts.
type QuizStats struct {
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"average_score"`
	TopScore     int     `json:"top_score"`
}

// AccuracySeries buckets closed attempts over the trailing window of p and
// reports round(Σcorrect / Σattempted × 1000) per bucket. Every bucket is
// present; a bucket without answers is 0.
func AccuracySeries(p Period, now time.Time, attempts []attempt.Attempt) []Point {
	buckets := Buckets(p, now)
	correct := make([]int, len(buckets))
	answered := make([]int, len(buckets))

	for _, a := range attempts {
		if !a.IsClosed() {
			continue
		}
		i := locate(buckets, a.CreatedAt)
		if i < 0 {
			continue
		}
		correct[i] += a.CorrectAnswers
		answered[i] += a.AttemptedQuestions
	}

	points := make([]Point, len(buckets))
	for i, b := range buckets {
		points[i] = Point{Label: b.Label, Value: ratio(correct[i], answered[i], SeriesScale)}
	}
	return points
}

// SubjectPerformance reports round(Σcorrect / Σattempted × 100) for every
// subject, best first. Subjects without attempts report 0.
func SubjectPerformance(subjects []subject.Subject, attempts []attempt.Attempt) []SubjectAccuracy {
	type sums struct{ correct, answered, count int }
	bySubject := make(map[string]*sums, len(subjects))
	for _, s := range subjects {
		bySubject[s.ID] = &sums{}
	}
	for _, a := range attempts {
		if !a.IsClosed() {
			continue
		}
		s, ok := bySubject[a.SubjectID]
		if !ok {
			continue
		}
		s.correct += a.CorrectAnswers
		s.answered += a.AttemptedQuestions
		s.count++
	}

	out := make([]SubjectAccuracy, 0, len(subjects))
	for _, s := range subjects {
		sum := bySubject[s.ID]
		out = append(out, SubjectAccuracy{
			SubjectID: s.ID,
			Name:      s.Name,
			Accuracy:  ratio(sum.correct, sum.answered, PercentScale),
			Attempts:  sum.count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy > out[j].Accuracy
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].SubjectID < out[j].SubjectID
	})
	return out
}

// MonthlyAccuracy groups attempts into the trailing 12 calendar months and
// reports, per month, the mean of each attempt's own correct/attempted × 100.
// This is a mean of ratios: a 1/1 attempt and a 0/9 attempt average to 50.
func MonthlyAccuracy(now time.Time, attempts []attempt.Attempt) []MonthlyPoint {
	buckets := Buckets(PeriodYear, now)
	total := make([]float64, len(buckets))
	count := make([]int, len(buckets))

	for _, a := range attempts {
		if !a.IsClosed() || a.AttemptedQuestions == 0 {
			continue
		}
		i := locate(buckets, a.CreatedAt)
		if i < 0 {
			continue
		}
		total[i] += a.Accuracy() * PercentScale
		count[i]++
	}

	points := make([]MonthlyPoint, len(buckets))
	for i, b := range buckets {
		var v float64
		if count[i] > 0 {
			v = round2(total[i] / float64(count[i]))
		}
		points[i] = MonthlyPoint{Label: b.Label, Value: v}
	}
	return points
}

// Summarize counts closed attempts and reports their mean and best score.
func Summarize(attempts []attempt.Attempt) QuizStats {
	var stats QuizStats
	sum := 0
	for _, a := range attempts {
		if !a.IsClosed() {
			continue
		}
		stats.Attempts++
		sum += a.Score
		if a.Score > stats.TopScore {
			stats.TopScore = a.Score
		}
	}
	if stats.Attempts > 0 {
		stats.AverageScore = round2(float64(sum) / float64(stats.Attempts))
	}
	return stats
}

// ratio rounds half to even, matching the dashboards this replaces.
func ratio(correct, answered int, scale float64) int {
	if answered == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(correct) / float64(answered) * scale))
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
