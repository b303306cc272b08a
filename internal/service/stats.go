package service

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/remaimber-it/quizengine/internal/analytics"
	"github.com/remaimber-it/quizengine/internal/apperr"
	"github.com/remaimber-it/quizengine/internal/domain/attempt"
	"github.com/remaimber-it/quizengine/internal/domain/subject"
	"github.com/remaimber-it/quizengine/internal/streak"
)

type SubjectRef struct {
	ID   string
	Name string
}

// LearnerStats is the learner dashboard header. Averages and counts cover
// closed attempts; streak and last activity count every started attempt.
type LearnerStats struct {
	AverageScore     float64
	TotalAttempts    int
	TotalXP          int
	Streak           int
	LastActivity     *time.Time
	StrongestSubject *SubjectRef
}

// SubjectProgress is one attempted subject of a learner.
type SubjectProgress struct {
	Subject       SubjectRef
	Progress      float64
	QuizAttempted int
	AverageScore  float64
}

type LearnerPerformance struct {
	Subjects        []SubjectProgress
	SubjectsCovered int
}

type RosterEntry struct {
	LearnerID      string
	DisplayName    string
	QuizAttempts   int
	XP             int
	ActiveSubjects int
}

type SubjectStats struct {
	Subject         SubjectRef
	QuizAttempted   int
	AverageScore    float64
	TopScore        int
	MonthlyAccuracy []analytics.MonthlyPoint
}

func (e *Engine) LearnerStats(ctx context.Context, learnerID string) (*LearnerStats, error) {
	if _, err := e.getLearner(ctx, learnerID); err != nil {
		return nil, err
	}

	var (
		closed   []attempt.Attempt
		xp       int
		activity []time.Time
		subjects []subject.Subject
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		closed, err = e.store.ListClosedAttempts(gctx, attempt.Filter{LearnerID: learnerID})
		return err
	})
	g.Go(func() (err error) {
		xp, err = e.store.LearnerXP(gctx, learnerID)
		return err
	})
	g.Go(func() (err error) {
		activity, err = e.store.ListActivityTimes(gctx, learnerID)
		return err
	})
	g.Go(func() (err error) {
		subjects, err = e.store.ListSubjects(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Unavailable("learner stats", err)
	}

	summary := analytics.Summarize(closed)
	stats := &LearnerStats{
		AverageScore:     summary.AverageScore,
		TotalAttempts:    summary.Attempts,
		TotalXP:          xp,
		Streak:           streak.Current(activity, e.clock()),
		StrongestSubject: strongestSubject(closed, subjects),
	}
	if len(activity) > 0 {
		last := latest(activity).In(e.loc)
		stats.LastActivity = &last
	}
	return stats, nil
}

// strongestSubject is the subject with the most closed attempts, ties going
// to the alphabetically first name.
func strongestSubject(closed []attempt.Attempt, subjects []subject.Subject) *SubjectRef {
	counts := make(map[string]int)
	for _, a := range closed {
		counts[a.SubjectID]++
	}

	var best *SubjectRef
	bestCount := 0
	for _, s := range subjects {
		n := counts[s.ID]
		if n == 0 {
			continue
		}
		if n > bestCount || (n == bestCount && s.Name < best.Name) {
			best = &SubjectRef{ID: s.ID, Name: s.Name}
			bestCount = n
		}
	}
	return best
}

func latest(ts []time.Time) time.Time {
	var newest time.Time
	for _, t := range ts {
		if t.After(newest) {
			newest = t
		}
	}
	return newest
}

// LearnerPerformance reports progress on every subject the learner has
// closed an attempt in. Progress is the latest attempt's correct answers as
// a percentage of its question count.
func (e *Engine) LearnerPerformance(ctx context.Context, learnerID string) (*LearnerPerformance, error) {
	if _, err := e.getLearner(ctx, learnerID); err != nil {
		return nil, err
	}
	closed, err := e.store.ListClosedAttempts(ctx, attempt.Filter{LearnerID: learnerID})
	if err != nil {
		return nil, apperr.Unavailable("list attempts", err)
	}
	subjects, err := e.store.ListSubjects(ctx)
	if err != nil {
		return nil, apperr.Unavailable("list subjects", err)
	}

	bySubject := make(map[string][]attempt.Attempt)
	for _, a := range closed {
		bySubject[a.SubjectID] = append(bySubject[a.SubjectID], a)
	}

	perf := &LearnerPerformance{Subjects: []SubjectProgress{}}
	for _, s := range subjects {
		attempts := bySubject[s.ID]
		if len(attempts) == 0 {
			continue
		}
		last := attempts[len(attempts)-1]
		perf.Subjects = append(perf.Subjects, SubjectProgress{
			Subject:       SubjectRef{ID: s.ID, Name: s.Name},
			Progress:      percent(last.CorrectAnswers, last.TotalQuestions),
			QuizAttempted: len(attempts),
			AverageScore:  analytics.Summarize(attempts).AverageScore,
		})
	}
	perf.SubjectsCovered = len(perf.Subjects)
	return perf, nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.RoundToEven(float64(part)/float64(whole)*10000) / 100
}

// LearnerRoster lists every learner with attempt, XP and subject counts.
func (e *Engine) LearnerRoster(ctx context.Context) ([]RosterEntry, error) {
	summaries, err := e.store.LearnerSummaries(ctx)
	if err != nil {
		return nil, apperr.Unavailable("learner roster", err)
	}
	roster := make([]RosterEntry, len(summaries))
	for i, s := range summaries {
		roster[i] = RosterEntry(s)
	}
	return roster, nil
}

// SubjectStats summarises a subject for everyone, or for one learner when
// learnerID is set.
func (e *Engine) SubjectStats(ctx context.Context, subjectID, learnerID string) (*SubjectStats, error) {
	sub, err := e.getSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if learnerID != "" {
		if _, err := e.getLearner(ctx, learnerID); err != nil {
			return nil, err
		}
	}

	summary, err := e.analytics.QuizStats(ctx, attempt.Filter{SubjectID: subjectID, LearnerID: learnerID})
	if err != nil {
		return nil, unavailable("subject stats", err)
	}
	monthly, err := e.analytics.MonthlySubjectAccuracy(ctx, learnerID, subjectID)
	if err != nil {
		return nil, unavailable("monthly subject accuracy", err)
	}

	return &SubjectStats{
		Subject:         SubjectRef{ID: sub.ID, Name: sub.Name},
		QuizAttempted:   summary.Attempts,
		AverageScore:    summary.AverageScore,
		TopScore:        summary.TopScore,
		MonthlyAccuracy: monthly,
	}, nil
}
