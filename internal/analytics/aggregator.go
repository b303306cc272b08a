package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/remaimber-it/quizengine/internal/cache"
	"github.com/remaimber-it/quizengine/internal/domain/attempt"
	"github.com/remaimber-it/quizengine/internal/domain/subject"
	"github.com/remaimber-it/quizengine/internal/metrics"
)

// Source is the read side of the attempt store.
type Source interface {
	// ListClosedAttempts returns closed attempts matching f, oldest first.
	ListClosedAttempts(ctx context.Context, f attempt.Filter) ([]attempt.Attempt, error)
	ListSubjects(ctx context.Context) ([]subject.Subject, error)
}

// Aggregator recomputes dashboard analytics on request. Every scan is bounded
// by the window it reports on.
type Aggregator struct {
	src     Source
	loader  *cache.Loader
	metrics *metrics.Metrics
	now     func() time.Time
	loc     *time.Location
}

type Option func(*Aggregator)

// WithCache serves repeated requests from l until its TTL expires.
func WithCache(l *cache.Loader) Option {
	return func(a *Aggregator) { a.loader = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Aggregator) { a.metrics = m }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// WithLocation sets the zone used for day and month boundaries.
func WithLocation(loc *time.Location) Option {
	return func(a *Aggregator) { a.loc = loc }
}

func NewAggregator(src Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		src: src,
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.loader == nil {
		a.loader = cache.NewLoader(cache.Nop{}, 0, nil)
	}
	return a
}

// Now returns the aggregator's current time in its location.
func (a *Aggregator) Now() time.Time {
	return a.now().In(a.loc)
}

// AccuracySeries returns the accuracy trend of one learner, or of everyone
// when learnerID is empty.
func (a *Aggregator) AccuracySeries(ctx context.Context, learnerID string, p Period) ([]Point, error) {
	defer a.metrics.Since("accuracy_series", time.Now())

	now := a.Now()
	start, end := Window(p, now)
	key := fmt.Sprintf("series:%s:%s:%d:%d", scope(learnerID), p, end.Unix(), a.generation(ctx, learnerID))

	return cache.Load(ctx, a.loader, key, func(ctx context.Context) ([]Point, error) {
		attempts, err := a.src.ListClosedAttempts(ctx, attempt.Filter{LearnerID: learnerID, Since: start, Until: end})
		if err != nil {
			return nil, err
		}
		return AccuracySeries(p, now, attempts), nil
	})
}

// SubjectPerformance ranks every subject by accuracy, for one learner or for
// everyone when learnerID is empty.
func (a *Aggregator) SubjectPerformance(ctx context.Context, learnerID string) ([]SubjectAccuracy, error) {
	defer a.metrics.Since("subject_performance", time.Now())

	key := fmt.Sprintf("subjects:%s:%d:%d", scope(learnerID), a.Now().Truncate(time.Minute).Unix(), a.generation(ctx, learnerID))
	return cache.Load(ctx, a.loader, key, func(ctx context.Context) ([]SubjectAccuracy, error) {
		subjects, err := a.src.ListSubjects(ctx)
		if err != nil {
			return nil, err
		}
		attempts, err := a.src.ListClosedAttempts(ctx, attempt.Filter{LearnerID: learnerID})
		if err != nil {
			return nil, err
		}
		return SubjectPerformance(subjects, attempts), nil
	})
}

// MonthlySubjectAccuracy returns the learner's 12-month mean-of-ratios
// accuracy on one subject.
func (a *Aggregator) MonthlySubjectAccuracy(ctx context.Context, learnerID, subjectID string) ([]MonthlyPoint, error) {
	defer a.metrics.Since("monthly_subject_accuracy", time.Now())

	now := a.Now()
	start, end := Window(PeriodYear, now)
	attempts, err := a.src.ListClosedAttempts(ctx, attempt.Filter{
		LearnerID: learnerID,
		SubjectID: subjectID,
		Since:     start,
		Until:     end,
	})
	if err != nil {
		return nil, err
	}
	return MonthlyAccuracy(now, attempts), nil
}

// QuizStats summarises closed attempts matching f.
func (a *Aggregator) QuizStats(ctx context.Context, f attempt.Filter) (QuizStats, error) {
	defer a.metrics.Since("quiz_stats", time.Now())

	attempts, err := a.src.ListClosedAttempts(ctx, f)
	if err != nil {
		return QuizStats{}, err
	}
	return Summarize(attempts), nil
}

// Invalidate drops cached results that a new closed attempt of learnerID
// makes stale: the learner's own and the global ones.
func (a *Aggregator) Invalidate(ctx context.Context, learnerID string) {
	a.loader.Bump(ctx, scope(learnerID), scope(""))
}

func (a *Aggregator) generation(ctx context.Context, learnerID string) int64 {
	return a.loader.Generation(ctx, scope(learnerID))
}

func scope(learnerID string) string {
	if learnerID == "" {
		return "all"
	}
	return "learner:" + learnerID
}
