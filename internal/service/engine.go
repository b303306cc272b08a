// Package service implements the quiz progression engine: the attempt
// lifecycle, the XP ledger and the dashboard read models.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/remaimber-it/quizengine/internal/analytics"
	"github.com/remaimber-it/quizengine/internal/apperr"
	"github.com/remaimber-it/quizengine/internal/cache"
	"github.com/remaimber-it/quizengine/internal/domain/attempt"
	"github.com/remaimber-it/quizengine/internal/domain/learner"
	"github.com/remaimber-it/quizengine/internal/domain/subject"
	"github.com/remaimber-it/quizengine/internal/event"
	"github.com/remaimber-it/quizengine/internal/keylock"
	"github.com/remaimber-it/quizengine/internal/ledger"
	"github.com/remaimber-it/quizengine/internal/metrics"
	"github.com/remaimber-it/quizengine/internal/ranking"
	"github.com/remaimber-it/quizengine/internal/sampling"
	"github.com/remaimber-it/quizengine/internal/store"
)

// DefaultQuantity is the number of questions sampled when the caller does
// not ask for a specific amount.
const DefaultQuantity = 10

// SuggestionCount caps the subjects suggested after an attempt closes.
const SuggestionCount = 3

// Store is the persistence the engine needs. *store.SQLiteStore satisfies it.
type Store interface {
	analytics.Source
	ranking.Source

	GetLearner(ctx context.Context, id string) (*learner.Learner, error)
	ListLearners(ctx context.Context) ([]*learner.Learner, error)
	LearnerSummaries(ctx context.Context) ([]store.LearnerSummary, error)
	GetSubject(ctx context.Context, id string) (*subject.Subject, error)

	CreateAttempt(ctx context.Context, a *attempt.Attempt) error
	GetAttempt(ctx context.Context, id string) (*attempt.Attempt, error)
	CloseAttempt(ctx context.Context, a *attempt.Attempt, award ledger.Entry) error
	ListActivityTimes(ctx context.Context, learnerID string) ([]time.Time, error)

	UpdateLedger(ctx context.Context, learnerID string, plan func([]ledger.Balance) ([]ledger.Entry, error)) error
	LedgerEntries(ctx context.Context, learnerID string) ([]ledger.Entry, error)
}

type Engine struct {
	store     Store
	sampler   sampling.Sampler
	now       func() time.Time
	loc       *time.Location
	locks     *keylock.Table
	events    *event.Dispatcher
	metrics   *metrics.Metrics
	cache     *cache.Loader
	logger    *slog.Logger
	quantity  int
	analytics *analytics.Aggregator
	ranking   *ranking.Service
}

type Option func(*Engine)

// WithSampler replaces the uniform random question sampler.
func WithSampler(s sampling.Sampler) Option {
	return func(e *Engine) { e.sampler = s }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the zone for calendar days, streaks and bucket labels.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) { e.loc = loc }
}

// WithEvents publishes domain events through d.
func WithEvents(d *event.Dispatcher) Option {
	return func(e *Engine) { e.events = d }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithCache serves dashboard series through l.
func WithCache(l *cache.Loader) Option {
	return func(e *Engine) { e.cache = l }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithDefaultQuantity overrides DefaultQuantity. Values below 1 are ignored.
func WithDefaultQuantity(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.quantity = n
		}
	}
}

func New(s Store, opts ...Option) *Engine {
	e := &Engine{
		store:    s,
		sampler:  sampling.Random{},
		now:      time.Now,
		loc:      time.Local,
		locks:    keylock.New(),
		logger:   slog.Default(),
		quantity: DefaultQuantity,
	}
	for _, opt := range opts {
		opt(e)
	}

	aggOpts := []analytics.Option{
		analytics.WithClock(e.now),
		analytics.WithLocation(e.loc),
		analytics.WithMetrics(e.metrics),
	}
	if e.cache != nil {
		aggOpts = append(aggOpts, analytics.WithCache(e.cache))
	}
	e.analytics = analytics.NewAggregator(s, aggOpts...)
	e.ranking = ranking.NewService(s)
	return e
}

func (e *Engine) clock() time.Time {
	return e.now().In(e.loc)
}

func (e *Engine) publish(t event.Type, learnerID string, payload any) {
	e.events.Dispatch(event.New(t, learnerID, payload, e.clock()))
}

func (e *Engine) getLearner(ctx context.Context, id string) (*learner.Learner, error) {
	l, err := e.store.GetLearner(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("learner")
	}
	if err != nil {
		return nil, apperr.Unavailable("get learner", err)
	}
	return l, nil
}

func (e *Engine) getSubject(ctx context.Context, id string) (*subject.Subject, error) {
	s, err := e.store.GetSubject(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("subject")
	}
	if err != nil {
		return nil, apperr.Unavailable("get subject", err)
	}
	return s, nil
}

// unavailable wraps a storage failure unless it already carries a kind.
func unavailable(op string, err error) error {
	if errors.Is(err, apperr.ErrInvalidArgument) || errors.Is(err, apperr.ErrNotFound) ||
		errors.Is(err, apperr.ErrConflict) || errors.Is(err, apperr.ErrUnavailable) {
		return err
	}
	return apperr.Unavailable(op, err)
}
