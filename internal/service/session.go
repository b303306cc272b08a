package service

import (
	"context"
	"errors"

	"github.com/remaimber-it/quizengine/internal/apperr"
	"github.com/remaimber-it/quizengine/internal/domain/attempt"
	"github.com/remaimber-it/quizengine/internal/domain/subject"
	"github.com/remaimber-it/quizengine/internal/event"
	"github.com/remaimber-it/quizengine/internal/ledger"
	"github.com/remaimber-it/quizengine/internal/sampling"
	"github.com/remaimber-it/quizengine/internal/store"
)

// StartResult is an opened attempt and the questions to answer. Correct
// options are never included.
type StartResult struct {
	AttemptID      string
	TotalQuestions int
	Questions      []subject.PublicQuestion
}

// FinishResult is the closed attempt and up to SuggestionCount other
// subjects to try next.
type FinishResult struct {
	Attempt     *attempt.Attempt
	Suggestions []subject.Subject
}

// StartAttempt samples min(quantity, available) questions of the subject
// and opens an attempt over them. A nil quantity uses the default.
func (e *Engine) StartAttempt(ctx context.Context, learnerID, subjectID string, quantity *int) (*StartResult, error) {
	n := e.quantity
	if quantity != nil {
		n = *quantity
	}
	if n <= 0 {
		return nil, apperr.Invalid("quantity", "must be a positive integer, got %d", n)
	}

	if _, err := e.getLearner(ctx, learnerID); err != nil {
		return nil, err
	}
	sub, err := e.getSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if len(sub.Questions) == 0 {
		return nil, apperr.Invalid("subject_id", "subject %s has no questions", subjectID)
	}

	picked := sampling.Pick(e.sampler, sub.Questions, n)
	a := attempt.New(learnerID, subjectID, len(picked), e.clock())
	if err := e.store.CreateAttempt(ctx, a); err != nil {
		return nil, apperr.Unavailable("create attempt", err)
	}

	questions := make([]subject.PublicQuestion, len(picked))
	for i, q := range picked {
		questions[i] = q.Public()
	}

	e.metrics.AttemptStarted()
	e.publish(event.TypeAttemptStarted, learnerID, event.AttemptStarted{
		AttemptID:      a.ID,
		SubjectID:      subjectID,
		TotalQuestions: a.TotalQuestions,
	})

	return &StartResult{AttemptID: a.ID, TotalQuestions: a.TotalQuestions, Questions: questions}, nil
}

// FinishAttempt scores and closes an open attempt owned by learnerID and
// records its XP award. An attempt that does not exist or belongs to someone
// else is reported as not found; closing twice is a conflict.
func (e *Engine) FinishAttempt(ctx context.Context, attemptID, learnerID string, correct, attempted int) (*FinishResult, error) {
	if attempted <= 0 {
		return nil, apperr.Invalid("attempted", "must be a positive integer, got %d", attempted)
	}
	if correct < 0 || correct > attempted {
		return nil, apperr.Invalid("correct", "must be between 0 and %d, got %d", attempted, correct)
	}

	unlock := e.locks.Lock(learnerID)
	defer unlock()

	a, err := e.store.GetAttempt(ctx, attemptID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && a.LearnerID != learnerID) {
		return nil, apperr.NotFound("attempt")
	}
	if err != nil {
		return nil, apperr.Unavailable("get attempt", err)
	}

	now := e.clock()
	res, err := a.Close(correct, attempted, now)
	if err != nil {
		return nil, err
	}

	err = e.store.CloseAttempt(ctx, a, ledger.Award(a.ID, learnerID, res.XP, now))
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, apperr.NotFound("attempt")
	case errors.Is(err, store.ErrConflict):
		return nil, apperr.Conflict("attempt %s is already closed", a.ID)
	case err != nil:
		return nil, apperr.Unavailable("close attempt", err)
	}

	e.analytics.Invalidate(ctx, learnerID)
	e.metrics.AttemptClosed(string(res.Grade), res.XP)
	e.publish(event.TypeAttemptClosed, learnerID, event.AttemptClosed{
		AttemptID: a.ID,
		SubjectID: a.SubjectID,
		Score:     res.Score,
		XP:        res.XP,
		Grade:     string(res.Grade),
	})

	return &FinishResult{Attempt: a, Suggestions: e.suggest(ctx, a.SubjectID)}, nil
}

// suggest picks other subjects at random. Suggestions are cosmetic, so a
// failed lookup yields none instead of failing the finish.
func (e *Engine) suggest(ctx context.Context, exclude string) []subject.Subject {
	subjects, err := e.store.ListSubjects(ctx)
	if err != nil {
		e.logger.Warn("listing subjects for suggestions", "error", err)
		return []subject.Subject{}
	}

	others := make([]subject.Subject, 0, len(subjects))
	for _, s := range subjects {
		if s.ID != exclude {
			others = append(others, s)
		}
	}
	return sampling.Pick(e.sampler, others, SuggestionCount)
}
