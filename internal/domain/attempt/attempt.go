package attempt

import (
	"time"

	"github.com/remaimber-it/quizengine/internal/apperr"
	"github.com/remaimber-it/quizengine/internal/id"
	"github.com/remaimber-it/quizengine/internal/scoring"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Attempt is one quiz session of one learner against one subject.
//
// An attempt starts Open with only TotalQuestions set. Close scores it and
// moves it to Closed, after which only XPGained may change, and only
// through the XP ledger.
type Attempt struct {
	ID                 string
	LearnerID          string
	SubjectID          string
	TotalQuestions     int
	AttemptedQuestions int
	CorrectAnswers     int
	Score              int
	XPGained           int
	Grade              scoring.Grade
	Status             Status
	CreatedAt          time.Time
	ClosedAt           time.Time
}

// New opens an attempt for total sampled questions.
func New(learnerID, subjectID string, total int, now time.Time) *Attempt {
	return &Attempt{
		ID:             id.GenerateID(),
		LearnerID:      learnerID,
		SubjectID:      subjectID,
		TotalQuestions: total,
		Status:         StatusOpen,
		CreatedAt:      now,
	}
}

func (a *Attempt) IsClosed() bool {
	return a.Status == StatusClosed
}

// ValidateCounts checks finish inputs against the attempt's question count.
func (a *Attempt) ValidateCounts(correct, attempted int) error {
	if attempted <= 0 {
		return apperr.Invalid("attempted", "must be a positive integer, got %d", attempted)
	}
	if attempted > a.TotalQuestions {
		return apperr.Invalid("attempted", "cannot exceed %d questions in this attempt, got %d", a.TotalQuestions, attempted)
	}
	if correct < 0 || correct > attempted {
		return apperr.Invalid("correct", "must be between 0 and %d, got %d", attempted, correct)
	}
	return nil
}

// Close scores the attempt and marks it Closed. The returned result carries
// the XP award that the ledger records for this attempt.
func (a *Attempt) Close(correct, attempted int, now time.Time) (scoring.Result, error) {
	if a.IsClosed() {
		return scoring.Result{}, apperr.Conflict("attempt %s is already closed", a.ID)
	}
	if err := a.ValidateCounts(correct, attempted); err != nil {
		return scoring.Result{}, err
	}

	res := scoring.Evaluate(correct, attempted)
	a.AttemptedQuestions = attempted
	a.CorrectAnswers = correct
	a.Score = res.Score
	a.XPGained = res.XP
	a.Grade = res.Grade
	a.Status = StatusClosed
	a.ClosedAt = now
	return res, nil
}

// Accuracy is correct/attempted, or 0 for an attempt without answers.
func (a *Attempt) Accuracy() float64 {
	if a.AttemptedQuestions == 0 {
		return 0
	}
	return float64(a.CorrectAnswers) / float64(a.AttemptedQuestions)
}
