package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a write that lost a race on the row's state, such
	// as closing an attempt that is no longer open.
	ErrConflict = errors.New("conflict")
)

// LearnerSummary is one row of the admin learner roster.
type LearnerSummary struct {
	LearnerID      string
	DisplayName    string
	QuizAttempts   int
	XP             int
	ActiveSubjects int
}
