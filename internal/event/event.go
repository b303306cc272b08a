// Package event publishes attempt and ledger events to RabbitMQ.
package event

import (
	"context"
	"time"

	"github.com/remaimber-it/quizengine/internal/id"
)

type Type string

const (
	TypeAttemptStarted Type = "attempt.started"
	TypeAttemptClosed  Type = "attempt.closed"
	TypeXPDeducted     Type = "xp.deducted"
)

// Event is the envelope written to the exchange. The routing key is Type.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	LearnerID  string    `json:"learner_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type AttemptStarted struct {
	AttemptID      string `json:"attempt_id"`
	SubjectID      string `json:"subject_id"`
	TotalQuestions int    `json:"total_questions"`
}

type AttemptClosed struct {
	AttemptID string `json:"attempt_id"`
	SubjectID string `json:"subject_id"`
	Score     int    `json:"score"`
	XP        int    `json:"xp"`
	Grade     string `json:"grade"`
}

type XPDeducted struct {
	Requested   int `json:"requested"`
	Deducted    int `json:"deducted"`
	Unfulfilled int `json:"remaining_unfulfilled"`
}

func New(t Type, learnerID string, payload any, now time.Time) Event {
	return Event{
		ID:         id.GenerateID(),
		Type:       t,
		LearnerID:  learnerID,
		OccurredAt: now,
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}
