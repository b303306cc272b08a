package learner

import "github.com/remaimber-it/quizengine/internal/id"

// Learner is owned by the identity service; the engine stores a copy for
// lookups and display. XP and rank are always derived, never stored here.
type Learner struct {
	ID          string
	DisplayName string
	Email       string
}

func New(displayName, email string) *Learner {
	return &Learner{
		ID:          id.GenerateID(),
		DisplayName: displayName,
		Email:       email,
	}
}
