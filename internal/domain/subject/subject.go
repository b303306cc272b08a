package subject

import (
	"errors"
	"fmt"

	"github.com/remaimber-it/quizengine/internal/id"
)

// Option names one of the four answer slots of a question.
type Option string

const (
	Option1 Option = "option1"
	Option2 Option = "option2"
	Option3 Option = "option3"
	Option4 Option = "option4"
)

func (o Option) Valid() bool {
	switch o {
	case Option1, Option2, Option3, Option4:
		return true
	}
	return false
}

// Subject is a quiz module owned by the catalog. The engine only reads it.
type Subject struct {
	ID        string
	Name      string
	Questions []Question
}

// Question is a four-option multiple choice question. Correct never leaves
// the engine; callers taking a quiz get a PublicQuestion instead.
type Question struct {
	ID        string
	SubjectID string
	Text      string
	Options   [4]string
	Correct   Option
	Order     int
}

// PublicQuestion is what a learner sees while an attempt is open.
type PublicQuestion struct {
	ID      string
	Text    string
	Options [4]string
}

func New(name string) *Subject {
	return &Subject{
		ID:        id.GenerateID(),
		Name:      name,
		Questions: []Question{},
	}
}

// AddQuestion appends a question at the next display order.
func (s *Subject) AddQuestion(text string, options [4]string, correct Option) (Question, error) {
	if text == "" {
		return Question{}, errors.New("question text cannot be empty")
	}
	for i, o := range options {
		if o == "" {
			return Question{}, fmt.Errorf("option %d cannot be empty", i+1)
		}
	}
	if !correct.Valid() {
		return Question{}, fmt.Errorf("invalid correct option %q", correct)
	}

	q := Question{
		ID:        id.GenerateID(),
		SubjectID: s.ID,
		Text:      text,
		Options:   options,
		Correct:   correct,
		Order:     len(s.Questions) + 1,
	}
	s.Questions = append(s.Questions, q)
	return q, nil
}

func (q Question) Public() PublicQuestion {
	return PublicQuestion{ID: q.ID, Text: q.Text, Options: q.Options}
}
