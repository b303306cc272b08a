package subject_test

import (
	"testing"

	"github.com/remaimber-it/quizengine/internal/domain/subject"
)

var opts = [4]string{"2", "3", "4", "5"}

func TestNewSubject(t *testing.T) {
	s := subject.New("Arithmetic")

	if s.Name != "Arithmetic" {
		t.Errorf("expected name %q, got %q", "Arithmetic", s.Name)
	}
	if s.ID == "" {
		t.Error("expected non-empty ID")
	}
	if len(s.Questions) != 0 {
		t.Errorf("expected no questions, got %d", len(s.Questions))
	}
}

func TestAddQuestion_AssignsOrder(t *testing.T) {
	s := subject.New("Arithmetic")

	q1, err := s.AddQuestion("1+1?", opts, subject.Option1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	q2, err := s.AddQuestion("1+2?", opts, subject.Option2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if q1.Order != 1 || q2.Order != 2 {
		t.Errorf("expected orders 1 and 2, got %d and %d", q1.Order, q2.Order)
	}
	if q1.SubjectID != s.ID {
		t.Error("expected question to reference its subject")
	}
}

func TestAddQuestion_Validation(t *testing.T) {
	s := subject.New("Arithmetic")

	if _, err := s.AddQuestion("", opts, subject.Option1); err == nil {
		t.Error("expected error for empty text")
	}
	if _, err := s.AddQuestion("q", [4]string{"a", "", "c", "d"}, subject.Option1); err == nil {
		t.Error("expected error for empty option")
	}
	if _, err := s.AddQuestion("q", opts, subject.Option("option5")); err == nil {
		t.Error("expected error for invalid correct option")
	}
	if len(s.Questions) != 0 {
		t.Errorf("expected rejected questions not to be stored, got %d", len(s.Questions))
	}
}

func TestQuestion_PublicView(t *testing.T) {
	s := subject.New("Arithmetic")
	q, _ := s.AddQuestion("2+2?", opts, subject.Option3)

	pub := q.Public()
	if pub.ID != q.ID || pub.Text != q.Text || pub.Options != q.Options {
		t.Errorf("public view mismatch: %+v", pub)
	}
}
