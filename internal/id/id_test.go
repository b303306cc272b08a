package id_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/remaimber-it/quizengine/internal/id"
)

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		v := id.GenerateID()
		if seen[v] {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = true
	}
}

func TestGenerateID_Version7(t *testing.T) {
	u, err := uuid.Parse(id.GenerateID())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Version() != 7 {
		t.Errorf("expected version 7, got %d", u.Version())
	}
}
