package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/remaimber-it/quizengine/internal/apperr"
)

func TestFieldErrorIsInvalidArgument(t *testing.T) {
	err := apperr.Invalid("attempted", "must be positive, got %d", 0)

	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	var fe *apperr.FieldError
	if !errors.As(err, &fe) {
		t.Fatal("expected *FieldError")
	}
	if fe.Field != "attempted" {
		t.Errorf("expected field %q, got %q", "attempted", fe.Field)
	}
	if err.Error() != "invalid argument: attempted: must be positive, got 0" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestUnavailableKeepsCause(t *testing.T) {
	err := apperr.Unavailable("load attempts", io.ErrUnexpectedEOF)

	if !errors.Is(err, apperr.ErrUnavailable) {
		t.Error("expected ErrUnavailable")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("expected cause to be preserved")
	}
}

func TestNotFoundAndConflict(t *testing.T) {
	if err := apperr.NotFound("subject"); !errors.Is(err, apperr.ErrNotFound) || err.Error() != "subject not found" {
		t.Errorf("unexpected not found error: %v", err)
	}
	if err := apperr.Conflict("attempt %s already closed", "a1"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("unexpected conflict error: %v", err)
	}
}
