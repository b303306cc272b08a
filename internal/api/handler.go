// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/remaimber-it/quizengine/internal/apperr"
	"github.com/remaimber-it/quizengine/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	engine   *service.Engine
	logger   *slog.Logger
	validate *validator.Validate
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(engine *service.Engine, logger *slog.Logger) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		engine:   engine,
		logger:   logger,
		validate: v,
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"attempt not found"`
	Field string `json:"field,omitempty" example:"attempted"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeAndValidate reads the JSON body into dst and runs its validation
// tags. On failure it writes a 400 and returns false.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: fmt.Sprintf("invalid argument: %s: failed %s", fe.Field(), fe.Tag()),
				Field: fe.Field(),
			})
			return false
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleServiceError maps engine error kinds to HTTP statuses and writes the
// response. Returns true if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var fe *apperr.FieldError
	switch {
	case errors.As(err, &fe):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: fe.Error(), Field: fe.Field})
	case errors.Is(err, apperr.ErrInvalidArgument):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrUnavailable):
		h.logger.Error("storage unavailable", "error", err)
		respondError(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		h.logger.Error("unexpected error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
