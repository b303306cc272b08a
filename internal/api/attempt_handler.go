package api

import (
	"net/http"
	"time"

	"github.com/remaimber-it/quizengine/internal/domain/attempt"
	"github.com/remaimber-it/quizengine/internal/domain/subject"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartAttemptRequest struct {
	SubjectID string `json:"subject_id" validate:"required" example:"0190f5a2-7c1e-7b3a-9f00-3c2d1e0a9b11"`
	Quantity  *int   `json:"quantity,omitempty" example:"10"`
}

type QuestionResponse struct {
	ID      string    `json:"id"`
	Text    string    `json:"text" example:"What is 7 × 8?"`
	Options [4]string `json:"options"`
}

type StartAttemptResponse struct {
	AttemptID      string             `json:"attempt_id"`
	TotalQuestions int                `json:"total_questions" example:"10"`
	Questions      []QuestionResponse `json:"questions"`
}

type FinishAttemptRequest struct {
	Correct   int `json:"correct" example:"7"`
	Attempted int `json:"attempted" example:"10"`
}

type AttemptResponse struct {
	ID                 string     `json:"id"`
	LearnerID          string     `json:"learner_id"`
	SubjectID          string     `json:"subject_id"`
	TotalQuestions     int        `json:"total_questions" example:"10"`
	AttemptedQuestions int        `json:"attempted_questions" example:"10"`
	CorrectAnswers     int        `json:"correct_answers" example:"7"`
	Score              int        `json:"score" example:"70"`
	XPGained           int        `json:"xp_gained" example:"35"`
	Grade              string     `json:"grade" example:"A"`
	Status             string     `json:"status" example:"closed"`
	CreatedAt          time.Time  `json:"created_at"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
}

type SubjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name" example:"Algebra"`
}

type FinishAttemptResponse struct {
	Attempt     AttemptResponse   `json:"attempt"`
	Suggestions []SubjectResponse `json:"suggestions"`
}

func toAttemptResponse(a *attempt.Attempt) AttemptResponse {
	resp := AttemptResponse{
		ID:                 a.ID,
		LearnerID:          a.LearnerID,
		SubjectID:          a.SubjectID,
		TotalQuestions:     a.TotalQuestions,
		AttemptedQuestions: a.AttemptedQuestions,
		CorrectAnswers:     a.CorrectAnswers,
		Score:              a.Score,
		XPGained:           a.XPGained,
		Grade:              string(a.Grade),
		Status:             string(a.Status),
		CreatedAt:          a.CreatedAt,
	}
	if !a.ClosedAt.IsZero() {
		closed := a.ClosedAt
		resp.ClosedAt = &closed
	}
	return resp
}

func toSubjectResponses(subjects []subject.Subject) []SubjectResponse {
	out := make([]SubjectResponse, len(subjects))
	for i, s := range subjects {
		out[i] = SubjectResponse{ID: s.ID, Name: s.Name}
	}
	return out
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startAttempt opens a quiz attempt.
// @Summary      Start a quiz attempt
// @Description  Samples up to quantity questions (default 10) of the subject without replacement. Correct options are never returned.
// @Tags         Attempts
// @Accept       json
// @Produce      json
// @Param        learnerID  path      string               true  "Learner ID"
// @Param        body       body      StartAttemptRequest  true  "Subject and quantity"
// @Success      201        {object}  StartAttemptResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse  "learner or subject not found"
// @Failure      503        {object}  ErrorResponse
// @Router       /learners/{learnerID}/attempts [post]
func (h *Handler) startAttempt(w http.ResponseWriter, r *http.Request) {
	var req StartAttemptRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.engine.StartAttempt(r.Context(), r.PathValue("learnerID"), req.SubjectID, req.Quantity)
	if h.handleServiceError(w, err) {
		return
	}

	questions := make([]QuestionResponse, len(res.Questions))
	for i, q := range res.Questions {
		questions[i] = QuestionResponse{ID: q.ID, Text: q.Text, Options: q.Options}
	}

	respondJSON(w, http.StatusCreated, StartAttemptResponse{
		AttemptID:      res.AttemptID,
		TotalQuestions: res.TotalQuestions,
		Questions:      questions,
	})
}

// finishAttempt scores and closes an attempt.
// @Summary      Finish a quiz attempt
// @Description  Scores the attempt (10 points and 5 XP per correct answer), closes it and suggests up to 3 other subjects.
// @Tags         Attempts
// @Accept       json
// @Produce      json
// @Param        learnerID  path      string                true  "Learner ID"
// @Param        attemptID  path      string                true  "Attempt ID"
// @Param        body       body      FinishAttemptRequest  true  "Answer counts"
// @Success      200        {object}  FinishAttemptResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse  "attempt not found"
// @Failure      409        {object}  ErrorResponse  "attempt already closed"
// @Failure      503        {object}  ErrorResponse
// @Router       /learners/{learnerID}/attempts/{attemptID}/finish [post]
func (h *Handler) finishAttempt(w http.ResponseWriter, r *http.Request) {
	var req FinishAttemptRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.engine.FinishAttempt(r.Context(), r.PathValue("attemptID"), r.PathValue("learnerID"), req.Correct, req.Attempted)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, FinishAttemptResponse{
		Attempt:     toAttemptResponse(res.Attempt),
		Suggestions: toSubjectResponses(res.Suggestions),
	})
}
