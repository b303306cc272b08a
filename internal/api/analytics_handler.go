package api

import (
	"net/http"
	"strconv"

	"github.com/remaimber-it/quizengine/internal/analytics"
)

// ── Response types ──────────────────────────────────────────────────────────

type LeaderboardEntryResponse struct {
	Rank        int    `json:"rank" example:"1"`
	LearnerID   string `json:"learner_id"`
	DisplayName string `json:"display_name" example:"Ana"`
	XP          int    `json:"xp" example:"120"`
}

type RosterEntryResponse struct {
	LearnerID      string `json:"learner_id"`
	DisplayName    string `json:"display_name" example:"Ana"`
	QuizAttempts   int    `json:"quiz_attempts" example:"12"`
	XP             int    `json:"xp" example:"240"`
	ActiveSubjects int    `json:"active_subjects" example:"3"`
}

type SubjectStatsResponse struct {
	Subject         SubjectResponse          `json:"subject"`
	QuizAttempted   int                      `json:"quiz_attempted" example:"42"`
	AverageScore    float64                  `json:"average_score" example:"61.9"`
	TopScore        int                      `json:"top_score" example:"100"`
	MonthlyAccuracy []analytics.MonthlyPoint `json:"monthly_accuracy"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getLearnerAccuracy
// @Summary      Get learner accuracy series
// @Description  Accuracy per bucket scaled to 0–1000. day: 24 hourly buckets, month: 30 daily buckets, year: 12 monthly buckets. Empty buckets are 0.
// @Tags         Analytics
// @Produce      json
// @Param        learnerID  path      string  true   "Learner ID"
// @Param        period     query     string  false  "day, month or year"  default(month)
// @Success      200        {array}   analytics.Point
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /learners/{learnerID}/accuracy [get]
func (h *Handler) getLearnerAccuracy(w http.ResponseWriter, r *http.Request) {
	h.accuracySeries(w, r, r.PathValue("learnerID"))
}

// getGlobalAccuracy
// @Summary      Get global accuracy series
// @Tags         Analytics
// @Produce      json
// @Param        period  query     string  false  "day, month or year"  default(month)
// @Success      200     {array}   analytics.Point
// @Failure      400     {object}  ErrorResponse
// @Router       /analytics/accuracy [get]
func (h *Handler) getGlobalAccuracy(w http.ResponseWriter, r *http.Request) {
	h.accuracySeries(w, r, "")
}

func (h *Handler) accuracySeries(w http.ResponseWriter, r *http.Request, learnerID string) {
	points, err := h.engine.AccuracySeries(r.Context(), learnerID, r.URL.Query().Get("period"))
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, points)
}

// getLearnerSubjects
// @Summary      Get learner subject performance
// @Description  Every subject with the learner's accuracy (0–100), best first.
// @Tags         Analytics
// @Produce      json
// @Param        learnerID  path      string  true  "Learner ID"
// @Success      200        {array}   analytics.SubjectAccuracy
// @Failure      404        {object}  ErrorResponse
// @Router       /learners/{learnerID}/subjects [get]
func (h *Handler) getLearnerSubjects(w http.ResponseWriter, r *http.Request) {
	h.subjectPerformance(w, r, r.PathValue("learnerID"))
}

// getGlobalSubjects
// @Summary      Get global subject performance
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}  analytics.SubjectAccuracy
// @Router       /analytics/subjects [get]
func (h *Handler) getGlobalSubjects(w http.ResponseWriter, r *http.Request) {
	h.subjectPerformance(w, r, "")
}

func (h *Handler) subjectPerformance(w http.ResponseWriter, r *http.Request, learnerID string) {
	rows, err := h.engine.SubjectPerformance(r.Context(), learnerID)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// getLeaderboard
// @Summary      Get XP leaderboard
// @Tags         Analytics
// @Produce      json
// @Param        limit  query     int  false  "Maximum rows, 0 for all"  default(10)
// @Success      200    {array}   LeaderboardEntryResponse
// @Failure      400    {object}  ErrorResponse
// @Router       /leaderboard [get]
func (h *Handler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "limit must be a non-negative integer", Field: "limit"})
			return
		}
		limit = n
	}

	board, err := h.engine.Leaderboard(r.Context(), limit)
	if h.handleServiceError(w, err) {
		return
	}

	resp := make([]LeaderboardEntryResponse, len(board))
	for i, e := range board {
		resp[i] = LeaderboardEntryResponse(e)
	}
	respondJSON(w, http.StatusOK, resp)
}

// listLearners
// @Summary      List learners with progress counts
// @Tags         Admin
// @Produce      json
// @Success      200  {array}   RosterEntryResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /admin/learners [get]
func (h *Handler) listLearners(w http.ResponseWriter, r *http.Request) {
	roster, err := h.engine.LearnerRoster(r.Context())
	if h.handleServiceError(w, err) {
		return
	}

	resp := make([]RosterEntryResponse, len(roster))
	for i, e := range roster {
		resp[i] = RosterEntryResponse(e)
	}
	respondJSON(w, http.StatusOK, resp)
}

// getSubjectStats
// @Summary      Get subject stats
// @Description  Attempt count, average and top score, and 12-month mean accuracy for a subject. Pass learner_id to restrict to one learner.
// @Tags         Analytics
// @Produce      json
// @Param        subjectID   path      string  true   "Subject ID"
// @Param        learner_id  query     string  false  "Learner ID"
// @Success      200         {object}  SubjectStatsResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /subjects/{subjectID}/stats [get]
func (h *Handler) getSubjectStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.engine.SubjectStats(r.Context(), r.PathValue("subjectID"), r.URL.Query().Get("learner_id"))
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SubjectStatsResponse{
		Subject:         SubjectResponse{ID: stats.Subject.ID, Name: stats.Subject.Name},
		QuizAttempted:   stats.QuizAttempted,
		AverageScore:    stats.AverageScore,
		TopScore:        stats.TopScore,
		MonthlyAccuracy: stats.MonthlyAccuracy,
	})
}
