// internal/api/router.go
package api

import "net/http"

// RegisterRoutes mounts every API route on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Attempts
	mux.HandleFunc("POST /learners/{learnerID}/attempts", h.startAttempt)
	mux.HandleFunc("POST /learners/{learnerID}/attempts/{attemptID}/finish", h.finishAttempt)

	// Learner dashboard
	mux.HandleFunc("GET /learners/{learnerID}/stats", h.getLearnerStats)
	mux.HandleFunc("GET /learners/{learnerID}/performance", h.getLearnerPerformance)
	mux.HandleFunc("GET /learners/{learnerID}/accuracy", h.getLearnerAccuracy)
	mux.HandleFunc("GET /learners/{learnerID}/subjects", h.getLearnerSubjects)
	mux.HandleFunc("GET /learners/{learnerID}/rank", h.getRank)

	// XP ledger
	mux.HandleFunc("POST /learners/{learnerID}/xp/deductions", h.deductXP)
	mux.HandleFunc("GET /learners/{learnerID}/xp/ledger", h.getLedger)

	// Global analytics
	mux.HandleFunc("GET /analytics/accuracy", h.getGlobalAccuracy)
	mux.HandleFunc("GET /analytics/subjects", h.getGlobalSubjects)
	mux.HandleFunc("GET /leaderboard", h.getLeaderboard)
	mux.HandleFunc("GET /subjects/{subjectID}/stats", h.getSubjectStats)

	// Admin
	mux.HandleFunc("GET /admin/learners", h.listLearners)
}
