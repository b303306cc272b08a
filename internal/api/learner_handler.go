package api

import (
	"net/http"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type LearnerStatsResponse struct {
	AverageScore     float64          `json:"average_score" example:"73.33"`
	TotalAttempts    int              `json:"total_attempts" example:"3"`
	TotalXP          int              `json:"total_xp" example:"110"`
	Streak           int              `json:"streak" example:"3"`
	LastActivity     *time.Time       `json:"last_activity"`
	StrongestSubject *SubjectResponse `json:"strongest_subject"`
}

type SubjectProgressResponse struct {
	SubjectID     string  `json:"subject_id"`
	Name          string  `json:"name" example:"Algebra"`
	Progress      float64 `json:"progress" example:"70"`
	QuizAttempted int     `json:"quiz_attempted" example:"4"`
	AverageScore  float64 `json:"average_score" example:"65.5"`
}

type LearnerPerformanceResponse struct {
	Subjects        []SubjectProgressResponse `json:"subjects"`
	SubjectsCovered int                       `json:"subjects_covered" example:"1"`
}

type DeductXPRequest struct {
	Amount int `json:"amount" validate:"gt=0" example:"60"`
}

type WithdrawalResponse struct {
	AttemptID string `json:"attempt_id"`
	Amount    int    `json:"amount" example:"50"`
}

type DeductXPResponse struct {
	Requested   int                  `json:"requested" example:"60"`
	Deducted    int                  `json:"deducted" example:"60"`
	Unfulfilled int                  `json:"remaining_unfulfilled" example:"0"`
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
}

type LedgerEntryResponse struct {
	ID        string    `json:"id"`
	AttemptID string    `json:"attempt_id"`
	Delta     int       `json:"delta" example:"-10"`
	Reason    string    `json:"reason" example:"deduction"`
	CreatedAt time.Time `json:"created_at"`
}

type RankResponse struct {
	LearnerID string `json:"learner_id"`
	Rank      int    `json:"rank" example:"1"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getLearnerStats returns the learner dashboard header.
// @Summary      Get learner stats
// @Description  Average score and attempt count over closed attempts, total XP, current day streak, last activity and the most attempted subject.
// @Tags         Learners
// @Produce      json
// @Param        learnerID  path      string  true  "Learner ID"
// @Success      200        {object}  LearnerStatsResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      503        {object}  ErrorResponse
// @Router       /learners/{learnerID}/stats [get]
func (h *Handler) getLearnerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.engine.LearnerStats(r.Context(), r.PathValue("learnerID"))
	if h.handleServiceError(w, err) {
		return
	}

	resp := LearnerStatsResponse{
		AverageScore:  stats.AverageScore,
		TotalAttempts: stats.TotalAttempts,
		TotalXP:       stats.TotalXP,
		Streak:        stats.Streak,
		LastActivity:  stats.LastActivity,
	}
	if s := stats.StrongestSubject; s != nil {
		resp.StrongestSubject = &SubjectResponse{ID: s.ID, Name: s.Name}
	}
	respondJSON(w, http.StatusOK, resp)
}

// getLearnerPerformance lists progress per attempted subject.
// @Summary      Get learner performance
// @Tags         Learners
// @Produce      json
// @Param        learnerID  path      string  true  "Learner ID"
// @Success      200        {object}  LearnerPerformanceResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      503        {object}  ErrorResponse
// @Router       /learners/{learnerID}/performance [get]
func (h *Handler) getLearnerPerformance(w http.ResponseWriter, r *http.Request) {
	perf, err := h.engine.LearnerPerformance(r.Context(), r.PathValue("learnerID"))
	if h.handleServiceError(w, err) {
		return
	}

	subjects := make([]SubjectProgressResponse, len(perf.Subjects))
	for i, s := range perf.Subjects {
		subjects[i] = SubjectProgressResponse{
			SubjectID:     s.Subject.ID,
			Name:          s.Subject.Name,
			Progress:      s.Progress,
			QuizAttempted: s.QuizAttempted,
			AverageScore:  s.AverageScore,
		}
	}
	respondJSON(w, http.StatusOK, LearnerPerformanceResponse{Subjects: subjects, SubjectsCovered: perf.SubjectsCovered})
}

// deductXP withdraws XP from the learner, oldest first.
// @Summary      Deduct XP
// @Description  Spends XP across closed attempts oldest first. Insufficient XP is reported in remaining_unfulfilled, not as an error.
// @Tags         Learners
// @Accept       json
// @Produce      json
// @Param        learnerID  path      string           true  "Learner ID"
// @Param        body       body      DeductXPRequest  true  "Amount to deduct"
// @Success      200        {object}  DeductXPResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      503        {object}  ErrorResponse
// @Router       /learners/{learnerID}/xp/deductions [post]
func (h *Handler) deductXP(w http.ResponseWriter, r *http.Request) {
	var req DeductXPRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.engine.DeductXP(r.Context(), r.PathValue("learnerID"), req.Amount)
	if h.handleServiceError(w, err) {
		return
	}

	withdrawals := make([]WithdrawalResponse, len(out.Withdrawals))
	for i, wd := range out.Withdrawals {
		withdrawals[i] = WithdrawalResponse{AttemptID: wd.AttemptID, Amount: wd.Amount}
	}
	respondJSON(w, http.StatusOK, DeductXPResponse{
		Requested:   out.Requested,
		Deducted:    out.Deducted,
		Unfulfilled: out.Unfulfilled,
		Withdrawals: withdrawals,
	})
}

// getLedger lists the learner's XP movements.
// @Summary      Get XP ledger
// @Tags         Learners
// @Produce      json
// @Param        learnerID  path      string  true  "Learner ID"
// @Success      200        {array}   LedgerEntryResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      503        {object}  ErrorResponse
// @Router       /learners/{learnerID}/xp/ledger [get]
func (h *Handler) getLedger(w http.ResponseWriter, r *http.Request) {
	entries, err := h.engine.LedgerHistory(r.Context(), r.PathValue("learnerID"))
	if h.handleServiceError(w, err) {
		return
	}

	resp := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = LedgerEntryResponse{
			ID:        e.ID,
			AttemptID: e.AttemptID,
			Delta:     e.Delta,
			Reason:    string(e.Reason),
			CreatedAt: e.CreatedAt,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// getRank returns the learner's XP rank.
// @Summary      Get learner rank
// @Description  1 + the number of learners with strictly more XP. Tied learners share a rank.
// @Tags         Learners
// @Produce      json
// @Param        learnerID  path      string  true  "Learner ID"
// @Success      200        {object}  RankResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      503        {object}  ErrorResponse
// @Router       /learners/{learnerID}/rank [get]
func (h *Handler) getRank(w http.ResponseWriter, r *http.Request) {
	learnerID := r.PathValue("learnerID")
	rank, err := h.engine.Rank(r.Context(), learnerID)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, RankResponse{LearnerID: learnerID, Rank: rank})
}
