package service

import (
	"context"

	"github.com/remaimber-it/quizengine/internal/analytics"
	"github.com/remaimber-it/quizengine/internal/apperr"
)

type LeaderboardEntry struct {
	Rank        int
	LearnerID   string
	DisplayName string
	XP          int
}

// AccuracySeries returns the bucketed accuracy trend for period ("day",
// "month" or "year"; empty means month). An empty learnerID covers every
// learner.
func (e *Engine) AccuracySeries(ctx context.Context, learnerID, period string) ([]analytics.Point, error) {
	p, err := analytics.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	if learnerID != "" {
		if _, err := e.getLearner(ctx, learnerID); err != nil {
			return nil, err
		}
	}

	points, err := e.analytics.AccuracySeries(ctx, learnerID, p)
	if err != nil {
		return nil, unavailable("accuracy series", err)
	}
	return points, nil
}

// SubjectPerformance ranks every subject by accuracy. An empty learnerID
// covers every learner.
func (e *Engine) SubjectPerformance(ctx context.Context, learnerID string) ([]analytics.SubjectAccuracy, error) {
	if learnerID != "" {
		if _, err := e.getLearner(ctx, learnerID); err != nil {
			return nil, err
		}
	}

	rows, err := e.analytics.SubjectPerformance(ctx, learnerID)
	if err != nil {
		return nil, unavailable("subject performance", err)
	}
	return rows, nil
}

// Rank is 1 + the number of learners with strictly more XP.
func (e *Engine) Rank(ctx context.Context, learnerID string) (int, error) {
	if _, err := e.getLearner(ctx, learnerID); err != nil {
		return 0, err
	}
	rank, err := e.ranking.Rank(ctx, learnerID)
	if err != nil {
		return 0, apperr.Unavailable("rank", err)
	}
	return rank, nil
}

// Leaderboard returns the top limit learners by XP; limit <= 0 returns all.
func (e *Engine) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	board, err := e.ranking.Leaderboard(ctx, limit)
	if err != nil {
		return nil, apperr.Unavailable("leaderboard", err)
	}
	learners, err := e.store.ListLearners(ctx)
	if err != nil {
		return nil, apperr.Unavailable("list learners", err)
	}

	names := make(map[string]string, len(learners))
	for _, l := range learners {
		names[l.ID] = l.DisplayName
	}

	entries := make([]LeaderboardEntry, len(board))
	for i, s := range board {
		entries[i] = LeaderboardEntry{Rank: s.Rank, LearnerID: s.LearnerID, DisplayName: names[s.LearnerID], XP: s.XP}
	}
	return entries, nil
}
