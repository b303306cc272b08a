// Package ranking orders learners by total XP.
//
// A learner's rank is 1 + the number of learners with strictly more XP.
// Learners tied on XP share the better rank and the next rank is skipped,
// so two learners tied for first are both rank 1 and the next learner is 3.
package ranking

import (
	"context"
	"sort"
)

// Source supplies XP totals. A learner without XP entries has 0 XP.
type Source interface {
	LearnerXP(ctx context.Context, learnerID string) (int, error)
	CountLearnersAbove(ctx context.Context, xp int) (int, error)
	LearnerXPTotals(ctx context.Context) (map[string]int, error)
}

// Standing is one leaderboard row.
type Standing struct {
	LearnerID string
	XP        int
	Rank      int
}

type Service struct {
	src Source
}

func NewService(src Source) *Service {
	return &Service{src: src}
}

// Rank returns the learner's position by total XP.
func (s *Service) Rank(ctx context.Context, learnerID string) (int, error) {
	xp, err := s.src.LearnerXP(ctx, learnerID)
	if err != nil {
		return 0, err
	}
	above, err := s.src.CountLearnersAbove(ctx, xp)
	if err != nil {
		return 0, err
	}
	return above + 1, nil
}

// Leaderboard returns the top limit learners; limit <= 0 returns everyone.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]Standing, error) {
	totals, err := s.src.LearnerXPTotals(ctx)
	if err != nil {
		return nil, err
	}
	board := Board(totals)
	if limit > 0 && limit < len(board) {
		board = board[:limit]
	}
	return board, nil
}

// Board sorts totals by XP descending, then learner id, and assigns ranks.
func Board(totals map[string]int) []Standing {
	board := make([]Standing, 0, len(totals))
	for id, xp := range totals {
		board = append(board, Standing{LearnerID: id, XP: xp})
	}
	sort.Slice(board, func(i, j int) bool {
		if board[i].XP != board[j].XP {
			return board[i].XP > board[j].XP
		}
		return board[i].LearnerID < board[j].LearnerID
	})
	for i := range board {
		if i > 0 && board[i].XP == board[i-1].XP {
			board[i].Rank = board[i-1].Rank
			continue
		}
		board[i].Rank = i + 1
	}
	return board
}
