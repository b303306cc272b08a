package store

import (
	"context"
	"database/sql"

	"github.com/remaimber-it/quizengine/internal/ledger"
)

// UpdateLedger runs one deduction for learnerID inside a write transaction.
// plan receives the XP balance of every closed attempt of the learner,
// oldest first, and returns the entries to append. Returning an error rolls
// the transaction back.
func (s *SQLiteStore) UpdateLedger(ctx context.Context, learnerID string, plan func([]ledger.Balance) ([]ledger.Entry, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM learners WHERE id = ?", learnerID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}

	balances, err := loadBalances(ctx, tx, learnerID)
	if err != nil {
		return err
	}

	entries, err := plan(balances)
	if err != nil {
		return err
	}
	if err := insertEntries(ctx, tx, entries); err != nil {
		return err
	}

	return tx.Commit()
}

func loadBalances(ctx context.Context, tx *sql.Tx, learnerID string) ([]ledger.Balance, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT a.id, a.created_at, COALESCE(SUM(x.delta), 0)
		FROM attempts a
		LEFT JOIN xp_entries x ON x.attempt_id = a.id
		WHERE a.learner_id = ? AND a.status = 'closed'
		GROUP BY a.id, a.created_at
		ORDER BY a.created_at, a.id
	`, learnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := []ledger.Balance{}
	for rows.Next() {
		var b ledger.Balance
		var createdAt int64
		if err := rows.Scan(&b.AttemptID, &createdAt, &b.XP); err != nil {
			return nil, err
		}
		b.CreatedAt = fromUnixNano(createdAt)
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func insertEntries(ctx context.Context, tx *sql.Tx, entries []ledger.Entry) error {
	for _, e := range entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO xp_entries (id, attempt_id, learner_id, delta, reason, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, e.ID, e.AttemptID, e.LearnerID, e.Delta, string(e.Reason), unixNano(e.CreatedAt))
		if err != nil {
			return err
		}
	}
	return nil
}

// LedgerEntries returns the learner's XP log in the order it was written.
func (s *SQLiteStore) LedgerEntries(ctx context.Context, learnerID string) ([]ledger.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, attempt_id, learner_id, delta, reason, created_at
		FROM xp_entries WHERE learner_id = ? ORDER BY created_at, id
	`, learnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []ledger.Entry{}
	for rows.Next() {
		var e ledger.Entry
		var reason string
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.AttemptID, &e.LearnerID, &e.Delta, &reason, &createdAt); err != nil {
			return nil, err
		}
		e.Reason = ledger.Reason(reason)
		e.CreatedAt = fromUnixNano(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ============================================================================
// Ranking
// ============================================================================

// LearnerXP sums the learner's ledger. Learners without entries have 0.
func (s *SQLiteStore) LearnerXP(ctx context.Context, learnerID string) (int, error) {
	var xp int
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(delta), 0) FROM xp_entries WHERE learner_id = ?", learnerID).Scan(&xp)
	return xp, err
}

// CountLearnersAbove counts learners whose total XP is strictly greater than xp.
func (s *SQLiteStore) CountLearnersAbove(ctx context.Context, xp int) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM (
			SELECT learner_id FROM xp_entries GROUP BY learner_id HAVING SUM(delta) > ?
		)
	`, xp).Scan(&n)
	return n, err
}

// LearnerXPTotals returns the XP of every known learner, including those
// who have not closed an attempt yet.
func (s *SQLiteStore) LearnerXPTotals(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.id, COALESCE(SUM(x.delta), 0)
		FROM learners l
		LEFT JOIN xp_entries x ON x.learner_id = l.id
		GROUP BY l.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var id string
		var xp int
		if err := rows.Scan(&id, &xp); err != nil {
			return nil, err
		}
		totals[id] = xp
	}
	return totals, rows.Err()
}
