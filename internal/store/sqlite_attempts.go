package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/remaimber-it/quizengine/internal/domain/attempt"
	"github.com/remaimber-it/quizengine/internal/ledger"
	"github.com/remaimber-it/quizengine/internal/scoring"
)

// attemptColumns selects an attempt with its XP projected from the ledger.
const attemptColumns = `
	a.id, a.learner_id, a.subject_id, a.total_questions, a.attempted_questions,
	a.correct_answers, a.score, a.grade, a.status, a.created_at, a.closed_at,
	COALESCE((SELECT SUM(x.delta) FROM xp_entries x WHERE x.attempt_id = a.id), 0)
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (*attempt.Attempt, error) {
	var a attempt.Attempt
	var grade, status string
	var createdAt int64
	var closedAt sql.NullInt64

	err := row.Scan(&a.ID, &a.LearnerID, &a.SubjectID, &a.TotalQuestions, &a.AttemptedQuestions,
		&a.CorrectAnswers, &a.Score, &grade, &status, &createdAt, &closedAt, &a.XPGained)
	if err != nil {
		return nil, err
	}

	a.Grade = scoring.Grade(grade)
	a.Status = attempt.Status(status)
	a.CreatedAt = fromUnixNano(createdAt)
	if closedAt.Valid {
		a.ClosedAt = fromUnixNano(closedAt.Int64)
	}
	return &a, nil
}

// CreateAttempt persists a new open attempt.
func (s *SQLiteStore) CreateAttempt(ctx context.Context, a *attempt.Attempt) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts (id, learner_id, subject_id, total_questions, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.ID, a.LearnerID, a.SubjectID, a.TotalQuestions, string(attempt.StatusOpen), unixNano(a.CreatedAt))
	return err
}

func (s *SQLiteStore) GetAttempt(ctx context.Context, id string) (*attempt.Attempt, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+attemptColumns+" FROM attempts a WHERE a.id = ?", id)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CloseAttempt writes the scored attempt and its award entry in one
// transaction. The update only applies while the stored attempt is still open
// and owned by a.LearnerID: a missing or foreign attempt is ErrNotFound, one
// that is already closed is ErrConflict.
func (s *SQLiteStore) CloseAttempt(ctx context.Context, a *attempt.Attempt, award ledger.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE attempts
		SET attempted_questions = ?, correct_answers = ?, score = ?, grade = ?, status = ?, closed_at = ?
		WHERE id = ? AND learner_id = ? AND status = ?
	`, a.AttemptedQuestions, a.CorrectAnswers, a.Score, string(a.Grade), string(attempt.StatusClosed),
		unixNano(a.ClosedAt), a.ID, a.LearnerID, string(attempt.StatusOpen))
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		var owner string
		err := tx.QueryRowContext(ctx, "SELECT learner_id FROM attempts WHERE id = ?", a.ID).Scan(&owner)
		if errors.Is(err, sql.ErrNoRows) || (err == nil && owner != a.LearnerID) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return ErrConflict
	}

	if err := insertEntries(ctx, tx, []ledger.Entry{award}); err != nil {
		return err
	}

	return tx.Commit()
}

// ListClosedAttempts returns closed attempts matching f, oldest first.
func (s *SQLiteStore) ListClosedAttempts(ctx context.Context, f attempt.Filter) ([]attempt.Attempt, error) {
	return s.listAttempts(ctx, f, true)
}

// ListAttempts returns attempts of any status matching f, oldest first.
func (s *SQLiteStore) ListAttempts(ctx context.Context, f attempt.Filter) ([]attempt.Attempt, error) {
	return s.listAttempts(ctx, f, false)
}

func (s *SQLiteStore) listAttempts(ctx context.Context, f attempt.Filter, closedOnly bool) ([]attempt.Attempt, error) {
	var where []string
	var args []any

	if closedOnly {
		where = append(where, "a.status = ?")
		args = append(args, string(attempt.StatusClosed))
	}
	if f.LearnerID != "" {
		where = append(where, "a.learner_id = ?")
		args = append(args, f.LearnerID)
	}
	if f.SubjectID != "" {
		where = append(where, "a.subject_id = ?")
		args = append(args, f.SubjectID)
	}
	if !f.Since.IsZero() {
		where = append(where, "a.created_at >= ?")
		args = append(args, unixNano(f.Since))
	}
	if !f.Until.IsZero() {
		where = append(where, "a.created_at < ?")
		args = append(args, unixNano(f.Until))
	}

	query := "SELECT " + attemptColumns + " FROM attempts a"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY a.created_at, a.id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := []attempt.Attempt{}
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, *a)
	}
	return attempts, rows.Err()
}

// ListActivityTimes returns the creation time of every attempt the learner
// started, open or closed, newest first.
func (s *SQLiteStore) ListActivityTimes(ctx context.Context, learnerID string) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT created_at FROM attempts WHERE learner_id = ? ORDER BY created_at DESC", learnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	times := []time.Time{}
	for rows.Next() {
		var n int64
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		times = append(times, fromUnixNano(n))
	}
	return times, rows.Err()
}
