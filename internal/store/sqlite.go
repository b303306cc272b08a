// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "modernc.org/sqlite"

	"github.com/remaimber-it/quizengine/internal/domain/learner"
	"github.com/remaimber-it/quizengine/internal/domain/subject"
)

const schema = `
CREATE TABLE IF NOT EXISTS learners (
    id TEXT PRIMARY KEY,
    display_name TEXT NOT NULL,
    email TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS subjects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    subject_id TEXT NOT NULL,
    text TEXT NOT NULL,
    option1 TEXT NOT NULL,
    option2 TEXT NOT NULL,
    option3 TEXT NOT NULL,
    option4 TEXT NOT NULL,
    correct TEXT NOT NULL CHECK (correct IN ('option1', 'option2', 'option3', 'option4')),
    position INTEGER NOT NULL,
    FOREIGN KEY (subject_id) REFERENCES subjects(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_questions_subject ON questions(subject_id, position);

CREATE TABLE IF NOT EXISTS attempts (
    id TEXT PRIMARY KEY,
    learner_id TEXT NOT NULL,
    subject_id TEXT NOT NULL,
    total_questions INTEGER NOT NULL CHECK (total_questions > 0),
    attempted_questions INTEGER NOT NULL DEFAULT 0,
    correct_answers INTEGER NOT NULL DEFAULT 0,
    score INTEGER NOT NULL DEFAULT 0,
    grade TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'closed')),
    created_at INTEGER NOT NULL,
    closed_at INTEGER,
    CHECK (attempted_questions <= total_questions),
    CHECK (correct_answers >= 0 AND correct_answers <= attempted_questions),
    FOREIGN KEY (learner_id) REFERENCES learners(id),
    FOREIGN KEY (subject_id) REFERENCES subjects(id)
);

CREATE INDEX IF NOT EXISTS idx_attempts_learner_created ON attempts(learner_id, created_at);
CREATE INDEX IF NOT EXISTS idx_attempts_created ON attempts(created_at);

CREATE TABLE IF NOT EXISTS xp_entries (
    id TEXT PRIMARY KEY,
    attempt_id TEXT NOT NULL,
    learner_id TEXT NOT NULL,
    delta INTEGER NOT NULL,
    reason TEXT NOT NULL CHECK (reason IN ('award', 'deduction')),
    created_at INTEGER NOT NULL,
    FOREIGN KEY (attempt_id) REFERENCES attempts(id)
);

CREATE INDEX IF NOT EXISTS idx_xp_entries_attempt ON xp_entries(attempt_id);
CREATE INDEX IF NOT EXISTS idx_xp_entries_learner ON xp_entries(learner_id, created_at);
`

var pragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(ON)",
	"synchronous(NORMAL)",
}

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens the database at dbPath and creates the schema. Writers
// share a single connection and take the write lock when a transaction
// begins, so concurrent write transactions run one after another.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func dsn(path string) string {
	q := url.Values{}
	for _, p := range pragmas {
		q.Add("_pragma", p)
	}
	q.Set("_txlock", "immediate")
	return path + "?" + q.Encode()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ============================================================================
// Learners
// ============================================================================

// SaveLearner inserts the learner or refreshes its profile fields.
func (s *SQLiteStore) SaveLearner(ctx context.Context, l *learner.Learner) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO learners (id, display_name, email) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET display_name = excluded.display_name, email = excluded.email
	`, l.ID, l.DisplayName, l.Email)
	return err
}

func (s *SQLiteStore) GetLearner(ctx context.Context, id string) (*learner.Learner, error) {
	var l learner.Learner
	err := s.db.QueryRowContext(ctx, "SELECT id, display_name, email FROM learners WHERE id = ?", id).
		Scan(&l.ID, &l.DisplayName, &l.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *SQLiteStore) ListLearners(ctx context.Context) ([]*learner.Learner, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, display_name, email FROM learners ORDER BY display_name, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var learners []*learner.Learner
	for rows.Next() {
		var l learner.Learner
		if err := rows.Scan(&l.ID, &l.DisplayName, &l.Email); err != nil {
			return nil, err
		}
		learners = append(learners, &l)
	}
	return learners, rows.Err()
}

// LearnerSummaries returns every learner with their closed attempt count,
// current XP and number of distinct subjects attempted.
func (s *SQLiteStore) LearnerSummaries(ctx context.Context) ([]LearnerSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.id, l.display_name,
		       (SELECT COUNT(*) FROM attempts a WHERE a.learner_id = l.id AND a.status = 'closed'),
		       (SELECT COALESCE(SUM(x.delta), 0) FROM xp_entries x WHERE x.learner_id = l.id),
		       (SELECT COUNT(DISTINCT a.subject_id) FROM attempts a WHERE a.learner_id = l.id AND a.status = 'closed')
		FROM learners l
		ORDER BY l.display_name, l.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []LearnerSummary{}
	for rows.Next() {
		var ls LearnerSummary
		if err := rows.Scan(&ls.LearnerID, &ls.DisplayName, &ls.QuizAttempts, &ls.XP, &ls.ActiveSubjects); err != nil {
			return nil, err
		}
		summaries = append(summaries, ls)
	}
	return summaries, rows.Err()
}

// ============================================================================
// Subjects
// ============================================================================

// SaveSubject upserts the subject and its questions in one transaction.
func (s *SQLiteStore) SaveSubject(ctx context.Context, sub *subject.Subject) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO subjects (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`, sub.ID, sub.Name)
	if err != nil {
		return err
	}

	for _, q := range sub.Questions {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO questions (id, subject_id, text, option1, option2, option3, option4, correct, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				text = excluded.text,
				option1 = excluded.option1,
				option2 = excluded.option2,
				option3 = excluded.option3,
				option4 = excluded.option4,
				correct = excluded.correct,
				position = excluded.position
		`, q.ID, sub.ID, q.Text, q.Options[0], q.Options[1], q.Options[2], q.Options[3], string(q.Correct), q.Order)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetSubject returns the subject with its questions in display order.
func (s *SQLiteStore) GetSubject(ctx context.Context, id string) (*subject.Subject, error) {
	var sub subject.Subject
	err := s.db.QueryRowContext(ctx, "SELECT id, name FROM subjects WHERE id = ?", id).Scan(&sub.ID, &sub.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	questions, err := s.ListQuestions(ctx, id)
	if err != nil {
		return nil, err
	}
	sub.Questions = questions
	return &sub, nil
}

// ListSubjects returns every subject without questions, ordered by name.
func (s *SQLiteStore) ListSubjects(ctx context.Context) ([]subject.Subject, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM subjects ORDER BY name, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := []subject.Subject{}
	for rows.Next() {
		var sub subject.Subject
		if err := rows.Scan(&sub.ID, &sub.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, sub)
	}
	return subjects, rows.Err()
}

func (s *SQLiteStore) ListQuestions(ctx context.Context, subjectID string) ([]subject.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subject_id, text, option1, option2, option3, option4, correct, position
		FROM questions WHERE subject_id = ? ORDER BY position, id
	`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []subject.Question{}
	for rows.Next() {
		var q subject.Question
		var correct string
		if err := rows.Scan(&q.ID, &q.SubjectID, &q.Text,
			&q.Options[0], &q.Options[1], &q.Options[2], &q.Options[3], &correct, &q.Order); err != nil {
			return nil, err
		}
		q.Correct = subject.Option(correct)
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func unixNano(t time.Time) int64 {
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
