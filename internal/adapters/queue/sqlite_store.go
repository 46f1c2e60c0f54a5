package queue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/foliate-press/foliate/internal/usecase"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS questions (
	id         TEXT PRIMARY KEY,
	text       TEXT NOT NULL UNIQUE,
	status     TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore keeps the question queue in a sqlite database. Unlike the
// csv store it supports adding questions and survives concurrent runs.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open question db %s: %w", path, err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init question db schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Add enqueues a question and returns its id. Re-adding an existing
// question is a no-op that returns the existing id.
func (s *SQLiteStore) Add(ctx context.Context, text string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (id, text) VALUES (?, ?) ON CONFLICT(text) DO NOTHING`, id, text)
	if err != nil {
		return "", fmt.Errorf("enqueue question: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `SELECT id FROM questions WHERE text = ?`, text)
	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("look up question id: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) Pending(ctx context.Context) ([]usecase.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, text FROM questions WHERE status != 'published' ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list pending questions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var pending []usecase.Question
	for rows.Next() {
		var q usecase.Question
		if err := rows.Scan(&q.ID, &q.Text); err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		pending = append(pending, q)
	}
	return pending, rows.Err()
}

func (s *SQLiteStore) MarkPublished(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE questions SET status = 'published' WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark question published: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("question %q not in queue", id)
	}
	return nil
}
