package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/its-jojoo/camxuc/internal/adapter/storage"
	"github.com/its-jojoo/camxuc/internal/core"
)

// TimestampLayout is how timestamps are stored in the sentiments table.
const TimestampLayout = "2006-01-02 15:04:05"

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path. The parent
// directory is created as well.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error   { return s.db.Close() }
func (s *Store) Now() time.Time { return s.now() }

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS sentiments (
  seq        INTEGER PRIMARY KEY AUTOINCREMENT,
  id         TEXT NOT NULL UNIQUE,
  text       TEXT NOT NULL,
  normalized TEXT NOT NULL DEFAULT '',
  sentiment  TEXT NOT NULL,
  score      REAL NOT NULL DEFAULT 0,
  timestamp  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sentiments_sentiment ON sentiments(sentiment);
`)
	return err
}

func (s *Store) Append(ctx context.Context, rec core.Record) (core.Record, error) {
	if err := storage.Validate(rec); err != nil {
		return core.Record{}, err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}
	// stored at second precision
	rec.CreatedAt = rec.CreatedAt.Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
INSERT INTO sentiments(id, text, normalized, sentiment, score, timestamp)
VALUES(?, ?, ?, ?, ?, ?)
`, rec.ID, rec.Text, rec.Normalized, string(rec.Sentiment), rec.Score,
		rec.CreatedAt.Local().Format(TimestampLayout))
	if err != nil {
		return core.Record{}, err
	}
	return rec, nil
}

func (s *Store) ListRecent(ctx context.Context, limit int, sentiment core.Sentiment) ([]core.Record, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}

	query := `SELECT id, text, normalized, sentiment, score, timestamp FROM sentiments`
	args := make([]any, 0, 2)
	if sentiment != "" {
		query += ` WHERE sentiment = ?`
		args = append(args, string(sentiment))
	}
	query += ` ORDER BY seq DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]core.Record, 0, limit)
	for rows.Next() {
		var rec core.Record
		var sent, ts string

		if err := rows.Scan(&rec.ID, &rec.Text, &rec.Normalized, &sent, &rec.Score, &ts); err != nil {
			return nil, err
		}
		rec.Sentiment = core.Sentiment(sent)
		rec.CreatedAt, err = time.ParseInLocation(TimestampLayout, ts, time.Local)
		if err != nil {
			return nil, fmt.Errorf("record %s: bad timestamp %q: %w", rec.ID, ts, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sentiments WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM sentiments`)
	var n int
	return n, row.Scan(&n)
}

func (s *Store) CountBySentiment(ctx context.Context) (map[core.Sentiment]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT sentiment, COUNT(1) FROM sentiments GROUP BY sentiment`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[core.Sentiment]int, len(core.Sentiments))
	for rows.Next() {
		var sent string
		var n int
		if err := rows.Scan(&sent, &n); err != nil {
			return nil, err
		}
		out[core.Sentiment(sent)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ storage.Store = (*Store)(nil)
