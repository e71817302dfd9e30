package storage

import (
	"context"
	"errors"
	"time"

	"github.com/its-jojoo/camxuc/internal/core"
)

const DefaultListLimit = 50

var ErrNotFound = errors.New("not found")

// Store persists classification history.
type Store interface {
	// Append saves rec, filling ID and CreatedAt when empty, and returns the
	// stored record.
	Append(ctx context.Context, rec core.Record) (core.Record, error)

	// ListRecent returns up to limit records, newest first. An empty
	// sentiment means no filter.
	ListRecent(ctx context.Context, limit int, sentiment core.Sentiment) ([]core.Record, error)

	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountBySentiment(ctx context.Context) (map[core.Sentiment]int, error)
	Now() time.Time
}

// Validate checks the fields every store requires.
func Validate(rec core.Record) error {
	if rec.Text == "" {
		return errors.New("empty text")
	}
	if !rec.Sentiment.Valid() {
		return errors.New("invalid sentiment: " + string(rec.Sentiment))
	}
	return nil
}
