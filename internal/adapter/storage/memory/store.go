package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/its-jojoo/camxuc/internal/adapter/storage"
	"github.com/its-jojoo/camxuc/internal/core"
)

type Store struct {
	mu   sync.RWMutex
	now  func() time.Time
	byID map[string]core.Record
	list []string // newest first
}

func New() *Store {
	return &Store{
		now:  time.Now,
		byID: make(map[string]core.Record),
	}
}

// NewWithClock is New with an injectable clock, for tests.
func NewWithClock(now func() time.Time) *Store {
	s := New()
	s.now = now
	return s
}

func (s *Store) Now() time.Time { return s.now() }

func (s *Store) Append(ctx context.Context, rec core.Record) (core.Record, error) {
	_ = ctx
	if err := storage.Validate(rec); err != nil {
		return core.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}

	s.byID[rec.ID] = rec
	s.list = append([]string{rec.ID}, s.list...)
	return rec, nil
}

func (s *Store) ListRecent(ctx context.Context, limit int, sentiment core.Sentiment) ([]core.Record, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = storage.DefaultListLimit
	}

	out := make([]core.Record, 0, min(limit, len(s.list)))
	for _, id := range s.list {
		if len(out) == limit {
			break
		}
		rec := s.byID[id]
		if sentiment != "" && rec.Sentiment != sentiment {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.byID, id)

	// remove from list
	for i := range s.list {
		if s.list[i] == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID), nil
}

func (s *Store) CountBySentiment(ctx context.Context) (map[core.Sentiment]int, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[core.Sentiment]int, len(core.Sentiments))
	for _, rec := range s.byID {
		out[rec.Sentiment]++
	}
	return out, nil
}

var _ storage.Store = (*Store)(nil)
