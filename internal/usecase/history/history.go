// Package history lists, pages and searches past classifications.
package history

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/its-jojoo/camxuc/internal/core"
)

const (
	DefaultPageSize  = 50
	DefaultIncrement = 10
)

type Store interface {
	ListRecent(ctx context.Context, limit int, sentiment core.Sentiment) ([]core.Record, error)
}

// Pager mirrors a "load more" history view: it starts with PageSize
// records and grows by Increment on each More call.
type Pager struct {
	store     Store
	limit     int
	increment int
	filter    core.Sentiment
}

func NewPager(store Store, pageSize, increment int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if increment <= 0 {
		increment = DefaultIncrement
	}
	return &Pager{store: store, limit: pageSize, increment: increment}
}

// SetFilter restricts the view to one sentiment; "" shows all.
func (p *Pager) SetFilter(s core.Sentiment) { p.filter = s }

func (p *Pager) Filter() core.Sentiment { return p.filter }
func (p *Pager) Limit() int             { return p.limit }

// More grows the window by one increment.
func (p *Pager) More() { p.limit += p.increment }

// Load returns the current window, newest first.
func (p *Pager) Load(ctx context.Context) ([]core.Record, error) {
	return p.store.ListRecent(ctx, p.limit, p.filter)
}

// HasMore reports whether a page of n records may have more behind it.
func (p *Pager) HasMore(n int) bool { return n >= p.limit }

type Options struct {
	ScanLimit int
	OutLimit  int
	Sentiment core.Sentiment
	Now       time.Time // optional, for tests
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// Search matches q against the original and normalized text of recent
// records, ignoring case and diacritics ("khong" finds "không").
func (s *Service) Search(ctx context.Context, q string, opt Options) ([]core.Record, error) {
	if opt.ScanLimit <= 0 {
		opt.ScanLimit = 200
	}
	if opt.OutLimit <= 0 {
		opt.OutLimit = 20
	}
	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}

	q = core.Fold(q)
	if q == "" {
		return nil, nil
	}

	recs, err := s.store.ListRecent(ctx, opt.ScanLimit, opt.Sentiment)
	if err != nil {
		return nil, err
	}

	type scored struct {
		rec   core.Record
		score int
		order int
	}

	scoredRecs := make([]scored, 0, len(recs))

	for i, rec := range recs {
		matchScore := max(scoreMatch(core.Fold(rec.Text), q), scoreMatch(core.Fold(rec.Normalized), q))
		if matchScore == 0 {
			continue
		}

		score := matchScore

		// recency boost
		age := now.Sub(rec.CreatedAt)
		switch {
		case age < 10*time.Minute:
			score += 400
		case age < time.Hour:
			score += 250
		case age < 24*time.Hour:
			score += 120
		case age < 7*24*time.Hour:
			score += 40
		}

		scoredRecs = append(scoredRecs, scored{rec: rec, score: score, order: i})
	}

	sort.SliceStable(scoredRecs, func(i, j int) bool {
		if scoredRecs[i].score != scoredRecs[j].score {
			return scoredRecs[i].score > scoredRecs[j].score
		}
		// store order is newest first
		return scoredRecs[i].order < scoredRecs[j].order
	})

	if opt.OutLimit > len(scoredRecs) {
		opt.OutLimit = len(scoredRecs)
	}

	out := make([]core.Record, 0, opt.OutLimit)
	for i := 0; i < opt.OutLimit; i++ {
		out = append(out, scoredRecs[i].rec)
	}
	return out, nil
}

func scoreMatch(s, q string) int {
	// exact > prefix > substring (earlier index slightly better)
	if s == q {
		return 3000
	}
	if strings.HasPrefix(s, q) {
		return 2000
	}
	if idx := strings.Index(s, q); idx >= 0 {
		return 1000 + max(0, 200-idx)
	}
	return 0
}
