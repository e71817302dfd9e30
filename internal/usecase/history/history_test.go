package history

import (
	"context"
	"testing"
	"time"

	"github.com/its-jojoo/camxuc/internal/core"
)

type fakeStore struct {
	recs []core.Record // newest first
}

func (f fakeStore) ListRecent(ctx context.Context, limit int, sentiment core.Sentiment) ([]core.Record, error) {
	_ = ctx
	out := make([]core.Record, 0, len(f.recs))
	for _, r := range f.recs {
		if len(out) == limit {
			break
		}
		if sentiment != "" && r.Sentiment != sentiment {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func TestSearch_AccentInsensitive(t *testing.T) {
	now := time.Now()
	recs := []core.Record{
		{ID: "1", Text: "Tôi không thích món này", Sentiment: core.SentimentNegative, CreatedAt: now.Add(-time.Minute)},
		{ID: "2", Text: "hom nay dep troi", Normalized: "Hôm nay đẹp trời", Sentiment: core.SentimentPositive, CreatedAt: now.Add(-2 * time.Minute)},
		{ID: "3", Text: "xin chào", Sentiment: core.SentimentNeutral, CreatedAt: now.Add(-3 * time.Minute)},
	}
	svc := New(fakeStore{recs: recs})

	got, err := svc.Search(context.Background(), "KHONG thich", Options{Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected record 1, got %+v", got)
	}

	got, err = svc.Search(context.Background(), "đẹp", Options{Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected record 2, got %+v", got)
	}
}

func TestSearch_ExactBeatsRecency(t *testing.T) {
	now := time.Now()
	recs := []core.Record{
		{ID: "new", Text: "vui quá đi mất", Sentiment: core.SentimentPositive, CreatedAt: now.Add(-time.Minute)},
		{ID: "old", Text: "vui quá", Sentiment: core.SentimentPositive, CreatedAt: now.Add(-48 * time.Hour)},
	}
	svc := New(fakeStore{recs: recs})

	got, err := svc.Search(context.Background(), "vui qua", Options{Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "old" {
		t.Fatalf("expected exact match first, got %+v", got)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	svc := New(fakeStore{recs: []core.Record{{ID: "1", Text: "x"}}})
	got, err := svc.Search(context.Background(), "   ", Options{})
	if err != nil || got != nil {
		t.Fatalf("expected no results, got %+v, %v", got, err)
	}
}

func TestPager_MoreAndFilter(t *testing.T) {
	recs := make([]core.Record, 0, 30)
	for i := 0; i < 30; i++ {
		s := core.SentimentPositive
		if i%3 == 0 {
			s = core.SentimentNegative
		}
		recs = append(recs, core.Record{ID: string(rune('A' + i)), Text: "x", Sentiment: s})
	}
	p := NewPager(fakeStore{recs: recs}, 20, 0)

	page, _ := p.Load(context.Background())
	if len(page) != 20 || !p.HasMore(len(page)) {
		t.Fatalf("expected full first page with more, got %d", len(page))
	}

	p.More()
	if p.Limit() != 30 {
		t.Fatalf("expected default increment of 10, limit=%d", p.Limit())
	}
	page, _ = p.Load(context.Background())
	if len(page) != 30 {
		t.Fatalf("expected 30 records, got %d", len(page))
	}

	p.SetFilter(core.SentimentNegative)
	page, _ = p.Load(context.Background())
	if len(page) != 10 || p.HasMore(len(page)) {
		t.Fatalf("expected 10 negative records and no more, got %d", len(page))
	}
	for _, r := range page {
		if r.Sentiment != core.SentimentNegative {
			t.Fatalf("filter leaked %s", r.Sentiment)
		}
	}
}
