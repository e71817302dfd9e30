package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/its-jojoo/camxuc/internal/adapter/storage"
	"github.com/its-jojoo/camxuc/internal/core"
)

func TestMemoryStore_ListRecentFilterAndLimit(t *testing.T) {
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	st := NewWithClock(func() time.Time { return now })
	ctx := context.Background()

	for i, s := range []core.Sentiment{core.SentimentNegative, core.SentimentPositive, core.SentimentNegative} {
		if _, err := st.Append(ctx, core.Record{Text: string(rune('a' + i)), Sentiment: s}); err != nil {
			t.Fatal(err)
		}
	}

	neg, err := st.ListRecent(ctx, 10, core.SentimentNegative)
	if err != nil {
		t.Fatal(err)
	}
	if len(neg) != 2 || neg[0].Text != "c" || neg[1].Text != "a" {
		t.Fatalf("unexpected filtered list: %+v", neg)
	}
	if !neg[0].CreatedAt.Equal(now) {
		t.Fatalf("expected clock time, got %v", neg[0].CreatedAt)
	}

	one, _ := st.ListRecent(ctx, 1, "")
	if len(one) != 1 || one[0].Text != "c" {
		t.Fatalf("expected newest only, got %+v", one)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	st := New()
	ctx := context.Background()

	rec, err := st.Append(ctx, core.Record{Text: "x", Sentiment: core.SentimentNeutral})
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Delete(ctx, rec.ID); err != nil {
		t.Fatal(err)
	}
	if err := st.Delete(ctx, rec.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if n, _ := st.Count(ctx); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
}
