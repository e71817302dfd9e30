package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/its-jojoo/camxuc/internal/adapter/storage"
	"github.com/its-jojoo/camxuc/internal/core"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "db", "sentiments.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteStore_AppendListCount(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 14, 9, 26, 53, 589, time.Local)
	rec := core.Record{
		ID:         uuid.NewString(),
		Text:       "Hom nay toi rat vui",
		Normalized: "Hôm nay tôi rất vui",
		Sentiment:  core.SentimentPositive,
		Score:      0.97,
		CreatedAt:  now,
	}

	if _, err := st.Append(ctx, rec); err != nil {
		t.Fatal(err)
	}

	n, err := st.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected count=1, got %d", n)
	}

	items, err := st.ListRecent(ctx, 10, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 record, got %d", len(items))
	}
	got := items[0]
	if got.Text != rec.Text || got.Normalized != rec.Normalized || got.Sentiment != rec.Sentiment {
		t.Fatalf("unexpected record: %+v", got)
	}
	if !got.CreatedAt.Equal(now.Truncate(time.Second)) {
		t.Fatalf("expected timestamp %v, got %v", now.Truncate(time.Second), got.CreatedAt)
	}
}

func TestSQLiteStore_NewestFirstWithFilter(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	for _, r := range []struct {
		text string
		s    core.Sentiment
	}{
		{"một", core.SentimentPositive},
		{"hai", core.SentimentNegative},
		{"ba", core.SentimentPositive},
		{"bốn", core.SentimentNeutral},
	} {
		if _, err := st.Append(ctx, core.Record{Text: r.text, Sentiment: r.s}); err != nil {
			t.Fatal(err)
		}
	}

	all, err := st.ListRecent(ctx, 3, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].Text != "bốn" || all[2].Text != "hai" {
		t.Fatalf("unexpected order: %+v", all)
	}

	pos, err := st.ListRecent(ctx, 10, core.SentimentPositive)
	if err != nil {
		t.Fatal(err)
	}
	if len(pos) != 2 || pos[0].Text != "ba" || pos[1].Text != "một" {
		t.Fatalf("unexpected filtered list: %+v", pos)
	}

	counts, err := st.CountBySentiment(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts[core.SentimentPositive] != 2 || counts[core.SentimentNegative] != 1 || counts[core.SentimentNeutral] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestSQLiteStore_DeleteAndValidate(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	rec, err := st.Append(ctx, core.Record{Text: "xin chào", Sentiment: core.SentimentNeutral})
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID == "" || rec.CreatedAt.IsZero() {
		t.Fatalf("expected ID and timestamp to be assigned: %+v", rec)
	}

	if err := st.Delete(ctx, rec.ID); err != nil {
		t.Fatal(err)
	}
	if err := st.Delete(ctx, rec.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := st.Append(ctx, core.Record{Text: "", Sentiment: core.SentimentNeutral}); err == nil {
		t.Fatalf("expected error for empty text")
	}
	if _, err := st.Append(ctx, core.Record{Text: "x", Sentiment: "HAPPY"}); err == nil {
		t.Fatalf("expected error for unknown sentiment")
	}
}
