// Package classify runs the validate -> normalize -> classify pipeline and
// records results in the history store.
package classify

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/its-jojoo/camxuc/internal/adapter/storage"
	"github.com/its-jojoo/camxuc/internal/core"
)

type Classifier interface {
	Classify(ctx context.Context, text string) (core.Prediction, error)
}

type Config struct {
	// MaxRecords caps the history size; 0 keeps everything.
	MaxRecords int
}

type Service struct {
	classifier Classifier
	segmenter  core.Segmenter
	store      storage.Store
	cfg        Config
	logger     *slog.Logger
}

// New wires the pipeline. store may be nil when only Classify is used.
func New(c Classifier, seg core.Segmenter, store storage.Store, cfg Config, logger *slog.Logger) *Service {
	if cfg.MaxRecords < 0 {
		cfg.MaxRecords = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{classifier: c, segmenter: seg, store: store, cfg: cfg, logger: logger}
}

// Classify validates text and returns its sentiment. Validation errors are
// returned before the classifier is called. The service holds no per-call
// state and is safe for concurrent use.
func (s *Service) Classify(ctx context.Context, text string) (core.Result, error) {
	if strings.TrimSpace(text) == "" {
		return core.Result{}, core.ErrEmptyInput
	}
	if !core.IsValidVietnamese(text) {
		return core.Result{}, core.ErrInvalidLanguage
	}

	normalized := core.NormalizeDisplay(text)

	cleaned, err := core.Preprocess(ctx, text, s.segmenter)
	if err != nil {
		return core.Result{}, err
	}

	pred, err := s.classifier.Classify(ctx, cleaned)
	if err != nil {
		s.logger.Error("classification failed", "err", err)
		return core.Result{}, &core.ClassifierError{Err: err}
	}

	return core.Result{
		OriginalText:   text,
		NormalizedText: normalized,
		Sentiment:      core.SentimentFromLabel(pred.Label),
		Score:          pred.Score,
	}, nil
}

// Submit classifies text and appends the result to history.
func (s *Service) Submit(ctx context.Context, text string) (core.Result, core.Record, error) {
	res, err := s.Classify(ctx, text)
	if err != nil {
		return core.Result{}, core.Record{}, err
	}

	rec, err := s.store.Append(ctx, core.Record{
		Text:       res.OriginalText,
		Normalized: res.NormalizedText,
		Sentiment:  res.Sentiment,
		Score:      res.Score,
	})
	if err != nil {
		return core.Result{}, core.Record{}, err
	}
	s.logger.Debug("saved history record", "id", rec.ID, "sentiment", rec.Sentiment)

	if err := s.enforceRetention(ctx); err != nil {
		return core.Result{}, core.Record{}, err
	}
	return res, rec, nil
}

// retentionBatch bounds how many records one eviction round reads.
const retentionBatch = 200

func (s *Service) enforceRetention(ctx context.Context) error {
	if s.cfg.MaxRecords == 0 {
		return nil
	}
	for {
		recs, err := s.store.ListRecent(ctx, s.cfg.MaxRecords+retentionBatch, "")
		if err != nil {
			return err
		}
		if len(recs) <= s.cfg.MaxRecords {
			return nil
		}

		// newest -> oldest; evict from the tail
		for _, rec := range recs[s.cfg.MaxRecords:] {
			if err := s.store.Delete(ctx, rec.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return err
			}
		}
		if len(recs) < s.cfg.MaxRecords+retentionBatch {
			return nil
		}
	}
}
