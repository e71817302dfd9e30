package classifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/its-jojoo/camxuc/internal/core"
)

// Factory builds a classifier. It may be slow (model download, warmup).
type Factory func(ctx context.Context) (Classifier, error)

// Lazy builds its classifier on first use and reuses it afterwards.
// Concurrent first callers wait for a single build; a failed build is
// retried by the next caller. Waiters give up when their context ends.
type Lazy struct {
	factory Factory
	logger  *slog.Logger

	// gate is a one-slot semaphore guarding c
	gate chan struct{}
	c    Classifier
}

func NewLazy(factory Factory, logger *slog.Logger) *Lazy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lazy{factory: factory, logger: logger, gate: make(chan struct{}, 1)}
}

func (l *Lazy) Get(ctx context.Context) (Classifier, error) {
	select {
	case l.gate <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-l.gate }()

	if l.c != nil {
		return l.c, nil
	}

	start := time.Now()
	c, err := l.factory(ctx)
	if err != nil {
		l.logger.Warn("classifier init failed", "err", err)
		return nil, err
	}
	l.logger.Info("classifier ready", "elapsed", time.Since(start))
	l.c = c
	return c, nil
}

func (l *Lazy) Classify(ctx context.Context, text string) (core.Prediction, error) {
	c, err := l.Get(ctx)
	if err != nil {
		return core.Prediction{}, err
	}
	return c.Classify(ctx, text)
}
