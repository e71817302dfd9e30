package classifier

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/its-jojoo/camxuc/internal/core"
)

// Limited throttles calls to a remote classifier.
type Limited struct {
	next    Classifier
	limiter *rate.Limiter
}

// NewLimited allows perSecond calls with the given burst. perSecond <= 0
// disables throttling.
func NewLimited(next Classifier, perSecond float64, burst int) *Limited {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limited{next: next, limiter: rate.NewLimiter(limit, burst)}
}

func (l *Limited) Classify(ctx context.Context, text string) (core.Prediction, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return core.Prediction{}, err
	}
	return l.next.Classify(ctx, text)
}
