// Package classifier holds the adapters for external sentiment models.
package classifier

import (
	"context"

	"github.com/its-jojoo/camxuc/internal/core"
)

const DefaultModel = "5CD-AI/vietnamese-sentiment-visobert"

type Classifier interface {
	Classify(ctx context.Context, text string) (core.Prediction, error)
}

// Func adapts a plain function to Classifier.
type Func func(ctx context.Context, text string) (core.Prediction, error)

func (f Func) Classify(ctx context.Context, text string) (core.Prediction, error) {
	return f(ctx, text)
}
