package core

import (
	"time"
)

// Result is produced per classification request and owned by the caller.
type Result struct {
	OriginalText   string    `json:"original_text"`
	NormalizedText string    `json:"normalized_text"`
	Sentiment      Sentiment `json:"sentiment"`
	Score          float64   `json:"score"`
}

// Record is one persisted history entry. Text is the original input.
type Record struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Normalized string    `json:"normalized"`
	Sentiment  Sentiment `json:"sentiment"`
	Score      float64   `json:"score"`

	CreatedAt time.Time `json:"created_at"`
}
