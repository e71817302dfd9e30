package core

import "strings"

type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
)

// Sentiments lists the labels in the order the history filter offers them.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// model short codes -> canonical names
var labelMapping = map[string]Sentiment{
	"NEG": SentimentNegative,
	"POS": SentimentPositive,
	"NEU": SentimentNeutral,
}

// SentimentFromLabel maps a raw classifier label to a Sentiment.
// Unknown labels map to NEUTRAL.
func SentimentFromLabel(raw string) Sentiment {
	if s, ok := labelMapping[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return s
	}
	return SentimentNeutral
}

// ParseSentiment parses a history filter value. "" and "ALL" return ok with
// an empty Sentiment, meaning no filter.
func ParseSentiment(s string) (Sentiment, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || s == "ALL" {
		return "", true
	}
	for _, v := range Sentiments {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

func (s Sentiment) Valid() bool {
	return s == SentimentPositive || s == SentimentNegative || s == SentimentNeutral
}

// Prediction is the raw output of an external sentiment model: a short
// label code (NEG, POS, NEU) and a confidence in [0,1].
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
