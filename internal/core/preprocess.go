package core

import (
	"context"
	"strings"
)

// Segmenter joins multi-syllable words, e.g. "học sinh" -> "học_sinh".
type Segmenter interface {
	Segment(ctx context.Context, text string) (string, error)
}

// modelTable favors multi-word expansions over display readability.
var modelTable = []abbrev{
	{"ko", "không"},
	{"kô", "không"},
	{"khong", "không"},
	{"hok", "không"},
	{"k", "không"},
	{"k0", "không"},
	{"zui", "vui"},
	{"sz", "size"},
	{"dc", "được"},
	{"đc", "được"},
	{"vs", "với"},
	{"j", "gì"},
	{"0", "không"},
	{"nma", "nhưng mà"},
	{"nhg", "nhưng"},
	{"mn", "mọi người"},
	{"hk", "không"},
	{"thik", "thích"},
	{"hoy", "không"},
	{"hoi", "không"},
}

// ExpandAbbreviations lowercases text and expands chat abbreviations.
// A key only matches when surrounded by single spaces, so tokens at the
// very start or end of the text are left alone. Replacements run in table
// order over the whole string.
func ExpandAbbreviations(text string) string {
	text = strings.ToLower(strings.TrimSpace(ComposeNFC(text)))
	for _, e := range modelTable {
		text = strings.ReplaceAll(text, " "+e.from+" ", " "+e.to+" ")
	}
	return text
}

// Preprocess prepares text for the sentiment model: abbreviation
// expansion followed by word segmentation.
func Preprocess(ctx context.Context, text string, seg Segmenter) (string, error) {
	return seg.Segment(ctx, ExpandAbbreviations(text))
}
