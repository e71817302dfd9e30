// Package render prints classification results and history to a terminal.
package render

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/its-jojoo/camxuc/internal/core"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiGray   = "\033[90m"
)

// TimeLayout matches the history table timestamp format.
const TimeLayout = "2006-01-02 15:04:05"

type Options struct {
	Color bool
}

type style struct {
	icon   string
	label  string // Vietnamese display name
	symbol string
	color  string
}

var styles = map[core.Sentiment]style{
	core.SentimentPositive: {"🟢", "TÍCH CỰC", "✓", ansiGreen},
	core.SentimentNegative: {"🔴", "TIÊU CỰC", "✗", ansiRed},
	core.SentimentNeutral:  {"🟡", "TRUNG TÍNH", "❓", ansiYellow},
}

var unknownStyle = style{"⚪", "KHÔNG RÕ", "?", ansiGray}

func styleFor(s core.Sentiment) style {
	if st, ok := styles[s]; ok {
		return st
	}
	return unknownStyle
}

func (o Options) paint(color, s string) string {
	if !o.Color {
		return s
	}
	return color + s + ansiReset
}

// dictionary output: exactly the two fields shown to the user
type summary struct {
	Text      string         `json:"text"`
	Sentiment core.Sentiment `json:"sentiment"`
}

// Result writes one classification result.
func Result(w io.Writer, res core.Result, opt Options) error {
	st := styleFor(res.Sentiment)

	dict, err := sonic.MarshalString(summary{Text: res.NormalizedText, Sentiment: res.Sentiment})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Câu gốc: %s\nCâu chuẩn hoá: %s\n%s\nĐộ tin cậy: %.2f\nĐầu ra dạng dictionary: %s\n",
		res.OriginalText,
		res.NormalizedText,
		opt.paint(ansiBold+st.color, fmt.Sprintf("%s %s (%s)", st.icon, st.label, st.symbol)),
		res.Score,
		dict,
	)
	return err
}

// History writes records newest first, one entry per record.
func History(w io.Writer, recs []core.Record, opt Options) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "Chưa có lịch sử nào khớp với bộ lọc hiện tại.")
		return err
	}
	for _, r := range recs {
		st := styleFor(r.Sentiment)
		head := opt.paint(st.color, fmt.Sprintf("%s %s (%s)", st.icon, r.Sentiment, st.symbol))
		if _, err := fmt.Fprintf(w, "%s  ⏱ %s\n   📝 %s\n",
			head, r.CreatedAt.Local().Format(TimeLayout), r.Text); err != nil {
			return err
		}
	}
	return nil
}
