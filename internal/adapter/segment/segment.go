// Package segment joins multi-syllable Vietnamese words so the sentiment
// model sees "học_sinh" rather than two unrelated syllables.
package segment

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"strings"
	"unicode"
)

//go:embed words.txt
var defaultWords []byte

const joiner = "_"

// Dictionary is a greedy longest-match segmenter over whitespace-separated
// syllables. It is read-only after construction and safe for concurrent use.
type Dictionary struct {
	words       map[string]struct{}
	maxSyllable int
}

// New builds a segmenter from newline-separated entries. Blank lines and
// lines starting with '#' are skipped. Entries are lowercased.
func New(data []byte) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{})}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		syl := strings.Fields(strings.ToLower(line))
		if len(syl) < 2 {
			continue
		}
		d.words[strings.Join(syl, " ")] = struct{}{}
		if len(syl) > d.maxSyllable {
			d.maxSyllable = len(syl)
		}
	}
	return d
}

// Default returns a segmenter over the embedded word list.
func Default() *Dictionary { return New(defaultWords) }

// Len returns the number of dictionary entries.
func (d *Dictionary) Len() int { return len(d.words) }

// Segment joins dictionary words with "_" and returns the space-joined
// result. Tokens that already contain "_" or any non-letter pass through
// verbatim, so segmenting twice is a no-op.
func (d *Dictionary) Segment(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	toks := strings.Fields(text)
	out := make([]string, 0, len(toks))

	for i := 0; i < len(toks); {
		n := d.match(toks[i:])
		if n > 1 {
			out = append(out, strings.Join(toks[i:i+n], joiner))
			i += n
			continue
		}
		out = append(out, toks[i])
		i++
	}
	return strings.Join(out, " "), nil
}

// match returns how many leading syllables of toks form the longest
// dictionary word, or 0.
func (d *Dictionary) match(toks []string) int {
	limit := min(d.maxSyllable, len(toks))
	for n := limit; n >= 2; n-- {
		ok := true
		for _, t := range toks[:n] {
			if !isSyllable(t) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if _, found := d.words[strings.ToLower(strings.Join(toks[:n], " "))]; found {
			return n
		}
	}
	return 0
}

func isSyllable(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
