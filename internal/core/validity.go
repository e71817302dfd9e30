package core

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minInputRunes = 3
	minWords      = 2
	minVowelRatio = 0.25
	maxAvgWordLen = 10.0
)

// letter runs: ASCII letters plus the contiguous À..ỹ block
var wordRe = regexp.MustCompile(`[A-Za-z\x{00C0}-\x{1EF8}\x{00E0}-\x{1EF9}]+`)

var stopwords = map[string]struct{}{
	"là": {}, "và": {}, "của": {}, "không": {}, "rất": {}, "này": {}, "kia": {}, "đó": {},
	"tôi": {}, "ban": {}, "bạn": {}, "mình": {}, "anh": {}, "em": {}, "chỉ": {}, "thì": {},
	"nhưng": {}, "nếu": {}, "vì": {}, "nên": {}, "cho": {}, "khi": {}, "đã": {}, "đang": {}, "sẽ": {},
	"ở": {}, "trong": {}, "trên": {}, "với": {}, "hay": {}, "cũng": {}, "rồi": {}, "luôn": {},
}

// IsStopword reports whether the lowercase word is a common Vietnamese
// function word.
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}

// Words returns the maximal letter runs of s. Digits, punctuation and
// symbols act as separators.
func Words(s string) []string {
	return wordRe.FindAllString(s, -1)
}

// IsValidVietnamese is a cheap filter for input that is obviously not a
// Vietnamese sentence. False accepts and false rejects are expected.
func IsValidVietnamese(text string) bool {
	text = strings.TrimSpace(ComposeNFC(text))
	if utf8.RuneCountInString(text) < minInputRunes {
		return false
	}

	words := Words(text)
	if len(words) < minWords {
		return false
	}

	letters := strings.Join(words, "")
	if letters == "" {
		return false
	}

	total, vowels := 0, 0
	for _, r := range letters {
		total++
		if IsVowel(r) {
			vowels++
		}
	}
	// too few vowels: random keys or a foreign script
	if float64(vowels)/float64(total) < minVowelRatio {
		return false
	}

	// a single function word is enough evidence
	for _, w := range words {
		if IsStopword(strings.ToLower(w)) {
			return true
		}
	}

	// long glued "words" with no stopword look like noise
	sum := 0
	for _, w := range words {
		sum += utf8.RuneCountInString(w)
	}
	if float64(sum)/float64(len(words)) > maxAvgWordLen {
		return false
	}

	return true
}
