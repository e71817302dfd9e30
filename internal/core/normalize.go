package core

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// ComposeNFC folds combining tone marks into precomposed code points so
// decomposed input matches the tables.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// Fold returns an accent-free, lowercase form of s with whitespace
// collapsed to single spaces. Used for accent-insensitive matching.
func Fold(s string) string {
	s = strings.TrimSpace(ComposeNFC(s))
	if s == "" {
		return ""
	}
	s = strings.ToLower(unidecode.Unidecode(s))

	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
