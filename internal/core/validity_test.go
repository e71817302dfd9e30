package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidVietnamese(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"two runes", "ab", false},
		{"two runes padded", "   ab  ", false},
		{"two accented runes", "ồi", false},
		{"single word", "xinchao", false},
		{"letters glued to digits", "hello123", false},
		{"digits and symbols only", "123 456 !!!", false},
		{"low vowel ratio", "sdkfj qwrtz", false},
		{"keyboard mash above vowel threshold", "asdkfj qwoeiru", true},
		{"stopword does not rescue low ratio", "tôi xkcd zzzz qrst", false},
		{"long glued words", "aaaaaaaaaaaa bbbbbbbbbbbb", false},
		{"stopword overrides long words", "aaaaaaaaaaaa bbbbbbbbbbbb và", true},
		{"vowel ratio exactly at threshold", "ab cd", true},
		{"sentence with stopwords", "Tôi rất vui vì hôm nay được điểm cao", true},
		{"uppercase stopword", "TÔI thấy ổn", true},
		{"unaccented ban is a stopword", "ban khoe ko", true},
		{"no stopword short words", "hôm nay đẹp trời", true},
		{"digits as separators", "vui1vẻ2quá", true},
		{"decomposed stopword", "To\u0302i " + strings.Repeat("ab", 9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidVietnamese(tt.in))
		})
	}
}

func TestIsValidVietnamese_ShortInputAlwaysRejected(t *testing.T) {
	for _, s := range []string{"a", "ab", "vì", "  đi  ", "\t\nkô\n", "12"} {
		assert.Falsef(t, IsValidVietnamese(s), "expected %q to be rejected", s)
	}
}

func TestIsValidVietnamese_FewerThanTwoWordsRejected(t *testing.T) {
	for _, s := range []string{"không", "!!! tôi !!!", "12345 rất", "....", "không1234"} {
		assert.Falsef(t, IsValidVietnamese(s), "expected %q to be rejected", s)
	}
}

func TestIsValidVietnamese_AnyStopwordAccepts(t *testing.T) {
	filler := "qua mau"
	for w := range stopwords {
		s := strings.ToUpper(w) + " " + filler
		assert.Truef(t, IsValidVietnamese(s), "expected %q to be accepted", s)
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"Tôi", "rất", "vui"}, Words("Tôi, rất... vui!"))
	assert.Equal(t, []string{"abc", "đẹp"}, Words("abc123đẹp"))
	assert.Empty(t, Words("123 !!"))
}
