package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type abbrev struct {
	from, to string
}

// displayTable restores diacritics for common unaccented or chat-style
// tokens. Order matters: duplicated keys resolve to the last entry.
// Multi-word keys never match a single token.
var displayTable = []abbrev{
	// pronouns
	{"toi", "tôi"},
	{"ban", "bạn"},
	{"minh", "mình"},
	{"anh", "anh"},
	{"chi", "chị"},
	{"em", "em"},
	{"co", "cô"},
	{"chu", "chú"},
	{"ba", "bà"},
	{"ong", "ông"},
	{"nguoi", "người"},
	{"ho", "họ"},

	// verbs, adjectives
	{"yeu", "yêu"},
	{"thuong", "thương"},
	{"ghet", "ghét"},
	{"thich", "thích"},
	{"biet", "biết"},
	{"hieu", "hiểu"},
	{"thay", "thấy"},
	{"khoe", "khỏe"},
	{"om", "ốm"},
	{"dau", "đau"},
	{"met", "mệt"},
	{"vui", "vui"},
	{"buon", "buồn"},
	{"gian", "giận"},
	{"nong", "nóng"},
	{"lanh", "lạnh"},
	{"dep", "đẹp"},
	{"xau", "xấu"},

	// negation
	{"khong", "không"},
	{"k", "không"},
	{"ko", "không"},
	{"k0", "không"},
	{"hok", "không"},
	{"khg", "không"},
	{"hk", "không"},
	{"kh", "không"},

	// questions
	{"gi", "gì"},
	{"j", "gì"},
	{"sao", "sao"},
	{"tai", "tại"},
	{"vi", "vì"},
	{"tai sao", "tại sao"},

	// adverbs
	{"rat", "rất"},
	{"hon", "hơn"},
	{"lam", "lắm"},
	{"qua", "quá"},
	{"nhieu", "nhiều"},
	{"it", "ít"},
	{"noi", "nói"},
	{"noi chuyen", "nói chuyện"},

	// place, time
	{"nay", "nay"},
	{"mai", "mai"},
	{"hom", "hôm"},
	{"truoc", "trước"},
	{"sau", "sau"},
	{"o", "ở"},

	// conjunctions
	{"va", "và"},
	{"voi", "với"},
	{"vi", "vì"},
	{"nen", "nên"},
	{"nhung", "nhưng"},

	// common words
	{"duoc", "được"},
	{"dc", "được"},
	{"du", "đủ"},
	{"thoi", "thôi"},
	{"roi", "rồi"},
	{"cung", "cũng"},
	{"luon", "luôn"},
	{"neu", "nếu"},
	{"dang", "đang"},
	{"se", "sẽ"},
	{"da", "đã"},

	// nouns
	{"con", "con"},
	{"nguoi", "người"},
	{"ban be", "bạn bè"},
	{"gia dinh", "gia đình"},
	{"cong viec", "công việc"},
	{"truong", "trường"},
	{"lop", "lớp"},
	{"mon", "món"},
	{"an", "ăn"},
	{"quan", "quán"},
	{"nha", "nhà"},
	{"cua", "của"},

	// judgement
	{"te", "tệ"},
	{"tot", "tốt"},
	{"hay", "hay"},
	{"do", "dở"},
	{"chap nhan", "chấp nhận"},
	{"tuyet", "tuyệt"},

	// chat slang
	{"ad", "admin"},
	{"ib", "nhắn"},
	{"rep", "trả lời"},
	{"like", "thích"},
	{"sub", "đăng ký"},
	{"vid", "video"},

	// telex typos
	{"thuc", "thực"},
	{"phai", "phải"},
	{"thuan", "thuận"},
	{"mien", "miền"},
	{"quoc", "quốc"},
	{"dong", "đông"},
	{"tay", "tây"},
	{"nam", "năm"},
	{"troi", "trời"},
	{"muon", "muốn"},

	// phrases
	{"cam on", "cảm ơn"},
	{"xin loi", "xin lỗi"},
	{"tam biet", "tạm biệt"},
	{"chao", "chào"},

	// unaccented
	{"kha", "khá"},
	{"de", "dễ"},
	{"kho", "khó"},
	{"to", "to"},
	{"nho", "nhỏ"},
	{"lon", "lớn"},
	{"nhe", "nhẹ"},
	{"man", "mặn"},
	{"ngot", "ngọt"},
}

// last definition wins
var displayMap = func() map[string]string {
	m := make(map[string]string, len(displayTable))
	for _, e := range displayTable {
		m[e.from] = e.to
	}
	return m
}()

var sentencePunct = map[string]bool{
	".": true, ",": true, ":": true, ";": true, "?": true, "!": true, "…": true,
}

// NormalizeDisplay rewrites a sentence for human display: lowercase,
// restore diacritics for a fixed vocabulary, attach punctuation to the
// preceding word and capitalize the first letter.
// Example: "Ban khoe ko?" -> "Bạn khỏe không?".
func NormalizeDisplay(text string) string {
	text = strings.ToLower(strings.TrimSpace(ComposeNFC(text)))

	var b strings.Builder
	b.Grow(len(text) + len(text)/2)

	for _, tok := range displayTokens(text) {
		if isAlpha(tok) {
			if mapped, ok := displayMap[tok]; ok {
				tok = mapped
			}
		}
		if sentencePunct[tok] {
			trimmed := strings.TrimRight(b.String(), " ")
			b.Reset()
			b.WriteString(trimmed)
		}
		b.WriteString(tok)
		b.WriteByte(' ')
	}

	return upperFirst(strings.TrimSpace(b.String()))
}

// displayTokens splits s into maximal runs of word runes (letters, digits,
// underscore) and single non-space symbols.
func displayTokens(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, s[start:i])
			start = -1
		}
		if !unicode.IsSpace(r) {
			out = append(out, string(r))
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
