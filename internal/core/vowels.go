package core

// vowelRunes covers plain Latin vowels, the modified letters ă â ê ô ơ ư,
// all six tones of every vowel letter, and đ/Đ, which the validity
// heuristic counts on the vowel side.
const vowelRunes = "aeiouyAEIOUY" +
	"ăâêôơưĂÂÊÔƠƯ" +
	"áàảãạÁÀẢÃẠ" +
	"ắằẳẵặẮẰẲẴẶ" +
	"ấầẩẫậẤẦẨẪẬ" +
	"éèẻẽẹÉÈẺẼẸ" +
	"ếềểễệẾỀỂỄỆ" +
	"íìỉĩịÍÌỈĨỊ" +
	"óòỏõọÓÒỎÕỌ" +
	"ốồổỗộỐỒỔỖỘ" +
	"ớờởỡợỚỜỞỠỢ" +
	"úùủũụÚÙỦŨỤ" +
	"ứừửữựỨỪỬỮỰ" +
	"ýỳỷỹỵÝỲỶỸỴ" +
	"đĐ"

var vowelSet = func() map[rune]struct{} {
	m := make(map[rune]struct{}, len(vowelRunes))
	for _, r := range vowelRunes {
		m[r] = struct{}{}
	}
	return m
}()

// IsVowel reports whether r is a Vietnamese vowel glyph.
func IsVowel(r rune) bool {
	_, ok := vowelSet[r]
	return ok
}
