package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// residualLetters các chữ cái tiếng Việt không tách được dấu qua NFD
// (đ không có decomposition; các chữ còn lại giữ để StripTone ổn định
// kể cả khi input ở dạng precomposed lạ)
var residualLetters = map[rune]rune{
	'đ': 'd', 'Đ': 'D',
	'ă': 'a', 'Ă': 'A',
	'â': 'a', 'Â': 'A',
	'ê': 'e', 'Ê': 'E',
	'ô': 'o', 'Ô': 'O',
	'ơ': 'o', 'Ơ': 'O',
	'ư': 'u', 'Ư': 'U',
}

// StripTone loại bỏ dấu tiếng Việt một cách an toàn: tách ký tự theo NFD,
// bỏ toàn bộ combining mark (Mn), ghép lại NFC rồi thay các chữ cái còn sót.
// Giữ nguyên hoa/thường; là hàm thuần và idempotent; input ASCII giữ nguyên.
func StripTone(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Map(func(r rune) rune {
		if sub, ok := residualLetters[r]; ok {
			return sub
		}
		return r
	}, out)
}

// isMn kiểm tra xem rune có phải là diacritic mark không
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// NormalizeQuery chuẩn hóa query trước khi so khớp: lowercase + trim.
// Không bỏ dấu vì bảng fuzzy đã chứa sẵn dạng bỏ dấu làm candidate riêng.
func NormalizeQuery(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
