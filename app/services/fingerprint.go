package services

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/mozillazg/go-unidecode"

	"github.com/vietnet-search/internal/normalizer"
)

// CacheFingerprint sinh key cache cho một query: slug ASCII đọc được
// (để soi key trực tiếp trong Redis/Mongo) + SHA256 của query đã chuẩn
// hóa cùng lexicon version. Hash tính trên dạng còn nguyên dấu vì
// "đạo phật" và "dao phat" cho kết quả tra cứu khác nhau, không được
// chung key. Đổi lexicon version là cache cũ tự miss.
func CacheFingerprint(query, lexiconVersion string) string {
	normalized := normalizer.NormalizeQuery(query)
	sum := sha256.Sum256([]byte(normalized + "\x1F" + lexiconVersion))
	return fmt.Sprintf("%s:%x", querySlug(normalized), sum)
}

// querySlug transliterate query về ASCII và thay khoảng trắng bằng "-",
// cắt ở 24 ký tự. Chỉ để key dễ đọc, phần định danh là hash phía sau.
func querySlug(normalized string) string {
	ascii := unidecode.Unidecode(normalized)
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, ascii)
	if len(slug) > 24 {
		slug = slug[:24]
	}
	if slug == "" {
		slug = "q"
	}
	return slug
}
