package normalizer

import "strings"

// AllSubphrases liệt kê mọi cụm con liên tiếp của một chuỗi sau khi tách
// theo whitespace. Với n token trả về đúng n·(n+1)/2 cụm, theo thứ tự:
// mọi cụm bắt đầu từ token 0 trước, rồi đến token 1, v.v.
// Chuỗi rỗng trả về slice rỗng.
func AllSubphrases(s string) []string {
	tokens := strings.Fields(s)
	n := len(tokens)
	phrases := make([]string, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			phrases = append(phrases, strings.Join(tokens[i:j], " "))
		}
	}
	return phrases
}
