package normalizer

import "testing"

func TestStripTone(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Single_Word", input: "đà", expected: "da"},
		{name: "Place_Name", input: "Đà Nẵng", expected: "Da Nang"},
		{name: "Full_Tone_Set", input: "ạ ả ã á à ặ ẳ ẵ ắ ằ ậ ẩ ẫ ấ ầ", expected: "a a a a a a a a a a a a a a a"},
		{name: "Buddhist_Phrase", input: "đạo phật", expected: "dao phat"},
		{name: "Mixed_Case", input: "Hồ Chí Minh", expected: "Ho Chi Minh"},
		{name: "ASCII_Unchanged", input: "already plain text 123", expected: "already plain text 123"},
		{name: "Empty", input: "", expected: ""},
		{name: "U_Horn", input: "ngựa", expected: "ngua"},
		{name: "O_Circumflex", input: "đồng hồ", expected: "dong ho"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := StripTone(tc.input)
			if got != tc.expected {
				t.Errorf("StripTone(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

// StripTone phải là idempotent: áp dụng hai lần cho cùng kết quả
func TestStripTone_Idempotent(t *testing.T) {
	inputs := []string{"đạo phật", "Đà Nẵng", "con mèo", "ASCII only", "Trường Đại học Bách Khoa"}
	for _, in := range inputs {
		once := StripTone(in)
		twice := StripTone(once)
		if once != twice {
			t.Errorf("StripTone không idempotent với %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeQuery(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  Đạo Phật  ", "đạo phật"},
		{"MÈO", "mèo"},
		{"", ""},
		{"   ", ""},
		{"da phat", "da phat"},
	}
	for _, tc := range testCases {
		if got := NormalizeQuery(tc.input); got != tc.expected {
			t.Errorf("NormalizeQuery(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}
