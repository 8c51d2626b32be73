package models

import "strings"

// LexicalRecord một dòng dữ liệu từ nguồn VietNet: một từ tiếng Việt
// gắn với một synset (khái niệm) của WordNet mở rộng.
// (synset_id, word, definition) là khóa duy nhất: một từ có thể thuộc
// nhiều synset (đa nghĩa) và một synset có thể có nhiều từ (đồng nghĩa).
type LexicalRecord struct {
	SynsetID   string `json:"synset_id" bson:"synset_id"`             // ID khái niệm, vd "oewn-08115674-n"
	Word       string `json:"word" bson:"word"`                       // Từ tiếng Việt (giữ nguyên dấu)
	Definition string `json:"definition,omitempty" bson:"definition"` // Định nghĩa tiếng Việt
	Example    string `json:"example,omitempty" bson:"example"`       // Ví dụ sử dụng
}

// HasRequiredFields kiểm tra các trường bắt buộc (word, synset_id)
func (r LexicalRecord) HasRequiredFields() bool {
	return strings.TrimSpace(r.Word) != "" && strings.TrimSpace(r.SynsetID) != ""
}

// ExactEntry một dòng trong bảng tra cứu chính xác (vietnet_exact_search).
// Khóa chính (surface_form, synset_id).
type ExactEntry struct {
	SurfaceForm string `json:"surface_form"` // Từ nguyên bản (giữ nguyên hoa/thường)
	SynsetID    string `json:"synset_id"`
}

// FuzzyCandidate một dòng trong bảng tra cứu mờ (vietnet_fuzz_search).
// Khóa chính (phrase, synset_id). Phrase là một cụm con liên tiếp của từ
// (đã lowercase) hoặc dạng bỏ dấu của cả từ; Word luôn là từ gốc lowercase.
type FuzzyCandidate struct {
	Phrase   string `json:"phrase"`
	Word     string `json:"word"`
	SynsetID string `json:"synset_id"`
}
