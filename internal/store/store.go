// Package store cung cấp persistence cho ba bảng tra cứu của lexicon:
// vietnet_data (dữ liệu gốc), vietnet_exact_search (tra chính xác) và
// vietnet_fuzz_search (candidate cho fuzzy search).
package store

import (
	"context"

	"github.com/vietnet-search/app/models"
)

// Tables nội dung đầy đủ của ba bảng sau một lần expand dữ liệu nguồn
type Tables struct {
	Canonical []models.LexicalRecord
	Exact     []models.ExactEntry
	Fuzzy     []models.FuzzyCandidate
}

// Counts số dòng hiện có trong từng bảng
type Counts struct {
	Canonical int `json:"canonical"`
	Exact     int `json:"exact"`
	Fuzzy     int `json:"fuzzy"`
}

// CandidateSource nguồn candidate cho fuzzy search: hữu hạn, đọc lại được.
// Tách riêng để backend streaming hoặc có index thay được full scan
// mà không đổi contract của matcher.
type CandidateSource interface {
	FuzzyCandidates(ctx context.Context) ([]models.FuzzyCandidate, error)
}

// Store storage handle được truyền tường minh vào builder và service,
// không dùng connection toàn cục.
type Store interface {
	CandidateSource

	// ReplaceAll thay toàn bộ nội dung ba bảng trong một transaction:
	// truncate rồi ghi lại. Chạy lại trên cùng input cho kết quả y hệt;
	// dòng của lần ingest trước không còn trong nguồn sẽ biến mất;
	// lỗi giữa chừng giữ nguyên dữ liệu cũ.
	ReplaceAll(ctx context.Context, t Tables) error

	// ExactLookup trả về synset_id của mọi dòng exact có surface form
	// khớp query sau khi cả hai được lowercase + trim.
	ExactLookup(ctx context.Context, query string) ([]string, error)

	// ExactEntries full scan bảng exact (dùng cho seeder của backend ngoài)
	ExactEntries(ctx context.Context) ([]models.ExactEntry, error)

	// SynsetInfo trả về mọi dòng vietnet_data của một synset
	SynsetInfo(ctx context.Context, synsetID string) ([]models.LexicalRecord, error)

	Counts(ctx context.Context) (Counts, error)
	Close() error
}
