package responses

import (
	"github.com/vietnet-search/app/models"
	"github.com/vietnet-search/internal/store"
)

// SearchResponse response tra cứu
type SearchResponse struct {
	Result           models.SearchResult `json:"result"`             // Kết quả tra cứu
	ThresholdUsed    float64             `json:"threshold_used"`     // Ngưỡng đã áp dụng
	LexiconVersion   string              `json:"lexicon_version"`    // Phiên bản lexicon
	ProcessingTimeMs int64               `json:"processing_time_ms"` // Thời gian xử lý (ms)
	CacheHit         bool                `json:"cache_hit"`          // Có hit cache không
}

// IngestResponse response rebuild lexicon
type IngestResponse struct {
	RunID            string       `json:"run_id"`             // ID của lần ingest
	RecordsIn        int          `json:"records_in"`         // Số records nguồn
	Counts           store.Counts `json:"counts"`             // Số dòng từng bảng sau rebuild
	ProcessingTimeMs int64        `json:"processing_time_ms"` // Thời gian xử lý (ms)
	Message          string       `json:"message"`            // Thông báo
}

// SeedMeiliResponse response seed Meilisearch
type SeedMeiliResponse struct {
	DocumentsSeeded int    `json:"documents_seeded"` // Số document đã đẩy
	Message         string `json:"message"`          // Thông báo
}

// ErrorResponse response lỗi chung
type ErrorResponse struct {
	Error   string `json:"error"`   // Mã lỗi
	Message string `json:"message"` // Mô tả lỗi
}

// HealthResponse response health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
