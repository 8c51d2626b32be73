package requests

import "github.com/vietnet-search/app/models"

// SearchRequest request tra cứu một query
type SearchRequest struct {
	Query   string        `json:"query" binding:"required"` // Từ hoặc synset_id cần tra
	Options SearchOptions `json:"options,omitempty"`        // Tùy chọn tra cứu
}

// SearchOptions tùy chọn tra cứu
type SearchOptions struct {
	Threshold float64 `json:"threshold,omitempty"` // Ngưỡng điểm fuzzy [0,100], 0 = dùng mặc định
	UseCache  bool    `json:"use_cache,omitempty"` // Có sử dụng cache không
}

// IngestRequest request rebuild lexicon từ records nguồn
type IngestRequest struct {
	Records []models.LexicalRecord `json:"records" binding:"required,min=1"` // Dữ liệu nguồn
}
