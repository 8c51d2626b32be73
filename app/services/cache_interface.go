package services

import (
	"context"

	"github.com/vietnet-search/app/models"
)

// CacheStats thống kê cache
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService interface định nghĩa các method cần thiết cho cache kết quả tra cứu
type ICacheService interface {
	// Get lấy kết quả tra cứu từ cache
	Get(ctx context.Context, key string) (*models.SearchResult, bool, error)

	// Set lưu kết quả tra cứu vào cache
	Set(ctx context.Context, key string, result *models.SearchResult) error

	// Delete xóa một key khỏi cache
	Delete(ctx context.Context, key string) error

	// Clear xóa tất cả cache (gọi sau mỗi lần ingest vì bảng đã rebuild,
	// mọi kết quả cũ đều vô hiệu)
	Clear(ctx context.Context) error

	// Exists kiểm tra key có tồn tại không
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats lấy thống kê cache
	GetStats(ctx context.Context) (*CacheStats, error)

	// Close đóng kết nối (nếu cần)
	Close() error
}
