package services

import (
	"context"

	"github.com/vietnet-search/app/models"
)

// NoopCacheService cache backend "none": mọi Get đều miss, Set bị bỏ qua.
// Dùng khi muốn tắt hẳn cache kết quả mà không phải check nil ở caller.
type NoopCacheService struct{}

// NewNoopCacheService tạo mới NoopCacheService
func NewNoopCacheService() *NoopCacheService {
	return &NoopCacheService{}
}

// Get luôn miss
func (ncs *NoopCacheService) Get(ctx context.Context, key string) (*models.SearchResult, bool, error) {
	return nil, false, nil
}

// Set không lưu gì
func (ncs *NoopCacheService) Set(ctx context.Context, key string, result *models.SearchResult) error {
	return nil
}

// Delete không có gì để xóa
func (ncs *NoopCacheService) Delete(ctx context.Context, key string) error { return nil }

// Clear không có gì để xóa
func (ncs *NoopCacheService) Clear(ctx context.Context) error { return nil }

// Exists luôn trả về false
func (ncs *NoopCacheService) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}

// GetStats thống kê rỗng
func (ncs *NoopCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	return &CacheStats{}, nil
}

// Close không có kết nối để đóng
func (ncs *NoopCacheService) Close() error { return nil }
