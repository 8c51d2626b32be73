package services

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/vietnet-search/app/models"
	"github.com/vietnet-search/internal/index"
	"github.com/vietnet-search/internal/search"
	"github.com/vietnet-search/internal/store"
)

// AdminService service quản lý ingest, seed backend ngoài và thống kê
type AdminService struct {
	store     store.Store
	builder   *index.Builder
	meili     *search.MeiliClient // nil khi không bật Meilisearch
	cache     ICacheService
	logger    *zap.Logger
	startTime time.Time
}

// IngestResult kết quả một lần ingest
type IngestResult struct {
	RecordsIn        int          `json:"records_in"`
	Counts           store.Counts `json:"counts"`
	ProcessingTimeMs int64        `json:"processing_time_ms"`
}

// SystemStats thống kê hệ thống
type SystemStats struct {
	TableCounts store.Counts           `json:"table_counts"`
	CacheStats  *CacheStats            `json:"cache_stats,omitempty"`
	Uptime      string                 `json:"uptime"`
	MemoryUsage map[string]interface{} `json:"memory_usage"`
}

// NewAdminService tạo mới AdminService; meili có thể nil
func NewAdminService(s store.Store, builder *index.Builder, meili *search.MeiliClient, cache ICacheService, logger *zap.Logger) *AdminService {
	return &AdminService{
		store:     s,
		builder:   builder,
		meili:     meili,
		cache:     cache,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Ingest rebuild toàn bộ lexicon từ records nguồn rồi vô hiệu cache
// (bảng đã thay nên mọi kết quả cache cũ không còn đúng)
func (as *AdminService) Ingest(ctx context.Context, records []models.LexicalRecord) (*IngestResult, error) {
	start := time.Now()

	counts, err := as.builder.Ingest(ctx, records)
	if err != nil {
		return nil, err
	}

	if as.cache != nil {
		if err := as.cache.Clear(ctx); err != nil {
			as.logger.Warn("Không thể clear cache sau ingest", zap.Error(err))
		}
	}

	return &IngestResult{
		RecordsIn:        len(records),
		Counts:           counts,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// SeedMeilisearch cấu hình index và đẩy bảng exact vào Meilisearch
func (as *AdminService) SeedMeilisearch(ctx context.Context) (int, error) {
	if as.meili == nil {
		return 0, fmt.Errorf("Meilisearch chưa được cấu hình")
	}

	if err := as.meili.ConfigureIndex(); err != nil {
		return 0, err
	}
	return as.meili.SeedFromStore(ctx, as.store)
}

// MeiliSearchWord tra từ qua Meilisearch (endpoint thử nghiệm, typo
// tolerance do engine xử lý; fuzzy matcher vẫn là nguồn kết quả chuẩn)
func (as *AdminService) MeiliSearchWord(query string, limit int64) ([]search.WordHit, error) {
	if as.meili == nil {
		return nil, fmt.Errorf("Meilisearch chưa được cấu hình")
	}
	return as.meili.SearchWord(query, limit)
}

// InvalidateCache xóa toàn bộ cache kết quả
func (as *AdminService) InvalidateCache(ctx context.Context) error {
	if as.cache == nil {
		return nil
	}
	return as.cache.Clear(ctx)
}

// Stats thống kê bảng, cache và tài nguyên
func (as *AdminService) Stats(ctx context.Context) (*SystemStats, error) {
	counts, err := as.store.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("lỗi đếm bảng: %w", err)
	}

	stats := &SystemStats{
		TableCounts: counts,
		Uptime:      time.Since(as.startTime).Round(time.Second).String(),
	}

	if as.cache != nil {
		if cacheStats, err := as.cache.GetStats(ctx); err == nil {
			stats.CacheStats = cacheStats
		} else {
			as.logger.Warn("Không thể lấy cache stats", zap.Error(err))
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats.MemoryUsage = map[string]interface{}{
		"alloc_mb":       m.Alloc / 1024 / 1024,
		"total_alloc_mb": m.TotalAlloc / 1024 / 1024,
		"sys_mb":         m.Sys / 1024 / 1024,
		"num_gc":         m.NumGC,
	}

	return stats, nil
}
