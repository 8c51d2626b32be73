package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vietnet-search/app/models"
)

// lruEntry giá trị lưu trong LRU kèm timestamp để kiểm tra TTL
type lruEntry struct {
	result   *models.SearchResult
	storedAt time.Time
}

// CacheService cache in-memory dùng LRU có TTL, không cần backend ngoài
type CacheService struct {
	cache *lru.Cache[string, lruEntry]
	ttl   time.Duration

	hits   int64
	misses int64
}

// NewCacheService tạo mới CacheService với kích thước và TTL cho trước
func NewCacheService(size int, ttl time.Duration) (*CacheService, error) {
	cache, err := lru.New[string, lruEntry](size)
	if err != nil {
		return nil, fmt.Errorf("không thể tạo LRU cache: %w", err)
	}
	return &CacheService{cache: cache, ttl: ttl}, nil
}

// Get lấy kết quả từ cache
func (cs *CacheService) Get(ctx context.Context, key string) (*models.SearchResult, bool, error) {
	entry, found := cs.cache.Get(key)
	if !found {
		atomic.AddInt64(&cs.misses, 1)
		return nil, false, nil
	}
	if cs.ttl > 0 && time.Since(entry.storedAt) > cs.ttl {
		cs.cache.Remove(key)
		atomic.AddInt64(&cs.misses, 1)
		return nil, false, nil
	}
	atomic.AddInt64(&cs.hits, 1)
	return entry.result, true, nil
}

// Set lưu kết quả vào cache
func (cs *CacheService) Set(ctx context.Context, key string, result *models.SearchResult) error {
	cs.cache.Add(key, lruEntry{result: result, storedAt: time.Now()})
	return nil
}

// Delete xóa một key
func (cs *CacheService) Delete(ctx context.Context, key string) error {
	cs.cache.Remove(key)
	return nil
}

// Clear xóa toàn bộ cache
func (cs *CacheService) Clear(ctx context.Context) error {
	cs.cache.Purge()
	atomic.StoreInt64(&cs.hits, 0)
	atomic.StoreInt64(&cs.misses, 0)
	return nil
}

// Exists kiểm tra key có tồn tại không
func (cs *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	_, found := cs.cache.Get(key)
	return found, nil
}

// GetStats thống kê cache
func (cs *CacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&cs.hits)
	misses := atomic.LoadInt64(&cs.misses)
	total := hits + misses

	stats := &CacheStats{
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(cs.cache.Len()),
	}
	if total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

// Close không có kết nối để đóng
func (cs *CacheService) Close() error { return nil }
