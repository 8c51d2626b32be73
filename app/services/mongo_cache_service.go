package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/vietnet-search/app/models"
)

// MongoCacheService cache bền sử dụng MongoDB + LRU in-memory làm L1
type MongoCacheService struct {
	db         *mongo.Database
	collection *mongo.Collection
	l1Cache    *lru.Cache[string, *models.SearchResult]
	logger     *zap.Logger

	totalHits int64
	totalMiss int64
}

// NewMongoCacheService tạo mới MongoCacheService
func NewMongoCacheService(db *mongo.Database, l1Size int, logger *zap.Logger) (*MongoCacheService, error) {
	l1Cache, err := lru.New[string, *models.SearchResult](l1Size)
	if err != nil {
		return nil, fmt.Errorf("không thể tạo LRU cache: %w", err)
	}

	collection := db.Collection("search_cache")

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "fingerprint", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{bson.E{Key: "lexicon_version", Value: 1}},
		},
		{
			Keys: bson.D{bson.E{Key: "last_accessed", Value: 1}},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		logger.Warn("Không thể tạo indexes cho search_cache", zap.Error(err))
	}

	return &MongoCacheService{
		db:         db,
		collection: collection,
		l1Cache:    l1Cache,
		logger:     logger,
	}, nil
}

// Get lấy kết quả từ cache (L1 → MongoDB)
func (mcs *MongoCacheService) Get(ctx context.Context, key string) (*models.SearchResult, bool, error) {
	if result, found := mcs.l1Cache.Get(key); found {
		atomic.AddInt64(&mcs.totalHits, 1)
		mcs.logger.Debug("L1 cache hit", zap.String("key", key))
		return result, true, nil
	}

	var cacheEntry models.SearchCache
	err := mcs.collection.FindOne(ctx, bson.M{"fingerprint": key}).Decode(&cacheEntry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			atomic.AddInt64(&mcs.totalMiss, 1)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("lỗi query MongoDB cache: %w", err)
	}

	atomic.AddInt64(&mcs.totalHits, 1)

	go mcs.updateAccessStats(cacheEntry.ID)
	mcs.l1Cache.Add(key, &cacheEntry.Result)

	mcs.logger.Debug("MongoDB cache hit", zap.String("key", key))
	return &cacheEntry.Result, true, nil
}

// Set lưu kết quả vào cache (L1 + MongoDB)
func (mcs *MongoCacheService) Set(ctx context.Context, key string, result *models.SearchResult) error {
	mcs.l1Cache.Add(key, result)

	cacheEntry := models.SearchCache{
		Fingerprint:  key,
		RawQuery:     result.Query,
		Result:       *result,
		CreatedAt:    time.Now(),
		LastAccessed: time.Now(),
		AccessCount:  1,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := mcs.collection.ReplaceOne(ctx, bson.M{"fingerprint": key}, cacheEntry, opts); err != nil {
		mcs.logger.Error("Lỗi lưu vào MongoDB cache", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("lỗi lưu vào MongoDB cache: %w", err)
	}
	return nil
}

// Delete xóa một key khỏi cache
func (mcs *MongoCacheService) Delete(ctx context.Context, key string) error {
	mcs.l1Cache.Remove(key)

	if _, err := mcs.collection.DeleteOne(ctx, bson.M{"fingerprint": key}); err != nil {
		return fmt.Errorf("lỗi xóa khỏi MongoDB cache: %w", err)
	}
	return nil
}

// Clear xóa tất cả cache
func (mcs *MongoCacheService) Clear(ctx context.Context) error {
	mcs.l1Cache.Purge()

	if _, err := mcs.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("lỗi clear MongoDB cache: %w", err)
	}

	atomic.StoreInt64(&mcs.totalHits, 0)
	atomic.StoreInt64(&mcs.totalMiss, 0)
	return nil
}

// Exists kiểm tra key có tồn tại không
func (mcs *MongoCacheService) Exists(ctx context.Context, key string) (bool, error) {
	if _, found := mcs.l1Cache.Get(key); found {
		return true, nil
	}
	n, err := mcs.collection.CountDocuments(ctx, bson.M{"fingerprint": key})
	if err != nil {
		return false, fmt.Errorf("lỗi kiểm tra key: %w", err)
	}
	return n > 0, nil
}

// GetStats thống kê cache
func (mcs *MongoCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&mcs.totalHits)
	misses := atomic.LoadInt64(&mcs.totalMiss)
	total := hits + misses

	items, err := mcs.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("lỗi đếm documents: %w", err)
	}

	stats := &CacheStats{
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: items,
	}
	if total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

// Close không đóng mongo client ở đây, client do caller quản lý
func (mcs *MongoCacheService) Close() error { return nil }

// updateAccessStats cập nhật last_accessed và access_count trong nền
func (mcs *MongoCacheService) updateAccessStats(id primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := mcs.collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"last_accessed": time.Now()},
		"$inc": bson.M{"access_count": 1},
	})
	if err != nil {
		mcs.logger.Warn("Không thể cập nhật access stats", zap.Error(err))
	}
}
