package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietnet-search/app/models"
)

func TestCacheService_GetSet(t *testing.T) {
	ctx := context.Background()
	cs, err := NewCacheService(10, time.Hour)
	require.NoError(t, err)

	key := CacheFingerprint("đạo phật", "1.0.0")
	result := &models.SearchResult{Query: "đạo phật", SynsetIDs: []string{"oewn-1"}, Strategy: models.StrategyExact}

	_, found, err := cs.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cs.Set(ctx, key, result))

	got, found, err := cs.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, result, got)

	exists, err := cs.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCacheService_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	cs, err := NewCacheService(10, time.Nanosecond)
	require.NoError(t, err)

	key := CacheFingerprint("mèo", "1.0.0")
	require.NoError(t, cs.Set(ctx, key, &models.SearchResult{Query: "mèo"}))

	time.Sleep(time.Millisecond)

	_, found, err := cs.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found, "entry quá TTL phải bị coi là miss")
}

func TestCacheService_ClearAndStats(t *testing.T) {
	ctx := context.Background()
	cs, err := NewCacheService(10, time.Hour)
	require.NoError(t, err)

	key := CacheFingerprint("mèo", "1.0.0")
	require.NoError(t, cs.Set(ctx, key, &models.SearchResult{Query: "mèo"}))

	cs.Get(ctx, key)                                      // hit
	cs.Get(ctx, CacheFingerprint("không có", "1.0.0"))    // miss

	stats, err := cs.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalHits)
	assert.Equal(t, int64(1), stats.TotalMiss)
	assert.InDelta(t, 0.5, stats.HitRate, 1e-9)

	require.NoError(t, cs.Clear(ctx))
	_, found, err := cs.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}

// Backend "none" phải thỏa ICacheService: mọi Get đều miss, Set bị bỏ qua
func TestNoopCacheService(t *testing.T) {
	ctx := context.Background()
	var ncs ICacheService = NewNoopCacheService()

	key := CacheFingerprint("mèo", "1.0.0")
	require.NoError(t, ncs.Set(ctx, key, &models.SearchResult{Query: "mèo"}))

	_, found, err := ncs.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found, "noop cache không bao giờ hit")

	exists, err := ncs.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	stats, err := ncs.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &CacheStats{}, stats)

	require.NoError(t, ncs.Delete(ctx, key))
	require.NoError(t, ncs.Clear(ctx))
	require.NoError(t, ncs.Close())
}

func TestCacheFingerprint(t *testing.T) {
	// cùng query sau chuẩn hóa → cùng key
	assert.Equal(t,
		CacheFingerprint("  Đạo Phật ", "1.0.0"),
		CacheFingerprint("đạo phật", "1.0.0"))

	// đổi lexicon version → key khác, cache cũ tự miss
	assert.NotEqual(t,
		CacheFingerprint("đạo phật", "1.0.0"),
		CacheFingerprint("đạo phật", "1.0.1"))

	// có dấu và không dấu cho kết quả tra cứu khác nhau nên key phải khác
	assert.NotEqual(t,
		CacheFingerprint("đạo phật", "1.0.0"),
		CacheFingerprint("dao phat", "1.0.0"))

	// phần slug ASCII đứng trước để key đọc được trong Redis/Mongo
	assert.True(t, strings.HasPrefix(CacheFingerprint("đạo phật", "1.0.0"), "dao-phat:"))
}
