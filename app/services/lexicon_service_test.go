package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vietnet-search/app/models"
	"github.com/vietnet-search/internal/index"
	"github.com/vietnet-search/internal/search"
	"github.com/vietnet-search/internal/store"
)

func newTestLexiconService(t *testing.T, records []models.LexicalRecord) *LexiconService {
	t.Helper()

	ms := store.NewMemoryStore()
	builder := index.NewBuilder(ms, zap.NewNop())
	_, err := builder.Ingest(context.Background(), records)
	require.NoError(t, err)

	scorer, err := search.NewScorer(search.ScorerRatio)
	require.NoError(t, err)
	searcher := search.NewSearcher(ms, scorer, zap.NewNop())

	return NewLexiconService(ms, searcher, 80, 5, zap.NewNop())
}

func sampleLexicon() []models.LexicalRecord {
	return []models.LexicalRecord{
		{SynsetID: "oewn-1", Word: "đạo phật", Definition: "tôn giáo do Phật Thích Ca sáng lập", Example: "đạo phật du nhập vào Việt Nam từ sớm"},
		{SynsetID: "oewn-1", Word: "phật giáo", Definition: "tên gọi khác của đạo phật"},
		{SynsetID: "oewn-2", Word: "mèo", Definition: "động vật nuôi bắt chuột"},
	}
}

func TestLexiconService_ExactHit(t *testing.T) {
	ls := newTestLexiconService(t, sampleLexicon())

	result, err := ls.Search(context.Background(), "Đạo Phật", 0)
	require.NoError(t, err)

	assert.Equal(t, models.StrategyExact, result.Strategy)
	assert.Equal(t, []string{"oewn-1"}, result.SynsetIDs)
	require.Len(t, result.Synsets, 1)
	assert.Equal(t, "đạo phật, phật giáo", result.Synsets[0].Words)
	assert.Empty(t, result.Suggestions)
}

func TestLexiconService_SynsetIDQuery(t *testing.T) {
	ls := newTestLexiconService(t, sampleLexicon())

	result, err := ls.Search(context.Background(), "oewn-2", 0)
	require.NoError(t, err)
	assert.Equal(t, models.StrategySynsetID, result.Strategy)
	assert.Equal(t, []string{"oewn-2"}, result.SynsetIDs)
	require.Len(t, result.Synsets, 1)
	assert.Equal(t, "mèo", result.Synsets[0].Words)
}

func TestLexiconService_SynsetIDNotFound(t *testing.T) {
	ls := newTestLexiconService(t, sampleLexicon())

	result, err := ls.Search(context.Background(), "oewn-404", 0)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyNone, result.Strategy)
	assert.Empty(t, result.SynsetIDs)
	assert.Equal(t, "Synset_ID oewn-404 không tồn tại", result.Message)
}

// Sai chính tả: không có exact hit, fallback sang fuzzy gợi ý từ gần giống
func TestLexiconService_FuzzyFallback(t *testing.T) {
	ls := newTestLexiconService(t, sampleLexicon())

	result, err := ls.Search(context.Background(), "da phat", 0)
	require.NoError(t, err)

	assert.Equal(t, models.StrategyFuzzy, result.Strategy)
	assert.Empty(t, result.SynsetIDs)
	require.NotEmpty(t, result.Suggestions)
	assert.Equal(t, "đạo phật", result.Suggestions[0].Word)
	assert.Contains(t, result.Message, "Bạn hãy thử tìm các từ sau: ")
	assert.Contains(t, result.Message, "đạo phật")
}

// Một từ khớp nhiều cụm con chỉ được gợi ý một lần
func TestLexiconService_SuggestionsDeduped(t *testing.T) {
	ls := newTestLexiconService(t, sampleLexicon())

	result, err := ls.Search(context.Background(), "phật", 0)
	require.NoError(t, err)
	require.Equal(t, models.StrategyFuzzy, result.Strategy)

	seen := make(map[string]int)
	for _, s := range result.Suggestions {
		seen[s.Word]++
	}
	for word, n := range seen {
		assert.Equal(t, 1, n, "từ %q bị gợi ý %d lần", word, n)
	}
}

func TestLexiconService_NoResults(t *testing.T) {
	ls := newTestLexiconService(t, sampleLexicon())

	result, err := ls.Search(context.Background(), "zzzzzz", 0)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyNone, result.Strategy)
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, "Không tìm thấy kết quả nào", result.Message)
}

func TestLexiconService_EmptyQuery(t *testing.T) {
	ls := newTestLexiconService(t, sampleLexicon())

	result, err := ls.Search(context.Background(), "", 0)
	require.NoError(t, err, "query rỗng không phải là lỗi")
	assert.Equal(t, models.StrategyNone, result.Strategy)
	assert.Empty(t, result.SynsetIDs)
}

func TestLexiconService_SynsetDetailFormatting(t *testing.T) {
	ls := newTestLexiconService(t, sampleLexicon())

	detail, err := ls.SynsetDetail(context.Background(), "oewn-1")
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "đạo phật, phật giáo", detail.Words)
	assert.Equal(t, "1. tôn giáo do Phật Thích Ca sáng lập | 2. tên gọi khác của đạo phật | ", detail.Definitions)
	// ví dụ rỗng bị bỏ qua, đánh số liên tục
	assert.Equal(t, "1. đạo phật du nhập vào Việt Nam từ sớm | ", detail.Examples)

	detail, err = ls.SynsetDetail(context.Background(), "oewn-404")
	require.NoError(t, err)
	assert.Nil(t, detail)
}
