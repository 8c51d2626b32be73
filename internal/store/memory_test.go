package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietnet-search/app/models"
)

func sampleTables() Tables {
	return Tables{
		Canonical: []models.LexicalRecord{
			{SynsetID: "oewn-1", Word: "đạo phật", Definition: "tôn giáo do Phật Thích Ca sáng lập"},
			{SynsetID: "oewn-2", Word: "mèo", Definition: "động vật nuôi bắt chuột"},
		},
		Exact: []models.ExactEntry{
			{SurfaceForm: "đạo phật", SynsetID: "oewn-1"},
			{SurfaceForm: "mèo", SynsetID: "oewn-2"},
		},
		Fuzzy: []models.FuzzyCandidate{
			{Phrase: "đạo phật", Word: "đạo phật", SynsetID: "oewn-1"},
			{Phrase: "dao phat", Word: "đạo phật", SynsetID: "oewn-1"},
			{Phrase: "mèo", Word: "mèo", SynsetID: "oewn-2"},
		},
	}
}

func TestMemoryStore_ReplaceAllAndCounts(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	require.NoError(t, ms.ReplaceAll(ctx, sampleTables()))

	counts, err := ms.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Counts{Canonical: 2, Exact: 2, Fuzzy: 3}, counts)

	// Ingest lại tập nhỏ hơn phải xóa sạch dữ liệu cũ
	require.NoError(t, ms.ReplaceAll(ctx, Tables{
		Canonical: []models.LexicalRecord{{SynsetID: "oewn-2", Word: "mèo"}},
		Exact:     []models.ExactEntry{{SurfaceForm: "mèo", SynsetID: "oewn-2"}},
		Fuzzy:     []models.FuzzyCandidate{{Phrase: "mèo", Word: "mèo", SynsetID: "oewn-2"}},
	}))

	counts, err = ms.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Counts{Canonical: 1, Exact: 1, Fuzzy: 1}, counts)

	ids, err := ms.ExactLookup(ctx, "đạo phật")
	require.NoError(t, err)
	assert.Empty(t, ids, "dòng cũ không còn trong nguồn phải biến mất")
}

// Dòng trùng khóa chính trong cùng một lần ghi: dòng sau thắng, giữ vị trí
func TestMemoryStore_DuplicateKeyUpsert(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	require.NoError(t, ms.ReplaceAll(ctx, Tables{
		Fuzzy: []models.FuzzyCandidate{
			{Phrase: "mèo", Word: "mèo", SynsetID: "oewn-2"},
			{Phrase: "dao phat", Word: "đạo phật", SynsetID: "oewn-1"},
			{Phrase: "mèo", Word: "mèo nhà", SynsetID: "oewn-2"},
		},
	}))

	candidates, err := ms.FuzzyCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "mèo nhà", candidates[0].Word)
	assert.Equal(t, "dao phat", candidates[1].Phrase)
}

func TestMemoryStore_ExactLookup(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	require.NoError(t, ms.ReplaceAll(ctx, sampleTables()))

	// so khớp không phân biệt hoa/thường và khoảng trắng thừa
	ids, err := ms.ExactLookup(ctx, "  Đạo Phật ")
	require.NoError(t, err)
	assert.Equal(t, []string{"oewn-1"}, ids)

	ids, err = ms.ExactLookup(ctx, "dao phat")
	require.NoError(t, err)
	assert.Empty(t, ids, "dạng bỏ dấu không nằm trong bảng exact")
}

func TestMemoryStore_SynsetInfo(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	require.NoError(t, ms.ReplaceAll(ctx, sampleTables()))

	records, err := ms.SynsetInfo(ctx, "oewn-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "đạo phật", records[0].Word)

	records, err = ms.SynsetInfo(ctx, "oewn-999")
	require.NoError(t, err)
	assert.Empty(t, records)
}

// FuzzyCandidates phải đọc lại được nhiều lần và trả về copy độc lập
func TestMemoryStore_CandidatesRestartable(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	require.NoError(t, ms.ReplaceAll(ctx, sampleTables()))

	first, err := ms.FuzzyCandidates(ctx)
	require.NoError(t, err)
	first[0].Phrase = "đã sửa"

	second, err := ms.FuzzyCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, "đạo phật", second[0].Phrase)
}
