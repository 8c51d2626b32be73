package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vietnet-search/app/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "vietnet_test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	require.NoError(t, s.ReplaceAll(ctx, sampleTables()))

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Counts{Canonical: 2, Exact: 2, Fuzzy: 3}, counts)

	ids, err := s.ExactLookup(ctx, "Đạo Phật")
	require.NoError(t, err)
	assert.Equal(t, []string{"oewn-1"}, ids)

	candidates, err := s.FuzzyCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	// thứ tự ghi được giữ qua rowid
	assert.Equal(t, "đạo phật", candidates[0].Phrase)
	assert.Equal(t, "dao phat", candidates[1].Phrase)

	records, err := s.SynsetInfo(ctx, "oewn-2")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "mèo", records[0].Word)
}

// Ingest lần hai thay sạch dữ liệu lần một, không để sót dòng cũ
func TestSQLiteStore_ReplaceAllTruncates(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	require.NoError(t, s.ReplaceAll(ctx, sampleTables()))
	require.NoError(t, s.ReplaceAll(ctx, Tables{
		Canonical: []models.LexicalRecord{{SynsetID: "oewn-3", Word: "chó"}},
		Exact:     []models.ExactEntry{{SurfaceForm: "chó", SynsetID: "oewn-3"}},
		Fuzzy:     []models.FuzzyCandidate{{Phrase: "cho", Word: "chó", SynsetID: "oewn-3"}},
	}))

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Counts{Canonical: 1, Exact: 1, Fuzzy: 1}, counts)

	ids, err := s.ExactLookup(ctx, "mèo")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// Ingest lại cùng input phải cho kết quả y hệt
func TestSQLiteStore_ReplaceAllIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	require.NoError(t, s.ReplaceAll(ctx, sampleTables()))
	first, err := s.FuzzyCandidates(ctx)
	require.NoError(t, err)

	require.NoError(t, s.ReplaceAll(ctx, sampleTables()))
	second, err := s.FuzzyCandidates(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSQLiteStore_EmptyDatabase(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Counts{}, counts)

	ids, err := s.ExactLookup(ctx, "mèo")
	require.NoError(t, err)
	assert.Empty(t, ids)

	candidates, err := s.FuzzyCandidates(ctx)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
