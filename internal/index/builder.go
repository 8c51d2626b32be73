// Package index expand dữ liệu nguồn VietNet thành ba bảng tra cứu:
// mỗi từ sinh một dòng exact, một dòng canonical và các dòng fuzzy gồm
// mọi cụm con liên tiếp của từ (lowercase) cộng dạng bỏ dấu của cả từ.
package index

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vietnet-search/app/models"
	"github.com/vietnet-search/internal/normalizer"
	"github.com/vietnet-search/internal/store"
)

// Lỗi validation của một record nguồn
var (
	ErrMissingWord     = errors.New("record thiếu trường word")
	ErrMissingSynsetID = errors.New("record thiếu trường synset_id")
)

// IngestionError một record nguồn không hợp lệ; cả lần ingest bị từ chối
// trước khi ghi bất cứ dòng nào
type IngestionError struct {
	Index int // vị trí record trong input
	Err   error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingest bị từ chối tại record %d: %v", e.Index, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// BuildTables expand toàn bộ records thành nội dung ba bảng, thuần trong
// bộ nhớ, không chạm storage, để test được expansion độc lập với backend.
// Trả về IngestionError ở record không hợp lệ đầu tiên.
//
// Với từ n token, mỗi cặp (word, synset) sinh n·(n+1)/2 cụm con cộng
// một dòng bỏ dấu của cả từ; trùng khóa chính sẽ bị dedup khi ghi.
func BuildTables(records []models.LexicalRecord) (store.Tables, error) {
	var t store.Tables

	for i, r := range records {
		if strings.TrimSpace(r.Word) == "" {
			return store.Tables{}, &IngestionError{Index: i, Err: ErrMissingWord}
		}
		if strings.TrimSpace(r.SynsetID) == "" {
			return store.Tables{}, &IngestionError{Index: i, Err: ErrMissingSynsetID}
		}
	}

	for _, r := range records {
		t.Exact = append(t.Exact, models.ExactEntry{
			SurfaceForm: r.Word,
			SynsetID:    r.SynsetID,
		})
		t.Canonical = append(t.Canonical, r)

		word := strings.ToLower(r.Word)
		for _, phrase := range normalizer.AllSubphrases(word) {
			t.Fuzzy = append(t.Fuzzy, models.FuzzyCandidate{
				Phrase:   phrase,
				Word:     word,
				SynsetID: r.SynsetID,
			})
		}
		t.Fuzzy = append(t.Fuzzy, models.FuzzyCandidate{
			Phrase:   normalizer.StripTone(word),
			Word:     word,
			SynsetID: r.SynsetID,
		})
	}

	return t, nil
}

// Builder chạy một lần ingest: expand rồi ghi vào store
type Builder struct {
	store  store.Store
	logger *zap.Logger
}

// NewBuilder tạo mới Builder với storage handle tường minh
func NewBuilder(s store.Store, logger *zap.Logger) *Builder {
	return &Builder{store: s, logger: logger}
}

// Ingest expand records và thay toàn bộ nội dung ba bảng trong một
// transaction. All-or-nothing: record không hợp lệ hoặc lỗi storage
// giữ nguyên dữ liệu của lần ingest trước.
func (b *Builder) Ingest(ctx context.Context, records []models.LexicalRecord) (store.Counts, error) {
	tables, err := BuildTables(records)
	if err != nil {
		b.logger.Warn("Ingest bị từ chối", zap.Error(err))
		return store.Counts{}, err
	}

	if err := b.store.ReplaceAll(ctx, tables); err != nil {
		return store.Counts{}, fmt.Errorf("lỗi ghi lexicon: %w", err)
	}

	counts, err := b.store.Counts(ctx)
	if err != nil {
		return store.Counts{}, fmt.Errorf("lỗi đếm bảng sau ingest: %w", err)
	}

	b.logger.Info("Ingest hoàn tất",
		zap.Int("records", len(records)),
		zap.Int("canonical", counts.Canonical),
		zap.Int("exact", counts.Exact),
		zap.Int("fuzzy", counts.Fuzzy))
	return counts, nil
}
