package store

import (
	"context"
	"sync"

	"github.com/vietnet-search/app/models"
	"github.com/vietnet-search/internal/normalizer"
)

// MemoryStore store trong bộ nhớ, dùng cho test và chạy nhúng không cần file.
// Upsert theo khóa chính giống SQLite: ghi trùng khóa đè dòng cũ, giữ vị trí.
type MemoryStore struct {
	mu        sync.RWMutex
	canonical []models.LexicalRecord
	exact     []models.ExactEntry
	fuzzy     []models.FuzzyCandidate
}

// NewMemoryStore tạo mới MemoryStore rỗng
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ReplaceAll thay toàn bộ nội dung, dedup theo khóa chính (ghi sau thắng)
func (ms *MemoryStore) ReplaceAll(ctx context.Context, t Tables) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	canonical := make([]models.LexicalRecord, 0, len(t.Canonical))
	canonicalIdx := make(map[[3]string]int, len(t.Canonical))
	for _, r := range t.Canonical {
		key := [3]string{r.SynsetID, r.Word, r.Definition}
		if i, ok := canonicalIdx[key]; ok {
			canonical[i] = r
			continue
		}
		canonicalIdx[key] = len(canonical)
		canonical = append(canonical, r)
	}

	exact := make([]models.ExactEntry, 0, len(t.Exact))
	exactIdx := make(map[[2]string]int, len(t.Exact))
	for _, e := range t.Exact {
		key := [2]string{e.SurfaceForm, e.SynsetID}
		if i, ok := exactIdx[key]; ok {
			exact[i] = e
			continue
		}
		exactIdx[key] = len(exact)
		exact = append(exact, e)
	}

	fuzzy := make([]models.FuzzyCandidate, 0, len(t.Fuzzy))
	fuzzyIdx := make(map[[2]string]int, len(t.Fuzzy))
	for _, f := range t.Fuzzy {
		key := [2]string{f.Phrase, f.SynsetID}
		if i, ok := fuzzyIdx[key]; ok {
			fuzzy[i] = f
			continue
		}
		fuzzyIdx[key] = len(fuzzy)
		fuzzy = append(fuzzy, f)
	}

	ms.mu.Lock()
	ms.canonical = canonical
	ms.exact = exact
	ms.fuzzy = fuzzy
	ms.mu.Unlock()
	return nil
}

// ExactLookup so khớp surface form sau khi lowercase + trim cả hai phía
func (ms *MemoryStore) ExactLookup(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := normalizer.NormalizeQuery(query)

	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var ids []string
	for _, e := range ms.exact {
		if normalizer.NormalizeQuery(e.SurfaceForm) == q {
			ids = append(ids, e.SynsetID)
		}
	}
	return ids, nil
}

// ExactEntries trả về bản copy của bảng exact theo thứ tự ghi
func (ms *MemoryStore) ExactEntries(ctx context.Context) ([]models.ExactEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	out := make([]models.ExactEntry, len(ms.exact))
	copy(out, ms.exact)
	return out, nil
}

// FuzzyCandidates trả về bản copy của bảng fuzzy theo thứ tự ghi
func (ms *MemoryStore) FuzzyCandidates(ctx context.Context) ([]models.FuzzyCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	out := make([]models.FuzzyCandidate, len(ms.fuzzy))
	copy(out, ms.fuzzy)
	return out, nil
}

// SynsetInfo trả về mọi dòng canonical của một synset
func (ms *MemoryStore) SynsetInfo(ctx context.Context, synsetID string) ([]models.LexicalRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var out []models.LexicalRecord
	for _, r := range ms.canonical {
		if r.SynsetID == synsetID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Counts số dòng từng bảng
func (ms *MemoryStore) Counts(ctx context.Context) (Counts, error) {
	if err := ctx.Err(); err != nil {
		return Counts{}, err
	}
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return Counts{
		Canonical: len(ms.canonical),
		Exact:     len(ms.exact),
		Fuzzy:     len(ms.fuzzy),
	}, nil
}

// Close không có gì để đóng
func (ms *MemoryStore) Close() error { return nil }
