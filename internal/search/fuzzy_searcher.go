// Package search chứa fuzzy matcher quét bảng candidate và backend
// Meilisearch tùy chọn cho tra cứu exact/typo ở quy mô lớn.
package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/vietnet-search/app/models"
	"github.com/vietnet-search/internal/normalizer"
	"github.com/vietnet-search/internal/store"
)

// DefaultThreshold ngưỡng điểm mặc định khi caller không chỉ định
const DefaultThreshold = 80.0

// Searcher fuzzy matcher: full scan nguồn candidate, chấm điểm từng
// phrase, lọc theo ngưỡng và xếp hạng giảm dần theo điểm.
type Searcher struct {
	source store.CandidateSource
	scorer Scorer
	logger *zap.Logger
}

// NewSearcher tạo mới Searcher với nguồn candidate tường minh
func NewSearcher(source store.CandidateSource, scorer Scorer, logger *zap.Logger) *Searcher {
	return &Searcher{source: source, scorer: scorer, logger: logger}
}

// Search chấm điểm query với mọi candidate và trả về các match đạt ngưỡng,
// xếp giảm dần theo điểm; điểm bằng nhau giữ nguyên thứ tự trong nguồn
// (stable sort). Ngưỡng inclusive và không bị clamp: threshold <= 0 khớp
// mọi candidate, threshold > 100 không khớp gì. Query được lowercase + trim,
// không bỏ dấu; muốn tìm không phân biệt dấu thì caller tự strip query,
// bảng fuzzy đã chứa sẵn dạng bỏ dấu. Hủy được qua ctx giữa các candidate.
func (s *Searcher) Search(ctx context.Context, query string, threshold float64) ([]models.Match, error) {
	start := time.Now()
	q := normalizer.NormalizeQuery(query)

	candidates, err := s.source.FuzzyCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("lỗi đọc bảng fuzzy: %w", err)
	}

	matches := make([]models.Match, 0)
	for i, c := range candidates {
		if i&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		phrase := normalizer.NormalizeQuery(c.Phrase)
		// score <= Ceiling nên candidate dưới cận trên này không thể đạt ngưỡng
		if s.scorer.Ceiling(q, phrase) < threshold {
			continue
		}
		score := s.scorer.Score(q, phrase)
		if score >= threshold {
			matches = append(matches, models.Match{
				Phrase:   c.Phrase,
				Word:     c.Word,
				SynsetID: c.SynsetID,
				Score:    score,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if s.logger != nil {
		s.logger.Debug("Fuzzy search hoàn tất",
			zap.String("query", q),
			zap.String("scorer", s.scorer.Name()),
			zap.Float64("threshold", threshold),
			zap.Int("candidates", len(candidates)),
			zap.Int("matches", len(matches)),
			zap.Duration("duration", time.Since(start)))
	}
	return matches, nil
}
