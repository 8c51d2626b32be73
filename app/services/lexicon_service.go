package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vietnet-search/app/models"
	"github.com/vietnet-search/internal/search"
	"github.com/vietnet-search/internal/store"
)

// SynsetIDPrefix query chứa chuỗi này được coi là tra cứu trực tiếp theo synset_id
const SynsetIDPrefix = "oewn-"

// DefaultMaxSuggestions số từ gợi ý tối đa khi fallback sang fuzzy search
const DefaultMaxSuggestions = 5

// LexiconService service tra cứu chính: synset_id trực tiếp → exact →
// fallback fuzzy gợi ý từ gần giống
type LexiconService struct {
	store          store.Store
	searcher       *search.Searcher
	logger         *zap.Logger
	threshold      float64
	maxSuggestions int
}

// NewLexiconService tạo mới LexiconService với storage handle tường minh
func NewLexiconService(s store.Store, searcher *search.Searcher, threshold float64, maxSuggestions int, logger *zap.Logger) *LexiconService {
	if threshold == 0 {
		threshold = search.DefaultThreshold
	}
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	return &LexiconService{
		store:          s,
		searcher:       searcher,
		logger:         logger,
		threshold:      threshold,
		maxSuggestions: maxSuggestions,
	}
}

// Search tra cứu một query người dùng. Query rỗng hoặc sai chính tả không
// bao giờ là lỗi, chỉ dẫn đến ít hoặc không có kết quả.
func (ls *LexiconService) Search(ctx context.Context, query string, threshold float64) (*models.SearchResult, error) {
	start := time.Now()
	if threshold == 0 {
		threshold = ls.threshold
	}

	result := &models.SearchResult{
		Query:     query,
		SynsetIDs: []string{},
		Strategy:  models.StrategyNone,
	}

	// 1. Người dùng nhập thẳng synset_id
	if strings.Contains(query, SynsetIDPrefix) {
		ssid := strings.TrimSpace(query)
		detail, err := ls.SynsetDetail(ctx, ssid)
		if err != nil {
			return nil, err
		}
		if detail == nil {
			result.Message = fmt.Sprintf("Synset_ID %s không tồn tại", ssid)
			return result, nil
		}
		result.SynsetIDs = []string{ssid}
		result.Synsets = []models.SynsetDetail{*detail}
		result.Strategy = models.StrategySynsetID
		return result, nil
	}

	// 2. Tra chính xác
	ids, err := ls.store.ExactLookup(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("lỗi tra cứu exact: %w", err)
	}
	if len(ids) > 0 {
		result.SynsetIDs = dedupe(ids)
		result.Strategy = models.StrategyExact
		for _, id := range result.SynsetIDs {
			detail, err := ls.SynsetDetail(ctx, id)
			if err != nil {
				return nil, err
			}
			if detail != nil {
				result.Synsets = append(result.Synsets, *detail)
			}
		}
		ls.logger.Debug("Exact hit",
			zap.String("query", query),
			zap.Int("synsets", len(result.SynsetIDs)),
			zap.Duration("duration", time.Since(start)))
		return result, nil
	}

	// 3. Không có kết quả chính xác: gợi ý từ gần giống qua fuzzy search
	matches, err := ls.searcher.Search(ctx, query, threshold)
	if err != nil {
		return nil, err
	}

	// Mỗi từ gốc chỉ gợi ý một lần; matches đã xếp giảm dần theo điểm
	// nên lần gặp đầu tiên là điểm tốt nhất của từ đó
	seen := make(map[string]bool)
	for _, m := range matches {
		if seen[m.Word] {
			continue
		}
		seen[m.Word] = true
		result.Suggestions = append(result.Suggestions, models.Suggestion{Word: m.Word, Score: m.Score})
		if len(result.Suggestions) >= ls.maxSuggestions {
			break
		}
	}

	if len(result.Suggestions) > 0 {
		result.Strategy = models.StrategyFuzzy
		words := make([]string, len(result.Suggestions))
		for i, s := range result.Suggestions {
			words[i] = s.Word
		}
		result.Message = "Bạn hãy thử tìm các từ sau: " + strings.Join(words, " | ")
	} else {
		result.Message = "Không tìm thấy kết quả nào"
	}

	ls.logger.Debug("Fuzzy fallback",
		zap.String("query", query),
		zap.Int("suggestions", len(result.Suggestions)),
		zap.Duration("duration", time.Since(start)))
	return result, nil
}

// SynsetDetail ghép mọi dòng vietnet_data của một synset thành thông tin
// hiển thị: lemmas nối ", ", định nghĩa và ví dụ đánh số cách nhau " | ".
// Trả về nil (không lỗi) khi synset không có trong lexicon.
func (ls *LexiconService) SynsetDetail(ctx context.Context, synsetID string) (*models.SynsetDetail, error) {
	records, err := ls.store.SynsetInfo(ctx, synsetID)
	if err != nil {
		return nil, fmt.Errorf("lỗi đọc vietnet_data: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	words := make([]string, 0, len(records))
	var definitions strings.Builder
	var examples strings.Builder
	exCount := 0
	for i, r := range records {
		words = append(words, r.Word)
		definitions.WriteString(fmt.Sprintf("%d. %s | ", i+1, r.Definition))
		if r.Example != "" {
			exCount++
			examples.WriteString(fmt.Sprintf("%d. %s | ", exCount, r.Example))
		}
	}

	return &models.SynsetDetail{
		SynsetID:    synsetID,
		Words:       strings.Join(words, ", "),
		Definitions: definitions.String(),
		Examples:    examples.String(),
	}, nil
}

// Threshold ngưỡng mặc định của service
func (ls *LexiconService) Threshold() float64 { return ls.threshold }

// dedupe loại phần tử trùng, giữ thứ tự xuất hiện đầu tiên
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
