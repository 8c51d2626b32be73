package search

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	ms "github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"

	"github.com/vietnet-search/internal/normalizer"
	"github.com/vietnet-search/internal/store"
)

// MeiliClient backend Meilisearch tùy chọn: seed bảng exact của lexicon
// thành document và tra cứu từ với typo tolerance của Meili.
// Đây là accelerator cho tra cứu exact ở quy mô lớn; fuzzy matcher quét
// bảng candidate vẫn là nguồn kết quả chuẩn.
type MeiliClient struct {
	cli       ms.ServiceManager
	indexName string
	logger    *zap.Logger
}

// MeiliConfig cấu hình kết nối Meilisearch
type MeiliConfig struct {
	Host      string
	APIKey    string
	IndexName string
}

// WordHit một từ tìm được trong index Meilisearch
type WordHit struct {
	Word      string   `json:"word"`
	SynsetIDs []string `json:"synset_ids"`
}

// NewMeiliClient tạo client và kiểm tra kết nối
func NewMeiliClient(cfg MeiliConfig, logger *zap.Logger) (*MeiliClient, error) {
	client := ms.New(cfg.Host, ms.WithAPIKey(cfg.APIKey))

	if _, err := client.Health(); err != nil {
		return nil, fmt.Errorf("không thể kết nối Meilisearch: %w", err)
	}

	return &MeiliClient{
		cli:       client,
		indexName: cfg.IndexName,
		logger:    logger,
	}, nil
}

// ConfigureIndex cấu hình searchable/filterable attributes và typo tolerance
func (mc *MeiliClient) ConfigureIndex() error {
	index := mc.cli.Index(mc.indexName)

	enabled := true
	task, err := index.UpdateSettings(&ms.Settings{
		SearchableAttributes: []string{"word", "normalized_word"},
		FilterableAttributes: []string{"synset_ids"},
		SortableAttributes:   []string{"word"},
		RankingRules:         []string{"words", "typo", "proximity", "attribute", "sort", "exactness"},
		TypoTolerance: &ms.TypoTolerance{
			Enabled: enabled,
			MinWordSizeForTypos: ms.MinWordSizeForTypos{
				OneTypo:  3,
				TwoTypos: 7,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("lỗi cấu hình index: %w", err)
	}

	mc.logger.Info("Đã cấu hình index Meilisearch", zap.Int64("task_uid", task.TaskUID))
	return nil
}

// SeedFromStore gom bảng exact theo từ và đẩy vào Meilisearch theo batch
func (mc *MeiliClient) SeedFromStore(ctx context.Context, s store.Store) (int, error) {
	entries, err := s.ExactEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("lỗi đọc bảng exact: %w", err)
	}

	// Gom synset_id theo từ, giữ thứ tự xuất hiện
	var words []string
	synsetsByWord := make(map[string][]string)
	for _, e := range entries {
		if _, seen := synsetsByWord[e.SurfaceForm]; !seen {
			words = append(words, e.SurfaceForm)
		}
		synsetsByWord[e.SurfaceForm] = append(synsetsByWord[e.SurfaceForm], e.SynsetID)
	}

	documents := make([]map[string]interface{}, 0, len(words))
	for _, word := range words {
		documents = append(documents, map[string]interface{}{
			"id":              docID(word),
			"word":            word,
			"normalized_word": normalizer.StripTone(strings.ToLower(word)),
			"synset_ids":      synsetsByWord[word],
		})
	}

	index := mc.cli.Index(mc.indexName)
	batchSize := 1000
	for i := 0; i < len(documents); i += batchSize {
		end := i + batchSize
		if end > len(documents) {
			end = len(documents)
		}

		task, err := index.AddDocuments(documents[i:end], "id")
		if err != nil {
			return 0, fmt.Errorf("lỗi thêm documents batch %d-%d: %w", i, end, err)
		}
		mc.logger.Info("Đã thêm batch documents",
			zap.Int("from", i),
			zap.Int("to", end),
			zap.Int64("task_uid", task.TaskUID))
	}

	mc.logger.Info("Đã seed lexicon vào Meilisearch", zap.Int("total_documents", len(documents)))
	return len(documents), nil
}

// SearchWord tra từ qua Meilisearch (typo tolerance của engine xử lý lỗi gõ)
func (mc *MeiliClient) SearchWord(query string, limit int64) ([]WordHit, error) {
	index := mc.cli.Index(mc.indexName)

	result, err := index.Search(query, &ms.SearchRequest{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("lỗi tìm kiếm Meilisearch: %w", err)
	}

	var hits []WordHit
	for _, hit := range result.Hits {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}

		var wh WordHit
		if word, ok := hitMap["word"].(string); ok {
			wh.Word = word
		}
		if idsRaw, ok := hitMap["synset_ids"].([]interface{}); ok {
			for _, id := range idsRaw {
				if idStr, ok := id.(string); ok {
					wh.SynsetIDs = append(wh.SynsetIDs, idStr)
				}
			}
		}
		hits = append(hits, wh)
	}
	return hits, nil
}

// docID id document hợp lệ cho Meili từ một từ bất kỳ (có dấu, có space)
func docID(word string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(word)))
}
