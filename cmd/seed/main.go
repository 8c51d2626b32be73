package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vietnet-search/app/config"
	"github.com/vietnet-search/app/models"
	"github.com/vietnet-search/internal/index"
	"github.com/vietnet-search/internal/search"
	"github.com/vietnet-search/internal/store"
	"go.uber.org/zap"
)

// Seed tool: nạp lexicon từ file JSONL vào SQLite và (tùy chọn) seed
// Meilisearch index. Mỗi dòng của file là một bản ghi:
//   {"synset_id": "...", "word": "...", "definition": "...", "example": "..."}
func main() {
	var (
		inputPath  = flag.String("input", "data/lexicon.jsonl", "file JSONL chứa lexical records")
		configPath = flag.String("config", "config/engine.yaml", "file engine config")
		seedMeili  = flag.Bool("meili", false, "seed Meilisearch sau khi ingest")
	)
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Printf("Warning: không đọc được engine config, dùng defaults: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	defer logger.Sync()

	records, err := readRecords(*inputPath)
	if err != nil {
		log.Fatal("Lỗi đọc input:", err)
	}
	fmt.Printf("Đã đọc %d bản ghi từ %s\n", len(records), *inputPath)

	lexStore, err := store.NewSQLiteStore(config.C.Storage.SQLitePath, logger)
	if err != nil {
		log.Fatal("Không mở được SQLite store:", err)
	}
	defer lexStore.Close()

	builder := index.NewBuilder(lexStore, logger)
	counts, err := builder.Ingest(context.Background(), records)
	if err != nil {
		log.Fatal("Ingest thất bại:", err)
	}
	fmt.Printf("Ingest thành công: data=%d exact=%d fuzzy=%d\n",
		counts.Canonical, counts.Exact, counts.Fuzzy)

	if !*seedMeili {
		return
	}

	meiliClient, err := search.NewMeiliClient(search.MeiliConfig{
		Host:      config.C.Meili.Host,
		APIKey:    config.C.Meili.APIKey,
		IndexName: config.C.Meili.IndexName,
	}, logger)
	if err != nil {
		log.Fatal("Không thể kết nối Meilisearch:", err)
	}

	fmt.Println("Đang cấu hình Meilisearch index settings...")
	if err := meiliClient.ConfigureIndex(); err != nil {
		log.Fatal("Lỗi cập nhật settings:", err)
	}

	seeded, err := meiliClient.SeedFromStore(context.Background(), lexStore)
	if err != nil {
		log.Fatal("Lỗi seed Meilisearch:", err)
	}
	fmt.Printf("Đã seed %d documents vào Meilisearch\n", seeded)
}

func readRecords(path string) ([]models.LexicalRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []models.LexicalRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec models.LexicalRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("dòng %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
