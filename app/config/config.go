package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type SearchCfg struct {
	Scorer         string  `yaml:"scorer" json:"scorer"`                   // ratio | jaro_winkler | levenshtein
	Threshold      float64 `yaml:"threshold" json:"threshold"`             // ngưỡng điểm fuzzy mặc định
	MaxSuggestions int     `yaml:"max_suggestions" json:"max_suggestions"` // số từ gợi ý tối đa
}

type StorageCfg struct {
	SQLitePath string `yaml:"sqlite_path" json:"sqlite_path"`
}

type CacheCfg struct {
	Backend  string `yaml:"backend" json:"backend"` // memory | redis | mongo | none
	Size     int    `yaml:"size" json:"size"`       // kích thước LRU (memory / L1 của mongo)
	TTLHours int    `yaml:"ttl_hours" json:"ttl_hours"`
	RedisURL string `yaml:"redis_url" json:"redis_url"`
	MongoURI string `yaml:"mongo_uri" json:"mongo_uri"`
	MongoDB  string `yaml:"mongo_db" json:"mongo_db"`
}

type MeiliCfg struct {
	Enabled   bool   `yaml:"enabled" json:"enabled"`
	Host      string `yaml:"host" json:"host"`
	APIKey    string `yaml:"api_key" json:"api_key"`
	IndexName string `yaml:"index_name" json:"index_name"`
}

type EngineCfg struct {
	LexiconVersion string     `yaml:"lexicon_version" json:"lexicon_version"`
	Search         SearchCfg  `yaml:"search" json:"search"`
	Storage        StorageCfg `yaml:"storage" json:"storage"`
	Cache          CacheCfg   `yaml:"cache" json:"cache"`
	Meili          MeiliCfg   `yaml:"meili" json:"meili"`
}

var C EngineCfg

func Load(path string) error {
	C = defaults()

	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, &C); err != nil {
		return err
	}

	// ENV overrides
	if scorer := os.Getenv("VIETNET_SCORER"); scorer != "" {
		C.Search.Scorer = scorer
	}
	if dbPath := os.Getenv("VIETNET_SQLITE_PATH"); dbPath != "" {
		C.Storage.SQLitePath = dbPath
	}
	if threshold := os.Getenv("VIETNET_THRESHOLD"); threshold != "" {
		if v, err := strconv.ParseFloat(threshold, 64); err == nil {
			C.Search.Threshold = v
		}
	}
	switch os.Getenv("VIETNET_USE_MEILI") {
	case "0":
		C.Meili.Enabled = false
	case "1":
		C.Meili.Enabled = true
	}
	return nil
}

func defaults() EngineCfg {
	return EngineCfg{
		LexiconVersion: "1.0.0",
		Search: SearchCfg{
			Scorer:         "ratio",
			Threshold:      80,
			MaxSuggestions: 5,
		},
		Storage: StorageCfg{SQLitePath: "data/vietnet.db"},
		Cache: CacheCfg{
			Backend:  "memory",
			Size:     1000,
			TTLHours: 24,
			MongoDB:  "vietnet_search",
		},
		Meili: MeiliCfg{IndexName: "vietnet_words"},
	}
}

// TTL trả về thời gian sống của cache entry.
func (c CacheCfg) TTL() time.Duration {
	if c.TTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.TTLHours) * time.Hour
}
