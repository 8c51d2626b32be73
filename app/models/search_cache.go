package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchCache cache kết quả tra cứu theo fingerprint của query
type SearchCache struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Fingerprint    string             `bson:"fingerprint" json:"fingerprint"`           // SHA256 của query đã chuẩn hóa + lexicon version
	RawQuery       string             `bson:"raw_query" json:"raw_query"`               // Query gốc
	Result         SearchResult       `bson:"result" json:"result"`                     // Kết quả tra cứu
	LexiconVersion string             `bson:"lexicon_version" json:"lexicon_version"`   // Phiên bản lexicon khi cache
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	LastAccessed   time.Time          `bson:"last_accessed" json:"last_accessed"`
	AccessCount    int                `bson:"access_count" json:"access_count"`
}

// UpdateAccess cập nhật thông tin truy cập
func (sc *SearchCache) UpdateAccess() {
	sc.LastAccessed = time.Now()
	sc.AccessCount++
}

// IsValidLexiconVersion kiểm tra phiên bản lexicon có khớp không
func (sc *SearchCache) IsValidLexiconVersion(currentVersion string) bool {
	return sc.LexiconVersion == currentVersion
}
