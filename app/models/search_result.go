package models

// Match một candidate vượt ngưỡng trong fuzzy search
type Match struct {
	Phrase   string  `json:"phrase"`    // Cụm từ khớp trong bảng fuzzy
	Word     string  `json:"word"`      // Từ gốc (lowercase, còn dấu)
	SynsetID string  `json:"synset_id"` // Synset chứa từ này
	Score    float64 `json:"score"`     // Điểm tương đồng [0, 100]
}

// Suggestion một từ gợi ý khi không tìm thấy kết quả chính xác
type Suggestion struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// SynsetDetail thông tin tiếng Việt của một synset, đã ghép từ các dòng
// vietnet_data (lemmas nối bằng ", ", định nghĩa và ví dụ đánh số)
type SynsetDetail struct {
	SynsetID    string `json:"synset_id" bson:"synset_id"`
	Words       string `json:"words" bson:"words"`
	Definitions string `json:"definitions" bson:"definitions"`
	Examples    string `json:"examples,omitempty" bson:"examples"`
}

// SearchResult kết quả tra cứu một query
type SearchResult struct {
	Query       string         `json:"query" bson:"query"`
	SynsetIDs   []string       `json:"synset_ids" bson:"synset_ids"`
	Synsets     []SynsetDetail `json:"synsets,omitempty" bson:"synsets"`
	Suggestions []Suggestion   `json:"suggestions,omitempty" bson:"suggestions"`
	Message     string         `json:"message,omitempty" bson:"message"`
	Strategy    string         `json:"strategy" bson:"strategy"` // synset_id | exact | fuzzy | none
}

// Strategy constants
const (
	StrategySynsetID = "synset_id"
	StrategyExact    = "exact"
	StrategyFuzzy    = "fuzzy"
	StrategyNone     = "none"
)
