package store

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/vietnet-search/app/models"
	"github.com/vietnet-search/internal/normalizer"
)

// Giữ nguyên layout bảng của file VIETNET.db: cột "tieng" là surface
// form / cụm từ tra cứu, "word" là từ gốc, "synset_id" là khái niệm.
const schema = `
CREATE TABLE IF NOT EXISTS vietnet_data (
	synset_id  TEXT NOT NULL,
	word       TEXT NOT NULL,
	definition TEXT NOT NULL DEFAULT '',
	example    TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (synset_id, word, definition)
);
CREATE TABLE IF NOT EXISTS vietnet_exact_search (
	tieng     TEXT NOT NULL,
	synset_id TEXT NOT NULL,
	PRIMARY KEY (tieng, synset_id)
);
CREATE TABLE IF NOT EXISTS vietnet_fuzz_search (
	tieng     TEXT NOT NULL,
	word      TEXT NOT NULL,
	synset_id TEXT NOT NULL,
	PRIMARY KEY (tieng, synset_id)
);
CREATE INDEX IF NOT EXISTS idx_vietnet_data_synset ON vietnet_data(synset_id);
`

// SQLiteStore store trên file SQLite (driver modernc, không cần CGo)
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore mở (hoặc tạo) file database và đảm bảo schema
func NewSQLiteStore(path string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("không thể mở SQLite %q: %w", path, err)
	}
	// driver modernc chỉ cho một writer tại một thời điểm
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("không thể tạo schema: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// ReplaceAll truncate rồi ghi lại ba bảng trong một transaction
func (ss *SQLiteStore) ReplaceAll(ctx context.Context, t Tables) error {
	tx, err := ss.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("không thể mở transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"vietnet_data", "vietnet_exact_search", "vietnet_fuzz_search"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("không thể truncate %s: %w", table, err)
		}
	}

	canonStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO vietnet_data (synset_id, word, definition, example) VALUES (?, ?, ?, ?)
		ON CONFLICT(synset_id, word, definition) DO UPDATE SET example = excluded.example`)
	if err != nil {
		return fmt.Errorf("không thể prepare insert vietnet_data: %w", err)
	}
	defer canonStmt.Close()
	for _, r := range t.Canonical {
		if _, err := canonStmt.ExecContext(ctx, r.SynsetID, r.Word, r.Definition, r.Example); err != nil {
			return fmt.Errorf("không thể ghi vietnet_data (%s, %s): %w", r.SynsetID, r.Word, err)
		}
	}

	exactStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO vietnet_exact_search (tieng, synset_id) VALUES (?, ?)
		ON CONFLICT(tieng, synset_id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("không thể prepare insert vietnet_exact_search: %w", err)
	}
	defer exactStmt.Close()
	for _, e := range t.Exact {
		if _, err := exactStmt.ExecContext(ctx, e.SurfaceForm, e.SynsetID); err != nil {
			return fmt.Errorf("không thể ghi vietnet_exact_search (%s, %s): %w", e.SurfaceForm, e.SynsetID, err)
		}
	}

	fuzzStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO vietnet_fuzz_search (tieng, word, synset_id) VALUES (?, ?, ?)
		ON CONFLICT(tieng, synset_id) DO UPDATE SET word = excluded.word`)
	if err != nil {
		return fmt.Errorf("không thể prepare insert vietnet_fuzz_search: %w", err)
	}
	defer fuzzStmt.Close()
	for _, f := range t.Fuzzy {
		if _, err := fuzzStmt.ExecContext(ctx, f.Phrase, f.Word, f.SynsetID); err != nil {
			return fmt.Errorf("không thể ghi vietnet_fuzz_search (%s, %s): %w", f.Phrase, f.SynsetID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("không thể commit ingest: %w", err)
	}

	if ss.logger != nil {
		ss.logger.Info("Đã rebuild ba bảng lexicon",
			zap.Int("canonical", len(t.Canonical)),
			zap.Int("exact", len(t.Exact)),
			zap.Int("fuzzy", len(t.Fuzzy)))
	}
	return nil
}

// ExactLookup quét bảng exact và so khớp sau khi lowercase + trim trong Go
// (lower() của SQLite chỉ xử lý ASCII nên không dùng được cho tiếng Việt)
func (ss *SQLiteStore) ExactLookup(ctx context.Context, query string) ([]string, error) {
	q := normalizer.NormalizeQuery(query)

	rows, err := ss.db.QueryContext(ctx, `SELECT tieng, synset_id FROM vietnet_exact_search ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("không thể đọc vietnet_exact_search: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var surface, synsetID string
		if err := rows.Scan(&surface, &synsetID); err != nil {
			return nil, fmt.Errorf("không thể scan dòng exact: %w", err)
		}
		if normalizer.NormalizeQuery(surface) == q {
			ids = append(ids, synsetID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lỗi đọc vietnet_exact_search: %w", err)
	}
	return ids, nil
}

// ExactEntries full scan bảng exact theo thứ tự ghi (rowid)
func (ss *SQLiteStore) ExactEntries(ctx context.Context) ([]models.ExactEntry, error) {
	rows, err := ss.db.QueryContext(ctx, `SELECT tieng, synset_id FROM vietnet_exact_search ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("không thể đọc vietnet_exact_search: %w", err)
	}
	defer rows.Close()

	var out []models.ExactEntry
	for rows.Next() {
		var e models.ExactEntry
		if err := rows.Scan(&e.SurfaceForm, &e.SynsetID); err != nil {
			return nil, fmt.Errorf("không thể scan dòng exact: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lỗi đọc vietnet_exact_search: %w", err)
	}
	return out, nil
}

// FuzzyCandidates full scan bảng fuzzy theo thứ tự ghi (rowid)
func (ss *SQLiteStore) FuzzyCandidates(ctx context.Context) ([]models.FuzzyCandidate, error) {
	rows, err := ss.db.QueryContext(ctx, `SELECT tieng, word, synset_id FROM vietnet_fuzz_search ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("không thể đọc vietnet_fuzz_search: %w", err)
	}
	defer rows.Close()

	var out []models.FuzzyCandidate
	for rows.Next() {
		var c models.FuzzyCandidate
		if err := rows.Scan(&c.Phrase, &c.Word, &c.SynsetID); err != nil {
			return nil, fmt.Errorf("không thể scan dòng fuzzy: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lỗi đọc vietnet_fuzz_search: %w", err)
	}
	return out, nil
}

// SynsetInfo đọc mọi dòng vietnet_data của một synset
func (ss *SQLiteStore) SynsetInfo(ctx context.Context, synsetID string) ([]models.LexicalRecord, error) {
	rows, err := ss.db.QueryContext(ctx,
		`SELECT synset_id, word, definition, example FROM vietnet_data WHERE synset_id = ? ORDER BY rowid`, synsetID)
	if err != nil {
		return nil, fmt.Errorf("không thể đọc vietnet_data: %w", err)
	}
	defer rows.Close()

	var out []models.LexicalRecord
	for rows.Next() {
		var r models.LexicalRecord
		if err := rows.Scan(&r.SynsetID, &r.Word, &r.Definition, &r.Example); err != nil {
			return nil, fmt.Errorf("không thể scan dòng vietnet_data: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lỗi đọc vietnet_data: %w", err)
	}
	return out, nil
}

// Counts đếm số dòng từng bảng
func (ss *SQLiteStore) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	for _, q := range []struct {
		table string
		dst   *int
	}{
		{"vietnet_data", &c.Canonical},
		{"vietnet_exact_search", &c.Exact},
		{"vietnet_fuzz_search", &c.Fuzzy},
	} {
		if err := ss.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+q.table).Scan(q.dst); err != nil {
			return Counts{}, fmt.Errorf("không thể đếm %s: %w", q.table, err)
		}
	}
	return c, nil
}

// Close đóng database
func (ss *SQLiteStore) Close() error {
	return ss.db.Close()
}
