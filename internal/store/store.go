// Package store persists review history, a translation memory, and the
// terminology glossary in a local sqlite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"

	"github.com/valpere/sareview/internal"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reviews (
		id TEXT PRIMARY KEY,
		student_name TEXT NOT NULL,
		client_name TEXT,
		dog_name TEXT,
		review_date TEXT,
		reviewer_name TEXT,
		status TEXT NOT NULL,
		raw_notes TEXT NOT NULL,
		draft_text TEXT NOT NULL,
		language TEXT DEFAULT 'English',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- translation_memory caches finished translations so re-translating an
	-- unedited draft costs nothing
	CREATE TABLE IF NOT EXISTS translation_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		final_text TEXT NOT NULL,
		service_used TEXT,
		usage_count INTEGER DEFAULT 1,
		invalidated BOOLEAN DEFAULT FALSE,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text, target_lang)
	);

	-- glossary stores per-language terminology merged into translation prompts
	CREATE TABLE IF NOT EXISTS glossary (
		id TEXT PRIMARY KEY,
		target_lang TEXT NOT NULL,
		source_term TEXT NOT NULL,
		target_term TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(target_lang, source_term)
	);

	CREATE INDEX IF NOT EXISTS idx_reviews_student ON reviews(student_name);
	CREATE INDEX IF NOT EXISTS idx_memory_lookup ON translation_memory(source_text, target_lang);
	CREATE INDEX IF NOT EXISTS idx_glossary_lookup ON glossary(target_lang);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveReview persists one generation cycle and returns the record ID.
func (s *Store) SaveReview(ctx context.Context, rec internal.ReviewRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reviews (id, student_name, client_name, dog_name, review_date, reviewer_name, status, raw_notes, draft_text, language, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.StudentName, rec.ClientName, rec.DogName, rec.ReviewDate, rec.ReviewerName,
		string(rec.Status), rec.RawNotes, rec.DraftText, rec.Language, rec.CreatedAt)
	return rec.ID, err
}

// UpdateReviewDraft replaces the stored draft (reviewer edits, translation)
// for an existing record.
func (s *Store) UpdateReviewDraft(ctx context.Context, id, draftText, language string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE reviews SET draft_text = ?, language = ? WHERE id = ?`,
		draftText, language, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("review not found: %s", id)
	}
	return nil
}

// GetReview returns one review record by ID.
func (s *Store) GetReview(ctx context.Context, id string) (*internal.ReviewRecord, error) {
	var rec internal.ReviewRecord
	var status string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, student_name, client_name, dog_name, review_date, reviewer_name, status, raw_notes, draft_text, language, created_at
		 FROM reviews WHERE id = ?`, id).
		Scan(&rec.ID, &rec.StudentName, &rec.ClientName, &rec.DogName, &rec.ReviewDate,
			&rec.ReviewerName, &status, &rec.RawNotes, &rec.DraftText, &rec.Language, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("review not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	rec.Status = internal.Status(status)
	return &rec, nil
}

// ListReviews returns review records newest first, up to limit (0 = all).
func (s *Store) ListReviews(ctx context.Context, limit int) ([]internal.ReviewRecord, error) {
	query := `SELECT id, student_name, client_name, dog_name, review_date, reviewer_name, status, raw_notes, draft_text, language, created_at
	          FROM reviews ORDER BY created_at DESC`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []internal.ReviewRecord
	for rows.Next() {
		var rec internal.ReviewRecord
		var status string
		if err := rows.Scan(&rec.ID, &rec.StudentName, &rec.ClientName, &rec.DogName, &rec.ReviewDate,
			&rec.ReviewerName, &status, &rec.RawNotes, &rec.DraftText, &rec.Language, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Status = internal.Status(status)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ClearReviews removes all review history.
func (s *Store) ClearReviews(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reviews`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// HistoryStats summarises the stored review history.
type HistoryStats struct {
	TotalReviews int
	ByStatus     map[string]int
	Translations int
}

// Stats returns summary statistics for the history and translation memory.
func (s *Store) Stats(ctx context.Context) (*HistoryStats, error) {
	stats := &HistoryStats{ByStatus: make(map[string]int)}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&stats.TotalReviews); err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM translation_memory WHERE NOT invalidated`).Scan(&stats.Translations); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM reviews GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = n
	}
	return stats, rows.Err()
}

// GetCachedTranslation returns a previously stored translation of
// sourceText, if the exact (normalized) text was translated to targetLang
// before and was not invalidated.
func (s *Store) GetCachedTranslation(ctx context.Context, sourceText, targetLang string) (string, bool, error) {
	var finalText string
	var invalidated bool

	err := s.db.QueryRowContext(ctx,
		`SELECT final_text, invalidated FROM translation_memory WHERE source_text = ? AND target_lang = ?`,
		normalizeText(sourceText), targetLang).Scan(&finalText, &invalidated)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if invalidated {
		return "", false, nil
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE translation_memory SET usage_count = usage_count + 1, last_used = ? WHERE source_text = ? AND target_lang = ?`,
		time.Now(), normalizeText(sourceText), targetLang)

	return finalText, true, err
}

// SaveTranslation stores a finished translation in the memory.
func (s *Store) SaveTranslation(ctx context.Context, sourceText, targetLang, finalText, serviceUsed string) error {
	id := fmt.Sprintf("mem_%d", time.Now().UnixNano())
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO translation_memory (id, source_text, target_lang, final_text, service_used, usage_count, invalidated, last_used, created_at)
		 VALUES (?, ?, ?, ?, ?, 1, FALSE, ?, ?)`,
		id, normalizeText(sourceText), targetLang, finalText, serviceUsed, time.Now(), time.Now())
	return err
}

// ClearTranslations removes all translation memory entries.
func (s *Store) ClearTranslations(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GlossaryEntry is a row in the glossary table.
type GlossaryEntry struct {
	ID         string
	TargetLang string
	SourceTerm string
	TargetTerm string
	CreatedAt  time.Time
}

// AddGlossaryTerm inserts or replaces a glossary entry.
func (s *Store) AddGlossaryTerm(ctx context.Context, targetLang, sourceTerm, targetTerm string) error {
	id := fmt.Sprintf("gl_%d", time.Now().UnixNano())
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO glossary (id, target_lang, source_term, target_term) VALUES (?, ?, ?, ?)`,
		id, targetLang, sourceTerm, targetTerm)
	return err
}

// GetGlossaryTerms returns the glossary for a target language as a
// source-term → target-term map, ready to merge into a translation prompt.
func (s *Store) GetGlossaryTerms(ctx context.Context, targetLang string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source_term, target_term FROM glossary WHERE target_lang = ?`, targetLang)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	terms := make(map[string]string)
	for rows.Next() {
		var src, tgt string
		if err := rows.Scan(&src, &tgt); err != nil {
			return nil, err
		}
		terms[src] = tgt
	}
	return terms, rows.Err()
}

// ListGlossaryTerms returns all glossary entries, optionally filtered by
// target language (pass "" for everything).
func (s *Store) ListGlossaryTerms(ctx context.Context, targetLang string) ([]GlossaryEntry, error) {
	query := `SELECT id, target_lang, source_term, target_term, created_at FROM glossary`
	var args []interface{}
	if targetLang != "" {
		query += ` WHERE target_lang = ?`
		args = append(args, targetLang)
	}
	query += ` ORDER BY target_lang, source_term`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []GlossaryEntry
	for rows.Next() {
		var e GlossaryEntry
		if err := rows.Scan(&e.ID, &e.TargetLang, &e.SourceTerm, &e.TargetTerm, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteGlossaryTerm removes a glossary entry by ID.
func (s *Store) DeleteGlossaryTerm(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM glossary WHERE id = ?`, id)
	return err
}

// SeedGlossary inserts terms for a target language, skipping terms already
// present so reviewer customizations survive restarts.
func (s *Store) SeedGlossary(ctx context.Context, targetLang string, terms map[string]string) error {
	for src, tgt := range terms {
		id := uuid.New().String()
		if _, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO glossary (id, target_lang, source_term, target_term) VALUES (?, ?, ?, ?)`,
			id, targetLang, src, tgt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeText trims whitespace and applies Unicode NFC normalization
// for consistent cache key comparison.
func normalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
