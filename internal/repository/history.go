package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type HistoryR struct {
	db QueryI
}

func NewHistoryRepository(db QueryI) *HistoryR {
	return &HistoryR{db: db}
}

const entryColumns = `id, user_id, word, src_lang, tgt_lang, main_translation,
		translations, senses, phrases, examples, synonyms,
		lookup_count, date_added, last_lookup, revision_score, next_revision,
		times_correct, times_incorrect`

// Upsert inserts the entry or, when (user_id, lower(word), src_lang) already
// exists, refreshes its display fields and bumps lookup_count while keeping
// the revision state untouched. Atomic per key.
func (h *HistoryR) Upsert(ctx context.Context, entry models.VocabularyEntry) (models.VocabularyEntry, error) {
	query := `
	INSERT INTO translation_history (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, $12, $12, 0, $12, 0, 0)
	ON CONFLICT (user_id, lower(word), src_lang) DO UPDATE SET
		main_translation = EXCLUDED.main_translation,
		translations = EXCLUDED.translations,
		senses = EXCLUDED.senses,
		phrases = EXCLUDED.phrases,
		examples = EXCLUDED.examples,
		synonyms = EXCLUDED.synonyms,
		lookup_count = translation_history.lookup_count + 1,
		last_lookup = EXCLUDED.last_lookup
	RETURNING ` + entryColumns

	var saved models.VocabularyEntry
	err := h.db.GetContext(ctx, &saved, query,
		entry.ID, entry.UserID, entry.Word, entry.SrcLang, entry.TgtLang, entry.MainTranslation,
		entry.Translations, entry.Senses, entry.Phrases, entry.Examples, entry.Synonyms,
		entry.LastLookup,
	)
	if err != nil {
		return models.VocabularyEntry{}, fmt.Errorf("failed to upsert entry: %w", err)
	}

	return saved, nil
}

func (h *HistoryR) List(ctx context.Context, userID string) ([]models.VocabularyEntry, error) {
	query := `
	SELECT ` + entryColumns + `
	FROM translation_history
	WHERE user_id = $1
	ORDER BY last_lookup DESC`

	entries := make([]models.VocabularyEntry, 0)
	if err := h.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return entries, nil
}

func (h *HistoryR) Search(ctx context.Context, userID, q string) ([]models.VocabularyEntry, error) {
	query := `
	SELECT ` + entryColumns + `
	FROM translation_history
	WHERE user_id = $1 AND (word ILIKE '%' || $2 || '%' OR main_translation ILIKE '%' || $2 || '%')
	ORDER BY last_lookup DESC`

	entries := make([]models.VocabularyEntry, 0)
	if err := h.db.SelectContext(ctx, &entries, query, userID, q); err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}

	return entries, nil
}

// Delete removes one entry. Ownership is part of the predicate, so deleting
// another user's entry reports false rather than failing.
func (h *HistoryR) Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error) {
	query := `DELETE FROM translation_history WHERE user_id = $1 AND id = $2 RETURNING id`

	var deleted uuid.UUID
	err := h.db.GetContext(ctx, &deleted, query, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete entry: %w", err)
	}

	return true, nil
}

func (h *HistoryR) Clear(ctx context.Context, userID string) (bool, error) {
	query := `DELETE FROM translation_history WHERE user_id = $1`

	if _, err := h.db.ExecContext(ctx, query, userID); err != nil {
		return false, fmt.Errorf("failed to clear history: %w", err)
	}

	return true, nil
}

// Due returns entries whose next_revision has passed, most overdue first.
func (h *HistoryR) Due(ctx context.Context, userID string, now time.Time, limit int) ([]models.VocabularyEntry, error) {
	query := `
	SELECT ` + entryColumns + `
	FROM translation_history
	WHERE user_id = $1 AND next_revision <= $2
	ORDER BY next_revision ASC
	LIMIT $3`

	entries := make([]models.VocabularyEntry, 0, limit)
	if err := h.db.SelectContext(ctx, &entries, query, userID, now, limit); err != nil {
		return nil, fmt.Errorf("failed to select due entries: %w", err)
	}

	return entries, nil
}

// Weakest returns non-due entries ordered by lowest score, then most recent
// lookup. Used to fill a revision batch when the due queue is short.
func (h *HistoryR) Weakest(ctx context.Context, userID string, now time.Time, limit int) ([]models.VocabularyEntry, error) {
	query := `
	SELECT ` + entryColumns + `
	FROM translation_history
	WHERE user_id = $1 AND next_revision > $2
	ORDER BY revision_score ASC, last_lookup DESC
	LIMIT $3`

	entries := make([]models.VocabularyEntry, 0, limit)
	if err := h.db.SelectContext(ctx, &entries, query, userID, now, limit); err != nil {
		return nil, fmt.Errorf("failed to select weakest entries: %w", err)
	}

	return entries, nil
}

// RecordAnswer applies one revision answer in a single statement: the score
// is clamped to [0,5], a correct answer schedules the next revision
// intervalDays[newScore] days out, an incorrect one makes the entry
// immediately due again.
func (h *HistoryR) RecordAnswer(ctx context.Context, userID string, id uuid.UUID, correct bool, now time.Time, intervalDays []int) (models.VocabularyEntry, error) {
	query := `
	UPDATE translation_history SET
		revision_score = CASE WHEN $3 THEN LEAST(revision_score + 1, 5) ELSE GREATEST(revision_score - 1, 0) END,
		next_revision = CASE WHEN $3
			THEN $4::timestamptz + make_interval(days => ($5::int[])[LEAST(revision_score + 1, 5) + 1])
			ELSE $4::timestamptz
		END,
		times_correct = times_correct + CASE WHEN $3 THEN 1 ELSE 0 END,
		times_incorrect = times_incorrect + CASE WHEN $3 THEN 0 ELSE 1 END
	WHERE user_id = $1 AND id = $2
	RETURNING ` + entryColumns

	var entry models.VocabularyEntry
	err := h.db.GetContext(ctx, &entry, query, userID, id, correct, now, pq.Array(intervalDays))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VocabularyEntry{}, models.ErrNotFound
		}
		return models.VocabularyEntry{}, fmt.Errorf("failed to record answer: %w", err)
	}

	return entry, nil
}

// Overview aggregates the per-user history for statistics: entry count, mean
// lookup count and the score histogram.
func (h *HistoryR) Overview(ctx context.Context, userID string) (int, float64, map[int]int, error) {
	var summary struct {
		TotalWords int     `db:"total_words"`
		AvgLookups float64 `db:"avg_lookups"`
	}
	summaryQuery := `
	SELECT COUNT(*) AS total_words, COALESCE(AVG(lookup_count), 0) AS avg_lookups
	FROM translation_history
	WHERE user_id = $1`

	if err := h.db.GetContext(ctx, &summary, summaryQuery, userID); err != nil {
		return 0, 0, nil, fmt.Errorf("failed to summarize history: %w", err)
	}

	var rows []struct {
		Score int `db:"revision_score"`
		Count int `db:"count"`
	}
	distQuery := `
	SELECT revision_score, COUNT(*) AS count
	FROM translation_history
	WHERE user_id = $1
	GROUP BY revision_score`

	if err := h.db.SelectContext(ctx, &rows, distQuery, userID); err != nil {
		return 0, 0, nil, fmt.Errorf("failed to load score distribution: %w", err)
	}

	dist := make(map[int]int, len(rows))
	for _, row := range rows {
		dist[row.Score] = row.Count
	}

	return summary.TotalWords, summary.AvgLookups, dist, nil
}
