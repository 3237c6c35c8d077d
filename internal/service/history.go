package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Korichi-ishak/traducteur-pro/internal/config"
	"github.com/Korichi-ishak/traducteur-pro/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HistoryS struct {
	repo HistoryRI
	cfg  config.LookupConfig
	log  *zap.Logger
	now  func() time.Time
}

func NewHistoryService(repo HistoryRI, cfg config.LookupConfig, log *zap.Logger) *HistoryS {
	return &HistoryS{
		repo: repo,
		cfg:  cfg,
		log:  log,
		now:  time.Now,
	}
}

// UpsertLookup normalizes a provider result and stores it for the user. A
// repeated lookup of the same (word, source language) refreshes the display
// fields and bumps the lookup counter; revision state is never touched.
func (h *HistoryS) UpsertLookup(ctx context.Context, userID, word, src, tgt string, res models.LookupResult) (models.VocabularyEntry, error) {
	word = strings.TrimSpace(word)
	if userID == "" || word == "" {
		return models.VocabularyEntry{}, fmt.Errorf("missing user or word: %w", models.ErrInvalidInput)
	}
	if err := validateLangPair(src, tgt); err != nil {
		return models.VocabularyEntry{}, fmt.Errorf("unsupported language pair %s→%s: %w", src, tgt, err)
	}

	now := h.now()
	entry := models.VocabularyEntry{
		ID:              uuid.New(),
		UserID:          userID,
		Word:            word,
		SrcLang:         src,
		TgtLang:         tgt,
		MainTranslation: res.MainTranslation,
		Translations:    appendUnique(make([]string, 0, h.cfg.MaxTranslations), h.cfg.MaxTranslations, res.Translations...),
		Senses:          capSenses(res.Senses, h.cfg.MaxSenses),
		Phrases:         capPhrases(res.Phrases, h.cfg.MaxPhrases),
		Examples:        capExamples(res.Examples, h.cfg.MaxExamples),
		Synonyms:        appendUnique(make([]string, 0, h.cfg.MaxSynonyms), h.cfg.MaxSynonyms, res.Synonyms...),
		LastLookup:      now,
		DateAdded:       now,
		NextRevision:    now,
	}
	if entry.MainTranslation == "" && len(entry.Translations) > 0 {
		entry.MainTranslation = entry.Translations[0]
	}

	saved, err := h.repo.Upsert(ctx, entry)
	if err != nil {
		return models.VocabularyEntry{}, fmt.Errorf("failed to store lookup: %w", err)
	}

	return saved, nil
}

// List returns the user's history, most recently looked up first. An
// unreachable backend degrades to an empty list so callers always render.
func (h *HistoryS) List(ctx context.Context, userID string) ([]models.VocabularyEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("missing user: %w", models.ErrInvalidInput)
	}

	entries, err := h.repo.List(ctx, userID)
	if err != nil {
		h.log.Warn("history unavailable, serving empty list", zap.String("user_id", userID), zap.Error(err))
		return []models.VocabularyEntry{}, nil
	}

	return entries, nil
}

// Search matches the query case-insensitively against the word and the main
// translation. An empty query is the full history.
func (h *HistoryS) Search(ctx context.Context, userID, query string) ([]models.VocabularyEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("missing user: %w", models.ErrInvalidInput)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return h.List(ctx, userID)
	}

	entries, err := h.repo.Search(ctx, userID, query)
	if err != nil {
		h.log.Warn("history search unavailable, serving empty list", zap.String("user_id", userID), zap.Error(err))
		return []models.VocabularyEntry{}, nil
	}

	return entries, nil
}

// Delete reports false for entries that do not exist or belong to another
// user; both look the same to the caller.
func (h *HistoryS) Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("missing user: %w", models.ErrInvalidInput)
	}

	return h.repo.Delete(ctx, userID, id)
}

func (h *HistoryS) Clear(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("missing user: %w", models.ErrInvalidInput)
	}

	return h.repo.Clear(ctx, userID)
}

func capSenses(senses []models.Sense, limit int) []models.Sense {
	out := make([]models.Sense, 0, limit)
	for _, s := range senses {
		if len(out) >= limit {
			break
		}
		if s.Meaning == "" && s.Translation == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func capPhrases(phrases []models.Phrase, limit int) []models.Phrase {
	out := make([]models.Phrase, 0, limit)
	for _, p := range phrases {
		if len(out) >= limit {
			break
		}
		if p.Phrase == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func capExamples(examples []models.Example, limit int) []models.Example {
	out := make([]models.Example, 0, limit)
	for _, e := range examples {
		if len(out) >= limit {
			break
		}
		if e.Original == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}
