package service

import (
	"context"
	"time"

	"github.com/Korichi-ishak/traducteur-pro/internal/config"
	"github.com/Korichi-ishak/traducteur-pro/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MyMemoryAPII interface {
	Translate(ctx context.Context, text, src, tgt string) (models.MachineTranslation, error)
}

type DictionaryAPII interface {
	DictionaryData(ctx context.Context, word, src, tgt string) (models.DictionaryResponse, error)
}

type APII interface {
	MyMemoryAPII
	DictionaryAPII
}

type HistoryRI interface {
	Upsert(ctx context.Context, entry models.VocabularyEntry) (models.VocabularyEntry, error)
	List(ctx context.Context, userID string) ([]models.VocabularyEntry, error)
	Search(ctx context.Context, userID, q string) ([]models.VocabularyEntry, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error)
	Clear(ctx context.Context, userID string) (bool, error)
	Due(ctx context.Context, userID string, now time.Time, limit int) ([]models.VocabularyEntry, error)
	Weakest(ctx context.Context, userID string, now time.Time, limit int) ([]models.VocabularyEntry, error)
	RecordAnswer(ctx context.Context, userID string, id uuid.UUID, correct bool, now time.Time, intervalDays []int) (models.VocabularyEntry, error)
	Overview(ctx context.Context, userID string) (int, float64, map[int]int, error)
}

type StatsRI interface {
	Get(ctx context.Context, userID string) (models.SessionStats, error)
	RecordActivity(ctx context.Context, userID string, correct bool, now time.Time, gap time.Duration) (models.SessionStats, error)
	RecordBatch(ctx context.Context, userID string, reviewed, correct int, now time.Time) (models.SessionStats, error)
}

type RepositoryI interface {
	HistoryRI
	StatsRI
}

type Service struct {
	*TranslateS
	*HistoryS
	*RevisionS
}

func InitServices(api APII, repo RepositoryI, cfg *config.Config, log *zap.Logger) *Service {
	return &Service{
		TranslateS: NewTranslateService(api, cfg.Lookup, log),
		HistoryS:   NewHistoryService(repo, cfg.Lookup, log),
		RevisionS:  NewRevisionService(repo, cfg.Revision, log),
	}
}

func validateLangPair(src, tgt string) error {
	if !models.SupportedLang(src) || !models.SupportedLang(tgt) || src == tgt {
		return models.ErrInvalidInput
	}
	return nil
}
