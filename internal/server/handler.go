package server

import (
	"context"
	"net/http"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type TranslateSI interface {
	TranslateWord(ctx context.Context, word, src, tgt string) (models.LookupResult, error)
	TranslateSentence(ctx context.Context, sentence, src, tgt string) (models.SentenceResult, error)
	QuickTranslate(ctx context.Context, text, src, tgt string) (string, error)
}

type HistorySI interface {
	UpsertLookup(ctx context.Context, userID, word, src, tgt string, res models.LookupResult) (models.VocabularyEntry, error)
	List(ctx context.Context, userID string) ([]models.VocabularyEntry, error)
	Search(ctx context.Context, userID, query string) ([]models.VocabularyEntry, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error)
	Clear(ctx context.Context, userID string) (bool, error)
}

type RevisionSI interface {
	SelectForRevision(ctx context.Context, userID string, limit int) ([]models.VocabularyEntry, error)
	RecordAnswer(ctx context.Context, userID string, id uuid.UUID, correct bool) (models.VocabularyEntry, error)
	UpdateSession(ctx context.Context, userID string, reviewed, correct int) (models.SessionStats, error)
	Statistics(ctx context.Context, userID string) (models.Statistics, error)
}

type ServiceI interface {
	TranslateSI
	HistorySI
	RevisionSI
}

type Handler struct {
	service ServiceI
	log     *zap.Logger
}

func NewHandler(service ServiceI, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/api/translate", h.translate)
	r.Post("/api/quick-translate", h.quickTranslate)

	r.Route("/api/history", func(r chi.Router) {
		r.Use(requireUserID)

		r.Get("/", h.listHistory)
		r.Post("/", h.addToHistory)
		r.Get("/search", h.searchHistory)
		r.Delete("/{id}", h.deleteEntry)
		r.Delete("/", h.clearHistory)

		r.Get("/revision/words", h.revisionWords)
		r.Post("/revision", h.recordAnswer)
		r.Post("/revision/session", h.updateSession)

		r.Get("/statistics", h.statistics)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-User-Id"},
	})

	return c.Handler(r)
}
