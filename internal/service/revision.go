package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Korichi-ishak/traducteur-pro/internal/config"
	"github.com/Korichi-ishak/traducteur-pro/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RevisionS struct {
	repo RepositoryI
	cfg  config.RevisionConfig
	log  *zap.Logger
	now  func() time.Time
}

func NewRevisionService(repo RepositoryI, cfg config.RevisionConfig, log *zap.Logger) *RevisionS {
	return &RevisionS{
		repo: repo,
		cfg:  cfg,
		log:  log,
		now:  time.Now,
	}
}

// SelectForRevision builds a revision batch: due entries first, most overdue
// leading, then the weakest non-due entries until the limit is reached. An
// empty vocabulary yields an empty batch, never an error.
func (r *RevisionS) SelectForRevision(ctx context.Context, userID string, limit int) ([]models.VocabularyEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("missing user: %w", models.ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("negative limit %d: %w", limit, models.ErrInvalidInput)
	}
	if limit == 0 {
		limit = r.cfg.SelectLimit
	}

	now := r.now()

	batch, err := r.repo.Due(ctx, userID, now, limit)
	if err != nil {
		r.log.Warn("revision selection unavailable, serving empty batch", zap.String("user_id", userID), zap.Error(err))
		return []models.VocabularyEntry{}, nil
	}

	if len(batch) < limit {
		fill, err := r.repo.Weakest(ctx, userID, now, limit-len(batch))
		if err != nil {
			r.log.Warn("failed to fill revision batch", zap.String("user_id", userID), zap.Error(err))
			return batch, nil
		}
		batch = append(batch, fill...)
	}

	return batch, nil
}

// RecordAnswer applies one flashcard answer: the score moves one step within
// [0,5], a correct answer pushes the next revision out by the interval for
// the new score, an incorrect one makes the entry due again right away.
// Every answer also feeds the session stats.
func (r *RevisionS) RecordAnswer(ctx context.Context, userID string, id uuid.UUID, correct bool) (models.VocabularyEntry, error) {
	if userID == "" {
		return models.VocabularyEntry{}, fmt.Errorf("missing user: %w", models.ErrInvalidInput)
	}

	now := r.now()

	entry, err := r.repo.RecordAnswer(ctx, userID, id, correct, now, r.cfg.IntervalDays)
	if err != nil {
		return models.VocabularyEntry{}, err
	}

	if _, err := r.repo.RecordActivity(ctx, userID, correct, now, r.cfg.SessionGap); err != nil {
		return entry, fmt.Errorf("failed to update session stats: %w", err)
	}

	return entry, nil
}

// UpdateSession folds a finished batch into the stats; each call counts as
// one session.
func (r *RevisionS) UpdateSession(ctx context.Context, userID string, reviewed, correct int) (models.SessionStats, error) {
	if userID == "" {
		return models.SessionStats{}, fmt.Errorf("missing user: %w", models.ErrInvalidInput)
	}
	if reviewed < 0 || correct < 0 || correct > reviewed {
		return models.SessionStats{}, fmt.Errorf("invalid session counts %d/%d: %w", correct, reviewed, models.ErrInvalidInput)
	}

	return r.repo.RecordBatch(ctx, userID, reviewed, correct, r.now())
}

// Statistics combines the session counters with a scan of the history. Both
// reads degrade to zero values when the backend is unreachable, so the
// response is always well-formed.
func (r *RevisionS) Statistics(ctx context.Context, userID string) (models.Statistics, error) {
	if userID == "" {
		return models.Statistics{}, fmt.Errorf("missing user: %w", models.ErrInvalidInput)
	}

	sessionStats, err := r.repo.Get(ctx, userID)
	if err != nil {
		r.log.Warn("session stats unavailable", zap.String("user_id", userID), zap.Error(err))
		sessionStats = models.SessionStats{UserID: userID}
	}

	totalWords, avgLookups, dist, err := r.repo.Overview(ctx, userID)
	if err != nil {
		r.log.Warn("history overview unavailable", zap.String("user_id", userID), zap.Error(err))
		totalWords, avgLookups, dist = 0, 0, nil
	}

	levels := make(map[int]int, 6)
	for score := 0; score <= 5; score++ {
		levels[score] = dist[score]
	}

	answered := sessionStats.TotalCorrect + sessionStats.TotalIncorrect
	successRate := 0.0
	if answered > 0 {
		successRate = float64(sessionStats.TotalCorrect) / float64(answered) * 100
	}

	return models.Statistics{
		SessionStats:      sessionStats,
		TotalWords:        totalWords,
		AvgLookups:        avgLookups,
		MasteredWords:     levels[4] + levels[5],
		LearningWords:     levels[1] + levels[2] + levels[3],
		NewWords:          levels[0],
		SuccessRate:       successRate,
		LevelDistribution: levels,
	}, nil
}
