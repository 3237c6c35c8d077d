package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"
)

type StatsR struct {
	db QueryI
}

func NewStatsRepository(db QueryI) *StatsR {
	return &StatsR{db: db}
}

const statsColumns = `user_id, total_sessions, total_words_reviewed, total_correct,
		total_incorrect, streak_days, last_session`

// Get returns the user's stats row, or a zero-valued row when none exists
// yet. The row itself is only created on the first recorded answer.
func (s *StatsR) Get(ctx context.Context, userID string) (models.SessionStats, error) {
	query := `SELECT ` + statsColumns + ` FROM revision_stats WHERE user_id = $1`

	var stats models.SessionStats
	err := s.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SessionStats{UserID: userID}, nil
		}
		return models.SessionStats{}, fmt.Errorf("failed to get session stats: %w", err)
	}

	return stats, nil
}

// RecordActivity folds one revision answer into the stats row. A new session
// is counted when there is no prior activity or the idle gap was exceeded;
// the streak moves by calendar day. Single statement, atomic per user.
func (s *StatsR) RecordActivity(ctx context.Context, userID string, correct bool, now time.Time, gap time.Duration) (models.SessionStats, error) {
	query := `
	INSERT INTO revision_stats (` + statsColumns + `)
	VALUES ($1, 1, 1, CASE WHEN $2 THEN 1 ELSE 0 END, CASE WHEN $2 THEN 0 ELSE 1 END, 1, $3)
	ON CONFLICT (user_id) DO UPDATE SET
		total_sessions = revision_stats.total_sessions + CASE
			WHEN revision_stats.last_session IS NULL
				OR $3::timestamptz - revision_stats.last_session > make_interval(secs => $4)
			THEN 1 ELSE 0 END,
		total_words_reviewed = revision_stats.total_words_reviewed + 1,
		total_correct = revision_stats.total_correct + CASE WHEN $2 THEN 1 ELSE 0 END,
		total_incorrect = revision_stats.total_incorrect + CASE WHEN $2 THEN 0 ELSE 1 END,
		streak_days = CASE
			WHEN revision_stats.last_session IS NULL THEN 1
			WHEN revision_stats.last_session::date = $3::timestamptz::date THEN revision_stats.streak_days
			WHEN revision_stats.last_session::date = $3::timestamptz::date - 1 THEN revision_stats.streak_days + 1
			ELSE 1 END,
		last_session = $3
	RETURNING ` + statsColumns

	var stats models.SessionStats
	err := s.db.GetContext(ctx, &stats, query, userID, correct, now, gap.Seconds())
	if err != nil {
		return models.SessionStats{}, fmt.Errorf("failed to record session activity: %w", err)
	}

	return stats, nil
}

// RecordBatch folds a finished revision batch into the stats row. Unlike the
// per-answer variant every batch call counts as one session.
func (s *StatsR) RecordBatch(ctx context.Context, userID string, reviewed, correct int, now time.Time) (models.SessionStats, error) {
	query := `
	INSERT INTO revision_stats (` + statsColumns + `)
	VALUES ($1, 1, $2, $3, $2 - $3, 1, $4)
	ON CONFLICT (user_id) DO UPDATE SET
		total_sessions = revision_stats.total_sessions + 1,
		total_words_reviewed = revision_stats.total_words_reviewed + $2,
		total_correct = revision_stats.total_correct + $3,
		total_incorrect = revision_stats.total_incorrect + ($2 - $3),
		streak_days = CASE
			WHEN revision_stats.last_session IS NULL THEN 1
			WHEN revision_stats.last_session::date = $4::timestamptz::date THEN revision_stats.streak_days
			WHEN revision_stats.last_session::date = $4::timestamptz::date - 1 THEN revision_stats.streak_days + 1
			ELSE 1 END,
		last_session = $4
	RETURNING ` + statsColumns

	var stats models.SessionStats
	err := s.db.GetContext(ctx, &stats, query, userID, reviewed, correct, now)
	if err != nil {
		return models.SessionStats{}, fmt.Errorf("failed to record session batch: %w", err)
	}

	return stats, nil
}
