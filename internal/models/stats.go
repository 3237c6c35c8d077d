package models

import "time"

// SessionStats is the per-user revision counters row, created lazily on the
// first recorded answer.
type SessionStats struct {
	UserID             string     `db:"user_id" json:"user_id"`
	TotalSessions      int        `db:"total_sessions" json:"total_sessions"`
	TotalWordsReviewed int        `db:"total_words_reviewed" json:"total_words_reviewed"`
	TotalCorrect       int        `db:"total_correct" json:"total_correct"`
	TotalIncorrect     int        `db:"total_incorrect" json:"total_incorrect"`
	StreakDays         int        `db:"streak_days" json:"streak_days"`
	LastSession        *time.Time `db:"last_session" json:"last_session"`
}

// Statistics combines SessionStats with aggregates derived from the history.
type Statistics struct {
	SessionStats
	TotalWords        int         `json:"total_words"`
	AvgLookups        float64     `json:"avg_lookups"`
	MasteredWords     int         `json:"mastered_words"`
	LearningWords     int         `json:"learning_words"`
	NewWords          int         `json:"new_words"`
	SuccessRate       float64     `json:"success_rate"`
	LevelDistribution map[int]int `json:"level_distribution"`
}

// NextStreak computes the streak value after a session recorded at now.
// Same calendar day keeps the streak, exactly one day later extends it,
// anything else restarts at 1.
func NextStreak(last *time.Time, now time.Time, current int) int {
	if last == nil {
		return 1
	}
	ly, lm, ld := last.Date()
	ny, nm, nd := now.Date()
	lastDay := time.Date(ly, lm, ld, 0, 0, 0, 0, time.Local)
	nowDay := time.Date(ny, nm, nd, 0, 0, 0, 0, time.Local)

	switch {
	case lastDay.Equal(nowDay):
		return current
	case lastDay.AddDate(0, 0, 1).Equal(nowDay):
		return current + 1
	default:
		return 1
	}
}
