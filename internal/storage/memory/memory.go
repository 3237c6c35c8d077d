package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"

	"github.com/google/uuid"
)

// Store is the in-process fallback persistence backend. It implements the
// same contracts as the postgres repositories, so the services never know
// which one they run against.
type Store struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*models.VocabularyEntry
	stats   map[string]*models.SessionStats
}

func NewStore() *Store {
	return &Store{
		entries: make(map[uuid.UUID]*models.VocabularyEntry),
		stats:   make(map[string]*models.SessionStats),
	}
}

func entryKey(userID, word, srcLang string) string {
	return userID + "\x00" + strings.ToLower(word) + "\x00" + srcLang
}

func (s *Store) find(userID, word, srcLang string) *models.VocabularyEntry {
	key := entryKey(userID, word, srcLang)
	for _, e := range s.entries {
		if entryKey(e.UserID, e.Word, e.SrcLang) == key {
			return e
		}
	}
	return nil
}

func (s *Store) Upsert(_ context.Context, entry models.VocabularyEntry) (models.VocabularyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.find(entry.UserID, entry.Word, entry.SrcLang); existing != nil {
		existing.MainTranslation = entry.MainTranslation
		existing.Translations = entry.Translations
		existing.Senses = entry.Senses
		existing.Phrases = entry.Phrases
		existing.Examples = entry.Examples
		existing.Synonyms = entry.Synonyms
		existing.LookupCount++
		existing.LastLookup = entry.LastLookup
		return *existing, nil
	}

	created := entry
	created.LookupCount = 1
	created.DateAdded = entry.LastLookup
	created.RevisionScore = 0
	created.NextRevision = entry.LastLookup
	created.TimesCorrect = 0
	created.TimesIncorrect = 0
	s.entries[created.ID] = &created

	return created, nil
}

func (s *Store) List(_ context.Context, userID string) ([]models.VocabularyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.collect(userID, func(*models.VocabularyEntry) bool { return true })
	sort.Slice(out, func(i, j int) bool { return out[i].LastLookup.After(out[j].LastLookup) })

	return out, nil
}

func (s *Store) Search(_ context.Context, userID, q string) ([]models.VocabularyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q = strings.ToLower(q)
	out := s.collect(userID, func(e *models.VocabularyEntry) bool {
		return strings.Contains(strings.ToLower(e.Word), q) ||
			strings.Contains(strings.ToLower(e.MainTranslation), q)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].LastLookup.After(out[j].LastLookup) })

	return out, nil
}

func (s *Store) Delete(_ context.Context, userID string, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || entry.UserID != userID {
		return false, nil
	}
	delete(s.entries, id)

	return true, nil
}

func (s *Store) Clear(_ context.Context, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.entries {
		if entry.UserID == userID {
			delete(s.entries, id)
		}
	}

	return true, nil
}

func (s *Store) Due(_ context.Context, userID string, now time.Time, limit int) ([]models.VocabularyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.collect(userID, func(e *models.VocabularyEntry) bool {
		return !e.NextRevision.After(now)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].NextRevision.Before(out[j].NextRevision) })

	return clip(out, limit), nil
}

func (s *Store) Weakest(_ context.Context, userID string, now time.Time, limit int) ([]models.VocabularyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.collect(userID, func(e *models.VocabularyEntry) bool {
		return e.NextRevision.After(now)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].RevisionScore != out[j].RevisionScore {
			return out[i].RevisionScore < out[j].RevisionScore
		}
		return out[i].LastLookup.After(out[j].LastLookup)
	})

	return clip(out, limit), nil
}

func (s *Store) RecordAnswer(_ context.Context, userID string, id uuid.UUID, correct bool, now time.Time, intervalDays []int) (models.VocabularyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || entry.UserID != userID {
		return models.VocabularyEntry{}, models.ErrNotFound
	}

	if correct {
		entry.RevisionScore = min(entry.RevisionScore+1, 5)
		days := 1
		if entry.RevisionScore < len(intervalDays) {
			days = intervalDays[entry.RevisionScore]
		}
		entry.NextRevision = now.AddDate(0, 0, days)
		entry.TimesCorrect++
	} else {
		entry.RevisionScore = max(entry.RevisionScore-1, 0)
		entry.NextRevision = now
		entry.TimesIncorrect++
	}

	return *entry, nil
}

func (s *Store) Overview(_ context.Context, userID string) (int, float64, map[int]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	lookups := 0
	dist := make(map[int]int)
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		total++
		lookups += e.LookupCount
		dist[e.RevisionScore]++
	}

	avg := 0.0
	if total > 0 {
		avg = float64(lookups) / float64(total)
	}

	return total, avg, dist, nil
}

func (s *Store) Get(_ context.Context, userID string) (models.SessionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stats, ok := s.stats[userID]; ok {
		return *stats, nil
	}

	return models.SessionStats{UserID: userID}, nil
}

func (s *Store) RecordActivity(_ context.Context, userID string, correct bool, now time.Time, gap time.Duration) (models.SessionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.ensureStats(userID)

	if stats.LastSession == nil || now.Sub(*stats.LastSession) > gap {
		stats.TotalSessions++
	}
	stats.TotalWordsReviewed++
	if correct {
		stats.TotalCorrect++
	} else {
		stats.TotalIncorrect++
	}
	stats.StreakDays = models.NextStreak(stats.LastSession, now, stats.StreakDays)
	last := now
	stats.LastSession = &last

	return *stats, nil
}

func (s *Store) RecordBatch(_ context.Context, userID string, reviewed, correct int, now time.Time) (models.SessionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.ensureStats(userID)

	stats.TotalSessions++
	stats.TotalWordsReviewed += reviewed
	stats.TotalCorrect += correct
	stats.TotalIncorrect += reviewed - correct
	stats.StreakDays = models.NextStreak(stats.LastSession, now, stats.StreakDays)
	last := now
	stats.LastSession = &last

	return *stats, nil
}

func (s *Store) ensureStats(userID string) *models.SessionStats {
	if stats, ok := s.stats[userID]; ok {
		return stats
	}
	stats := &models.SessionStats{UserID: userID}
	s.stats[userID] = stats
	return stats
}

func (s *Store) collect(userID string, keep func(*models.VocabularyEntry) bool) []models.VocabularyEntry {
	out := make([]models.VocabularyEntry, 0)
	for _, e := range s.entries {
		if e.UserID == userID && keep(e) {
			out = append(out, *e)
		}
	}
	return out
}

func clip(entries []models.VocabularyEntry, limit int) []models.VocabularyEntry {
	if limit >= 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
