package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type recordAnswerRequest struct {
	WordID  uuid.UUID `json:"word_id"`
	Correct bool      `json:"correct"`
}

type updateSessionRequest struct {
	WordsReviewed int `json:"words_reviewed"`
	CorrectCount  int `json:"correct_count"`
}

func (h *Handler) revisionWords(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.service.SelectForRevision(r.Context(), userIDFrom(r.Context()), limit)
	if err != nil {
		h.log.Error("selecting revision words failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *Handler) recordAnswer(w http.ResponseWriter, r *http.Request) {
	var req recordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.service.RecordAnswer(r.Context(), userIDFrom(r.Context()), req.WordID, req.Correct)
	if err != nil {
		h.log.Error("recording answer failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request) {
	var req updateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stats, err := h.service.UpdateSession(r.Context(), userIDFrom(r.Context()), req.WordsReviewed, req.CorrectCount)
	if err != nil {
		h.log.Error("updating session failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.log.Error("building statistics failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
