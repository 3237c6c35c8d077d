package server

import (
	"encoding/json"
	"net/http"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type addToHistoryRequest struct {
	Word   string              `json:"word"`
	Src    string              `json:"src"`
	Tgt    string              `json:"tgt"`
	Result models.LookupResult `json:"result"`
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.log.Error("listing history failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *Handler) addToHistory(w http.ResponseWriter, r *http.Request) {
	var req addToHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Src == "" {
		req.Src = models.LangGerman
	}
	if req.Tgt == "" {
		req.Tgt = models.LangFrench
	}

	entry, err := h.service.UpsertLookup(r.Context(), userIDFrom(r.Context()), req.Word, req.Src, req.Tgt, req.Result)
	if err != nil {
		h.log.Error("saving lookup failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

func (h *Handler) searchHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	entries, err := h.service.Search(r.Context(), userIDFrom(r.Context()), query)
	if err != nil {
		h.log.Error("searching history failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	deleted, err := h.service.Delete(r.Context(), userIDFrom(r.Context()), id)
	if err != nil {
		h.log.Error("deleting entry failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "entry not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.service.Clear(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.log.Error("clearing history failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"cleared": cleared})
}
