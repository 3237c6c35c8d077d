package server

import (
	"encoding/json"
	"net/http"

	"github.com/Korichi-ishak/traducteur-pro/internal/models"
	"github.com/Korichi-ishak/traducteur-pro/internal/service"

	"go.uber.org/zap"
)

type translateRequest struct {
	Text string `json:"text"`
	Src  string `json:"src"`
	Tgt  string `json:"tgt"`
	Mode string `json:"mode"` // "word" or "sentence"; empty means auto
}

func (req *translateRequest) defaults() {
	if req.Src == "" {
		req.Src = models.LangGerman
	}
	if req.Tgt == "" {
		req.Tgt = models.LangFrench
	}
}

func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.defaults()

	if req.Mode == "sentence" || (req.Mode == "" && service.IsSentence(req.Text)) {
		result, err := h.service.TranslateSentence(r.Context(), req.Text, req.Src, req.Tgt)
		if err != nil {
			h.log.Error("sentence translation failed", zap.Error(err))
			respondError(w, statusFromError(err), err.Error())
			return
		}
		respondJSON(w, http.StatusOK, result)
		return
	}

	result, err := h.service.TranslateWord(r.Context(), req.Text, req.Src, req.Tgt)
	if err != nil {
		h.log.Error("word translation failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type quickTranslateResponse struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
	Src         string `json:"src"`
	Tgt         string `json:"tgt"`
}

func (h *Handler) quickTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.defaults()

	translation, err := h.service.QuickTranslate(r.Context(), req.Text, req.Src, req.Tgt)
	if err != nil {
		h.log.Error("quick translation failed", zap.Error(err))
		respondError(w, statusFromError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, quickTranslateResponse{
		Text:        req.Text,
		Translation: translation,
		Src:         req.Src,
		Tgt:         req.Tgt,
	})
}
