package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/tubestudy/tracker/internal/domain"
	"github.com/tubestudy/tracker/internal/service"
)

// SettingsHandler handles user settings and distraction keyword requests.
type SettingsHandler struct {
	settings *service.SettingsService
	keywords *service.KeywordService
	errs     errorWriter
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings *service.SettingsService, keywords *service.KeywordService, debug bool) *SettingsHandler {
	return &SettingsHandler{settings: settings, keywords: keywords, errs: errorWriter{debug: debug}}
}

// HandleGet returns the current settings.
// GET /api/settings
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Get(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(s))
}

// HandleUpdate replaces the settings.
// POST /api/settings, PUT /api/settings
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req SettingsDTO
	if err := readJSON(w, r, &req); err != nil {
		h.errs.write(w, r, err)
		return
	}

	s, err := h.settings.Update(r.Context(), req.toDomain())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(s))
}

// HandleListActiveKeywords returns the keywords currently switched on.
// GET /api/settings/keywords
func (h *SettingsHandler) HandleListActiveKeywords(w http.ResponseWriter, r *http.Request) {
	keywords, err := h.keywords.ListActive(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toKeywordDTOs(keywords))
}

// HandleListAllKeywords returns every keyword.
// GET /api/settings/keywords/all
func (h *SettingsHandler) HandleListAllKeywords(w http.ResponseWriter, r *http.Request) {
	keywords, err := h.keywords.ListAll(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toKeywordDTOs(keywords))
}

// HandleCreateKeyword adds a custom keyword.
// POST /api/settings/keywords
func (h *SettingsHandler) HandleCreateKeyword(w http.ResponseWriter, r *http.Request) {
	var req CreateKeywordRequest
	if err := readJSON(w, r, &req); err != nil {
		h.errs.write(w, r, err)
		return
	}

	k, err := h.keywords.Add(r.Context(), service.KeywordInput{
		Keyword:      req.Keyword,
		Category:     req.Category,
		AlertMessage: req.AlertMessage,
	})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toKeywordDTO(k))
}

// HandleUpdateKeyword applies a partial update.
// PUT /api/settings/keywords/{id}
func (h *SettingsHandler) HandleUpdateKeyword(w http.ResponseWriter, r *http.Request) {
	id, err := keywordID(r)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	var req UpdateKeywordRequest
	if err := readJSON(w, r, &req); err != nil {
		h.errs.write(w, r, err)
		return
	}

	k, err := h.keywords.Update(r.Context(), id, req.toPatch())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toKeywordDTO(k))
}

// HandleToggleKeyword flips a keyword's active flag.
// PUT /api/settings/keywords/{id}/toggle
func (h *SettingsHandler) HandleToggleKeyword(w http.ResponseWriter, r *http.Request) {
	id, err := keywordID(r)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	k, err := h.keywords.Toggle(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toKeywordDTO(k))
}

// HandleDeleteKeyword removes a custom keyword.
// DELETE /api/settings/keywords/{id}
func (h *SettingsHandler) HandleDeleteKeyword(w http.ResponseWriter, r *http.Request) {
	id, err := keywordID(r)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	if err := h.keywords.Delete(r.Context(), id); err != nil {
		h.errs.write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func keywordID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: keyword id must be a positive integer", domain.ErrInvalidInput)
	}
	return id, nil
}
