package handler

import (
	"net/http"

	"github.com/tubestudy/tracker/internal/service"
)

// TrackerHandler handles sync, deletion and streak requests.
type TrackerHandler struct {
	tracker *service.TrackerService
	streaks *service.StreakService
	errs    errorWriter
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(tracker *service.TrackerService, streaks *service.StreakService, debug bool) *TrackerHandler {
	return &TrackerHandler{tracker: tracker, streaks: streaks, errs: errorWriter{debug: debug}}
}

// HandleSync merges a progress report from the extension.
// POST /api/tracker/sync
func (h *TrackerHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if err := readJSON(w, r, &req); err != nil {
		h.errs.write(w, r, err)
		return
	}

	result, err := h.tracker.Sync(r.Context(), req.toEvent())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSyncResponseDTO(result))
}

// HandleDeleteVideo removes one video's progress.
// DELETE /api/tracker/video/{videoId}
func (h *TrackerHandler) HandleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker.DeleteVideo(r.Context(), r.PathValue("videoId")); err != nil {
		h.errs.write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleClearAll wipes all progress.
// DELETE /api/tracker/clear-all
func (h *TrackerHandler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker.ClearAll(r.Context()); err != nil {
		h.errs.write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetStreak returns the streak and any pending notification.
// GET /api/tracker/streak
func (h *TrackerHandler) HandleGetStreak(w http.ResponseWriter, r *http.Request) {
	status, err := h.streaks.Get(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStreakDTO(status))
}

// HandleResetStreak clears the current streak.
// DELETE /api/tracker/streak
func (h *TrackerHandler) HandleResetStreak(w http.ResponseWriter, r *http.Request) {
	if _, err := h.streaks.Reset(r.Context()); err != nil {
		h.errs.write(w, r, err)
		return
	}

	status, err := h.streaks.Get(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStreakDTO(status))
}
