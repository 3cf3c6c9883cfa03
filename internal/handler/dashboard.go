package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/tubestudy/tracker/internal/service"
)

// DashboardHandler serves the read-only dashboard views and the CSV export.
type DashboardHandler struct {
	dashboard *service.DashboardService
	export    *service.ExportService
	errs      errorWriter
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService, export *service.ExportService, debug bool) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, export: export, errs: errorWriter{debug: debug}}
}

// HandleStats returns totals and the subject breakdown for a period.
// GET /api/tracker/dashboard/stats?periodType=today|week|month|all
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context(), r.URL.Query().Get("periodType"))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardStatsDTO(stats))
}

// HandleCourses lists every video, most recent first.
// GET /api/tracker/dashboard/courses
func (h *DashboardHandler) HandleCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.dashboard.Courses(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourseItemDTOs(courses))
}

// HandleContinue returns the resume card, or null when nothing was watched.
// GET /api/tracker/dashboard/continue
func (h *DashboardHandler) HandleContinue(w http.ResponseWriter, r *http.Request) {
	cw, err := h.dashboard.ContinueWatching(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	if cw == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, toContinueWatchingDTO(cw))
}

// HandleAnalytics returns long-range study patterns.
// GET /api/tracker/analytics
func (h *DashboardHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.dashboard.Analytics(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalyticsDTO(a))
}

// HandleExportCSV downloads every record as CSV.
// GET /api/tracker/export/csv
func (h *DashboardHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.export.CSV(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ExportFilename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}
