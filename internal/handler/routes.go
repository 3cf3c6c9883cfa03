package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tubestudy/tracker/internal/service"
)

// Services bundles what the HTTP layer needs.
type Services struct {
	Tracker   *service.TrackerService
	Streaks   *service.StreakService
	Dashboard *service.DashboardService
	Export    *service.ExportService
	Settings  *service.SettingsService
	Keywords  *service.KeywordService
}

// Options tunes the HTTP layer.
type Options struct {
	// Debug includes error details in 500 responses.
	Debug bool
	// SyncRateLimit is the per-IP sync limit per minute; zero disables it.
	SyncRateLimit int
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, svc Services, opts Options) {
	tracker := NewTrackerHandler(svc.Tracker, svc.Streaks, opts.Debug)
	dashboard := NewDashboardHandler(svc.Dashboard, svc.Export, opts.Debug)
	settings := NewSettingsHandler(svc.Settings, svc.Keywords, opts.Debug)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("POST /api/tracker/sync", SyncRateLimit(opts.SyncRateLimit)(http.HandlerFunc(tracker.HandleSync)))
	mux.HandleFunc("DELETE /api/tracker/video/{videoId}", tracker.HandleDeleteVideo)
	mux.HandleFunc("DELETE /api/tracker/clear-all", tracker.HandleClearAll)
	mux.HandleFunc("GET /api/tracker/streak", tracker.HandleGetStreak)
	mux.HandleFunc("DELETE /api/tracker/streak", tracker.HandleResetStreak)

	mux.HandleFunc("GET /api/tracker/dashboard/stats", dashboard.HandleStats)
	mux.HandleFunc("GET /api/tracker/dashboard/courses", dashboard.HandleCourses)
	mux.HandleFunc("GET /api/tracker/dashboard/continue", dashboard.HandleContinue)
	mux.HandleFunc("GET /api/tracker/analytics", dashboard.HandleAnalytics)
	mux.HandleFunc("GET /api/tracker/export/csv", dashboard.HandleExportCSV)

	mux.HandleFunc("GET /api/settings", settings.HandleGet)
	mux.HandleFunc("POST /api/settings", settings.HandleUpdate)
	mux.HandleFunc("PUT /api/settings", settings.HandleUpdate)
	mux.HandleFunc("GET /api/settings/keywords", settings.HandleListActiveKeywords)
	mux.HandleFunc("GET /api/settings/keywords/all", settings.HandleListAllKeywords)
	mux.HandleFunc("POST /api/settings/keywords", settings.HandleCreateKeyword)
	mux.HandleFunc("PUT /api/settings/keywords/{id}", settings.HandleUpdateKeyword)
	mux.HandleFunc("PUT /api/settings/keywords/{id}/toggle", settings.HandleToggleKeyword)
	mux.HandleFunc("DELETE /api/settings/keywords/{id}", settings.HandleDeleteKeyword)

	mux.HandleFunc("/", HandleNotFound)
}
