package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/tubestudy/tracker/internal/clock"
	"github.com/tubestudy/tracker/internal/domain"
	"github.com/tubestudy/tracker/internal/repository/sqlite"
	"github.com/tubestudy/tracker/internal/service"
)

// Thursday afternoon.
var testNow = time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC)

type testServices struct {
	db        *sqlite.DB
	clock     *clock.Fixed
	settings  *service.SettingsService
	streaks   *service.StreakService
	tracker   *service.TrackerService
	dashboard *service.DashboardService
	keywords  *service.KeywordService
	export    *service.ExportService
}

func newTestServices(t *testing.T) *testServices {
	return newTestServicesWithCap(t, 0)
}

func newTestServicesWithCap(t *testing.T, maxSyncSeconds float64) *testServices {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	clk := clock.NewFixed(testNow)
	settings := service.NewSettingsService(db.Settings())
	streaks := service.NewStreakService(db.Streaks(), settings, clk)
	return &testServices{
		db:        db,
		clock:     clk,
		settings:  settings,
		streaks:   streaks,
		tracker:   service.NewTrackerService(db.Progress(), streaks, settings, clk, maxSyncSeconds),
		dashboard: service.NewDashboardService(db.Progress(), settings, clk),
		keywords:  service.NewKeywordService(db.Keywords()),
		export:    service.NewExportService(db.Progress(), clk),
	}
}

// seedRecord stores a record directly, bypassing reconciliation.
func (s *testServices) seedRecord(t *testing.T, videoID, title string, study float64, syncedAt time.Time) *domain.ProgressRecord {
	t.Helper()
	rec := &domain.ProgressRecord{
		VideoID:              videoID,
		Title:                title,
		Channel:              "Channel",
		TotalDurationSeconds: 1200,
		LastProgressSeconds:  300,
		StudyTimeSeconds:     study,
		LastSyncedAt:         syncedAt,
		CreatedAt:            syncedAt,
	}
	if err := s.db.Progress().Save(context.Background(), rec); err != nil {
		t.Fatalf("Save %s: %v", videoID, err)
	}
	return rec
}
