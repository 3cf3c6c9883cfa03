package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tubestudy/tracker/internal/clock"
	"github.com/tubestudy/tracker/internal/domain"
	"github.com/tubestudy/tracker/internal/metrics"
)

const syncSuccessMessage = "Sync successful."

// SyncResult is what the extension receives after a sync.
type SyncResult struct {
	RequiresNotification    bool
	Message                 string
	IsDistraction           bool
	DistractionMessage      string
	DistractionAlertEnabled bool
	Record                  *domain.ProgressRecord
}

// TrackerService reconciles sync events into per-video progress records.
type TrackerService struct {
	progress       domain.ProgressRepository
	streaks        *StreakService
	settings       *SettingsService
	clock          clock.Clock
	maxSyncSeconds float64
	locks          *KeyLock
}

// NewTrackerService creates a new TrackerService. A positive maxSyncSeconds
// caps the study time a single sync may add; zero disables the cap.
func NewTrackerService(progress domain.ProgressRepository, streaks *StreakService, settings *SettingsService, clk clock.Clock, maxSyncSeconds float64) *TrackerService {
	return &TrackerService{
		progress:       progress,
		streaks:        streaks,
		settings:       settings,
		clock:          clk,
		maxSyncSeconds: maxSyncSeconds,
		locks:          NewKeyLock(),
	}
}

// Sync merges the event into the video's record, counts today toward the
// streak and checks the title for distractions.
func (s *TrackerService) Sync(ctx context.Context, ev domain.SyncEvent) (*SyncResult, error) {
	ev.VideoID = strings.TrimSpace(ev.VideoID)
	if ev.VideoID == "" {
		return nil, fmt.Errorf("%w: videoId is required", domain.ErrInvalidInput)
	}
	if ev.TotalDurationSeconds < 0 || ev.LastProgressSeconds < 0 || ev.AccumulatedStudySeconds < 0 {
		return nil, fmt.Errorf("%w: durations must not be negative", domain.ErrInvalidInput)
	}
	ev.AccumulatedStudySeconds = s.capStudySeconds(ev.VideoID, ev.AccumulatedStudySeconds)

	record, err := s.reconcile(ctx, ev)
	if err != nil {
		metrics.RecordSync("error", 0)
		return nil, err
	}

	if _, err := s.streaks.RecordStudy(ctx); err != nil {
		slog.Error("streak update failed after progress was saved", "videoId", ev.VideoID, "error", err)
		return nil, fmt.Errorf("record study day: %w", err)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{
		Message:                 syncSuccessMessage,
		DistractionAlertEnabled: settings.DistractionAlertEnabled,
		Record:                  record,
	}
	if d, ok := ClassifyDistraction(ev.Title); ok {
		metrics.RecordDistraction(d.Group)
		result.IsDistraction = true
		result.DistractionMessage = d.Message
		if settings.DistractionAlertEnabled {
			result.RequiresNotification = true
			result.Message = d.Message
		}
	}
	return result, nil
}

// reconcile runs the read-modify-write for one video under its key lock.
func (s *TrackerService) reconcile(ctx context.Context, ev domain.SyncEvent) (*domain.ProgressRecord, error) {
	unlock := s.locks.Lock(ev.VideoID)
	defer unlock()

	now := s.clock.Now()
	outcome := "updated"

	record, err := s.progress.Get(ctx, ev.VideoID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		record = domain.NewProgressRecord(ev, now)
		outcome = "created"
	case err != nil:
		return nil, fmt.Errorf("get progress: %w", err)
	default:
		record.Apply(ev, now)
	}

	if err := s.progress.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	metrics.RecordSync(outcome, ev.AccumulatedStudySeconds)
	return record, nil
}

func (s *TrackerService) capStudySeconds(videoID string, seconds float64) float64 {
	if s.maxSyncSeconds <= 0 || seconds <= s.maxSyncSeconds {
		return seconds
	}
	slog.Warn("sync study time capped", "videoId", videoID, "reported", seconds, "cap", s.maxSyncSeconds)
	metrics.ClampedSyncsTotal.Inc()
	return s.maxSyncSeconds
}

// DeleteVideo removes the record for one video. Unknown videos are ignored.
func (s *TrackerService) DeleteVideo(ctx context.Context, videoID string) error {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return fmt.Errorf("%w: videoId is required", domain.ErrInvalidInput)
	}

	unlock := s.locks.Lock(videoID)
	defer unlock()

	if err := s.progress.Delete(ctx, videoID); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	slog.Info("video progress deleted", "videoId", videoID)
	return nil
}

// ClearAll wipes every progress record.
func (s *TrackerService) ClearAll(ctx context.Context) error {
	if err := s.progress.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	slog.Info("all video progress cleared")
	return nil
}
