package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/tubestudy/tracker/internal/clock"
	"github.com/tubestudy/tracker/internal/domain"
	"github.com/tubestudy/tracker/internal/metrics"
)

// StreakStatus is the streak as shown to the user, with the notification
// derived for this read.
type StreakStatus struct {
	domain.StreakRecord
	Notification *domain.StreakNotification
	ShouldNotify bool
}

// StreakService advances and reports the daily study streak.
type StreakService struct {
	streaks  domain.StreakRepository
	settings *SettingsService
	clock    clock.Clock
	mu       sync.Mutex
}

// NewStreakService creates a new StreakService. Calendar days are taken in
// the location of the times clk returns.
func NewStreakService(streaks domain.StreakRepository, settings *SettingsService, clk clock.Clock) *StreakService {
	return &StreakService{streaks: streaks, settings: settings, clock: clk}
}

// RecordStudy marks today as a study day.
func (s *StreakService) RecordStudy(ctx context.Context) (*domain.StreakRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	streak, err := s.streaks.GetOrInitialize(ctx)
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}

	if streak.Advance(s.clock.Now()) {
		if err := s.streaks.Update(ctx, streak); err != nil {
			return nil, fmt.Errorf("update streak: %w", err)
		}
		metrics.CurrentStreak.Set(float64(streak.CurrentStreak))
	}
	return streak, nil
}

// Get returns the streak and any notification to surface. Milestones are
// only flagged for delivery when achievement alerts are enabled.
func (s *StreakService) Get(ctx context.Context) (*StreakStatus, error) {
	streak, err := s.streaks.GetOrInitialize(ctx)
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}

	status := &StreakStatus{StreakRecord: *streak}
	n, ok := streak.Notification()
	if !ok {
		return status, nil
	}

	status.Notification = &n
	status.ShouldNotify = true
	if n.Type == domain.NotificationMilestone {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		status.ShouldNotify = settings.AchievementAlertEnabled
	}
	return status, nil
}

// Reset clears the current streak. The longest streak is kept.
func (s *StreakService) Reset(ctx context.Context) (*domain.StreakRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	streak, err := s.streaks.GetOrInitialize(ctx)
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}

	streak.Reset()
	if err := s.streaks.Update(ctx, streak); err != nil {
		return nil, fmt.Errorf("reset streak: %w", err)
	}
	metrics.CurrentStreak.Set(0)
	return streak, nil
}
