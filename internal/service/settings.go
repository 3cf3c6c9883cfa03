package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/tubestudy/tracker/internal/domain"
)

// MaxWeeklyGoalHours is the number of hours in a week.
const MaxWeeklyGoalHours = 168

// SettingsService handles the singleton user settings.
type SettingsService struct {
	settings domain.SettingsRepository
	mu       sync.Mutex
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settings domain.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the current settings, persisting the defaults on first use.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settings.GetOrInitialize(ctx, domain.DefaultSettings())
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// Update replaces every setting with the given values.
func (s *SettingsService) Update(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	if settings.WeeklyGoalHours < 1 || settings.WeeklyGoalHours > MaxWeeklyGoalHours {
		return nil, fmt.Errorf("%w: weekly goal must be between 1 and %d hours", domain.ErrInvalidInput, MaxWeeklyGoalHours)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Get(ctx); err != nil {
		return nil, err
	}
	if err := s.settings.Update(ctx, &settings); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return &settings, nil
}
