package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tubestudy/tracker/internal/domain"
)

func TestSettingsService_GetReturnsDefaults(t *testing.T) {
	s := newTestServices(t)

	got, err := s.settings.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(domain.DefaultSettings(), *got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsService_Update(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	want := domain.Settings{
		WeeklyGoalHours:          10,
		DistractionAlertEnabled:  false,
		AchievementAlertEnabled:  true,
		DarkModeEnabled:          false,
		VoiceNotificationEnabled: true,
		AnimationEnabled:         false,
	}
	if _, err := s.settings.Update(ctx, want); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsService_UpdateRejectsGoalOutOfRange(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	for _, hours := range []int{0, -3, 169} {
		settings := domain.DefaultSettings()
		settings.WeeklyGoalHours = hours
		if _, err := s.settings.Update(ctx, settings); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("hours=%d: expected ErrInvalidInput, got %v", hours, err)
		}
	}

	got, err := s.settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.WeeklyGoalHours != 20 {
		t.Fatalf("expected goal to stay at 20, got %d", got.WeeklyGoalHours)
	}
}
