package domain_test

import (
	"testing"
	"time"

	"github.com/tubestudy/tracker/internal/domain"
)

func day(offset int) time.Time {
	return time.Date(2025, 3, 1, 15, 30, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestStreakAdvance_FirstStudy(t *testing.T) {
	var s domain.StreakRecord
	if !s.Advance(day(0)) {
		t.Fatal("expected first study to change the record")
	}

	if s.CurrentStreak != 1 || s.LongestStreak != 1 {
		t.Fatalf("expected 1/1, got %d/%d", s.CurrentStreak, s.LongestStreak)
	}
	if s.StreakBroken {
		t.Fatal("expected streak not broken")
	}
	want := domain.Date(day(0))
	if !s.LastStudyDate.Equal(want) || !s.StreakStartDate.Equal(want) || !s.LongestStreakDate.Equal(want) {
		t.Fatalf("expected all dates %v, got last=%v start=%v longest=%v", want, s.LastStudyDate, s.StreakStartDate, s.LongestStreakDate)
	}
}

func TestStreakAdvance_ConsecutiveDays(t *testing.T) {
	var s domain.StreakRecord
	for i := range 3 {
		s.Advance(day(i))
	}

	if s.CurrentStreak != 3 {
		t.Fatalf("expected streak 3, got %d", s.CurrentStreak)
	}
	if s.LongestStreak != 3 {
		t.Fatalf("expected longest 3, got %d", s.LongestStreak)
	}
	if !s.LongestStreakDate.Equal(domain.Date(day(2))) {
		t.Fatalf("expected longest streak date %v, got %v", domain.Date(day(2)), s.LongestStreakDate)
	}
	if !s.StreakStartDate.Equal(domain.Date(day(0))) {
		t.Fatalf("expected start date unchanged, got %v", s.StreakStartDate)
	}
}

func TestStreakAdvance_SameDayIsIdempotent(t *testing.T) {
	var s domain.StreakRecord
	s.Advance(day(0))
	if s.Advance(day(0).Add(3 * time.Hour)) {
		t.Fatal("expected second study on the same day to be a no-op")
	}
	if s.CurrentStreak != 1 {
		t.Fatalf("expected streak 1, got %d", s.CurrentStreak)
	}
}

func TestStreakAdvance_GapBreaksStreak(t *testing.T) {
	var s domain.StreakRecord
	s.Advance(day(0))
	s.Advance(day(1))
	s.Advance(day(3))

	if s.CurrentStreak != 1 {
		t.Fatalf("expected streak 1, got %d", s.CurrentStreak)
	}
	if !s.StreakBroken {
		t.Fatal("expected streak broken")
	}
	if s.LongestStreak != 2 {
		t.Fatalf("expected longest 2 to survive, got %d", s.LongestStreak)
	}
	if !s.StreakStartDate.Equal(domain.Date(day(3))) {
		t.Fatalf("expected start date reset, got %v", s.StreakStartDate)
	}

	s.Advance(day(4))
	if s.StreakBroken {
		t.Fatal("expected broken flag cleared on the next consecutive day")
	}
}

func TestStreakAdvance_LongestNeverBelowCurrent(t *testing.T) {
	var s domain.StreakRecord
	days := []int{0, 1, 2, 5, 6, 7, 8, 9, 20}
	for _, d := range days {
		s.Advance(day(d))
		if s.LongestStreak < s.CurrentStreak {
			t.Fatalf("day %d: longest %d < current %d", d, s.LongestStreak, s.CurrentStreak)
		}
	}
	if s.LongestStreak != 5 {
		t.Fatalf("expected longest 5, got %d", s.LongestStreak)
	}
}

func TestStreakReset(t *testing.T) {
	var s domain.StreakRecord
	s.Advance(day(0))
	s.Advance(day(1))
	s.Reset()

	if s.CurrentStreak != 0 || s.LastStudyDate != nil || !s.StreakBroken {
		t.Fatalf("unexpected state after reset: %+v", s)
	}
	if s.LongestStreak != 2 {
		t.Fatalf("expected longest streak kept, got %d", s.LongestStreak)
	}

	s.Advance(day(5))
	if s.CurrentStreak != 1 || s.StreakBroken {
		t.Fatalf("expected fresh streak after reset, got %+v", s)
	}
}

func TestStreakNotification(t *testing.T) {
	tests := []struct {
		name     string
		streak   domain.StreakRecord
		wantType string
		wantOK   bool
	}{
		{"none", domain.StreakRecord{CurrentStreak: 3}, "", false},
		{"week", domain.StreakRecord{CurrentStreak: 7}, domain.NotificationMilestone, true},
		{"two weeks", domain.StreakRecord{CurrentStreak: 14}, domain.NotificationMilestone, true},
		{"month", domain.StreakRecord{CurrentStreak: 30}, domain.NotificationMilestone, true},
		{"hundred", domain.StreakRecord{CurrentStreak: 100}, domain.NotificationMilestone, true},
		{"broken", domain.StreakRecord{CurrentStreak: 1, StreakBroken: true}, domain.NotificationEncouragement, true},
		{"broken after reset", domain.StreakRecord{CurrentStreak: 0, StreakBroken: true}, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := tc.streak.Notification()
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if n.Type != tc.wantType {
				t.Fatalf("expected type %q, got %q", tc.wantType, n.Type)
			}
			if ok && n.Message == "" {
				t.Fatal("expected a message")
			}
		})
	}
}
