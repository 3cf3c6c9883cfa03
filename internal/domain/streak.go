package domain

import (
	"context"
	"time"
)

// StreakRecordID is the fixed key of the singleton streak row.
const StreakRecordID = 1

// Streak notification types.
const (
	NotificationMilestone     = "milestone"
	NotificationEncouragement = "encouragement"
)

var streakMilestones = map[int]string{
	7:   "One full week of studying in a row. Keep it going!",
	14:  "Two weeks straight. Your consistency is paying off!",
	30:  "30 days in a row. Studying is a habit now!",
	100: "100-day streak. That is real dedication!",
}

const encouragementMessage = "Your streak was reset, but today is a fresh start. Let's build it back up!"

// StreakRecord tracks consecutive calendar days with at least one sync.
// Dates are calendar days stored as UTC midnight.
type StreakRecord struct {
	CurrentStreak     int
	LongestStreak     int
	LastStudyDate     *time.Time
	StreakStartDate   *time.Time
	LongestStreakDate *time.Time
	StreakBroken      bool
}

// StreakNotification is derived from a streak at read time and never stored.
type StreakNotification struct {
	Type    string
	Message string
}

// Date returns the calendar day of t, in t's own location, as UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Advance records a study event on the given day and reports whether the
// record changed. Repeated calls on the same day are no-ops.
func (s *StreakRecord) Advance(today time.Time) bool {
	today = Date(today)

	switch {
	case s.LastStudyDate == nil:
		s.CurrentStreak = 1
		s.StreakStartDate = &today
		s.StreakBroken = false
	case s.LastStudyDate.Equal(today):
		return false
	case s.LastStudyDate.AddDate(0, 0, 1).Equal(today):
		s.CurrentStreak++
		s.StreakBroken = false
	default:
		s.CurrentStreak = 1
		s.StreakStartDate = &today
		s.StreakBroken = true
	}

	s.LastStudyDate = &today
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
		s.LongestStreakDate = &today
	}
	return true
}

// Reset clears the current streak while keeping the longest-streak record.
func (s *StreakRecord) Reset() {
	s.CurrentStreak = 0
	s.LastStudyDate = nil
	s.StreakBroken = true
}

// Notification returns the message to surface for the current streak, if any.
func (s *StreakRecord) Notification() (StreakNotification, bool) {
	if msg, ok := streakMilestones[s.CurrentStreak]; ok {
		return StreakNotification{Type: NotificationMilestone, Message: msg}, true
	}
	if s.StreakBroken && s.CurrentStreak == 1 {
		return StreakNotification{Type: NotificationEncouragement, Message: encouragementMessage}, true
	}
	return StreakNotification{}, false
}

// StreakRepository defines persistence operations for the singleton streak.
type StreakRepository interface {
	// GetOrInitialize returns the streak row, creating an empty one if needed.
	GetOrInitialize(ctx context.Context) (*StreakRecord, error)
	Update(ctx context.Context, streak *StreakRecord) error
}
