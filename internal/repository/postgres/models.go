package postgres

import (
	"time"

	"github.com/tubestudy/tracker/internal/domain"
)

type progressModel struct {
	VideoID                   string    `gorm:"primaryKey"`
	Title                     string    `gorm:"not null"`
	Channel                   string    `gorm:"not null"`
	TotalDurationSeconds      float64   `gorm:"not null"`
	LastProgressSeconds       float64   `gorm:"not null"`
	StudyTimeSeconds          float64   `gorm:"not null"`
	HighestProgressPercentage int       `gorm:"not null"`
	IsCompleted               bool      `gorm:"not null"`
	LastSyncedAt              time.Time `gorm:"not null;index"`
	CreatedAt                 time.Time `gorm:"not null"`
}

func (progressModel) TableName() string { return "video_progress" }

func toProgressModel(p *domain.ProgressRecord) progressModel {
	return progressModel{
		VideoID:                   p.VideoID,
		Title:                     p.Title,
		Channel:                   p.Channel,
		TotalDurationSeconds:      p.TotalDurationSeconds,
		LastProgressSeconds:       p.LastProgressSeconds,
		StudyTimeSeconds:          p.StudyTimeSeconds,
		HighestProgressPercentage: p.HighestProgressPercentage,
		IsCompleted:               p.IsCompleted,
		LastSyncedAt:              p.LastSyncedAt.UTC(),
		CreatedAt:                 p.CreatedAt.UTC(),
	}
}

func (m progressModel) toDomain() domain.ProgressRecord {
	return domain.ProgressRecord{
		VideoID:                   m.VideoID,
		Title:                     m.Title,
		Channel:                   m.Channel,
		TotalDurationSeconds:      m.TotalDurationSeconds,
		LastProgressSeconds:       m.LastProgressSeconds,
		StudyTimeSeconds:          m.StudyTimeSeconds,
		HighestProgressPercentage: m.HighestProgressPercentage,
		IsCompleted:               m.IsCompleted,
		LastSyncedAt:              m.LastSyncedAt.UTC(),
		CreatedAt:                 m.CreatedAt.UTC(),
	}
}

type settingsModel struct {
	ID                       int  `gorm:"primaryKey;autoIncrement:false"`
	WeeklyGoalHours          int  `gorm:"not null"`
	DistractionAlertEnabled  bool `gorm:"not null"`
	AchievementAlertEnabled  bool `gorm:"not null"`
	DarkModeEnabled          bool `gorm:"not null"`
	VoiceNotificationEnabled bool `gorm:"not null"`
	AnimationEnabled         bool `gorm:"not null"`
}

func (settingsModel) TableName() string { return "settings" }

func toSettingsModel(s *domain.Settings) settingsModel {
	return settingsModel{
		ID:                       domain.SettingsRecordID,
		WeeklyGoalHours:          s.WeeklyGoalHours,
		DistractionAlertEnabled:  s.DistractionAlertEnabled,
		AchievementAlertEnabled:  s.AchievementAlertEnabled,
		DarkModeEnabled:          s.DarkModeEnabled,
		VoiceNotificationEnabled: s.VoiceNotificationEnabled,
		AnimationEnabled:         s.AnimationEnabled,
	}
}

func (m settingsModel) toDomain() *domain.Settings {
	return &domain.Settings{
		WeeklyGoalHours:          m.WeeklyGoalHours,
		DistractionAlertEnabled:  m.DistractionAlertEnabled,
		AchievementAlertEnabled:  m.AchievementAlertEnabled,
		DarkModeEnabled:          m.DarkModeEnabled,
		VoiceNotificationEnabled: m.VoiceNotificationEnabled,
		AnimationEnabled:         m.AnimationEnabled,
	}
}

type streakModel struct {
	ID                int        `gorm:"primaryKey;autoIncrement:false"`
	CurrentStreak     int        `gorm:"not null"`
	LongestStreak     int        `gorm:"not null"`
	LastStudyDate     *time.Time `gorm:"type:date"`
	StreakStartDate   *time.Time `gorm:"type:date"`
	LongestStreakDate *time.Time `gorm:"type:date"`
	StreakBroken      bool       `gorm:"not null"`
}

func (streakModel) TableName() string { return "study_streak" }

func toStreakModel(s *domain.StreakRecord) streakModel {
	return streakModel{
		ID:                domain.StreakRecordID,
		CurrentStreak:     s.CurrentStreak,
		LongestStreak:     s.LongestStreak,
		LastStudyDate:     s.LastStudyDate,
		StreakStartDate:   s.StreakStartDate,
		LongestStreakDate: s.LongestStreakDate,
		StreakBroken:      s.StreakBroken,
	}
}

func (m streakModel) toDomain() *domain.StreakRecord {
	return &domain.StreakRecord{
		CurrentStreak:     m.CurrentStreak,
		LongestStreak:     m.LongestStreak,
		LastStudyDate:     normalizeDate(m.LastStudyDate),
		StreakStartDate:   normalizeDate(m.StreakStartDate),
		LongestStreakDate: normalizeDate(m.LongestStreakDate),
		StreakBroken:      m.StreakBroken,
	}
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.Date(*t)
	return &d
}

type keywordModel struct {
	ID           int64     `gorm:"primaryKey"`
	Keyword      string    `gorm:"not null"`
	Category     string    `gorm:"not null"`
	AlertMessage string    `gorm:"not null"`
	IsActive     bool      `gorm:"not null;index"`
	IsCustom     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (keywordModel) TableName() string { return "distraction_keywords" }

func (m keywordModel) toDomain() domain.DistractionKeyword {
	return domain.DistractionKeyword{
		ID:           m.ID,
		Keyword:      m.Keyword,
		Category:     m.Category,
		AlertMessage: m.AlertMessage,
		IsActive:     m.IsActive,
		IsCustom:     m.IsCustom,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}
