package handler

import (
	"time"

	"github.com/tubestudy/tracker/internal/domain"
	"github.com/tubestudy/tracker/internal/service"
)

const dateLayout = "2006-01-02"

// SyncRequest is the body of POST /api/tracker/sync.
type SyncRequest struct {
	VideoID                 string  `json:"videoId" validate:"required,max=64"`
	Title                   string  `json:"title" validate:"max=500"`
	Channel                 string  `json:"channel" validate:"max=200"`
	TotalDurationSeconds    float64 `json:"totalDurationSeconds" validate:"gte=0"`
	LastProgressSeconds     float64 `json:"lastProgressSeconds" validate:"gte=0"`
	AccumulatedStudySeconds float64 `json:"accumulatedStudySeconds" validate:"gte=0"`
}

func (r SyncRequest) toEvent() domain.SyncEvent {
	return domain.SyncEvent{
		VideoID:                 r.VideoID,
		Title:                   r.Title,
		Channel:                 r.Channel,
		TotalDurationSeconds:    r.TotalDurationSeconds,
		LastProgressSeconds:     r.LastProgressSeconds,
		AccumulatedStudySeconds: r.AccumulatedStudySeconds,
	}
}

// SyncResponseDTO tells the extension whether to show a notification.
type SyncResponseDTO struct {
	RequiresNotification    bool   `json:"requiresNotification"`
	Message                 string `json:"message"`
	IsDistraction           bool   `json:"isDistraction"`
	DistractionMessage      string `json:"distractionMessage,omitempty"`
	DistractionAlertEnabled bool   `json:"distractionAlertEnabled"`
}

func toSyncResponseDTO(r *service.SyncResult) SyncResponseDTO {
	return SyncResponseDTO{
		RequiresNotification:    r.RequiresNotification,
		Message:                 r.Message,
		IsDistraction:           r.IsDistraction,
		DistractionMessage:      r.DistractionMessage,
		DistractionAlertEnabled: r.DistractionAlertEnabled,
	}
}

// SubjectStatDTO is one slice of the subject breakdown.
type SubjectStatDTO struct {
	SubjectName string  `json:"subjectName"`
	Percentage  float64 `json:"percentage"`
	Color       string  `json:"color"`
}

// DashboardStatsDTO is the JSON representation of period stats.
type DashboardStatsDTO struct {
	Period                  string             `json:"period"`
	TotalStudySeconds       float64            `json:"totalStudySeconds"`
	TotalStudyTimeFormatted string             `json:"totalStudyTimeFormatted"`
	TotalStudyHours         float64            `json:"totalStudyHours"`
	WeekGoalPercentage      float64            `json:"weekGoalPercentage"`
	SubjectDistribution     map[string]float64 `json:"subjectDistribution"`
	SubjectStats            []SubjectStatDTO   `json:"subjectStats"`
}

func toDashboardStatsDTO(s *service.DashboardStats) DashboardStatsDTO {
	dto := DashboardStatsDTO{
		Period:                  s.Period,
		TotalStudySeconds:       s.TotalStudySeconds,
		TotalStudyTimeFormatted: s.TotalStudyTimeFormatted,
		TotalStudyHours:         s.TotalStudyHours,
		WeekGoalPercentage:      s.WeekGoalPercentage,
		SubjectDistribution:     make(map[string]float64, len(s.Subjects)),
		SubjectStats:            make([]SubjectStatDTO, len(s.Subjects)),
	}
	for i, subj := range s.Subjects {
		dto.SubjectDistribution[subj.Name] = subj.Percentage
		dto.SubjectStats[i] = SubjectStatDTO{SubjectName: subj.Name, Percentage: subj.Percentage, Color: subj.Color}
	}
	return dto
}

// CourseItemDTO is one row of the course list.
type CourseItemDTO struct {
	VideoID             string `json:"videoId"`
	Title               string `json:"title"`
	Channel             string `json:"channel"`
	Percentage          int    `json:"percentage"`
	StudyMinutes        int    `json:"studyMinutes"`
	IsCompleted         bool   `json:"isCompleted"`
	LastSyncedAt        string `json:"lastSyncedAt"`
	LastProgressTimeAgo string `json:"lastProgressTimeAgo"`
	ContinueWatchURL    string `json:"continueWatchUrl"`
}

func toCourseItemDTOs(items []service.CourseItem) []CourseItemDTO {
	dtos := make([]CourseItemDTO, len(items))
	for i, c := range items {
		dtos[i] = CourseItemDTO{
			VideoID:             c.VideoID,
			Title:               c.Title,
			Channel:             c.Channel,
			Percentage:          c.Percentage,
			StudyMinutes:        c.StudyMinutes,
			IsCompleted:         c.IsCompleted,
			LastSyncedAt:        c.LastSyncedAt.Format(time.RFC3339),
			LastProgressTimeAgo: c.LastProgressTimeAgo,
			ContinueWatchURL:    c.ContinueWatchURL,
		}
	}
	return dtos
}

// ContinueWatchingDTO is the resume card for the most recent video.
type ContinueWatchingDTO struct {
	VideoID                   string `json:"videoId"`
	Title                     string `json:"title"`
	Channel                   string `json:"channel"`
	ThumbnailURL              string `json:"thumbnailUrl"`
	LastProgressTimeFormatted string `json:"lastProgressTimeFormatted"`
	Percentage                int    `json:"percentage"`
	TotalDurationFormatted    string `json:"totalDurationFormatted"`
	ContinueWatchURL          string `json:"continueWatchUrl"`
}

func toContinueWatchingDTO(c *service.ContinueWatching) ContinueWatchingDTO {
	return ContinueWatchingDTO{
		VideoID:                   c.VideoID,
		Title:                     c.Title,
		Channel:                   c.Channel,
		ThumbnailURL:              c.ThumbnailURL,
		LastProgressTimeFormatted: c.LastProgressTimeFormatted,
		Percentage:                c.Percentage,
		TotalDurationFormatted:    c.TotalDurationFormatted,
		ContinueWatchURL:          c.ContinueWatchURL,
	}
}

// StreakDTO is the streak with the notification for this read flattened in.
type StreakDTO struct {
	CurrentStreak       int     `json:"currentStreak"`
	LongestStreak       int     `json:"longestStreak"`
	LastStudyDate       *string `json:"lastStudyDate"`
	StreakStartDate     *string `json:"streakStartDate"`
	LongestStreakDate   *string `json:"longestStreakDate"`
	StreakBroken        bool    `json:"streakBroken"`
	NotificationMessage *string `json:"notificationMessage"`
	NotificationType    *string `json:"notificationType"`
	ShouldNotify        bool    `json:"shouldNotify"`
}

func toStreakDTO(s *service.StreakStatus) StreakDTO {
	dto := StreakDTO{
		CurrentStreak:     s.CurrentStreak,
		LongestStreak:     s.LongestStreak,
		LastStudyDate:     formatDate(s.LastStudyDate),
		StreakStartDate:   formatDate(s.StreakStartDate),
		LongestStreakDate: formatDate(s.LongestStreakDate),
		StreakBroken:      s.StreakBroken,
		ShouldNotify:      s.ShouldNotify,
	}
	if n := s.Notification; n != nil {
		dto.NotificationMessage = &n.Message
		dto.NotificationType = &n.Type
	}
	return dto
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// DailyStatDTO is one day of the analytics series.
type DailyStatDTO struct {
	Day              string `json:"day"`
	DayOfWeek        string `json:"dayOfWeek"`
	StudyTimeSeconds int64  `json:"studyTimeSeconds"`
	VideoCount       int    `json:"videoCount"`
	HasStudied       bool   `json:"hasStudied"`
}

// AnalyticsDTO is the JSON representation of long-range analytics.
type AnalyticsDTO struct {
	TotalStudyTimeSeconds   int64          `json:"totalStudyTimeSeconds"`
	WeeklyStudyTimeSeconds  int64          `json:"weeklyStudyTimeSeconds"`
	MonthlyStudyTimeSeconds int64          `json:"monthlyStudyTimeSeconds"`
	DailyStats              []DailyStatDTO `json:"dailyStats"`
	MostProductiveDay       string         `json:"mostProductiveDay"`
	MostProductiveHour      int            `json:"mostProductiveHour"`
	TotalWatchedVideos      int            `json:"totalWatchedVideos"`
	AverageSessionDuration  float64        `json:"averageSessionDuration"`
}

func toAnalyticsDTO(a *service.Analytics) AnalyticsDTO {
	daily := make([]DailyStatDTO, len(a.DailyStats))
	for i, d := range a.DailyStats {
		daily[i] = DailyStatDTO(d)
	}
	return AnalyticsDTO{
		TotalStudyTimeSeconds:   a.TotalStudyTimeSeconds,
		WeeklyStudyTimeSeconds:  a.WeeklyStudyTimeSeconds,
		MonthlyStudyTimeSeconds: a.MonthlyStudyTimeSeconds,
		DailyStats:              daily,
		MostProductiveDay:       a.MostProductiveDay,
		MostProductiveHour:      a.MostProductiveHour,
		TotalWatchedVideos:      a.TotalWatchedVideos,
		AverageSessionDuration:  a.AverageSessionDuration,
	}
}

// SettingsDTO is used for both reading and replacing settings.
type SettingsDTO struct {
	WeeklyGoalHours          int  `json:"weeklyGoalHours" validate:"min=1,max=168"`
	DistractionAlertEnabled  bool `json:"distractionAlertEnabled"`
	AchievementAlertEnabled  bool `json:"achievementAlertEnabled"`
	DarkModeEnabled          bool `json:"darkModeEnabled"`
	VoiceNotificationEnabled bool `json:"voiceNotificationEnabled"`
	AnimationEnabled         bool `json:"animationEnabled"`
}

func toSettingsDTO(s *domain.Settings) SettingsDTO {
	return SettingsDTO(*s)
}

func (d SettingsDTO) toDomain() domain.Settings {
	return domain.Settings(d)
}

// KeywordDTO is the JSON representation of a distraction keyword.
type KeywordDTO struct {
	ID           int64  `json:"id"`
	Keyword      string `json:"keyword"`
	Category     string `json:"category"`
	AlertMessage string `json:"alertMessage"`
	IsActive     bool   `json:"isActive"`
	IsCustom     bool   `json:"isCustom"`
	CreatedAt    string `json:"createdAt"`
}

func toKeywordDTO(k *domain.DistractionKeyword) KeywordDTO {
	return KeywordDTO{
		ID:           k.ID,
		Keyword:      k.Keyword,
		Category:     k.Category,
		AlertMessage: k.AlertMessage,
		IsActive:     k.IsActive,
		IsCustom:     k.IsCustom,
		CreatedAt:    k.CreatedAt.Format(time.RFC3339),
	}
}

func toKeywordDTOs(keywords []domain.DistractionKeyword) []KeywordDTO {
	dtos := make([]KeywordDTO, len(keywords))
	for i := range keywords {
		dtos[i] = toKeywordDTO(&keywords[i])
	}
	return dtos
}

// CreateKeywordRequest is the body of POST /api/settings/keywords.
type CreateKeywordRequest struct {
	Keyword      string `json:"keyword" validate:"required,max=100"`
	Category     string `json:"category" validate:"max=50"`
	AlertMessage string `json:"alertMessage" validate:"max=500"`
}

// UpdateKeywordRequest is the body of PUT /api/settings/keywords/{id}.
// Omitted fields are left unchanged.
type UpdateKeywordRequest struct {
	Keyword      *string `json:"keyword" validate:"omitempty,max=100"`
	Category     *string `json:"category" validate:"omitempty,max=50"`
	AlertMessage *string `json:"alertMessage" validate:"omitempty,max=500"`
	IsActive     *bool   `json:"isActive"`
}

func (r UpdateKeywordRequest) toPatch() domain.KeywordPatch {
	return domain.KeywordPatch(r)
}
