package domain

import "context"

// SettingsRecordID is the fixed key of the singleton settings row.
const SettingsRecordID = 1

// Settings holds the user's preferences.
type Settings struct {
	WeeklyGoalHours          int
	DistractionAlertEnabled  bool
	AchievementAlertEnabled  bool
	DarkModeEnabled          bool
	VoiceNotificationEnabled bool
	AnimationEnabled         bool
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		WeeklyGoalHours:          20,
		DistractionAlertEnabled:  true,
		AchievementAlertEnabled:  true,
		DarkModeEnabled:          true,
		VoiceNotificationEnabled: false,
		AnimationEnabled:         true,
	}
}

// SettingsRepository defines persistence operations for the singleton settings.
type SettingsRepository interface {
	// GetOrInitialize returns the settings row, persisting defaults first
	// when it does not exist yet.
	GetOrInitialize(ctx context.Context, defaults Settings) (*Settings, error)
	Update(ctx context.Context, settings *Settings) error
}
