package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tubestudy/tracker/internal/domain"
)

// SettingsRepository implements domain.SettingsRepository using SQLite.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite-backed SettingsRepository.
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db.SqlDB}
}

func (r *SettingsRepository) GetOrInitialize(ctx context.Context, defaults domain.Settings) (*domain.Settings, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (id, weekly_goal_hours, distraction_alert_enabled, achievement_alert_enabled,
			dark_mode_enabled, voice_notification_enabled, animation_enabled)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO NOTHING`,
		domain.SettingsRecordID, defaults.WeeklyGoalHours, defaults.DistractionAlertEnabled,
		defaults.AchievementAlertEnabled, defaults.DarkModeEnabled, defaults.VoiceNotificationEnabled,
		defaults.AnimationEnabled,
	)
	if err != nil {
		return nil, fmt.Errorf("initialize settings: %w", err)
	}

	s := &domain.Settings{}
	err = r.db.QueryRowContext(ctx,
		`SELECT weekly_goal_hours, distraction_alert_enabled, achievement_alert_enabled,
			dark_mode_enabled, voice_notification_enabled, animation_enabled
		 FROM settings WHERE id = ?`, domain.SettingsRecordID,
	).Scan(&s.WeeklyGoalHours, &s.DistractionAlertEnabled, &s.AchievementAlertEnabled,
		&s.DarkModeEnabled, &s.VoiceNotificationEnabled, &s.AnimationEnabled)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *domain.Settings) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE settings SET weekly_goal_hours = ?, distraction_alert_enabled = ?, achievement_alert_enabled = ?,
			dark_mode_enabled = ?, voice_notification_enabled = ?, animation_enabled = ?
		 WHERE id = ?`,
		s.WeeklyGoalHours, s.DistractionAlertEnabled, s.AchievementAlertEnabled,
		s.DarkModeEnabled, s.VoiceNotificationEnabled, s.AnimationEnabled, domain.SettingsRecordID,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
