package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tubestudy/tracker/internal/domain"
)

// SettingsRepository implements domain.SettingsRepository using gorm.
type SettingsRepository struct {
	db *gorm.DB
}

func (r *SettingsRepository) GetOrInitialize(ctx context.Context, defaults domain.Settings) (*domain.Settings, error) {
	tx := r.db.WithContext(ctx)
	m := toSettingsModel(&defaults)
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("initialize settings: %w", err)
	}

	var got settingsModel
	if err := tx.First(&got, domain.SettingsRecordID).Error; err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return got.toDomain(), nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *domain.Settings) error {
	m := toSettingsModel(s)
	result := r.db.WithContext(ctx).Model(&settingsModel{}).
		Where("id = ?", domain.SettingsRecordID).
		Select("*").Omit("id").
		Updates(&m)
	if result.Error != nil {
		return fmt.Errorf("update settings: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StreakRepository implements domain.StreakRepository using gorm.
type StreakRepository struct {
	db *gorm.DB
}

func (r *StreakRepository) GetOrInitialize(ctx context.Context) (*domain.StreakRecord, error) {
	tx := r.db.WithContext(ctx)
	m := streakModel{ID: domain.StreakRecordID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("initialize streak: %w", err)
	}

	var got streakModel
	if err := tx.First(&got, domain.StreakRecordID).Error; err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}
	return got.toDomain(), nil
}

func (r *StreakRepository) Update(ctx context.Context, s *domain.StreakRecord) error {
	m := toStreakModel(s)
	result := r.db.WithContext(ctx).Model(&streakModel{}).
		Where("id = ?", domain.StreakRecordID).
		Select("*").Omit("id").
		Updates(&m)
	if result.Error != nil {
		return fmt.Errorf("update streak: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var (
	_ domain.SettingsRepository = (*SettingsRepository)(nil)
	_ domain.StreakRepository   = (*StreakRepository)(nil)
)
