package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tubestudy/tracker/internal/domain"
)

// ProgressRepository implements domain.ProgressRepository using gorm.
type ProgressRepository struct {
	db *gorm.DB
}

func (r *ProgressRepository) Get(ctx context.Context, videoID string) (*domain.ProgressRecord, error) {
	var m progressModel
	if err := r.db.WithContext(ctx).Where("video_id = ?", videoID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	p := m.toDomain()
	return &p, nil
}

func (r *ProgressRepository) Save(ctx context.Context, p *domain.ProgressRecord) error {
	m := toProgressModel(p)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "channel", "total_duration_seconds", "last_progress_seconds",
			"study_time_seconds", "highest_progress_percentage", "is_completed", "last_synced_at",
		}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *ProgressRepository) MostRecent(ctx context.Context) (*domain.ProgressRecord, error) {
	var m progressModel
	if err := r.db.WithContext(ctx).Order("last_synced_at DESC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get most recent progress: %w", err)
	}
	p := m.toDomain()
	return &p, nil
}

func (r *ProgressRepository) ListSyncedBetween(ctx context.Context, start, end time.Time) ([]domain.ProgressRecord, error) {
	var models []progressModel
	err := r.db.WithContext(ctx).
		Where("last_synced_at >= ? AND last_synced_at < ?", start.UTC(), end.UTC()).
		Order("last_synced_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list progress in range: %w", err)
	}
	return toProgressRecords(models), nil
}

func (r *ProgressRepository) ListAll(ctx context.Context) ([]domain.ProgressRecord, error) {
	var models []progressModel
	if err := r.db.WithContext(ctx).Order("last_synced_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return toProgressRecords(models), nil
}

func (r *ProgressRepository) Delete(ctx context.Context, videoID string) error {
	if err := r.db.WithContext(ctx).Where("video_id = ?", videoID).Delete(&progressModel{}).Error; err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

func (r *ProgressRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&progressModel{}).Error; err != nil {
		return fmt.Errorf("delete all progress: %w", err)
	}
	return nil
}

func toProgressRecords(models []progressModel) []domain.ProgressRecord {
	records := make([]domain.ProgressRecord, len(models))
	for i, m := range models {
		records[i] = m.toDomain()
	}
	return records
}
