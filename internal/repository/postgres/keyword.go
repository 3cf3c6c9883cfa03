package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tubestudy/tracker/internal/domain"
)

// KeywordRepository implements domain.KeywordRepository using gorm.
type KeywordRepository struct {
	db *gorm.DB
}

func (r *KeywordRepository) ListActive(ctx context.Context) ([]domain.DistractionKeyword, error) {
	var models []keywordModel
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list active keywords: %w", err)
	}
	return toKeywords(models), nil
}

func (r *KeywordRepository) ListAll(ctx context.Context) ([]domain.DistractionKeyword, error) {
	var models []keywordModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}
	return toKeywords(models), nil
}

func (r *KeywordRepository) GetByID(ctx context.Context, id int64) (*domain.DistractionKeyword, error) {
	var m keywordModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get keyword by id: %w", err)
	}
	k := m.toDomain()
	return &k, nil
}

func (r *KeywordRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&keywordModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count keywords: %w", err)
	}
	return int(n), nil
}

func (r *KeywordRepository) Create(ctx context.Context, k *domain.DistractionKeyword) error {
	m := keywordModel{
		Keyword:      k.Keyword,
		Category:     k.Category,
		AlertMessage: k.AlertMessage,
		IsActive:     k.IsActive,
		IsCustom:     k.IsCustom,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert keyword: %w", err)
	}
	k.ID = m.ID
	k.CreatedAt = m.CreatedAt
	return nil
}

func (r *KeywordRepository) Update(ctx context.Context, k *domain.DistractionKeyword) error {
	result := r.db.WithContext(ctx).Model(&keywordModel{}).Where("id = ?", k.ID).Updates(map[string]any{
		"keyword":       k.Keyword,
		"category":      k.Category,
		"alert_message": k.AlertMessage,
		"is_active":     k.IsActive,
	})
	if result.Error != nil {
		return fmt.Errorf("update keyword: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *KeywordRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&keywordModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete keyword: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toKeywords(models []keywordModel) []domain.DistractionKeyword {
	keywords := make([]domain.DistractionKeyword, len(models))
	for i, m := range models {
		keywords[i] = m.toDomain()
	}
	return keywords
}
