package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tubestudy/tracker/internal/domain"
)

const keywordColumns = `id, keyword, category, alert_message, is_active, is_custom, created_at`

// KeywordRepository implements domain.KeywordRepository using SQLite.
type KeywordRepository struct {
	db *sql.DB
}

// NewKeywordRepository creates a new SQLite-backed KeywordRepository.
func NewKeywordRepository(db *DB) *KeywordRepository {
	return &KeywordRepository{db: db.SqlDB}
}

func (r *KeywordRepository) ListActive(ctx context.Context) ([]domain.DistractionKeyword, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+keywordColumns+` FROM distraction_keywords WHERE is_active = TRUE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list active keywords: %w", err)
	}
	defer rows.Close()
	return scanKeywords(rows)
}

func (r *KeywordRepository) ListAll(ctx context.Context) ([]domain.DistractionKeyword, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+keywordColumns+` FROM distraction_keywords ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}
	defer rows.Close()
	return scanKeywords(rows)
}

func (r *KeywordRepository) GetByID(ctx context.Context, id int64) (*domain.DistractionKeyword, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+keywordColumns+` FROM distraction_keywords WHERE id = ?`, id)
	k, err := scanKeyword(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get keyword by id: %w", err)
	}
	return k, nil
}

func (r *KeywordRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM distraction_keywords").Scan(&n); err != nil {
		return 0, fmt.Errorf("count keywords: %w", err)
	}
	return n, nil
}

func (r *KeywordRepository) Create(ctx context.Context, k *domain.DistractionKeyword) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO distraction_keywords (keyword, category, alert_message, is_active, is_custom, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		k.Keyword, k.Category, k.AlertMessage, k.IsActive, k.IsCustom, formatTimestamp(now),
	)
	if err != nil {
		return fmt.Errorf("insert keyword: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	k.ID = id
	k.CreatedAt = now
	return nil
}

func (r *KeywordRepository) Update(ctx context.Context, k *domain.DistractionKeyword) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE distraction_keywords SET keyword = ?, category = ?, alert_message = ?, is_active = ?
		 WHERE id = ?`,
		k.Keyword, k.Category, k.AlertMessage, k.IsActive, k.ID,
	)
	if err != nil {
		return fmt.Errorf("update keyword: %w", err)
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

func (r *KeywordRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM distraction_keywords WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete keyword: %w", err)
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

func scanKeyword(row rowScanner) (*domain.DistractionKeyword, error) {
	var (
		k         domain.DistractionKeyword
		createdAt string
	)
	if err := row.Scan(&k.ID, &k.Keyword, &k.Category, &k.AlertMessage, &k.IsActive, &k.IsCustom, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if k.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	return &k, nil
}

func scanKeywords(rows *sql.Rows) ([]domain.DistractionKeyword, error) {
	var keywords []domain.DistractionKeyword
	for rows.Next() {
		k, err := scanKeyword(rows)
		if err != nil {
			return nil, fmt.Errorf("scan keyword: %w", err)
		}
		keywords = append(keywords, *k)
	}
	return keywords, rows.Err()
}
