package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tubestudy/tracker/internal/domain"
)

const progressColumns = `video_id, title, channel, total_duration_seconds, last_progress_seconds,
	study_time_seconds, highest_progress_percentage, is_completed, last_synced_at, created_at`

// ProgressRepository implements domain.ProgressRepository using SQLite.
type ProgressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new SQLite-backed ProgressRepository.
func NewProgressRepository(db *DB) *ProgressRepository {
	return &ProgressRepository{db: db.SqlDB}
}

func (r *ProgressRepository) Get(ctx context.Context, videoID string) (*domain.ProgressRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+progressColumns+` FROM video_progress WHERE video_id = ?`, videoID)
	p, err := scanProgress(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

func (r *ProgressRepository) Save(ctx context.Context, p *domain.ProgressRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO video_progress (`+progressColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (video_id) DO UPDATE SET
			title = excluded.title,
			channel = excluded.channel,
			total_duration_seconds = excluded.total_duration_seconds,
			last_progress_seconds = excluded.last_progress_seconds,
			study_time_seconds = excluded.study_time_seconds,
			highest_progress_percentage = excluded.highest_progress_percentage,
			is_completed = excluded.is_completed,
			last_synced_at = excluded.last_synced_at`,
		p.VideoID, p.Title, p.Channel, p.TotalDurationSeconds, p.LastProgressSeconds,
		p.StudyTimeSeconds, p.HighestProgressPercentage, p.IsCompleted,
		formatTimestamp(p.LastSyncedAt), formatTimestamp(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *ProgressRepository) MostRecent(ctx context.Context) (*domain.ProgressRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+progressColumns+` FROM video_progress ORDER BY last_synced_at DESC LIMIT 1`)
	p, err := scanProgress(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get most recent progress: %w", err)
	}
	return p, nil
}

func (r *ProgressRepository) ListSyncedBetween(ctx context.Context, start, end time.Time) ([]domain.ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+progressColumns+` FROM video_progress
		 WHERE last_synced_at >= ? AND last_synced_at < ?
		 ORDER BY last_synced_at DESC`,
		formatTimestamp(start), formatTimestamp(end))
	if err != nil {
		return nil, fmt.Errorf("list progress in range: %w", err)
	}
	defer rows.Close()
	return scanProgressRows(rows)
}

func (r *ProgressRepository) ListAll(ctx context.Context) ([]domain.ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+progressColumns+` FROM video_progress ORDER BY last_synced_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()
	return scanProgressRows(rows)
}

func (r *ProgressRepository) Delete(ctx context.Context, videoID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM video_progress WHERE video_id = ?", videoID); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

func (r *ProgressRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM video_progress"); err != nil {
		return fmt.Errorf("delete all progress: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgress(row rowScanner) (*domain.ProgressRecord, error) {
	var (
		p                   domain.ProgressRecord
		syncedAt, createdAt string
	)
	err := row.Scan(&p.VideoID, &p.Title, &p.Channel, &p.TotalDurationSeconds, &p.LastProgressSeconds,
		&p.StudyTimeSeconds, &p.HighestProgressPercentage, &p.IsCompleted, &syncedAt, &createdAt)
	if err != nil {
		return nil, err
	}
	if p.LastSyncedAt, err = parseTimestamp(syncedAt); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProgressRows(rows *sql.Rows) ([]domain.ProgressRecord, error) {
	var records []domain.ProgressRecord
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		records = append(records, *p)
	}
	return records, rows.Err()
}
