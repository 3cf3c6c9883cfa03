package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tubestudy/tracker/internal/domain"
)

// StreakRepository implements domain.StreakRepository using SQLite.
type StreakRepository struct {
	db *sql.DB
}

// NewStreakRepository creates a new SQLite-backed StreakRepository.
func NewStreakRepository(db *DB) *StreakRepository {
	return &StreakRepository{db: db.SqlDB}
}

func (r *StreakRepository) GetOrInitialize(ctx context.Context) (*domain.StreakRecord, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO study_streak (id) VALUES (?) ON CONFLICT (id) DO NOTHING`, domain.StreakRecordID)
	if err != nil {
		return nil, fmt.Errorf("initialize streak: %w", err)
	}

	var (
		s                         domain.StreakRecord
		lastStudy, start, longest sql.NullString
	)
	err = r.db.QueryRowContext(ctx,
		`SELECT current_streak, longest_streak, last_study_date, streak_start_date,
			longest_streak_date, streak_broken
		 FROM study_streak WHERE id = ?`, domain.StreakRecordID,
	).Scan(&s.CurrentStreak, &s.LongestStreak, &lastStudy, &start, &longest, &s.StreakBroken)
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}

	if s.LastStudyDate, err = parseDate(lastStudy); err != nil {
		return nil, err
	}
	if s.StreakStartDate, err = parseDate(start); err != nil {
		return nil, err
	}
	if s.LongestStreakDate, err = parseDate(longest); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StreakRepository) Update(ctx context.Context, s *domain.StreakRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE study_streak SET current_streak = ?, longest_streak = ?, last_study_date = ?,
			streak_start_date = ?, longest_streak_date = ?, streak_broken = ?
		 WHERE id = ?`,
		s.CurrentStreak, s.LongestStreak, formatDate(s.LastStudyDate), formatDate(s.StreakStartDate),
		formatDate(s.LongestStreakDate), s.StreakBroken, domain.StreakRecordID,
	)
	if err != nil {
		return fmt.Errorf("update streak: %w", err)
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
