package postgres

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tubestudy/tracker/internal/domain"
)

// DB wraps a gorm connection to Postgres and implements domain.Database.
type DB struct {
	Gorm *gorm.DB

	progress *ProgressRepository
	settings *SettingsRepository
	streaks  *StreakRepository
	keywords *KeywordRepository
}

// New connects to Postgres using the given DSN.
func New(ctx context.Context, dsn string) (*DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{Gorm: gdb}
	db.progress = &ProgressRepository{db: gdb}
	db.settings = &SettingsRepository{db: gdb}
	db.streaks = &StreakRepository{db: gdb}
	db.keywords = &KeywordRepository{db: gdb}
	return db, nil
}

// Migrate creates or updates the tables from the gorm models.
func (db *DB) Migrate(ctx context.Context) error {
	if err := db.Gorm.WithContext(ctx).AutoMigrate(
		&progressModel{},
		&settingsModel{},
		&streakModel{},
		&keywordModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) Progress() domain.ProgressRepository { return db.progress }
func (db *DB) Settings() domain.SettingsRepository { return db.settings }
func (db *DB) Streaks() domain.StreakRepository    { return db.streaks }
func (db *DB) Keywords() domain.KeywordRepository  { return db.keywords }
