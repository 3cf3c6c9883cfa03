package domain

import "context"

// Database defines lifecycle operations for the underlying database and
// hands out the repositories backed by it. Each implementation (SQLite,
// Postgres) owns its own migration strategy, so the whole backend is
// swappable.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error

	Progress() ProgressRepository
	Settings() SettingsRepository
	Streaks() StreakRepository
	Keywords() KeywordRepository
}
