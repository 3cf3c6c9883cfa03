package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/tubestudy/tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first migration run: %v", err)
	}

	// Verify the progress table exists by inserting a row.
	_, err := db.ExecContext(ctx,
		"INSERT INTO video_progress (video_id, last_synced_at, created_at) VALUES (?, ?, ?)",
		"abc123", "2025-01-01T00:00:00.000000000Z", "2025-01-01T00:00:00.000000000Z",
	)
	if err != nil {
		t.Fatalf("insert into video_progress: %v", err)
	}

	// The singleton tables only accept id 1.
	if _, err := db.ExecContext(ctx, "INSERT INTO settings (id) VALUES (2)"); err == nil {
		t.Fatal("expected settings id check constraint to reject id 2")
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 migrations recorded, got %d", count)
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("second run (idempotent): %v", err)
	}

	pending, err := migrations.Pending(ctx, db)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending migrations, got %v", pending)
	}
}

func TestList_BeforeRun(t *testing.T) {
	db := openMemoryDB(t)

	statuses, err := migrations.List(context.Background(), db)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(statuses) != 3 {
		t.Fatalf("expected 3 migration files, got %d", len(statuses))
	}
	for i := 1; i < len(statuses); i++ {
		if statuses[i-1].File >= statuses[i].File {
			t.Fatalf("expected sorted files, got %v", statuses)
		}
	}
	for _, s := range statuses {
		if s.Applied {
			t.Fatalf("expected %s to be pending", s.File)
		}
	}
}
