//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tubestudy/tracker/internal/domain"
	"github.com/tubestudy/tracker/internal/repository/postgres"
)

var _ domain.Database = (*postgres.DB)(nil)

func newTestDB(t *testing.T) *postgres.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "tracker",
			"POSTGRES_PASSWORD": "tracker",
			"POSTGRES_DB":       "tracker",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() { container.Terminate(context.Background()) }) //nolint:errcheck

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=tracker password=tracker dbname=tracker sslmode=disable", host, port.Port())
	db, err := postgres.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestPostgresBackend(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	base := time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)

	t.Run("progress upsert keeps created_at", func(t *testing.T) {
		repo := db.Progress()
		rec := domain.NewProgressRecord(domain.SyncEvent{
			VideoID: "vid1", Title: "Java, Spring Basics", TotalDurationSeconds: 600,
			LastProgressSeconds: 60, AccumulatedStudySeconds: 5,
		}, base)
		require.NoError(t, repo.Save(ctx, rec))

		rec.Apply(domain.SyncEvent{VideoID: "vid1", Title: "Java, Spring Basics", TotalDurationSeconds: 600,
			LastProgressSeconds: 600, AccumulatedStudySeconds: 5}, base.Add(time.Hour))
		require.NoError(t, repo.Save(ctx, rec))

		got, err := repo.Get(ctx, "vid1")
		require.NoError(t, err)
		assert.Equal(t, 10.0, got.StudyTimeSeconds)
		assert.True(t, got.IsCompleted)
		assert.True(t, got.CreatedAt.Equal(base))
		assert.True(t, got.LastSyncedAt.Equal(base.Add(time.Hour)))

		recent, err := repo.MostRecent(ctx)
		require.NoError(t, err)
		assert.Equal(t, "vid1", recent.VideoID)

		inRange, err := repo.ListSyncedBetween(ctx, base, base.Add(30*time.Minute))
		require.NoError(t, err)
		assert.Empty(t, inRange)

		require.NoError(t, repo.DeleteAll(ctx))
		_, err = repo.Get(ctx, "vid1")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("settings get or initialize", func(t *testing.T) {
		repo := db.Settings()
		s, err := repo.GetOrInitialize(ctx, domain.DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSettings(), *s)

		s.WeeklyGoalHours = 8
		s.DistractionAlertEnabled = false
		require.NoError(t, repo.Update(ctx, s))

		again, err := repo.GetOrInitialize(ctx, domain.DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, 8, again.WeeklyGoalHours)
		assert.False(t, again.DistractionAlertEnabled)
	})

	t.Run("streak round trip", func(t *testing.T) {
		repo := db.Streaks()
		s, err := repo.GetOrInitialize(ctx)
		require.NoError(t, err)
		s.Advance(base)
		s.Advance(base.AddDate(0, 0, 1))
		require.NoError(t, repo.Update(ctx, s))

		got, err := repo.GetOrInitialize(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, got.CurrentStreak)
		require.NotNil(t, got.LastStudyDate)
		assert.True(t, got.LastStudyDate.Equal(domain.Date(base.AddDate(0, 0, 1))))
	})

	t.Run("keywords", func(t *testing.T) {
		repo := db.Keywords()
		k := &domain.DistractionKeyword{Keyword: "vlog", Category: "Entertainment", IsActive: false, IsCustom: false}
		require.NoError(t, repo.Create(ctx, k))
		assert.NotZero(t, k.ID)

		active, err := repo.ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		require.NoError(t, repo.Delete(ctx, k.ID))
		assert.ErrorIs(t, repo.Delete(ctx, k.ID), domain.ErrNotFound)
	})
}
