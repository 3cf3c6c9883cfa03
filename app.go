package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tubestudy/tracker/internal/clock"
	"github.com/tubestudy/tracker/internal/config"
	"github.com/tubestudy/tracker/internal/domain"
	"github.com/tubestudy/tracker/internal/handler"
	"github.com/tubestudy/tracker/internal/logging"
	"github.com/tubestudy/tracker/internal/repository/postgres"
	"github.com/tubestudy/tracker/internal/repository/sqlite"
	"github.com/tubestudy/tracker/internal/service"
)

// app holds the opened database and the services built on it.
type app struct {
	cfg      *config.Config
	db       domain.Database
	services handler.Services
	logClose io.Closer
}

// setupLogging installs the configured logger as the slog default.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closer, nil
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (domain.Database, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DSN)
	default:
		return sqlite.New(cfg.Path)
	}
}

// newApp opens and migrates the database and wires the services.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logClose, err := setupLogging(cfg)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		logClose.Close()
		return nil, err
	}

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		logClose.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		logClose.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database ready", "driver", cfg.Database.Driver)

	clk := clock.System{Location: loc}
	settings := service.NewSettingsService(db.Settings())
	streaks := service.NewStreakService(db.Streaks(), settings, clk)

	return &app{
		cfg: cfg,
		db:  db,
		services: handler.Services{
			Tracker:   service.NewTrackerService(db.Progress(), streaks, settings, clk, cfg.Tracker.MaxSyncSeconds),
			Streaks:   streaks,
			Dashboard: service.NewDashboardService(db.Progress(), settings, clk),
			Export:    service.NewExportService(db.Progress(), clk),
			Settings:  settings,
			Keywords:  service.NewKeywordService(db.Keywords()),
		},
		logClose: logClose,
	}, nil
}

func (a *app) Close() error {
	err := a.db.Close()
	a.logClose.Close()
	return err
}
