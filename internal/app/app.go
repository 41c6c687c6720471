package app

import (
	"fmt"
	"os"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/database"
	"jobtrack/internal/tracker"
)

// TrackerApp is the application layer between the CLI and the tracker service.
// It constructs all dependencies from config and manages the database and log
// file lifecycle on Close.
type TrackerApp struct {
	cfg     *config.Config
	db      tracker.Database
	service *tracker.Service
	logFile *os.File
}

// NewTrackerApp creates a fully wired TrackerApp from the given config.
// operation identifies the CLI command being run (e.g. "contact add").
// The caller must call Close when done.
func NewTrackerApp(cfg *config.Config, operation string) (*TrackerApp, error) {
	clock := tracker.RealClock{}

	db, err := database.NewFromConfig(cfg.Database, cfg.ProfileID, clock)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	if err := db.CheckMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database schema out of date: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	logger.Info("starting operation", "operation", operation, "profile", cfg.ProfileID)

	svc := tracker.NewService(db, &slogAdapter{l: logger}, clock)

	return &TrackerApp{
		cfg:     cfg,
		db:      db,
		service: svc,
		logFile: logFile,
	}, nil
}

// Service returns the tracker service for command handlers.
func (a *TrackerApp) Service() *tracker.Service {
	return a.service
}

// Backup writes a complete copy of the database to destPath.
func (a *TrackerApp) Backup(destPath string) error {
	if err := a.db.BackupTo(destPath); err != nil {
		return fmt.Errorf("backing up database: %w", err)
	}
	return nil
}

// Close closes the database and the log file.
func (a *TrackerApp) Close() error {
	var firstErr error

	if err := a.db.Close(); err != nil {
		firstErr = fmt.Errorf("closing database: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
