package database

import (
	"fmt"
	"path/filepath"

	"jobtrack/internal/config"
	"jobtrack/internal/tracker"
)

// NewFromConfig creates a tracker.Database based on the database config type.
// The sqlite database file is named after the profile so multiple profiles
// can share a data directory.
func NewFromConfig(cfg config.DatabaseConfig, profileID string, clock tracker.Clock) (tracker.Database, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		dbPath := filepath.Join(cfg.DataDir, profileID+".db")
		return NewStore(dbPath, clock)
	case "memory":
		return NewStore(":memory:", clock)
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
