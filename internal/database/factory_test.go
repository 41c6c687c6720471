package database

import (
	"testing"

	"jobtrack/internal/config"
)

func TestNewFromConfig(t *testing.T) {
	t.Run("memory database", func(t *testing.T) {
		cfg := config.DatabaseConfig{Type: "memory"}
		got, err := NewFromConfig(cfg, "profile-123", nil)

		if err != nil {
			t.Errorf("NewFromConfig() unexpected error: %v", err)
			return
		}

		if got == nil {
			t.Error("NewFromConfig() returned nil")
		}

		if got != nil {
			got.Close()
		}
	})

	t.Run("sqlite database", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			Type:    "sqlite",
			DataDir: t.TempDir(),
		}
		got, err := NewFromConfig(cfg, "profile-123", nil)

		if err != nil {
			t.Errorf("NewFromConfig() unexpected error: %v", err)
			return
		}

		if got == nil {
			t.Error("NewFromConfig() returned nil")
		}

		if got != nil {
			got.Close()
		}
	})

	t.Run("sqlite database without data_dir", func(t *testing.T) {
		cfg := config.DatabaseConfig{Type: "sqlite"}
		got, err := NewFromConfig(cfg, "profile-123", nil)

		if err == nil {
			t.Error("NewFromConfig() expected error for missing data_dir, got nil")
		}

		if got != nil {
			t.Error("NewFromConfig() should return nil on error")
			got.Close()
		}
	})

	t.Run("unknown database type", func(t *testing.T) {
		cfg := config.DatabaseConfig{Type: "unknown"}
		got, err := NewFromConfig(cfg, "profile-123", nil)

		if err == nil {
			t.Error("NewFromConfig() expected error for unknown type, got nil")
		}

		if got != nil {
			t.Error("NewFromConfig() should return nil on error")
			got.Close()
		}
	})
}
