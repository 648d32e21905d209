package database

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/shuldan/artisan/pkg/config"
)

func TestNewPoolFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewMapConfig(map[string]any{
		"database": map[string]any{
			"default": "main",
			"connections": map[string]any{
				"main": map[string]any{
					"driver": "sqlite",
					"dsn":    filepath.Join(dir, "main.db"),
					"pool": map[string]any{
						"max_open_connections": 2,
						"conn_max_lifetime":    "30m",
					},
				},
				"reports": map[string]any{
					"driver": "postgresql",
					"dsn":    "postgres://localhost/reports",
				},
			},
		},
	})

	pool, err := NewPoolFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := pool.Names(); !reflect.DeepEqual(got, []string{"main", "reports"}) {
		t.Errorf("expected sorted names, got %v", got)
	}
	if pool.Default() != "main" {
		t.Errorf("expected default main, got %s", pool.Default())
	}

	db, err := pool.Get("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.Name() != "main" || db.Driver() != "sqlite3" {
		t.Errorf("expected main sqlite3 connection, got %s %s", db.Name(), db.Driver())
	}

	sqlDB := db.(*sqlDatabase)
	if sqlDB.config.maxOpenConns != 2 || sqlDB.config.connMaxLifetime.Minutes() != 30 {
		t.Errorf("expected pool settings from config, got %+v", sqlDB.config)
	}

	reports, err := pool.Get("reports")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reports.Driver() != "postgres" {
		t.Errorf("expected postgres driver, got %s", reports.Driver())
	}

	if err := pool.Close(); err != nil {
		t.Errorf("expected closing unopened connections to succeed, got %v", err)
	}
}

func TestNewPoolFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		conn     map[string]any
		expected error
	}{
		{name: "missing driver", conn: map[string]any{"dsn": "x"}, expected: ErrDriverNotSpecified},
		{name: "missing dsn", conn: map[string]any{"driver": "mysql"}, expected: ErrDSNNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewMapConfig(map[string]any{
				"database": map[string]any{
					"connections": map[string]any{"main": tt.conn},
				},
			})
			_, err := NewPoolFromConfig(cfg)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestNewPoolFromConfig_NoConnections(t *testing.T) {
	pool, err := NewPoolFromConfig(config.NewMapConfig(map[string]any{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := pool.Get(""); !errors.Is(err, ErrConnectionNotFound) {
		t.Errorf("expected ErrConnectionNotFound, got %v", err)
	}
}

func TestPool_Register(t *testing.T) {
	pool := NewPool("primary")

	if err := pool.Register(NewDatabase("primary", "sqlite3", ":memory:")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := pool.Register(NewDatabase("primary", "sqlite3", ":memory:"))
	if !errors.Is(err, ErrConnectionExists) {
		t.Errorf("expected ErrConnectionExists, got %v", err)
	}
}
