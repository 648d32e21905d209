package database

import (
	"context"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDatabase(t *testing.T, name string) Database {
	t.Helper()

	db := NewDatabase(name, "sqlite", filepath.Join(t.TempDir(), name+".db"), WithRetry(0, 0))
	if err := db.Connect(context.Background()); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func openTestRunner(t *testing.T) (*Runner, Database) {
	t.Helper()

	db := openTestDatabase(t, "primary")
	runner, err := db.Runner()
	if err != nil {
		t.Fatalf("failed to get runner: %v", err)
	}
	return runner, db
}

func usersMigration() Migration {
	return CreateMigration("2024_01_01_000001", "create users table").
		CreateTable("users", "id INTEGER PRIMARY KEY", "name TEXT NOT NULL").
		Build()
}

func postsMigration() Migration {
	return CreateMigration("2024_01_02_000001", "create posts table").
		CreateTable("posts", "id INTEGER PRIMARY KEY", "user_id INTEGER NOT NULL").
		CreateIndex("idx_posts_user", "posts", "user_id").
		Build()
}

func tableExists(t *testing.T, db Database, table string) bool {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get db: %v", err)
	}

	var count int
	err = sqlDB.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count)
	if err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	return count > 0
}

func ids[T any](items []T, id func(T) string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, id(item))
	}
	return result
}

func migrationID(m Migration) string { return m.ID() }

func statusID(s MigrationStatus) string { return s.ID }
