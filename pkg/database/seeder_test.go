package database

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
)

func noopSeeder(name string) Seeder {
	return NewSeeder(name, func(context.Context, *sql.DB) error { return nil })
}

func TestSeeders(t *testing.T) {
	seeders, err := NewSeeders(noopSeeder("users"), noopSeeder("posts"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := seeders.Names(); !reflect.DeepEqual(got, []string{"users", "posts"}) {
		t.Errorf("expected registration order, got %v", got)
	}

	all, err := seeders.Select(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected every seeder when none is named, got %d", len(all))
	}

	some, err := seeders.Select([]string{"posts"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(some) != 1 || some[0].Name() != "posts" {
		t.Errorf("expected only posts, got %v", some)
	}

	if _, err := seeders.Select([]string{"comments"}); !errors.Is(err, ErrSeederNotFound) {
		t.Errorf("expected ErrSeederNotFound, got %v", err)
	}
}

func TestSeeders_Duplicate(t *testing.T) {
	_, err := NewSeeders(noopSeeder("users"), noopSeeder("users"))
	if !errors.Is(err, ErrSeederExists) {
		t.Errorf("expected ErrSeederExists, got %v", err)
	}
}
