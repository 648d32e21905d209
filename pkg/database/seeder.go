package database

import (
	"context"
	"database/sql"
	"sync"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db *sql.DB) error
}

type funcSeeder struct {
	name string
	fn   func(ctx context.Context, db *sql.DB) error
}

// NewSeeder adapts a function into a named Seeder.
func NewSeeder(name string, fn func(ctx context.Context, db *sql.DB) error) Seeder {
	return &funcSeeder{name: name, fn: fn}
}

func (s *funcSeeder) Name() string {
	return s.name
}

func (s *funcSeeder) Run(ctx context.Context, db *sql.DB) error {
	return s.fn(ctx, db)
}

// Seeders keeps seeders in registration order.
type Seeders struct {
	mu    sync.RWMutex
	items map[string]Seeder
	order []string
}

func NewSeeders(seeders ...Seeder) (*Seeders, error) {
	s := &Seeders{items: make(map[string]Seeder)}
	for _, seeder := range seeders {
		if err := s.Register(seeder); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Seeders) Register(seeder Seeder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[seeder.Name()]; exists {
		return ErrSeederExists.WithDetail("name", seeder.Name())
	}
	s.items[seeder.Name()] = seeder
	s.order = append(s.order, seeder.Name())
	return nil
}

func (s *Seeders) Get(name string) (Seeder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seeder, ok := s.items[name]
	if !ok {
		return nil, ErrSeederNotFound.WithDetail("name", name)
	}
	return seeder, nil
}

// Select returns the named seeders, or all of them when names is empty.
func (s *Seeders) Select(names []string) ([]Seeder, error) {
	if len(names) == 0 {
		names = s.Names()
	}

	selected := make([]Seeder, 0, len(names))
	for _, name := range names {
		seeder, err := s.Get(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, seeder)
	}
	return selected, nil
}

func (s *Seeders) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}
