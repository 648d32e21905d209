package cache

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu       sync.RWMutex
	manifest *Manifest
}

func (s *memoryStore) Load(ctx context.Context) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.manifest == nil {
		return nil, ErrManifestNotFound.WithDetail("location", "memory")
	}
	m := *s.manifest
	return &m, nil
}

func (s *memoryStore) Save(ctx context.Context, manifest *Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := *manifest
	s.manifest = &m
	return nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.manifest = nil
	return nil
}
