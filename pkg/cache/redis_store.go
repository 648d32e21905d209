package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client redis.UniversalClient
	key    string
}

func (s *redisStore) Load(ctx context.Context) (*Manifest, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrManifestNotFound.WithDetail("location", s.key)
	}
	if err != nil {
		return nil, ErrReadManifest.WithDetail("location", s.key).WithCause(err)
	}
	return decodeManifest(s.key, data)
}

func (s *redisStore) Save(ctx context.Context, manifest *Manifest) error {
	data, err := encodeManifest(manifest)
	if err != nil {
		return err
	}
	if err = s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return ErrWriteManifest.WithDetail("location", s.key).WithCause(err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return ErrWriteManifest.WithDetail("location", s.key).WithCause(err)
	}
	return nil
}
