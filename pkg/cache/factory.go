package cache

import (
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"

	defaultRedisPrefix = "artisan"
)

var (
	_ Store = (*fileStore)(nil)
	_ Store = (*redisStore)(nil)
	_ Store = (*memoryStore)(nil)
)

func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

// NewRedisStore keeps the manifest under "<prefix>:manifest".
func NewRedisStore(client redis.UniversalClient, prefix string) Store {
	prefix = strings.TrimSuffix(prefix, ":")
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &redisStore{client: client, key: prefix + ":manifest"}
}

func NewMemoryStore() Store {
	return &memoryStore{}
}

type Options struct {
	Driver      string
	Path        string
	RedisAddr   string
	RedisPrefix string
}

// NewStore builds the store selected by opts.Driver. An empty driver means
// the file store.
func NewStore(opts Options) (Store, error) {
	switch strings.ToLower(opts.Driver) {
	case "", DriverFile:
		return NewFileStore(opts.Path), nil
	case DriverRedis:
		client := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: strings.Split(opts.RedisAddr, ","),
		})
		return NewRedisStore(client, opts.RedisPrefix), nil
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, ErrUnknownDriver.WithDetail("driver", opts.Driver)
	}
}
