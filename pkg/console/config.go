package console

import (
	"github.com/shuldan/artisan/pkg/cache"
	"github.com/shuldan/artisan/pkg/config"
)

// Config is read once at startup and passed to the console explicitly.
type Config struct {
	Name        string
	Version     string
	CacheDriver string
	CachePath   string
	RedisAddr   string
	RedisPrefix string
	LogLevel    string
	LogJSON     bool
}

func DefaultConfig() Config {
	return Config{
		Name:        "Artisan",
		CacheDriver: cache.DriverFile,
		CachePath:   ".artisan/commands.yaml",
		RedisAddr:   "localhost:6379",
		RedisPrefix: "artisan",
		LogLevel:    "info",
	}
}

// ConfigFrom reads the app, cache and log sections of cfg over the
// defaults.
func ConfigFrom(cfg config.Config) Config {
	d := DefaultConfig()
	return Config{
		Name:        cfg.GetString("app.name", d.Name),
		Version:     cfg.GetString("app.version", d.Version),
		CacheDriver: cfg.GetString("cache.driver", d.CacheDriver),
		CachePath:   cfg.GetString("cache.path", d.CachePath),
		RedisAddr:   cfg.GetString("cache.redis.addr", d.RedisAddr),
		RedisPrefix: cfg.GetString("cache.redis.prefix", d.RedisPrefix),
		LogLevel:    cfg.GetString("log.level", d.LogLevel),
		LogJSON:     cfg.GetBool("log.json", d.LogJSON),
	}
}

func (c Config) cacheOptions() cache.Options {
	return cache.Options{
		Driver:      c.CacheDriver,
		Path:        c.CachePath,
		RedisAddr:   c.RedisAddr,
		RedisPrefix: c.RedisPrefix,
	}
}
