package database

import (
	"sort"
	"sync"
	"time"

	"github.com/shuldan/artisan/pkg/config"
	"github.com/shuldan/artisan/pkg/errors"
)

// Pool holds the configured connections by name.
type Pool struct {
	mu          sync.RWMutex
	connections map[string]Database
	defaultName string
}

func NewPool(defaultName string) *Pool {
	return &Pool{
		connections: make(map[string]Database),
		defaultName: defaultName,
	}
}

// NewPoolFromConfig builds one Database per entry under
// database.connections. Nothing is opened until a command connects.
func NewPoolFromConfig(cfg config.Config) (*Pool, error) {
	pool := NewPool(cfg.GetString("database.default", "primary"))

	connections, ok := cfg.Sub("database.connections")
	if !ok {
		return pool, nil
	}

	names := connections.Keys()
	sort.Strings(names)
	for _, name := range names {
		conn, ok := connections.Sub(name)
		if !ok {
			continue
		}
		db, err := newConnection(name, conn)
		if err != nil {
			return nil, err
		}
		if err := pool.Register(db); err != nil {
			return nil, err
		}
	}
	return pool, nil
}

func newConnection(name string, cfg config.Config) (Database, error) {
	driver := cfg.GetString("driver")
	if driver == "" {
		return nil, ErrDriverNotSpecified.WithDetail("name", name)
	}
	dsn := cfg.GetString("dsn")
	if dsn == "" {
		return nil, ErrDSNNotSpecified.WithDetail("name", name)
	}

	options := []Option{
		WithConnectionPool(
			cfg.GetInt("pool.max_open_connections", 25),
			cfg.GetInt("pool.max_idle_connections", 5),
			cfg.GetDuration("pool.conn_max_lifetime", time.Hour),
		),
		WithConnectionIdleTime(cfg.GetDuration("pool.conn_max_idle_time", 5*time.Minute)),
		WithPingTimeout(cfg.GetDuration("ping_timeout", 5*time.Second)),
		WithRetry(cfg.GetInt("retry.attempts", 3), cfg.GetDuration("retry.delay", time.Second)),
	}

	return NewDatabase(name, driver, dsn, options...), nil
}

func (p *Pool) Register(db Database) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.connections[db.Name()]; exists {
		return ErrConnectionExists.WithDetail("name", db.Name())
	}
	p.connections[db.Name()] = db
	return nil
}

// Get returns the named connection, or the default one for an empty name.
func (p *Pool) Get(name string) (Database, error) {
	if name == "" {
		name = p.defaultName
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	db, ok := p.connections[name]
	if !ok {
		return nil, ErrConnectionNotFound.WithDetail("name", name)
	}
	return db, nil
}

func (p *Pool) Default() string {
	return p.defaultName
}

func (p *Pool) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.connections))
	for name := range p.connections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, db := range p.connections {
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
