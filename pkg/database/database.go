package database

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"
)

type Database interface {
	Name() string
	Driver() string
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error
	DB() (*sql.DB, error)
	Runner() (*Runner, error)
}

type dbConfig struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	connMaxIdleTime time.Duration
	pingTimeout     time.Duration
	retryAttempts   int
	retryDelay      time.Duration
}

type Option func(*dbConfig)

func WithConnectionPool(maxOpen, maxIdle int, maxLifetime time.Duration) Option {
	return func(config *dbConfig) {
		config.maxOpenConns = maxOpen
		config.maxIdleConns = maxIdle
		config.connMaxLifetime = maxLifetime
	}
}

func WithConnectionIdleTime(idleTime time.Duration) Option {
	return func(config *dbConfig) {
		config.connMaxIdleTime = idleTime
	}
}

func WithPingTimeout(timeout time.Duration) Option {
	return func(config *dbConfig) {
		config.pingTimeout = timeout
	}
}

func WithRetry(attempts int, delay time.Duration) Option {
	return func(config *dbConfig) {
		config.retryAttempts = attempts
		config.retryDelay = delay
	}
}

type sqlDatabase struct {
	mu     sync.Mutex
	name   string
	db     *sql.DB
	driver string
	dsn    string
	runner *Runner
	config dbConfig
}

// NewDatabase describes a connection without opening it. Driver aliases such
// as postgresql or sqlite are normalized to the registered driver names.
func NewDatabase(name, driver, dsn string, options ...Option) Database {
	config := dbConfig{
		maxOpenConns:    25,
		maxIdleConns:    5,
		connMaxLifetime: time.Hour,
		connMaxIdleTime: time.Minute * 5,
		pingTimeout:     time.Second * 5,
		retryAttempts:   3,
		retryDelay:      time.Second,
	}

	for _, option := range options {
		option(&config)
	}

	return &sqlDatabase{
		name:   name,
		driver: sqlDriver(driver),
		dsn:    dsn,
		config: config,
	}
}

func (d *sqlDatabase) Name() string {
	return d.name
}

func (d *sqlDatabase) Driver() string {
	return d.driver
}

func (d *sqlDatabase) Connect(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return nil
	}

	var err error
	for attempt := 0; attempt <= d.config.retryAttempts; attempt++ {
		var db *sql.DB
		db, err = d.open(ctx)
		if err == nil {
			d.db = db
			d.runner = NewRunner(db, d.driver)
			return nil
		}

		if attempt < d.config.retryAttempts {
			select {
			case <-ctx.Done():
				return ErrFailedToOpenDatabase.WithDetail("driver", d.driver).WithCause(ctx.Err())
			case <-time.After(d.config.retryDelay):
			}
		}
	}

	return ErrFailedToOpenDatabase.WithDetail("driver", d.driver).WithCause(err)
}

func (d *sqlDatabase) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(d.driver, d.dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(d.config.maxOpenConns)
	db.SetMaxIdleConns(d.config.maxIdleConns)
	db.SetConnMaxLifetime(d.config.connMaxLifetime)
	db.SetConnMaxIdleTime(d.config.connMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, d.config.pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (d *sqlDatabase) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	d.runner = nil
	return err
}

func (d *sqlDatabase) Ping(ctx context.Context) error {
	db, err := d.DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

func (d *sqlDatabase) DB() (*sql.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil, ErrDatabaseNotConnected
	}
	return d.db, nil
}

func (d *sqlDatabase) Runner() (*Runner, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.runner == nil {
		return nil, ErrDatabaseNotConnected
	}
	return d.runner, nil
}

func sqlDriver(driver string) string {
	switch strings.ToLower(driver) {
	case "mysql":
		return "mysql"
	case "postgres", "postgresql", "pgsql":
		return "postgres"
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return driver
	}
}
