package database

import "github.com/shuldan/artisan/pkg/errors"

var newDatabaseCode = errors.WithPrefix("DATABASE")

var (
	ErrFailedToOpenDatabase                = newDatabaseCode().New("failed to open {{.driver}} database")
	ErrDatabaseNotConnected                = newDatabaseCode().New("database not connected")
	ErrTransactionFailed                   = newDatabaseCode().New("transaction failed: {{.reason}}")
	ErrMigrationFailed                     = newDatabaseCode().New("migration {{.id}} failed: {{.reason}}")
	ErrDuplicateMigration                  = newDatabaseCode().New("migration {{.id}} is declared twice")
	ErrFailedToCreateSchemaMigrationsTable = newDatabaseCode().New("failed to create schema_migrations table")
	ErrFailedToCreateSchemaMigrationsIndex = newDatabaseCode().New("failed to create schema_migrations index")
	ErrFailedToGetAppliedMigrations        = newDatabaseCode().New("failed to get applied migrations")
	ErrFailedToExecuteQuery                = newDatabaseCode().New("failed to execute query: {{.query}}")
	ErrConnectionNotFound                  = newDatabaseCode().New("connection {{.name}} is not configured")
	ErrConnectionExists                    = newDatabaseCode().New("connection {{.name}} is already registered")
	ErrDriverNotSpecified                  = newDatabaseCode().New("driver not specified for connection {{.name}}")
	ErrDSNNotSpecified                     = newDatabaseCode().New("dsn not specified for connection {{.name}}")
	ErrSeederNotFound                      = newDatabaseCode().New("seeder {{.name}} is not registered")
	ErrSeederExists                        = newDatabaseCode().New("seeder {{.name}} is already registered")
	ErrSeederFailed                        = newDatabaseCode().New("seeder {{.name}} failed")
	ErrInvalidStep                         = newDatabaseCode().New("step must be a positive number, got {{.step}}")
	ErrInvalidNumber                       = newDatabaseCode().New("option --{{.option}} expects a positive number, got {{.value}}")
)
