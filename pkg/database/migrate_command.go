package database

import (
	"context"
)

type migrateCommand struct {
	connectionCommand
	migrations []Migration
}

func (c *migrateCommand) Signature() string {
	return `migrate
		{--c|connection=: The database connection to use}
		{--pretend: Dump the SQL queries that would be run}`
}

func (c *migrateCommand) Description() string {
	return "Run the pending database migrations"
}

func (c *migrateCommand) Handle(ctx context.Context) error {
	_, runner, err := c.connect(ctx)
	if err != nil {
		return err
	}

	if c.flag("pretend") {
		return c.pretend(ctx, runner)
	}

	applied, err := runner.Migrate(ctx, c.migrations)
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		c.Info("Nothing to migrate.")
		return nil
	}

	for _, m := range applied {
		c.Info("Migrated: %s", m.ID())
	}
	c.Logger().Info("migrations applied", "count", len(applied))
	return nil
}

func (c *migrateCommand) pretend(ctx context.Context, runner *Runner) error {
	pending, err := runner.Pending(ctx, c.migrations)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		c.Info("Nothing to migrate.")
		return nil
	}

	for _, m := range pending {
		c.Comment("%s: %s", m.ID(), m.Description())
		for _, query := range m.Up() {
			if executable(query) {
				c.Line("  %s", query)
			}
		}
	}
	return nil
}
