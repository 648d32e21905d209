package database

import (
	"context"
	"fmt"
)

type freshCommand struct {
	connectionCommand
	migrations []Migration
}

func (c *freshCommand) Signature() string {
	return `migrate:fresh
		{--c|connection=: The database connection to use}
		{--force: Skip the confirmation prompt}`
}

func (c *freshCommand) Description() string {
	return "Roll back every migration and run them all again"
}

func (c *freshCommand) Handle(ctx context.Context) error {
	db, runner, err := c.connect(ctx)
	if err != nil {
		return err
	}

	if !c.flag("force") {
		question := fmt.Sprintf("Every migration on connection %q will be rolled back. Continue?", db.Name())
		ok, err := c.Confirm(question, false)
		if err != nil {
			return err
		}
		if !ok {
			c.Comment("Command cancelled.")
			return nil
		}
	}

	reverted, err := runner.Reset(ctx, c.migrations)
	if err != nil {
		return err
	}
	for _, m := range reverted {
		c.Comment("Rolled back: %s", m.ID)
	}

	applied, err := runner.Migrate(ctx, c.migrations)
	if err != nil {
		return err
	}
	for _, m := range applied {
		c.Info("Migrated: %s", m.ID())
	}
	return nil
}
