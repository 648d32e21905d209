package database

import (
	"context"
)

type rollbackCommand struct {
	connectionCommand
	migrations []Migration
}

func (c *rollbackCommand) Signature() string {
	return `migrate:rollback
		{--c|connection=: The database connection to use}
		{--step=1: The number of migration batches to be reverted}`
}

func (c *rollbackCommand) Description() string {
	return "Rollback the last database migration batch"
}

func (c *rollbackCommand) Handle(ctx context.Context) error {
	steps, err := c.positive("step")
	if err != nil {
		return err
	}

	_, runner, err := c.connect(ctx)
	if err != nil {
		return err
	}

	reverted, err := runner.Rollback(ctx, steps, c.migrations)
	if err != nil {
		return err
	}
	if len(reverted) == 0 {
		c.Info("Nothing to rollback.")
		return nil
	}

	for _, m := range reverted {
		c.Info("Rolled back: %s", m.ID)
	}
	return nil
}
