package database

import (
	"context"
	"strconv"
)

type statusCommand struct {
	connectionCommand
	migrations []Migration
}

func (c *statusCommand) Signature() string {
	return "migrate:status {--c|connection=: The database connection to use}"
}

func (c *statusCommand) Description() string {
	return "Show the status of each migration"
}

func (c *statusCommand) Handle(ctx context.Context) error {
	_, runner, err := c.connect(ctx)
	if err != nil {
		return err
	}

	statuses, err := runner.Status(ctx, c.migrations)
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		c.Info("No migrations found.")
		return nil
	}

	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		batch, state := "", "Pending"
		if s.Applied {
			batch, state = strconv.Itoa(s.Batch), "Ran"
		}
		rows = append(rows, []string{s.ID, batch, state})
	}
	c.Table([]string{"Migration", "Batch", "Status"}, rows)
	return nil
}
