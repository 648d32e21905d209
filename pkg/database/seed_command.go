package database

import (
	"context"

	"github.com/shuldan/artisan/pkg/output"
)

type seedCommand struct {
	connectionCommand
	seeders *Seeders
}

func (c *seedCommand) Signature() string {
	return `seed
		{seeders?*: Seeders to run, all of them when omitted}
		{--c|connection=: The database connection to use}
		{--parallel=1: How many seeders may run at once}`
}

func (c *seedCommand) Description() string {
	return "Seed the database with records"
}

func (c *seedCommand) Handle(ctx context.Context) error {
	parallel, err := c.positive("parallel")
	if err != nil {
		return err
	}

	var names []string
	if v, err := c.Argument("seeders"); err == nil {
		names = v.List()
	}
	selected, err := c.seeders.Select(names)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		c.Info("Nothing to seed.")
		return nil
	}

	db, _, err := c.connect(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	err = output.Process(ctx, c.Output(), selected, parallel, func(ctx context.Context, s Seeder) error {
		c.Logger().Debug("seeding", "seeder", s.Name())
		if err := s.Run(ctx, sqlDB); err != nil {
			return ErrSeederFailed.WithDetail("name", s.Name()).WithCause(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.Info("Database seeding completed successfully.")
	return nil
}
