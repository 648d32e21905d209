package database

import (
	"context"
	"strconv"

	"github.com/shuldan/artisan/pkg/console"
)

// Commands returns the migrate and seed commands working on pool.
func Commands(pool *Pool, migrations []Migration, seeders *Seeders) []console.Command {
	if seeders == nil {
		seeders, _ = NewSeeders()
	}
	base := connectionCommand{pool: pool}
	return []console.Command{
		&migrateCommand{connectionCommand: base, migrations: migrations},
		&rollbackCommand{connectionCommand: base, migrations: migrations},
		&statusCommand{connectionCommand: base, migrations: migrations},
		&freshCommand{connectionCommand: base, migrations: migrations},
		&seedCommand{connectionCommand: base, seeders: seeders},
	}
}

type connectionCommand struct {
	console.BaseCommand
	pool *Pool
}

func (c *connectionCommand) connect(ctx context.Context) (Database, *Runner, error) {
	name := ""
	if v, err := c.Option("connection"); err == nil {
		name = v.String()
	}

	db, err := c.pool.Get(name)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Connect(ctx); err != nil {
		return nil, nil, err
	}
	runner, err := db.Runner()
	if err != nil {
		return nil, nil, err
	}

	c.Logger().Debug("connected", "connection", db.Name(), "driver", db.Driver())
	return db, runner, nil
}

func (c *connectionCommand) flag(name string) bool {
	v, err := c.Option(name)
	return err == nil && v.Bool()
}

func (c *connectionCommand) positive(name string) (int, error) {
	v, err := c.Option(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v.String())
	if err != nil || n < 1 {
		return 0, ErrInvalidNumber.WithDetail("option", name).WithDetail("value", v.String())
	}
	return n, nil
}
