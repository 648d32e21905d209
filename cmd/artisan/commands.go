package main

import (
	"context"
	"database/sql"
	"runtime"
	"strings"

	"github.com/shuldan/artisan/pkg/console"
	"github.com/shuldan/artisan/pkg/database"
)

type greetCommand struct {
	console.BaseCommand
}

func (c *greetCommand) Signature() string {
	return `greet
		{name? : Who to greet}
		{--y|yell : Shout the greeting}`
}

func (c *greetCommand) Description() string {
	return "Greet someone"
}

func (c *greetCommand) Handle(context.Context) error {
	name, err := c.Argument("name")
	if err != nil {
		return err
	}

	who := name.String()
	if name.IsNull() {
		if who, err = c.Ask("What is your name?", "stranger"); err != nil {
			return err
		}
	}

	greeting := "Hello, " + who + "!"
	if yell, _ := c.Option("yell"); yell.Bool() {
		greeting = strings.ToUpper(greeting)
	}
	c.Info("%s", greeting)
	return nil
}

type aboutCommand struct {
	console.BaseCommand
	version string
}

func (c *aboutCommand) Signature() string {
	return "about"
}

func (c *aboutCommand) Description() string {
	return "Display basic information about the application"
}

func (c *aboutCommand) Handle(context.Context) error {
	out := c.Output()
	out.Title("Environment")
	out.KeyValue("Version", c.version)
	out.KeyValue("Go", runtime.Version())
	out.KeyValue("OS", runtime.GOOS+"/"+runtime.GOARCH)
	return nil
}

func seeders() []database.Seeder {
	return []database.Seeder{
		database.NewSeeder("users", func(ctx context.Context, db *sql.DB) error {
			_, err := db.ExecContext(ctx,
				"INSERT INTO users (name, email) VALUES ('Admin', 'admin@example.com')")
			return err
		}),
	}
}
