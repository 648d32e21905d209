package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/shuldan/artisan/pkg/bootstrap"
	"github.com/shuldan/artisan/pkg/database"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New("Artisan", version, "ARTISAN_", "artisan.yaml", "artisan.json").
		WithCommands(&greetCommand{}, &aboutCommand{version: version}).
		WithDatabase(migrations(), seeders()...).
		CreateConsole()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}
	defer func() { _ = app.Close() }()

	return app.Exit(ctx, app.Run(ctx, os.Args[1:]))
}

func migrations() []database.Migration {
	return []database.Migration{
		database.CreateMigration("2024_01_01_000001", "create users table").
			CreateTable("users",
				"id INTEGER PRIMARY KEY",
				"name VARCHAR(255) NOT NULL",
				"email VARCHAR(255) NOT NULL").
			CreateUniqueIndex("idx_users_email", "users", "email").
			Build(),
	}
}
