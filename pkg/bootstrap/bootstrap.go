package bootstrap

import (
	"io"
	"os"

	"github.com/shuldan/artisan/pkg/config"
	"github.com/shuldan/artisan/pkg/console"
	"github.com/shuldan/artisan/pkg/database"
	"github.com/shuldan/artisan/pkg/errors"
	"github.com/shuldan/artisan/pkg/events"
	"github.com/shuldan/artisan/pkg/logger"
)

type subscription struct {
	eventType any
	listener  any
}

// Bootstrap assembles config, logger, event bus and console for a command
// line application.
type Bootstrap struct {
	appName        string
	appVersion     string
	envPrefix      string
	configPaths    []string
	logWriter      io.Writer
	commands       []console.Command
	consoleOptions []console.Option
	subscriptions  []subscription

	database   bool
	migrations []database.Migration
	seeders    []database.Seeder
}

func New(appName string, appVersion string, envPrefix string, configPaths ...string) *Bootstrap {
	return &Bootstrap{
		appName:     appName,
		appVersion:  appVersion,
		envPrefix:   envPrefix,
		configPaths: configPaths,
		logWriter:   os.Stderr,
	}
}

func (b *Bootstrap) WithCommands(cmds ...console.Command) *Bootstrap {
	b.commands = append(b.commands, cmds...)
	return b
}

// WithDatabase registers the migrate and seed commands over the connections
// found under database.connections.
func (b *Bootstrap) WithDatabase(migrations []database.Migration, seeders ...database.Seeder) *Bootstrap {
	b.database = true
	b.migrations = append(b.migrations, migrations...)
	b.seeders = append(b.seeders, seeders...)
	return b
}

// WithListener subscribes listener to the console lifecycle events, for
// example (*console.CommandFinished)(nil).
func (b *Bootstrap) WithListener(eventType any, listener any) *Bootstrap {
	b.subscriptions = append(b.subscriptions, subscription{eventType: eventType, listener: listener})
	return b
}

func (b *Bootstrap) WithLogWriter(w io.Writer) *Bootstrap {
	b.logWriter = w
	return b
}

func (b *Bootstrap) WithConsoleOptions(opts ...console.Option) *Bootstrap {
	b.consoleOptions = append(b.consoleOptions, opts...)
	return b
}

// CreateConsole loads the config files and environment and builds the
// application from them.
func (b *Bootstrap) CreateConsole() (*Application, error) {
	cfg, err := config.Load(b.envPrefix, b.configPaths...)
	if err != nil {
		return nil, err
	}
	return b.Build(cfg)
}

func (b *Bootstrap) Build(cfg config.Config) (*Application, error) {
	consoleConfig := console.ConfigFrom(cfg)
	if !cfg.Has("app.name") && b.appName != "" {
		consoleConfig.Name = b.appName
	}
	if !cfg.Has("app.version") {
		consoleConfig.Version = b.appVersion
	}

	logOpts := []logger.Option{
		logger.WithWriter(b.logWriter),
		logger.WithLevel(logger.ParseLevel(consoleConfig.LogLevel)),
		logger.WithColor(),
	}
	if consoleConfig.LogJSON {
		logOpts = append(logOpts, logger.WithJSON())
	}
	log, err := logger.NewLogger(logOpts...)
	if err != nil {
		return nil, err
	}

	application := &Application{}

	bus := events.New(
		events.WithLogger(log),
		events.WithAsyncMode(cfg.GetBool("events.async")),
		events.WithWorkerCount(cfg.GetInt("events.workers", 1)),
	)
	application.closers = append(application.closers, bus.Close)
	for _, s := range b.subscriptions {
		if err := bus.Subscribe(s.eventType, s.listener); err != nil {
			_ = application.Close()
			return nil, err
		}
	}

	opts := append([]console.Option{
		console.WithConfig(consoleConfig),
		console.WithLogger(log),
		console.WithEvents(bus),
	}, b.consoleOptions...)

	c, err := console.New(opts...)
	if err != nil {
		_ = application.Close()
		return nil, err
	}
	application.Console = c

	if b.database {
		if err := b.registerDatabase(application, cfg); err != nil {
			_ = application.Close()
			return nil, err
		}
	}

	if err := c.Register(b.commands...); err != nil {
		_ = application.Close()
		return nil, err
	}

	log.Trace("console ready", "commands", len(c.Registry().Bases()))
	return application, nil
}

func (b *Bootstrap) registerDatabase(application *Application, cfg config.Config) error {
	pool, err := database.NewPoolFromConfig(cfg)
	if err != nil {
		return err
	}
	application.closers = append(application.closers, pool.Close)

	seeders, err := database.NewSeeders(b.seeders...)
	if err != nil {
		return err
	}
	return application.Register(database.Commands(pool, b.migrations, seeders)...)
}

// Application is a ready console plus the resources it holds open.
type Application struct {
	console.Console
	closers []func() error
}

// Close releases resources in reverse order of acquisition.
func (a *Application) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
