package console

import (
	"io"

	"github.com/shuldan/artisan/pkg/cache"
	"github.com/shuldan/artisan/pkg/events"
	"github.com/shuldan/artisan/pkg/logger"
	"github.com/shuldan/artisan/pkg/prompt"
)

type Option func(*console)

func WithConfig(cfg Config) Option {
	return func(c *console) {
		c.config = cfg
	}
}

func WithRegistry(registry Registry) Option {
	return func(c *console) {
		c.registry = registry
	}
}

func WithLogger(log logger.Logger) Option {
	return func(c *console) {
		c.logger = log
	}
}

func WithInput(in io.Reader) Option {
	return func(c *console) {
		c.in = in
	}
}

func WithOutput(out io.Writer) Option {
	return func(c *console) {
		c.out = out
	}
}

// WithErrorOutput sets where diagnostics printed by Exit go.
func WithErrorOutput(out io.Writer) Option {
	return func(c *console) {
		c.errOut = out
	}
}

func WithPrompter(p prompt.Prompter) Option {
	return func(c *console) {
		c.prompter = p
	}
}

func WithCacheStore(store cache.Store) Option {
	return func(c *console) {
		c.store = store
	}
}

// WithEvents publishes CommandStarting and CommandFinished on bus around
// every command run.
func WithEvents(bus events.Bus) Option {
	return func(c *console) {
		c.events = bus
	}
}
