package console

import (
	"os"

	"github.com/shuldan/artisan/pkg/cache"
	"github.com/shuldan/artisan/pkg/errors"
	"github.com/shuldan/artisan/pkg/logger"
	"github.com/shuldan/artisan/pkg/output"
	"github.com/shuldan/artisan/pkg/prompt"
)

func NewRegistry() Registry {
	return &cmdRegistry{
		commands: make(map[string]*Entry),
	}
}

// New builds a console with the list and cache commands registered. Unset
// options default to the process standard streams, a discarding logger and
// the cache store described by the config.
func New(opts ...Option) (Console, error) {
	c := &console{
		config: DefaultConfig(),
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.registry == nil {
		c.registry = NewRegistry()
	}
	if c.logger == nil {
		c.logger = logger.NewNop()
	}
	c.output = output.NewWriter(c.out)
	c.errOutput = output.NewWriter(c.errOut)
	if c.prompter == nil {
		c.prompter = prompt.NewPrompter(c.in, c.output)
	}
	if c.store == nil {
		store, err := cache.NewStore(c.config.cacheOptions())
		if err != nil {
			return nil, err
		}
		c.store = store
	}

	c.errorHandler = errors.NewChainErrorHandler(
		errors.HandlerFunc(c.logError),
		errors.HandlerFunc(c.renderDiagnostic),
	)

	err := c.Register(
		&listCommand{registry: c.registry},
		&cacheCommand{registry: c.registry, store: c.store, config: c.config},
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}
