package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shuldan/artisan/pkg/binding"
	"github.com/shuldan/artisan/pkg/cache"
	"github.com/shuldan/artisan/pkg/errors"
	"github.com/shuldan/artisan/pkg/events"
	"github.com/shuldan/artisan/pkg/logger"
	"github.com/shuldan/artisan/pkg/output"
	"github.com/shuldan/artisan/pkg/prompt"
)

const helpHint = "(use -h for help)"

type console struct {
	config   Config
	registry Registry
	logger   logger.Logger
	prompter prompt.Prompter
	store    cache.Store
	events   events.Bus

	in        io.Reader
	out       io.Writer
	errOut    io.Writer
	output    *output.Writer
	errOutput *output.Writer

	errorHandler *errors.ChainErrorHandler
	cacheCheck   sync.Once
}

func (c *console) Register(cmds ...Command) error {
	for _, cmd := range cmds {
		if err := c.registry.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (c *console) Registry() Registry {
	return c.registry
}

// Run resolves args[0] to a command, binds the remaining tokens against its
// signature and hands control to it.
func (c *console) Run(ctx context.Context, args []string) error {
	log := c.logger.With("invocation", uuid.NewString())
	c.cacheCheck.Do(func() { c.checkCache(ctx, log) })

	if len(args) == 0 {
		c.output.Banner(c.config.Name, c.config.Version)
		c.output.Newline()
		return renderList(c.output, c.registry, "")
	}

	if strings.TrimSpace(args[0]) == "" {
		return ErrNoCommandSpecified
	}

	entry, err := c.resolve(ctx, args[0])
	if err != nil || entry == nil {
		return err
	}
	log = log.With("command", entry.Base)
	tokens := args[1:]

	if err = ctx.Err(); err != nil {
		return err
	}

	if wantsHelp(tokens) {
		renderHelp(c.output, entry)
		return nil
	}

	bound, err := binding.Bind(entry.Spec, tokens)
	if err != nil {
		log.Debug("binding failed", "error", err)
		return err
	}

	if verbose, _ := bound.Options.Get("verbose"); verbose.Bool() && log.Level() > slog.LevelDebug {
		previous := log.Level()
		log.SetLevel(slog.LevelDebug)
		defer log.SetLevel(previous)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	in := &Input{
		Arguments: bound.Arguments,
		Options:   bound.Options,
		Output:    c.output,
		Prompt:    c.prompter,
		Logger:    log,
	}
	entry.Command.Setup(in)

	if err = c.publish(ctx, CommandStarting{Command: entry.Base, Input: in}); err != nil {
		return ErrCommandExecution.WithDetail("command", entry.Base).WithCause(err)
	}

	start := time.Now()
	err = c.handle(ctx, entry, log)

	finished := CommandFinished{Command: entry.Base, Input: in, Err: err, Duration: time.Since(start)}
	if pubErr := c.publish(ctx, finished); pubErr != nil {
		log.Warn("command finished listener failed", "error", pubErr)
	}
	return err
}

func (c *console) publish(ctx context.Context, event any) error {
	if c.events == nil {
		return nil
	}
	return c.events.Publish(ctx, event)
}

// resolve returns a nil entry without error when the user declined every
// suggestion.
func (c *console) resolve(ctx context.Context, base string) (*Entry, error) {
	res, err := Resolve(base, c.registry)
	if err != nil {
		return nil, err
	}
	if res.Entry != nil {
		return res.Entry, nil
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	question := fmt.Sprintf("Command %q is not defined. Did you mean one of these?", base)
	choice, err := c.prompter.Anticipate(question, res.Suggestions, "")
	if err != nil {
		return nil, err
	}
	if choice == "" {
		return nil, nil
	}

	entry, ok := c.registry.Get(choice)
	if !ok {
		return nil, ErrUnresolvedCommand.WithDetail("command", choice)
	}
	return entry, nil
}

func (c *console) handle(ctx context.Context, entry *Entry, log logger.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Critical("command panicked", "panic", r)
			err = ErrCommandExecution.
				WithDetail("command", entry.Base).
				WithCause(fmt.Errorf("panic: %v", r))
		}
	}()

	start := time.Now()
	log.Debug("handling command")

	if err = entry.Command.Handle(ctx); err != nil {
		log.Debug("command failed", "error", err, "duration", time.Since(start))
		return ErrCommandExecution.WithDetail("command", entry.Base).WithCause(err)
	}

	log.Debug("command finished", "duration", time.Since(start))
	return nil
}

func (c *console) checkCache(ctx context.Context, log logger.Logger) {
	manifest, err := c.store.Load(ctx)
	if errors.Is(err, cache.ErrManifestNotFound) {
		return
	}
	if err != nil {
		log.Debug("command cache unreadable", "error", err)
		return
	}
	if manifest.Stale(manifestEntries(c.registry)) {
		log.Warn("command cache is stale, run the cache command to refresh it")
	}
}

func (c *console) Exit(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}
	_ = c.errorHandler.Handle(ctx, err)
	return 1
}

func (c *console) logError(_ context.Context, err error) error {
	c.logger.Error("invocation failed", "code", string(errors.GetErrorCode(err)), "error", err)
	return err
}

func (c *console) renderDiagnostic(_ context.Context, err error) error {
	c.errOutput.Diagnostic(diagnosticMessage(err) + "  " + helpHint)
	return nil
}

// diagnosticMessage joins the user facing texts along the cause chain, so
// a failed command reads "command seed failed: seeder x is not registered".
func diagnosticMessage(err error) string {
	var parts []string
	for err != nil {
		e, ok := err.(*errors.Error)
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		if text := e.Text(); text != "" {
			parts = append(parts, text)
		}
		err = e.Cause
	}
	return strings.Join(parts, ": ")
}

func wantsHelp(tokens []string) bool {
	return slices.Contains(tokens, "-h") || slices.Contains(tokens, "--help")
}
