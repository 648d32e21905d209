package console

import (
	"github.com/shuldan/artisan/pkg/binding"
	"github.com/shuldan/artisan/pkg/logger"
	"github.com/shuldan/artisan/pkg/output"
)

// BaseCommand implements Setup and gives embedding commands access to their
// input. Commands only add Signature, Description and Handle:
//
//	type greet struct{ console.BaseCommand }
//
//	func (greet) Signature() string   { return "greet {name}" }
//	func (greet) Description() string { return "Say hello" }
//
//	func (c *greet) Handle(context.Context) error {
//		name, _ := c.Argument("name")
//		c.Info("Hello %s", name.String())
//		return nil
//	}
type BaseCommand struct {
	in *Input
}

func (c *BaseCommand) Setup(in *Input) {
	c.in = in
}

func (c *BaseCommand) Input() *Input {
	if c.in == nil {
		c.in = emptyInput()
	}
	return c.in
}

func (c *BaseCommand) Argument(name string) (binding.Value, error) {
	v, ok := c.Input().Arguments.Get(name)
	if !ok {
		return binding.Null(), ErrArgumentNotDeclared.WithDetail("name", name)
	}
	return v, nil
}

func (c *BaseCommand) Option(name string) (binding.Value, error) {
	v, ok := c.Input().Options.Get(name)
	if !ok {
		return binding.Null(), ErrOptionNotDeclared.WithDetail("name", name)
	}
	return v, nil
}

func (c *BaseCommand) Arguments() map[string]any {
	return c.Input().Arguments.Map()
}

func (c *BaseCommand) Options() map[string]any {
	return c.Input().Options.Map()
}

func (c *BaseCommand) Output() *output.Writer {
	return c.Input().Output
}

func (c *BaseCommand) Logger() logger.Logger {
	return c.Input().Logger
}

func (c *BaseCommand) Ask(question, fallback string) (string, error) {
	return c.Input().Prompt.Ask(question, fallback)
}

func (c *BaseCommand) Secret(question string) (string, error) {
	return c.Input().Prompt.Secret(question)
}

func (c *BaseCommand) Confirm(question string, initial bool) (bool, error) {
	return c.Input().Prompt.Confirm(question, initial)
}

func (c *BaseCommand) Choice(question string, options []string, initial int) (string, error) {
	return c.Input().Prompt.Choice(question, options, initial)
}

func (c *BaseCommand) MultiChoice(question string, options []string) ([]string, error) {
	return c.Input().Prompt.MultiChoice(question, options)
}

func (c *BaseCommand) Anticipate(question string, options []string, fallback string) (string, error) {
	return c.Input().Prompt.Anticipate(question, options, fallback)
}

func (c *BaseCommand) Info(format string, args ...any) {
	c.Output().Info(format, args...)
}

func (c *BaseCommand) Comment(format string, args ...any) {
	c.Output().Comment(format, args...)
}

func (c *BaseCommand) Line(format string, args ...any) {
	c.Output().Line(format, args...)
}

// Verbose prints only when the invocation was given --verbose.
func (c *BaseCommand) Verbose(format string, args ...any) {
	if v, ok := c.Input().Options.Get("verbose"); ok && v.Bool() {
		c.Output().Comment(format, args...)
	}
}

func (c *BaseCommand) Error(format string, args ...any) {
	c.Output().Error(format, args...)
}

func (c *BaseCommand) Warn(format string, args ...any) {
	c.Output().Warn(format, args...)
}

func (c *BaseCommand) Alert(format string, args ...any) {
	c.Output().Alert(format, args...)
}

func (c *BaseCommand) Table(head []string, rows [][]string) {
	c.Output().Table(head, rows)
}
