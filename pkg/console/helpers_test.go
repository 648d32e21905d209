package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shuldan/artisan/pkg/cache"
	"github.com/shuldan/artisan/pkg/logger"
)

type testCommand struct {
	BaseCommand
	signature   string
	description string
	handle      func(ctx context.Context, c *testCommand) error
	calls       int
}

func (c *testCommand) Signature() string   { return c.signature }
func (c *testCommand) Description() string { return c.description }

func (c *testCommand) Handle(ctx context.Context) error {
	c.calls++
	if c.handle == nil {
		return nil
	}
	return c.handle(ctx, c)
}

func newCommand(sig string) *testCommand {
	return &testCommand{signature: sig, description: "Run " + strings.Fields(sig)[0]}
}

type testConsole struct {
	Console
	out    *bytes.Buffer
	errOut *bytes.Buffer
	logs   *bytes.Buffer
	store  cache.Store
}

func newTestConsole(t *testing.T, input string, cmds ...Command) *testConsole {
	t.Helper()

	tc := &testConsole{
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		logs:   &bytes.Buffer{},
		store:  cache.NewMemoryStore(),
	}

	log, err := logger.NewLogger(logger.WithWriter(tc.logs), logger.WithText())
	if err != nil {
		t.Fatal(err)
	}

	c, err := New(
		WithConfig(Config{Name: "Test", Version: "0.1.0"}),
		WithInput(strings.NewReader(input)),
		WithOutput(tc.out),
		WithErrorOutput(tc.errOut),
		WithLogger(log),
		WithCacheStore(tc.store),
	)
	if err != nil {
		t.Fatalf("failed to create console: %v", err)
	}
	if err = c.Register(cmds...); err != nil {
		t.Fatalf("failed to register commands: %v", err)
	}

	tc.Console = c
	return tc
}
