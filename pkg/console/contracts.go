package console

import (
	"context"

	"github.com/shuldan/artisan/pkg/signature"
)

// Command is a named action driven by its signature, for example
//
//	migrate:rollback {--c|connection=: Database connection} {--step=1: Batches to roll back}
//
// Setup receives the bound input right before Handle is called.
type Command interface {
	Signature() string
	Description() string
	Setup(in *Input)
	Handle(ctx context.Context) error
}

// Entry is a registered command with its signature parsed once at
// registration. Spec already includes the global options.
type Entry struct {
	Base    string
	Pattern string
	Group   string
	Spec    signature.Spec
	Command Command
}

type Registry interface {
	Register(cmd Command) error
	Get(base string) (*Entry, bool)
	// Bases returns every registered base name, sorted.
	Bases() []string
	// All returns every entry sorted by base.
	All() []*Entry
	Groups() map[string][]*Entry
}

// Resolution holds either the matched entry or, when the requested base is
// not registered, the bases it could have meant.
type Resolution struct {
	Entry       *Entry
	Suggestions []string
}

type Console interface {
	Register(cmds ...Command) error
	Registry() Registry
	Run(ctx context.Context, args []string) error
	// Exit reports err to the user and returns the process exit code.
	Exit(ctx context.Context, err error) int
}
