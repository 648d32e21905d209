package console

import "github.com/shuldan/artisan/pkg/errors"

var newConsoleCode = errors.WithPrefix("CONSOLE")

var (
	ErrNoCommandSpecified  = newConsoleCode().New("no command specified")
	ErrUnresolvedCommand   = newConsoleCode().New("command \"{{.command}}\" is not defined")
	ErrCommandRegistration = newConsoleCode().New("command registration failed for {{.command}}: {{.reason}}")
	ErrCommandExecution    = newConsoleCode().New("command {{.command}} failed")
	ErrArgumentNotDeclared = newConsoleCode().New("argument {{.name}} is not declared")
	ErrOptionNotDeclared   = newConsoleCode().New("option {{.name}} is not declared")
)
