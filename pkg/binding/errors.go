package binding

import "github.com/shuldan/artisan/pkg/errors"

var newBindingCode = errors.WithPrefix("BINDING")

var (
	ErrTooFewArguments  = newBindingCode().New("too few arguments: {{.name}} is missing")
	ErrTooManyArguments = newBindingCode().New("too many arguments: {{.tokens}}")
	ErrUnknownOption    = newBindingCode().New("unknown option specified: {{.option}}")
)
