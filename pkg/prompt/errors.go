package prompt

import "github.com/shuldan/artisan/pkg/errors"

var newPromptCode = errors.WithPrefix("PROMPT")

var (
	ErrNoInput        = newPromptCode().New("no input available to answer: {{.question}}")
	ErrNoOptions      = newPromptCode().New("no options to choose from: {{.question}}")
	ErrInvalidDefault = newPromptCode().New("default index {{.index}} is out of range for {{.count}} options")
	ErrReadInput      = newPromptCode().New("failed to read input")
)
