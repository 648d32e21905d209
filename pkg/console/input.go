package console

import (
	"github.com/shuldan/artisan/pkg/binding"
	"github.com/shuldan/artisan/pkg/logger"
	"github.com/shuldan/artisan/pkg/output"
	"github.com/shuldan/artisan/pkg/prompt"
)

// Input is what a command gets to work with for one invocation.
type Input struct {
	Arguments binding.Values
	Options   binding.Values
	Output    *output.Writer
	Prompt    prompt.Prompter
	Logger    logger.Logger
}

func emptyInput() *Input {
	out := output.NewWriter(nil)
	return &Input{
		Output: out,
		Prompt: prompt.NewPrompter(nil, out),
		Logger: logger.NewNop(),
	}
}
