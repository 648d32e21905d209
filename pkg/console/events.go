package console

import "time"

// CommandStarting is published once the input is bound, right before
// Handle. A listener error aborts the command.
type CommandStarting struct {
	Command string
	Input   *Input
}

// CommandFinished is published after Handle returns, with its error if any.
type CommandFinished struct {
	Command  string
	Input    *Input
	Err      error
	Duration time.Duration
}
