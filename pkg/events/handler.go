package events

import (
	"fmt"

	"github.com/shuldan/artisan/pkg/logger"
)

type defaultPanicHandler struct {
	logger logger.Logger
}

func (d *defaultPanicHandler) Handle(event any, listener any, panicValue any, stack []byte) {
	d.logger.Critical("event listener panicked",
		"event", fmt.Sprintf("%T", event),
		"listener", fmt.Sprintf("%T", listener),
		"panic", panicValue,
		"stack", string(stack))
}

type defaultErrorHandler struct {
	logger logger.Logger
}

func (d *defaultErrorHandler) Handle(event any, listener any, err error) {
	d.logger.Error("event listener failed",
		"event", fmt.Sprintf("%T", event),
		"listener", fmt.Sprintf("%T", listener),
		"error", err)
}
