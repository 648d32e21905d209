package errors

import (
	"context"
)

// Handler consumes an error. Returning nil means the error was handled.
type Handler interface {
	Handle(ctx context.Context, err error) error
}

type HandlerFunc func(ctx context.Context, err error) error

func (f HandlerFunc) Handle(ctx context.Context, err error) error {
	return f(ctx, err)
}

type ChainErrorHandler struct {
	handlers []Handler
}

func NewChainErrorHandler(handlers ...Handler) *ChainErrorHandler {
	return &ChainErrorHandler{
		handlers: handlers,
	}
}

func (c *ChainErrorHandler) Add(handler Handler) *ChainErrorHandler {
	c.handlers = append(c.handlers, handler)
	return c
}

func (c *ChainErrorHandler) Handle(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	for _, handler := range c.handlers {
		if handler.Handle(ctx, err) == nil {
			return nil
		}
	}
	return err
}
