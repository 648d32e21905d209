package events

import "github.com/shuldan/artisan/pkg/logger"

type PanicHandler interface {
	Handle(event any, listener any, panicValue any, stack []byte)
}

type ErrorHandler interface {
	Handle(event any, listener any, err error)
}

type Option func(*busConfig)

type busConfig struct {
	logger       logger.Logger
	panicHandler PanicHandler
	errorHandler ErrorHandler
	asyncMode    bool
	workerCount  int
}

// WithLogger sets the logger used by the default panic and error handlers.
func WithLogger(log logger.Logger) Option {
	return func(c *busConfig) {
		c.logger = log
	}
}

func WithPanicHandler(h PanicHandler) Option {
	return func(c *busConfig) {
		c.panicHandler = h
	}
}

func WithErrorHandler(h ErrorHandler) Option {
	return func(c *busConfig) {
		c.errorHandler = h
	}
}

// WithAsyncMode hands events to a worker pool. Publish then returns as soon
// as every listener has been queued and listener errors only reach the
// error handler.
func WithAsyncMode(async bool) Option {
	return func(c *busConfig) {
		c.asyncMode = async
	}
}

func WithWorkerCount(count int) Option {
	return func(c *busConfig) {
		if count < 1 {
			count = 1
		}
		c.workerCount = count
	}
}
