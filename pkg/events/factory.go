package events

import (
	"reflect"

	"github.com/shuldan/artisan/pkg/logger"
)

func NewDefaultPanicHandler(log logger.Logger) PanicHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &defaultPanicHandler{logger: log}
}

func NewDefaultErrorHandler(log logger.Logger) ErrorHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &defaultErrorHandler{logger: log}
}

func New(opts ...Option) Bus {
	cfg := &busConfig{
		asyncMode:   false,
		workerCount: 1,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.panicHandler == nil {
		cfg.panicHandler = NewDefaultPanicHandler(cfg.logger)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = NewDefaultErrorHandler(cfg.logger)
	}

	b := &bus{
		listeners:    make(map[reflect.Type][]*listenerAdapter),
		panicHandler: cfg.panicHandler,
		errorHandler: cfg.errorHandler,
		asyncMode:    cfg.asyncMode,
		workerCount:  cfg.workerCount,
	}

	if cfg.asyncMode {
		b.startWorkers()
	}

	return b
}
