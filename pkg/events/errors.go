package events

import "github.com/shuldan/artisan/pkg/errors"

var newEventCode = errors.WithPrefix("EVENTS")

var (
	ErrInvalidListener         = newEventCode().New("listener must be func(context.Context, T) error or have Handle(context.Context, T) error method")
	ErrInvalidListenerFunction = newEventCode().New("listener function must have signature func(context.Context, T) error")
	ErrInvalidListenerMethod   = newEventCode().New("Handle method must have signature Handle(context.Context, T) error")
	ErrInvalidEventType        = newEventCode().New("eventType must be a pointer to struct, e.g. (*MyEvent)(nil)")
	ErrBusClosed               = newEventCode().New("cannot subscribe: event bus is closed")
	ErrPublishOnClosedBus      = newEventCode().New("cannot publish: event bus is closed")
	ErrEventChannelBlocked     = newEventCode().New("event channel is blocked")
	ErrListenerPanicked        = newEventCode().New("listener for {{.event}} panicked: {{.panic}}")
)
