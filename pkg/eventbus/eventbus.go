package eventbus

import (
	"context"
)

// Event is implemented by everything published on a Bus.
type Event interface {
	Type() string
}

// HandlerFunc handles a single event.
type HandlerFunc func(ctx context.Context, event Event) error

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	Emit(ctx context.Context, event Event) error
	Register(eventType string, handler HandlerFunc)
}
