package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/parcels/pkg/eventbus"
)

// MemoryEventBus is a simple in-memory implementation of the Bus interface.
// Handlers run synchronously on Emit; their errors are logged, not returned.
type MemoryEventBus struct {
	handlers  map[string][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	record    bool
	published []eventbus.Event
}

// MemoryOption configures a MemoryEventBus.
type MemoryOption func(*MemoryEventBus)

// WithRecording keeps every emitted event for later inspection via Published.
// Intended for tests; the log is never trimmed.
func WithRecording() MemoryOption {
	return func(b *MemoryEventBus) {
		b.record = true
	}
}

// NewWithMemory creates a new in-memory event bus for event-driven communication.
func NewWithMemory(logger *slog.Logger, opts ...MemoryOption) *MemoryEventBus {
	b := &MemoryEventBus{
		handlers: make(map[string][]eventbus.HandlerFunc),
		logger:   logger.With("bus", "memory"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all registered handlers for its type.
func (b *MemoryEventBus) Emit(ctx context.Context, event eventbus.Event) error {
	b.mu.Lock()
	if b.record {
		b.published = append(b.published, event)
	}
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[event.Type()]...)
	b.mu.Unlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("panic recovered in event handler", "type", event.Type(), "panic", r)
				}
			}()
			if err := handler(ctx, event); err != nil {
				b.logger.Error("failed to process event", "type", event.Type(), "error", err)
			}
		}()
	}
	return nil
}

// ClearPublished clears the list of published events.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = nil
}

// Published returns a copy of the events emitted so far. It is empty unless
// the bus was created WithRecording.
func (b *MemoryEventBus) Published() []eventbus.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]eventbus.Event{}, b.published...)
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)
