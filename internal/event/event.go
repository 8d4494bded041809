package event

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Event is the value passed to every handler of a dispatch.
type Event interface {
	IsPropagationStopped() bool
}

// Stoppable is implemented by events whose propagation a handler can halt.
type Stoppable interface {
	Event
	StopPropagation()
}

// Base is meant to be embedded in concrete event types. Its zero value is an
// event whose propagation has not been stopped. The flag is safe to read and
// set from handlers running off the dispatching goroutine. Base must not be
// copied after first use.
type Base struct {
	stopped atomic.Bool
}

// StopPropagation prevents the handlers that follow the current one from
// being called.
func (b *Base) StopPropagation() {
	b.stopped.Store(true)
}

func (b *Base) IsPropagationStopped() bool {
	return b.stopped.Load()
}

// Handler is called with the dispatched event. A non-nil error aborts the
// dispatch.
type Handler func(ctx context.Context, e Event) error

// HandlerFor adapts a handler that expects a concrete event type. Dispatching
// any other type to it fails with ErrUnexpectedEvent.
func HandlerFor[E Event](fn func(ctx context.Context, e E) error) Handler {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, e Event) error {
		typed, ok := e.(E)
		if !ok {
			return fmt.Errorf("%w: got %T", ErrUnexpectedEvent, e)
		}
		return fn(ctx, typed)
	}
}
