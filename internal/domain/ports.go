package domain

import (
	"context"

	"orderflow/internal/event"
)

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventDispatcher announces domain events to whoever registered for them.
type EventDispatcher interface {
	Dispatch(ctx context.Context, e event.Event, name string) (event.Event, error)
}
