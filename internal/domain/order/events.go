package order

import (
	"go.uber.org/zap/zapcore"

	"orderflow/internal/event"
)

// Names of the events dispatched around order persistence.
const (
	EventBeforeSave = "order.before_save"
	EventAfterSave  = "order.after_save"
)

// Event carries the order being placed to the handlers of EventBeforeSave
// and EventAfterSave.
type Event struct {
	event.Base
	order Order
}

func NewEvent(o Order) *Event {
	return &Event{order: o}
}

func (e *Event) Order() Order {
	return e.order
}

func (e *Event) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("propagation_stopped", e.IsPropagationStopped())
	return enc.AddObject("order", e.order)
}
