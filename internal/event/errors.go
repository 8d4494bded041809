package event

import "fmt"

// Enumeration of errors returned by registration and dispatch.
const (
	ErrEmptyEventName    = eventError("event name is empty")
	ErrInvalidSubscriber = eventError("invalid subscriber")
	ErrNilEvent          = eventError("event is nil")
	ErrNilHandler        = eventError("handler is nil")
	ErrUnexpectedEvent   = eventError("unexpected event type")
)

type eventError string

func (e eventError) Error() string {
	return string(e)
}

// ConfigError reports a subscriber that cannot be registered. It matches
// ErrInvalidSubscriber with errors.Is.
type ConfigError struct {
	Subscriber string
	EventName  string
	Reason     string
}

func (e *ConfigError) Error() string {
	if e.EventName != "" {
		return fmt.Sprintf("event: subscriber %s: event %q: %s", e.Subscriber, e.EventName, e.Reason)
	}
	return fmt.Sprintf("event: subscriber %s: %s", e.Subscriber, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidSubscriber
}

// HandlerError wraps the error returned by a handler during a dispatch.
type HandlerError struct {
	EventName string
	Priority  int
	Seq       uint64
	Err       error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("event %q: handler #%d (priority %d): %v", e.EventName, e.Seq, e.Priority, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
