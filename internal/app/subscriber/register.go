package subscriber

import (
	"fmt"

	"orderflow/internal/event"
)

type Registrar interface {
	AddSubscriber(s event.Subscriber) error
}

// Register adds subs in order and stops at the first invalid one.
func Register(r Registrar, subs ...event.Subscriber) error {
	for _, s := range subs {
		if err := r.AddSubscriber(s); err != nil {
			return fmt.Errorf("register subscribers: %w", err)
		}
	}
	return nil
}
