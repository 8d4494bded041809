// Package event implements a synchronous, in-process event dispatcher. Code
// that wants to announce that something happened dispatches a named event;
// every handler bound to that name is called in a deterministic order and
// receives the same event value, which it may inspect or mutate.
//
// # Handlers
//
// A handler is a plain function. Closures, functions and method values all
// fit the same type:
//
//	b, err := d.AddHandler("order.before_save", func(ctx context.Context, e event.Event) error {
//	    fmt.Println("an order is about to be saved")
//	    return nil
//	}, 10)
//
// The returned *Binding is the identity of that registration. It is what
// RemoveHandler and Priority expect, since Go function values cannot be
// compared.
//
// HandlerFor adapts a handler written against a concrete event type:
//
//	event.HandlerFor(func(ctx context.Context, e *order.Event) error { ... })
//
// # Ordering
//
// Handlers with a higher priority run first. Handlers sharing a priority run
// in the order they were registered. The order is a pure function of the
// registration history, so repeated dispatches of the same name call the same
// handlers in the same order.
//
// # Subscribers
//
// A Subscriber declares several bindings at once:
//
//	func (s *Mailing) SubscribedEvents() event.Subscriptions {
//	    return event.Subscriptions{
//	        "order.before_save": {event.OnPriority(event.HandlerFor(s.onBeforeSave), 1)},
//	        "order.after_save":  {event.OnPriority(event.HandlerFor(s.onAfterSave), 2)},
//	    }
//	}
//
// Subscriber bindings and ad-hoc handlers share one ordering space per event
// name. RemoveSubscriber removes exactly what AddSubscriber added for that
// subscriber instance.
//
// # Stopping and failing
//
// An event embedding Base can be stopped by any handler with
// StopPropagation; the remaining handlers of that dispatch are skipped. A
// handler returning an error aborts the dispatch and the error is returned to
// the caller wrapped in a *HandlerError. The dispatcher never retries and
// never recovers panics.
package event
