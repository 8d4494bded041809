package event

// Subscriber declares a set of bindings that are registered as a unit.
//
// Subscribers are tracked by identity, so implementations should use pointer
// receivers. SubscribedEvents is called once per AddSubscriber call.
type Subscriber interface {
	SubscribedEvents() Subscriptions
}

// Subscriptions maps an event name to the handlers a subscriber binds to it.
// A subscriber may bind several handlers to the same name; they are
// registered in slice order.
type Subscriptions map[string][]Subscription

type Subscription struct {
	Handler  Handler
	Priority int
}

// On binds h with the default priority.
func On(h Handler) Subscription {
	return Subscription{Handler: h}
}

func OnPriority(h Handler, priority int) Subscription {
	return Subscription{Handler: h, Priority: priority}
}
