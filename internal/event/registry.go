package event

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"
)

// Binding is one registered (event name, handler, priority) triple. The
// pointer identifies the registration.
type Binding struct {
	name     string
	handler  Handler
	priority int
	seq      uint64
}

func (b *Binding) EventName() string {
	return b.name
}

func (b *Binding) Handler() Handler {
	return b.handler
}

func (b *Binding) Priority() int {
	return b.priority
}

// Seq is the registration sequence number of the binding. It breaks ties
// between bindings of equal priority.
func (b *Binding) Seq() uint64 {
	return b.seq
}

// Registry maps event names to bindings and computes their call order.
//
// The call order of a name is rebuilt on every change and published as a new
// slice, so readers holding an older order are never affected by later
// registrations.
type Registry struct {
	mu sync.RWMutex

	seq      uint64
	bindings map[string][]*Binding
	ordered  map[string][]*Binding
	subs     map[Subscriber][]*Binding
}

func NewRegistry() *Registry {
	r := &Registry{}
	r.init()
	return r
}

func (r *Registry) init() {
	if r.bindings == nil {
		r.bindings = map[string][]*Binding{}
	}
	if r.ordered == nil {
		r.ordered = map[string][]*Binding{}
	}
	if r.subs == nil {
		r.subs = map[Subscriber][]*Binding{}
	}
}

// AddHandler binds h to name. Registering the same handler twice produces two
// bindings, each invoked on dispatch.
func (r *Registry) AddHandler(name string, h Handler, priority int) (*Binding, error) {
	if name == "" {
		return nil, ErrEmptyEventName
	}
	if h == nil {
		return nil, ErrNilHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	b := r.add(name, h, priority)
	r.reorder(name)
	return b, nil
}

// RemoveHandler removes the binding b from name. Unknown bindings are ignored.
func (r *Registry) RemoveHandler(name string, b *Binding) {
	if b == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.remove(name, b) {
		r.reorder(name)
	}
}

// AddSubscriber registers every binding declared by s. Nothing is registered
// when the declaration is invalid.
func (r *Registry) AddSubscriber(s Subscriber) error {
	if s == nil {
		return &ConfigError{Subscriber: "<nil>", Reason: "subscriber is nil"}
	}
	typ := reflect.TypeOf(s)
	if !typ.Comparable() {
		return &ConfigError{Subscriber: typ.String(), Reason: "subscriber type is not comparable"}
	}
	if !hashable(s) {
		return &ConfigError{Subscriber: typ.String(), Reason: "subscriber value is not hashable"}
	}

	subs := s.SubscribedEvents()
	names := make([]string, 0, len(subs))
	for name, list := range subs {
		if name == "" {
			return &ConfigError{Subscriber: typ.String(), Reason: ErrEmptyEventName.Error()}
		}
		for i, sub := range list {
			if sub.Handler == nil {
				return &ConfigError{
					Subscriber: typ.String(),
					EventName:  name,
					Reason:     fmt.Sprintf("subscription %d: %s", i, ErrNilHandler),
				}
			}
		}
		names = append(names, name)
	}
	sort.Strings(names)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	added := make([]*Binding, 0, len(names))
	for _, name := range names {
		for _, sub := range subs[name] {
			added = append(added, r.add(name, sub.Handler, sub.Priority))
		}
		r.reorder(name)
	}
	if len(added) > 0 {
		r.subs[s] = append(r.subs[s], added...)
	}
	return nil
}

// RemoveSubscriber removes the bindings that AddSubscriber registered for s.
// Subscribers are matched by identity.
func (r *Registry) RemoveSubscriber(s Subscriber) {
	if s == nil || !reflect.TypeOf(s).Comparable() || !hashable(s) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bindings, ok := r.subs[s]
	if !ok {
		return
	}
	delete(r.subs, s)

	touched := map[string]struct{}{}
	for _, b := range bindings {
		if r.remove(b.name, b) {
			touched[b.name] = struct{}{}
		}
	}
	for name := range touched {
		r.reorder(name)
	}
}

// HandlersFor returns the bindings of name in call order: priority
// descending, then registration order.
func (r *Registry) HandlersFor(name string) []*Binding {
	return slices.Clone(r.snapshot(name))
}

// Priority returns the priority b was registered with, or false when b is
// not bound to name.
func (r *Registry) Priority(name string, b *Binding) (int, bool) {
	if b == nil || b.name != name {
		return 0, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !slices.Contains(r.bindings[name], b) {
		return 0, false
	}
	return b.priority, true
}

func (r *Registry) HasHandlers(name string) bool {
	return len(r.snapshot(name)) > 0
}

// EventNames returns the sorted names that have at least one binding.
func (r *Registry) EventNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ordered))
	for name := range r.ordered {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// snapshot returns the published call order of name. The slice must not be
// modified.
func (r *Registry) snapshot(name string) []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ordered[name]
}

func (r *Registry) add(name string, h Handler, priority int) *Binding {
	r.seq++
	b := &Binding{
		name:     name,
		handler:  h,
		priority: priority,
		seq:      r.seq,
	}
	r.bindings[name] = append(r.bindings[name], b)
	return b
}

func (r *Registry) remove(name string, b *Binding) bool {
	list := r.bindings[name]
	i := slices.Index(list, b)
	if i < 0 {
		return false
	}
	r.bindings[name] = slices.Delete(list, i, i+1)
	return true
}

// reorder must be called with the write lock held.
func (r *Registry) reorder(name string) {
	list := r.bindings[name]
	if len(list) == 0 {
		delete(r.bindings, name)
		delete(r.ordered, name)
		return
	}

	ordered := slices.Clone(list)
	slices.SortStableFunc(ordered, func(a, b *Binding) int {
		if c := cmp.Compare(b.priority, a.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	r.ordered[name] = ordered
}

// hashable reports whether s can key a map. A comparable struct type still
// panics on hashing when an interface field holds a slice, map or func.
func hashable(s Subscriber) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[Subscriber]struct{}{s: {}}
	return true
}
