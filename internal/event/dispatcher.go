package event

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "orderflow/internal/event"

// Dispatcher calls the handlers bound to an event name. It exposes the
// registration and introspection API of its Registry.
//
// The zero value is ready to use: it gets its own Registry, a no-op logger
// and the global tracer on first use.
type Dispatcher struct {
	once     sync.Once
	registry *Registry
	log      *zap.Logger
	tracer   trace.Tracer
}

type Option func(*Dispatcher)

// WithRegistry makes the dispatcher read bindings from r, which may be shared
// with other dispatchers.
func WithRegistry(r *Registry) Option {
	return func(d *Dispatcher) {
		d.registry = r
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// WithTracer overrides the tracer obtained from the global OpenTelemetry
// provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(d *Dispatcher) {
		d.tracer = tracer
	}
}

func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	d.init()
	return d
}

func (d *Dispatcher) init() {
	d.once.Do(func() {
		if d.registry == nil {
			d.registry = NewRegistry()
		}
		if d.log == nil {
			d.log = zap.NewNop()
		}
		if d.tracer == nil {
			d.tracer = otel.Tracer(tracerName)
		}
	})
}

// Registry returns the registry the dispatcher reads its bindings from.
func (d *Dispatcher) Registry() *Registry {
	d.init()
	return d.registry
}

func (d *Dispatcher) AddHandler(name string, h Handler, priority int) (*Binding, error) {
	return d.Registry().AddHandler(name, h, priority)
}

func (d *Dispatcher) RemoveHandler(name string, b *Binding) {
	d.Registry().RemoveHandler(name, b)
}

func (d *Dispatcher) AddSubscriber(s Subscriber) error {
	return d.Registry().AddSubscriber(s)
}

func (d *Dispatcher) RemoveSubscriber(s Subscriber) {
	d.Registry().RemoveSubscriber(s)
}

func (d *Dispatcher) HandlersFor(name string) []*Binding {
	return d.Registry().HandlersFor(name)
}

func (d *Dispatcher) Priority(name string, b *Binding) (int, bool) {
	return d.Registry().Priority(name, b)
}

func (d *Dispatcher) HasHandlers(name string) bool {
	return d.Registry().HasHandlers(name)
}

func (d *Dispatcher) EventNames() []string {
	return d.Registry().EventNames()
}

// Dispatch calls the handlers bound to name, in call order, passing e to each
// of them. It stops as soon as e reports that its propagation was stopped or
// a handler returns an error. The returned event is e.
//
// A name without bindings is not an error: e is returned untouched.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event, name string) (_ Event, retErr error) {
	if e == nil {
		return nil, ErrNilEvent
	}
	if name == "" {
		return e, ErrEmptyEventName
	}

	d.init()
	bindings := d.registry.snapshot(name)
	if len(bindings) == 0 {
		return e, nil
	}

	ctx, span := d.tracer.Start(ctx, "event.dispatch",
		trace.WithAttributes(
			attribute.String("event.name", name),
			attribute.Int("event.handlers", len(bindings)),
		),
	)

	invoked := 0
	defer func() {
		span.SetAttributes(
			attribute.Int("event.invoked", invoked),
			attribute.Bool("event.propagation_stopped", e.IsPropagationStopped()),
		)
		if retErr != nil {
			span.RecordError(retErr)
			span.SetStatus(codes.Error, retErr.Error())
		}
		span.End()
	}()

	for _, b := range bindings {
		if e.IsPropagationStopped() {
			d.log.Debug("event propagation stopped",
				zap.String("event", name),
				zap.Int("invoked", invoked),
				zap.Int("skipped", len(bindings)-invoked),
			)
			break
		}

		invoked++
		if err := b.handler(ctx, e); err != nil {
			d.log.Debug("event handler failed",
				zap.String("event", name),
				zap.Uint64("seq", b.seq),
				zap.Int("priority", b.priority),
				zap.Error(err),
			)
			return e, &HandlerError{
				EventName: name,
				Priority:  b.priority,
				Seq:       b.seq,
				Err:       err,
			}
		}
	}

	d.log.Debug("event dispatched",
		zap.String("event", name),
		zap.Int("handlers", len(bindings)),
		zap.Int("invoked", invoked),
	)
	return e, nil
}
