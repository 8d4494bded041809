package async

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"orderflow/internal/event"
)

// AuditPriority places the audit trail after every regular listener.
const AuditPriority = -100

// AuditTrail logs each listed event once the regular listeners are done.
// Stopped events never reach it. With a pool the log line is written off the
// dispatching goroutine.
type AuditTrail struct {
	log  *zap.Logger
	subs event.Subscriptions
}

func NewAuditTrail(log *zap.Logger, pool *WorkerPool, names ...string) *AuditTrail {
	if log == nil {
		log = zap.NewNop()
	}
	a := &AuditTrail{log: log, subs: make(event.Subscriptions, len(names))}
	for _, name := range names {
		h := a.record(name)
		if pool != nil {
			h = Detach(pool, h)
		}
		a.subs[name] = []event.Subscription{event.OnPriority(h, AuditPriority)}
	}
	return a
}

func (a *AuditTrail) SubscribedEvents() event.Subscriptions {
	return a.subs
}

func (a *AuditTrail) record(name string) event.Handler {
	return func(ctx context.Context, e event.Event) error {
		fields := []zap.Field{
			zap.String("event", name),
			zap.String("event_type", eventType(e)),
		}
		if m, ok := e.(zapcore.ObjectMarshaler); ok {
			fields = append(fields, zap.Object("payload", m))
		}
		a.log.Info("domain_event", fields...)
		return nil
	}
}

func eventType(e event.Event) string {
	return fmt.Sprintf("%T", e)
}
