package subscriber

import (
	"context"

	"go.uber.org/zap"

	"orderflow/internal/domain/order"
	"orderflow/internal/event"
	"orderflow/internal/infrastructure/async"
	"orderflow/internal/infrastructure/notify"
)

// SMS texts the customer once the order is saved. When pool is set the send
// is detached and its failure no longer reaches the caller.
type SMS struct {
	texter notify.Texter
	log    *zap.Logger
	subs   event.Subscriptions
}

func NewSMS(texter notify.Texter, pool *async.WorkerPool, log *zap.Logger) *SMS {
	if log == nil {
		log = zap.NewNop()
	}
	s := &SMS{texter: texter, log: log}
	h := event.HandlerFor(s.onAfterSave)
	if pool != nil {
		h = async.Detach(pool, h)
	}
	s.subs = event.Subscriptions{
		order.EventAfterSave: {event.OnPriority(h, 1)},
	}
	return s
}

func (s *SMS) SubscribedEvents() event.Subscriptions {
	return s.subs
}

func (s *SMS) onAfterSave(ctx context.Context, e *order.Event) error {
	o := e.Order()
	if err := s.texter.Send(ctx, notify.SMS{Number: o.Phone, Text: confirmationText(o)}); err != nil {
		return err
	}
	s.log.Info("confirmation sms sent", zap.String("order_id", o.ID.String()), zap.String("number", o.Phone))
	return nil
}
