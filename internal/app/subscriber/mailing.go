package subscriber

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"orderflow/internal/domain/order"
	"orderflow/internal/event"
	"orderflow/internal/infrastructure/notify"
)

const (
	stockSubject        = "Order in progress"
	confirmationSubject = "Order confirmed"
)

// Mailing asks the stock team to check availability before an order is saved
// and confirms the order to the customer afterwards.
type Mailing struct {
	mailer notify.Mailer
	from   string
	stock  string
	log    *zap.Logger
	subs   event.Subscriptions
}

func NewMailing(mailer notify.Mailer, from, stockAddr string, log *zap.Logger) *Mailing {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Mailing{mailer: mailer, from: from, stock: stockAddr, log: log}
	m.subs = event.Subscriptions{
		order.EventBeforeSave: {event.OnPriority(event.HandlerFor(m.onBeforeSave), 1)},
		order.EventAfterSave:  {event.OnPriority(event.HandlerFor(m.onAfterSave), 2)},
	}
	return m
}

func (m *Mailing) SubscribedEvents() event.Subscriptions {
	return m.subs
}

func (m *Mailing) onBeforeSave(ctx context.Context, e *order.Event) error {
	o := e.Order()
	return m.mailer.Send(ctx, notify.Email{
		From:    m.from,
		To:      m.stock,
		Subject: stockSubject,
		Body:    fmt.Sprintf("Please check the stock for product %s and quantity %d!", o.Product, o.Quantity),
	})
}

func (m *Mailing) onAfterSave(ctx context.Context, e *order.Event) error {
	o := e.Order()
	err := m.mailer.Send(ctx, notify.Email{
		From:    m.from,
		To:      o.Email,
		Subject: confirmationSubject,
		Body:    confirmationText(o),
	})
	if err != nil {
		return err
	}
	m.log.Info("confirmation email sent", zap.String("order_id", o.ID.String()), zap.String("to", o.Email))
	return nil
}

func confirmationText(o order.Order) string {
	return fmt.Sprintf("Thank you for your order of %d %s!", o.Quantity, o.Product)
}
