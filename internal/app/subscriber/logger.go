package subscriber

import (
	"context"

	"go.uber.org/zap"

	"orderflow/internal/domain/order"
	"orderflow/internal/event"
)

// Logger notes every order about to be saved.
type Logger struct {
	log  *zap.Logger
	subs event.Subscriptions
}

func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Logger{log: log}
	l.subs = event.Subscriptions{
		order.EventBeforeSave: {event.OnPriority(event.HandlerFor(l.onBeforeSave), 2)},
	}
	return l
}

func (l *Logger) SubscribedEvents() event.Subscriptions {
	return l.subs
}

func (l *Logger) onBeforeSave(ctx context.Context, e *order.Event) error {
	l.log.Info("order in progress", zap.Object("order", e.Order()))
	return nil
}
