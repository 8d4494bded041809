package app

import (
	"context"

	"go.uber.org/zap"

	"orderflow/internal/app/config"
	"orderflow/internal/app/subscriber"
	"orderflow/internal/domain/order"
	"orderflow/internal/event"
	"orderflow/internal/infrastructure/async"
	"orderflow/internal/infrastructure/notify"
)

// NewDispatcher builds the dispatcher shared by the order service and the
// introspection endpoints, with every order listener registered. A nil pool
// keeps all listeners synchronous.
func NewDispatcher(cfg config.Config, log *zap.Logger, pool *async.WorkerPool) (*event.Dispatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	d := event.NewDispatcher(event.WithLogger(log.Named("event")))

	policy := notify.DefaultRetryPolicy()
	mailer := notify.NewRetryMailer(notify.NewLogMailer(log.Named("mail")), policy)
	texter := notify.NewRetryTexter(notify.NewLogTexter(log.Named("sms")), policy)

	err := subscriber.Register(d,
		subscriber.NewMailing(mailer, cfg.MailFrom, cfg.StockEmail, log),
		subscriber.NewSMS(texter, pool, log),
		subscriber.NewLogger(log),
		async.NewAuditTrail(log.Named("audit"), pool, order.EventBeforeSave, order.EventAfterSave),
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// NewPool returns nil when workers is zero.
func NewPool(cfg config.Config, log *zap.Logger) *async.WorkerPool {
	if cfg.AsyncWorkers == 0 {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}
	return async.NewWorkerPool(
		context.Background(),
		cfg.AsyncWorkers,
		log.Named("pool"),
		async.WithQueue(cfg.AsyncWorkers*16),
	)
}
