package order

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderflow/internal/domain"
)

type Service interface {
	Place(ctx context.Context, d Draft) (Order, error)
	Get(ctx context.Context, id uuid.UUID) (Order, error)
}

type service struct {
	uow    domain.UnitOfWork
	orders Repository
	events domain.EventDispatcher
	log    *zap.Logger
	now    func() time.Time
}

func NewService(
	uow domain.UnitOfWork,
	orders Repository,
	events domain.EventDispatcher,
	log *zap.Logger,
) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		uow:    uow,
		orders: orders,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

// Place announces the order with EventBeforeSave, stores it and announces it
// again with EventAfterSave. A failing before-save handler rejects the order;
// a failing after-save handler is reported but the order stays stored.
func (s *service) Place(ctx context.Context, d Draft) (Order, error) {
	o, err := New(d, uuid.New(), s.now().UTC())
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return Order{}, &domain.DomainError{
				Code:       domain.ErrorCodeValidation,
				Message:    ve.Error(),
				HTTPStatus: http.StatusBadRequest,
				Err:        err,
			}
		}
		return Order{}, err
	}

	if s.events != nil {
		if _, err := s.events.Dispatch(ctx, NewEvent(o), EventBeforeSave); err != nil {
			return Order{}, &domain.DomainError{
				Code:       domain.ErrorCodeOrderRejected,
				Message:    "order rejected before save",
				HTTPStatus: http.StatusUnprocessableEntity,
				Err:        err,
			}
		}
	}

	var saved Order
	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.orders.Insert(ctx, o)
		if err != nil {
			return err
		}
		saved = created
		return nil
	})
	if err != nil {
		return Order{}, err
	}

	s.log.Info("order saved",
		zap.String("order_id", saved.ID.String()),
		zap.String("product", saved.Product),
		zap.Int("quantity", saved.Quantity),
	)

	if s.events != nil {
		if _, err := s.events.Dispatch(ctx, NewEvent(saved), EventAfterSave); err != nil {
			return saved, &domain.DomainError{
				Code:       domain.ErrorCodeNotificationFailed,
				Message:    "order saved but after-save handlers failed",
				HTTPStatus: http.StatusBadGateway,
				Err:        err,
			}
		}
	}

	return saved, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Order, error) {
	return s.orders.GetByID(ctx, id)
}
