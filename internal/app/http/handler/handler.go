package handler

import (
	"go.uber.org/zap"

	"orderflow/internal/domain/order"
	"orderflow/internal/event"
)

// EventIntrospector exposes the call order kept by the dispatcher.
type EventIntrospector interface {
	EventNames() []string
	HandlersFor(name string) []*event.Binding
}

type Handler struct {
	OrderSvc order.Service
	Events   EventIntrospector
	Log      *zap.Logger
}

func New(
	orderSvc order.Service,
	events EventIntrospector,
	log *zap.Logger,
) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		OrderSvc: orderSvc,
		Events:   events,
		Log:      log,
	}
}
