package order

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, o Order) (Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
}
