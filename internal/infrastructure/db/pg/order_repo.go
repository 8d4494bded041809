package pg

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"orderflow/internal/domain"
	"orderflow/internal/domain/order"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	if err := queryRow(ctx, r.db,
		`INSERT INTO orders (order_id, product, quantity, email, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		o.ID, o.Product, o.Quantity, o.Email, o.Phone, o.CreatedAt,
	).Scan(&o.CreatedAt); err != nil {
		return order.Order{}, err
	}
	o.CreatedAt = o.CreatedAt.UTC()
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (order.Order, error) {
	o := order.Order{ID: id}
	err := queryRow(ctx, r.db,
		`SELECT product, quantity, email, phone, created_at
		   FROM orders
		  WHERE order_id = $1`,
		id,
	).Scan(&o.Product, &o.Quantity, &o.Email, &o.Phone, &o.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, &domain.DomainError{
			Code:       domain.ErrorCodeNotFound,
			Message:    "order not found",
			HTTPStatus: http.StatusNotFound,
		}
	}
	if err != nil {
		return order.Order{}, err
	}
	o.CreatedAt = o.CreatedAt.UTC()
	return o, nil
}
