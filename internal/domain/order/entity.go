package order

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

// Draft holds the customer input an Order is built from.
type Draft struct {
	Product  string `validate:"required,max=255"`
	Quantity int    `validate:"gt=0,lte=10000"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required,min=6,max=20"`
}

// Order is immutable once built; handlers receive copies.
type Order struct {
	ID        uuid.UUID
	Product   string
	Quantity  int
	Email     string
	Phone     string
	CreatedAt time.Time
}

// New validates d and builds an Order from it.
func New(d Draft, id uuid.UUID, now time.Time) (Order, error) {
	if err := d.Validate(); err != nil {
		return Order{}, err
	}
	return Order{
		ID:        id,
		Product:   d.Product,
		Quantity:  d.Quantity,
		Email:     d.Email,
		Phone:     d.Phone,
		CreatedAt: now,
	}, nil
}

func (o Order) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", o.ID.String())
	enc.AddString("product", o.Product)
	enc.AddInt("quantity", o.Quantity)
	enc.AddString("email", o.Email)
	enc.AddString("phone", o.Phone)
	return nil
}
