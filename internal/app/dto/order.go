package dto

import "time"

// CreateOrder is accepted as a JSON body or as form fields.
type CreateOrder struct {
	Product  string `json:"product" form:"product"`
	Quantity int    `json:"quantity" form:"quantity"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
}

type Order struct {
	OrderID   string    `json:"order_id"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
