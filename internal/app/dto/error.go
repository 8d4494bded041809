package dto

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error Error `json:"error"`
}

// OrderErrorResponse reports a failure that happened after the order was
// stored, so the client still learns its id.
type OrderErrorResponse struct {
	Error Error `json:"error"`
	Order Order `json:"order"`
}
