package domain

import "fmt"

type ErrorCode string

const (
	ErrorCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrorCodeValidation         ErrorCode = "VALIDATION_ERROR"
	ErrorCodeOrderRejected      ErrorCode = "ORDER_REJECTED"
	ErrorCodeNotificationFailed ErrorCode = "NOTIFICATION_FAILED"
)

type DomainError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
