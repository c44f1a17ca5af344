package errors

import (
	"errors"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var ErrInvalidPaymentMethod = NewValidationError("Payment method must be 'cash', 'upi', 'credit-card' or 'debit-card'")
var ErrInvalidTransactionType = NewValidationError("Type must be 'credit' or 'debit'")
var ErrNegativeAmount = NewValidationError("Amount must not be negative")
