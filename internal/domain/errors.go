package domain

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrTransactionNotFound = errors.New("amazon transaction not found")

	// ErrNoAuthorization is returned when a capture is attempted before any
	// authorization has been recorded on the transaction.
	ErrNoAuthorization = errors.New("transaction has no authorization id")

	// ErrNoCapture is returned when a refund is attempted before any capture
	// has been recorded on the transaction.
	ErrNoCapture = errors.New("transaction has no capture id")
)
