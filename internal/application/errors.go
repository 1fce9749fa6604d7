package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/commercekit/amazon-pay-gateway/internal/domain"
)

// GatewayError wraps a transport-level failure talking to the provider. It
// always carries the original error and is propagated to the caller untouched.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func NewGatewayError(err error) *GatewayError {
	return &GatewayError{Err: err}
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}

// ProviderError is a protocol-level non-success from the provider: the HTTP
// round trip completed but the provider answered with an error status. Code
// and Message come from the ErrorResponse envelope when the body parses as
// one; otherwise Body holds the raw payload.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

// ResultMessage renders the error the way gateway results report it:
// "403 InvalidOrderReferenceId: ..." when the envelope parsed, otherwise the
// raw status and body.
func (e *ProviderError) ResultMessage() string {
	if e.Code != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Body)
}

func IsProviderError(err error) (*ProviderError, bool) {
	var provErr *ProviderError
	ok := errors.As(err, &provErr)
	return provErr, ok
}

// ToHTTPStatus maps an error to the status code the REST surface reports.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrNoAuthorization),
		errors.Is(err, domain.ErrNoCapture):
		return http.StatusConflict
	}

	if provErr, ok := IsProviderError(err); ok {
		return provErr.StatusCode
	}

	if _, ok := IsGatewayError(err); ok {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// ToErrorCode maps an error to a stable machine-readable code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return "ORDER_NOT_FOUND"
	case errors.Is(err, domain.ErrPaymentNotFound):
		return "PAYMENT_NOT_FOUND"
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "TRANSACTION_NOT_FOUND"
	case errors.Is(err, domain.ErrNoAuthorization):
		return "NO_AUTHORIZATION"
	case errors.Is(err, domain.ErrNoCapture):
		return "NO_CAPTURE"
	}

	if provErr, ok := IsProviderError(err); ok && provErr.Code != "" {
		return provErr.Code
	}

	if _, ok := IsGatewayError(err); ok {
		return "GATEWAY_ERROR"
	}

	return "INTERNAL_ERROR"
}
