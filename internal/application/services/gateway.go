// Package services holds the gateway orchestrator: the state logic deciding
// which provider call to make, how to interpret its outcome, and how the
// lifecycle operations compose.
package services

import (
	"log/slog"
	"strconv"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
)

const successMessage = "Success"

// OrderContext identifies the order and payment a gateway operation acts on.
type OrderContext struct {
	OrderNumber   string
	PaymentNumber string
}

// Reference renders the composite order-payment identifier used by callers
// and, for void reversals, as the provider reference id.
func (c OrderContext) Reference() string {
	return c.OrderNumber + "-" + c.PaymentNumber
}

// GatewayService orchestrates the payment lifecycle against the provider.
// The provider client is resolved per call through the factory, bound to the
// transaction's order reference, so one service instance safely serves many
// orders.
type GatewayService struct {
	orders       application.OrderRepository
	payments     application.PaymentRepository
	transactions application.TransactionRepository
	clients      application.ProviderClientFactory
	testMode     bool
	logger       *slog.Logger
}

func NewGatewayService(
	orders application.OrderRepository,
	payments application.PaymentRepository,
	transactions application.TransactionRepository,
	clients application.ProviderClientFactory,
	testMode bool,
	logger *slog.Logger,
) *GatewayService {
	return &GatewayService{
		orders:       orders,
		payments:     payments,
		transactions: transactions,
		clients:      clients,
		testMode:     testMode,
		logger:       logger,
	}
}

// majorUnits renders an amount in minor units as the decimal major-unit
// string the provider expects.
func majorUnits(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}

// providerFailure translates a provider call error: protocol-level
// non-success becomes a failed result carrying the provider's code and
// message, anything else is a transport fault wrapped as a gateway error.
func providerFailure(err error) (*application.CallResult, error) {
	if provErr, ok := application.IsProviderError(err); ok {
		return &application.CallResult{
			Success: false,
			Message: provErr.ResultMessage(),
		}, nil
	}
	return nil, application.NewGatewayError(err)
}
