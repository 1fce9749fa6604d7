package services_test

import (
	"io"
	"log/slog"

	"github.com/commercekit/amazon-pay-gateway/internal/application/services"
	"github.com/commercekit/amazon-pay-gateway/internal/domain"
	"github.com/commercekit/amazon-pay-gateway/internal/provider"
)

const (
	testOrderNumber      = "W0000000001"
	testPaymentNumber    = "PAY0000001"
	testOrderReferenceID = "S01-5105180-3221187"
)

type fixture struct {
	orders       *mockOrderRepository
	payments     *mockPaymentRepository
	transactions *mockTransactionRepository
	client       *mockProviderClient
	factory      *mockClientFactory
	gateway      *services.GatewayService
}

func newFixture(testMode bool) *fixture {
	f := &fixture{
		orders:       newMockOrderRepository(),
		payments:     newMockPaymentRepository(),
		transactions: newMockTransactionRepository(),
		client:       newMockProviderClient(),
	}
	f.factory = newMockClientFactory(f.client)

	f.orders.orders[testOrderNumber] = &domain.Order{
		Number:     testOrderNumber,
		Currency:   "USD",
		TotalCents: 4999,
	}
	f.payments.payments[testPaymentNumber] = &domain.Payment{
		Number:   testPaymentNumber,
		Currency: "USD",
	}
	f.transactions.add(&domain.AmazonTransaction{
		OrderNumber:      testOrderNumber,
		PaymentNumber:    testPaymentNumber,
		OrderReferenceID: testOrderReferenceID,
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.gateway = services.NewGatewayService(
		f.orders,
		f.payments,
		f.transactions,
		f.factory,
		testMode,
		logger,
	)
	return f
}

func (f *fixture) transaction() *domain.AmazonTransaction {
	return f.transactions.transactions[testOrderNumber]
}

func testContext() services.OrderContext {
	return services.OrderContext{
		OrderNumber:   testOrderNumber,
		PaymentNumber: testPaymentNumber,
	}
}

func authorizeResponse(state, reasonCode, authorizationID string) provider.Response {
	status := map[string]any{"State": state}
	if reasonCode != "" {
		status["ReasonCode"] = reasonCode
	}
	return provider.Response{
		"AuthorizeResponse": map[string]any{
			"AuthorizeResult": map[string]any{
				"AuthorizationDetails": map[string]any{
					"AmazonAuthorizationId": authorizationID,
					"AuthorizationStatus":   status,
				},
			},
		},
	}
}

func captureResponse(state, reasonCode, captureID string) provider.Response {
	status := map[string]any{"State": state}
	if reasonCode != "" {
		status["ReasonCode"] = reasonCode
	}
	details := map[string]any{
		"CaptureStatus": status,
	}
	if captureID != "" {
		details["AmazonCaptureId"] = captureID
	}
	return provider.Response{
		"CaptureResponse": map[string]any{
			"CaptureResult": map[string]any{
				"CaptureDetails": details,
			},
		},
	}
}
