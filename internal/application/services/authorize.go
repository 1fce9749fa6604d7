package services

import (
	"context"
	"fmt"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
	"github.com/commercekit/amazon-pay-gateway/internal/provider"
)

// Authorize reserves funds against the buyer's payment instrument. The
// authorization id is recorded on the transaction only when the provider
// reports the Open state.
func (s *GatewayService) Authorize(ctx context.Context, amountCents int64, octx OrderContext) (*application.CallResult, error) {
	// Upstream call sites use a negative amount as a no-op sentinel, e.g.
	// zero-value and reversal paths that must not hit the provider.
	if amountCents < 0 {
		return &application.CallResult{Success: true, Message: successMessage}, nil
	}

	order, err := s.orders.FindByNumber(ctx, octx.OrderNumber)
	if err != nil {
		return nil, err
	}
	payment, err := s.payments.FindByNumber(ctx, octx.PaymentNumber)
	if err != nil {
		return nil, err
	}
	tx, err := s.transactions.FindByOrderNumber(ctx, order.Number)
	if err != nil {
		return nil, err
	}

	client := s.clients.ClientFor(tx.OrderReferenceID)
	note := SimulationNote(order.ShipAddress, s.testMode, s.logger)

	raw, err := client.Authorize(
		ctx,
		OperationReference(payment.Number),
		majorUnits(amountCents),
		order.Currency,
		application.AuthorizeOptions{SellerAuthorizationNote: note},
	)
	if err != nil {
		return providerFailure(err)
	}

	parsed := provider.ParseResponse(provider.Authorization, raw)
	if parsed.State() != provider.StateOpen {
		return &application.CallResult{
			Success: false,
			Message: fmt.Sprintf("Authorization failure: %s", parsed.ReasonCode()),
			Raw:     raw,
			Parsed:  parsed,
		}, nil
	}

	authorizationID := parsed.ID()
	tx.AuthorizationID = &authorizationID
	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}

	return &application.CallResult{
		Success: true,
		Message: successMessage,
		Raw:     raw,
		Parsed:  parsed,
	}, nil
}
