package services

import (
	"context"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
	"github.com/commercekit/amazon-pay-gateway/internal/provider"
)

// Void reverses whatever the order has reached: before any capture it cancels
// the order reference reservation, after a capture it refunds the full order
// total against the recorded capture. Like Credit, any non-failing round trip
// is reported as success.
func (s *GatewayService) Void(ctx context.Context, octx OrderContext) (*application.CallResult, error) {
	order, err := s.orders.FindByNumber(ctx, octx.OrderNumber)
	if err != nil {
		return nil, err
	}
	tx, err := s.transactions.FindByOrderNumber(ctx, order.Number)
	if err != nil {
		return nil, err
	}

	client := s.clients.ClientFor(tx.OrderReferenceID)

	var raw provider.Response
	if tx.CaptureID == nil {
		raw, err = client.Cancel(ctx)
	} else {
		// The reversal is identified by the composite order-payment
		// reference; it does not mint a fresh operation reference.
		raw, err = client.Refund(
			ctx,
			*tx.CaptureID,
			octx.Reference(),
			majorUnits(order.TotalCents),
			order.Currency,
		)
	}
	if err != nil {
		return providerFailure(err)
	}

	return &application.CallResult{
		Success: true,
		Message: successMessage,
		Raw:     raw,
	}, nil
}
