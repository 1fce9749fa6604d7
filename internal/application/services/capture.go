package services

import (
	"context"
	"fmt"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
	"github.com/commercekit/amazon-pay-gateway/internal/domain"
	"github.com/commercekit/amazon-pay-gateway/internal/provider"
)

// Capture converts an open authorization into a funds transfer. The capture
// id from the response is persisted whether or not the capture completed;
// success is reported only for the Completed state.
func (s *GatewayService) Capture(ctx context.Context, amountCents int64, octx OrderContext) (*application.CallResult, error) {
	// A negative capture instruction is a refund request, not an error.
	if amountCents < 0 {
		return s.Credit(ctx, -amountCents, octx)
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
	if tx.AuthorizationID == nil {
		return nil, domain.ErrNoAuthorization
	}

	client := s.clients.ClientFor(tx.OrderReferenceID)

	raw, err := client.Capture(
		ctx,
		*tx.AuthorizationID,
		OperationReference(payment.Number),
		majorUnits(amountCents),
		order.Currency,
	)
	if err != nil {
		return providerFailure(err)
	}

	parsed := provider.ParseResponse(provider.Capture, raw)
	tx.CaptureID = nil
	if id := parsed.ID(); id != "" {
		tx.CaptureID = &id
	}
	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}

	if !parsed.Success() {
		return &application.CallResult{
			Success: false,
			Message: captureFailureMessage(parsed),
			Raw:     raw,
			Parsed:  parsed,
		}, nil
	}

	return &application.CallResult{
		Success: true,
		Message: "OK",
		Raw:     raw,
		Parsed:  parsed,
	}, nil
}

func captureFailureMessage(parsed *provider.ParsedResponse) string {
	if reason := parsed.ReasonCode(); reason != "" {
		return fmt.Sprintf("Capture failure: %s", reason)
	}
	if state := parsed.State(); state != "" {
		return fmt.Sprintf("Capture failure: state %s", state)
	}
	return "Capture failure"
}
