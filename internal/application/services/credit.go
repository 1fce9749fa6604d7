package services

import (
	"context"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
	"github.com/commercekit/amazon-pay-gateway/internal/domain"
)

// Credit refunds against the transaction's recorded capture. Unlike authorize
// and capture, the provider's refund acknowledgement carries no pending or
// failed sub-status, so any non-failing round trip is reported as success.
func (s *GatewayService) Credit(ctx context.Context, amountCents int64, octx OrderContext) (*application.CallResult, error) {
	payment, err := s.payments.FindByNumber(ctx, octx.PaymentNumber)
	if err != nil {
		return nil, err
	}
	tx, err := s.transactions.FindByPaymentNumber(ctx, payment.Number)
	if err != nil {
		return nil, err
	}
	if tx.CaptureID == nil {
		return nil, domain.ErrNoCapture
	}

	client := s.clients.ClientFor(tx.OrderReferenceID)

	raw, err := client.Refund(
		ctx,
		*tx.CaptureID,
		OperationReference(payment.Number),
		majorUnits(amountCents),
		payment.Currency,
	)
	if err != nil {
		return providerFailure(err)
	}

	return &application.CallResult{
		Success: true,
		Message: successMessage,
		Raw:     raw,
	}, nil
}
