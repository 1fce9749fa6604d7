package services

import (
	"context"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
)

// Purchase is authorize followed by capture for the same amount. A failed
// authorization is returned unchanged and capture is never attempted.
func (s *GatewayService) Purchase(ctx context.Context, amountCents int64, octx OrderContext) (*application.CallResult, error) {
	authResult, err := s.Authorize(ctx, amountCents, octx)
	if err != nil {
		return nil, err
	}
	if !authResult.Success {
		return authResult, nil
	}
	return s.Capture(ctx, amountCents, octx)
}
