package application

import (
	"context"

	"github.com/commercekit/amazon-pay-gateway/internal/domain"
	"github.com/commercekit/amazon-pay-gateway/internal/provider"
)

// AuthorizeOptions carries the optional parameters of an authorize call.
type AuthorizeOptions struct {
	// SellerAuthorizationNote is forwarded verbatim to the provider. In
	// sandbox mode it may hold a simulation directive.
	SellerAuthorizationNote string
}

// ProviderClient performs signed remote calls against the provider for one
// order reference. Amounts are decimal strings in major currency units.
// Implementations return the decoded response mapping, a *ProviderError-style
// typed error for protocol-level failures, or a plain error on transport
// failure.
type ProviderClient interface {
	Authorize(ctx context.Context, referenceID, amount, currencyCode string, opts AuthorizeOptions) (provider.Response, error)
	Capture(ctx context.Context, authorizationID, referenceID, amount, currencyCode string) (provider.Response, error)
	Refund(ctx context.Context, captureID, referenceID, amount, currencyCode string) (provider.Response, error)
	Cancel(ctx context.Context) (provider.Response, error)
}

// ProviderClientFactory builds a ProviderClient bound to one provider order
// reference. Clients are request-scoped: the orchestrator asks for a fresh one
// on every call instead of caching a binding across orders.
type ProviderClientFactory interface {
	ClientFor(orderReferenceID string) ProviderClient
}

type OrderRepository interface {
	FindByNumber(ctx context.Context, number string) (*domain.Order, error)
}

type PaymentRepository interface {
	FindByNumber(ctx context.Context, number string) (*domain.Payment, error)
}

type TransactionRepository interface {
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.AmazonTransaction, error)
	FindByPaymentNumber(ctx context.Context, paymentNumber string) (*domain.AmazonTransaction, error)
	Update(ctx context.Context, tx *domain.AmazonTransaction) error
}
