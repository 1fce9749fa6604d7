package services_test

import (
	"context"
	"sync"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
	"github.com/commercekit/amazon-pay-gateway/internal/domain"
	"github.com/commercekit/amazon-pay-gateway/internal/provider"
)

// mockOrderRepository
type mockOrderRepository struct {
	orders map[string]*domain.Order

	FindByNumberFn func(ctx context.Context, number string) (*domain.Order, error)
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[string]*domain.Order)}
}

func (m *mockOrderRepository) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	if m.FindByNumberFn != nil {
		return m.FindByNumberFn(ctx, number)
	}
	if o, ok := m.orders[number]; ok {
		return o, nil
	}
	return nil, domain.ErrOrderNotFound
}

// mockPaymentRepository
type mockPaymentRepository struct {
	payments map[string]*domain.Payment

	FindByNumberFn func(ctx context.Context, number string) (*domain.Payment, error)
}

func newMockPaymentRepository() *mockPaymentRepository {
	return &mockPaymentRepository{payments: make(map[string]*domain.Payment)}
}

func (m *mockPaymentRepository) FindByNumber(ctx context.Context, number string) (*domain.Payment, error) {
	if m.FindByNumberFn != nil {
		return m.FindByNumberFn(ctx, number)
	}
	if p, ok := m.payments[number]; ok {
		return p, nil
	}
	return nil, domain.ErrPaymentNotFound
}

// mockTransactionRepository
type mockTransactionRepository struct {
	mu           sync.Mutex
	transactions map[string]*domain.AmazonTransaction
	updates      []*domain.AmazonTransaction

	FindByOrderNumberFn   func(ctx context.Context, orderNumber string) (*domain.AmazonTransaction, error)
	FindByPaymentNumberFn func(ctx context.Context, paymentNumber string) (*domain.AmazonTransaction, error)
	UpdateFn              func(ctx context.Context, tx *domain.AmazonTransaction) error
}

func newMockTransactionRepository() *mockTransactionRepository {
	return &mockTransactionRepository{transactions: make(map[string]*domain.AmazonTransaction)}
}

func (m *mockTransactionRepository) add(tx *domain.AmazonTransaction) {
	m.transactions[tx.OrderNumber] = tx
}

func (m *mockTransactionRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.AmazonTransaction, error) {
	if m.FindByOrderNumberFn != nil {
		return m.FindByOrderNumberFn(ctx, orderNumber)
	}
	if tx, ok := m.transactions[orderNumber]; ok {
		return tx, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *mockTransactionRepository) FindByPaymentNumber(ctx context.Context, paymentNumber string) (*domain.AmazonTransaction, error) {
	if m.FindByPaymentNumberFn != nil {
		return m.FindByPaymentNumberFn(ctx, paymentNumber)
	}
	for _, tx := range m.transactions {
		if tx.PaymentNumber == paymentNumber {
			return tx, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *mockTransactionRepository) Update(ctx context.Context, tx *domain.AmazonTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, tx)
	}
	m.updates = append(m.updates, tx)
	return nil
}

// recorded arguments of one provider call
type providerCall struct {
	Operation   string
	ReferenceID string
	Amount      string
	Currency    string
	TargetID    string
	Note        string
}

// mockProviderClient
type mockProviderClient struct {
	mu    sync.Mutex
	Calls []providerCall

	AuthorizeFn func(ctx context.Context, referenceID, amount, currencyCode string, opts application.AuthorizeOptions) (provider.Response, error)
	CaptureFn   func(ctx context.Context, authorizationID, referenceID, amount, currencyCode string) (provider.Response, error)
	RefundFn    func(ctx context.Context, captureID, referenceID, amount, currencyCode string) (provider.Response, error)
	CancelFn    func(ctx context.Context) (provider.Response, error)
}

func newMockProviderClient() *mockProviderClient {
	return &mockProviderClient{}
}

func (m *mockProviderClient) record(call providerCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

func (m *mockProviderClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *mockProviderClient) Authorize(ctx context.Context, referenceID, amount, currencyCode string, opts application.AuthorizeOptions) (provider.Response, error) {
	m.record(providerCall{
		Operation:   "Authorize",
		ReferenceID: referenceID,
		Amount:      amount,
		Currency:    currencyCode,
		Note:        opts.SellerAuthorizationNote,
	})
	if m.AuthorizeFn != nil {
		return m.AuthorizeFn(ctx, referenceID, amount, currencyCode, opts)
	}
	return provider.Response{}, nil
}

func (m *mockProviderClient) Capture(ctx context.Context, authorizationID, referenceID, amount, currencyCode string) (provider.Response, error) {
	m.record(providerCall{
		Operation:   "Capture",
		ReferenceID: referenceID,
		Amount:      amount,
		Currency:    currencyCode,
		TargetID:    authorizationID,
	})
	if m.CaptureFn != nil {
		return m.CaptureFn(ctx, authorizationID, referenceID, amount, currencyCode)
	}
	return provider.Response{}, nil
}

func (m *mockProviderClient) Refund(ctx context.Context, captureID, referenceID, amount, currencyCode string) (provider.Response, error) {
	m.record(providerCall{
		Operation:   "Refund",
		ReferenceID: referenceID,
		Amount:      amount,
		Currency:    currencyCode,
		TargetID:    captureID,
	})
	if m.RefundFn != nil {
		return m.RefundFn(ctx, captureID, referenceID, amount, currencyCode)
	}
	return provider.Response{}, nil
}

func (m *mockProviderClient) Cancel(ctx context.Context) (provider.Response, error) {
	m.record(providerCall{Operation: "Cancel"})
	if m.CancelFn != nil {
		return m.CancelFn(ctx)
	}
	return provider.Response{}, nil
}

// mockClientFactory hands out one client and records the order references it
// was asked for.
type mockClientFactory struct {
	mu         sync.Mutex
	client     *mockProviderClient
	References []string
}

func newMockClientFactory(client *mockProviderClient) *mockClientFactory {
	return &mockClientFactory{client: client}
}

func (f *mockClientFactory) ClientFor(orderReferenceID string) application.ProviderClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.References = append(f.References, orderReferenceID)
	return f.client
}
