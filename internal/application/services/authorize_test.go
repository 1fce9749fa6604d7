package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
	"github.com/commercekit/amazon-pay-gateway/internal/application/services"
	"github.com/commercekit/amazon-pay-gateway/internal/domain"
	"github.com/commercekit/amazon-pay-gateway/internal/provider"
)

func TestAuthorize_NegativeAmount_SucceedsWithoutProviderCall(t *testing.T) {
	f := newFixture(false)

	result, err := f.gateway.Authorize(context.Background(), -100, testContext())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Success", result.Message)
	assert.Equal(t, 0, f.client.CallCount())
	assert.Empty(t, f.factory.References)
}

func TestAuthorize_OpenState_RecordsAuthorizationID(t *testing.T) {
	f := newFixture(false)
	f.client.AuthorizeFn = func(_ context.Context, _, _, _ string, _ application.AuthorizeOptions) (provider.Response, error) {
		return authorizeResponse(provider.StateOpen, "", "P01-1234567-AUTH"), nil
	}

	result, err := f.gateway.Authorize(context.Background(), 2500, testContext())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Success", result.Message)
	require.NotNil(t, result.Parsed)
	assert.Equal(t, "P01-1234567-AUTH", result.Parsed.ID())

	tx := f.transaction()
	require.NotNil(t, tx.AuthorizationID)
	assert.Equal(t, "P01-1234567-AUTH", *tx.AuthorizationID)
	assert.Len(t, f.transactions.updates, 1)
}

func TestAuthorize_BindsClientToTransactionOrderReference(t *testing.T) {
	f := newFixture(false)
	f.client.AuthorizeFn = func(_ context.Context, _, _, _ string, _ application.AuthorizeOptions) (provider.Response, error) {
		return authorizeResponse(provider.StateOpen, "", "auth-1"), nil
	}

	_, err := f.gateway.Authorize(context.Background(), 2500, testContext())

	require.NoError(t, err)
	require.Len(t, f.factory.References, 1)
	assert.Equal(t, testOrderReferenceID, f.factory.References[0])
}

func TestAuthorize_SendsMajorUnitsAndFreshReference(t *testing.T) {
	f := newFixture(false)
	f.client.AuthorizeFn = func(_ context.Context, _, _, _ string, _ application.AuthorizeOptions) (provider.Response, error) {
		return authorizeResponse(provider.StateOpen, "", "auth-1"), nil
	}

	_, err := f.gateway.Authorize(context.Background(), 2500, testContext())
	require.NoError(t, err)
	_, err = f.gateway.Authorize(context.Background(), 2500, testContext())
	require.NoError(t, err)

	require.Len(t, f.client.Calls, 2)
	first, second := f.client.Calls[0], f.client.Calls[1]

	assert.Equal(t, "25.00", first.Amount)
	assert.Equal(t, "USD", first.Currency)
	assert.True(t, strings.HasPrefix(first.ReferenceID, testPaymentNumber+"-"))
	assert.NotEqual(t, first.ReferenceID, second.ReferenceID)
}

func TestAuthorize_DeclinedState_FailsWithReasonCode(t *testing.T) {
	f := newFixture(false)
	f.client.AuthorizeFn = func(_ context.Context, _, _, _ string, _ application.AuthorizeOptions) (provider.Response, error) {
		return authorizeResponse(provider.StateDeclined, "InvalidPaymentMethod", "auth-1"), nil
	}

	result, err := f.gateway.Authorize(context.Background(), 2500, testContext())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Authorization failure: InvalidPaymentMethod", result.Message)
	assert.Nil(t, f.transaction().AuthorizationID)
	assert.Empty(t, f.transactions.updates)
}

func TestAuthorize_ProviderError_FailsWithCodeAndMessage(t *testing.T) {
	f := newFixture(false)
	f.client.AuthorizeFn = func(_ context.Context, _, _, _ string, _ application.AuthorizeOptions) (provider.Response, error) {
		return nil, &application.ProviderError{
			StatusCode: 404,
			Code:       "InvalidOrderReferenceId",
			Message:    "The OrderReferenceId is invalid",
		}
	}

	result, err := f.gateway.Authorize(context.Background(), 2500, testContext())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "InvalidOrderReferenceId")
	assert.Contains(t, result.Message, "The OrderReferenceId is invalid")
	assert.Contains(t, result.Message, "404")
}

func TestAuthorize_TransportFailure_ReturnsGatewayError(t *testing.T) {
	f := newFixture(false)
	f.client.AuthorizeFn = func(_ context.Context, _, _, _ string, _ application.AuthorizeOptions) (provider.Response, error) {
		return nil, errors.New("connection reset by peer")
	}

	result, err := f.gateway.Authorize(context.Background(), 2500, testContext())

	require.Error(t, err)
	assert.Nil(t, result)
	gwErr, ok := application.IsGatewayError(err)
	require.True(t, ok)
	assert.Contains(t, gwErr.Error(), "connection reset by peer")
}

func TestAuthorize_UnknownOrder_ReturnsLookupFailure(t *testing.T) {
	f := newFixture(false)

	_, err := f.gateway.Authorize(context.Background(), 2500, services.OrderContext{
		OrderNumber:   "W9999999999",
		PaymentNumber: testPaymentNumber,
	})

	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Equal(t, 0, f.client.CallCount())
}

func TestAuthorize_TestMode_AttachesSimulationNote(t *testing.T) {
	f := newFixture(true)
	f.orders.orders[testOrderNumber].ShipAddress = &domain.Address{
		FirstName: "AmazonRejected",
		LastName:  "SandboxSimulation",
	}
	f.client.AuthorizeFn = func(_ context.Context, _, _, _ string, _ application.AuthorizeOptions) (provider.Response, error) {
		return authorizeResponse(provider.StateOpen, "", "auth-1"), nil
	}

	_, err := f.gateway.Authorize(context.Background(), 2500, testContext())

	require.NoError(t, err)
	require.Len(t, f.client.Calls, 1)
	assert.Equal(t,
		`{"SandboxSimulation": {"State":"Declined", "ReasonCode":"AmazonRejected"}}`,
		f.client.Calls[0].Note,
	)
}

func TestAuthorize_LiveMode_NoSimulationNote(t *testing.T) {
	f := newFixture(false)
	f.orders.orders[testOrderNumber].ShipAddress = &domain.Address{
		FirstName: "AmazonRejected",
		LastName:  "SandboxSimulation",
	}
	f.client.AuthorizeFn = func(_ context.Context, _, _, _ string, _ application.AuthorizeOptions) (provider.Response, error) {
		return authorizeResponse(provider.StateOpen, "", "auth-1"), nil
	}

	_, err := f.gateway.Authorize(context.Background(), 2500, testContext())

	require.NoError(t, err)
	require.Len(t, f.client.Calls, 1)
	assert.Empty(t, f.client.Calls[0].Note)
}
