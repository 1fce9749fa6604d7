// Package mws is the HTTP Provider Client for the Amazon MWS off-Amazon
// payments API: Signature Version 2 signed form POSTs, XML responses decoded
// into nested maps.
package mws

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/clbanning/mxj/v2"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
	"github.com/commercekit/amazon-pay-gateway/internal/config"
	"github.com/commercekit/amazon-pay-gateway/internal/provider"
)

const apiVersion = "2013-01-01"

// Factory builds clients bound to a single provider order reference. The
// underlying http.Client is shared; the binding is not.
type Factory struct {
	cfg        config.ProviderConfig
	httpClient *http.Client
}

func NewFactory(cfg config.ProviderConfig) *Factory {
	return &Factory{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (f *Factory) ClientFor(orderReferenceID string) application.ProviderClient {
	return &Client{
		cfg:              f.cfg,
		httpClient:       f.httpClient,
		orderReferenceID: orderReferenceID,
	}
}

// Client performs signed calls for one order reference.
type Client struct {
	cfg              config.ProviderConfig
	httpClient       *http.Client
	orderReferenceID string
}

func (c *Client) Authorize(ctx context.Context, referenceID, amount, currencyCode string, opts application.AuthorizeOptions) (provider.Response, error) {
	params := map[string]string{
		"Action":                           "Authorize",
		"AmazonOrderReferenceId":           c.orderReferenceID,
		"AuthorizationReferenceId":         referenceID,
		"AuthorizationAmount.Amount":       amount,
		"AuthorizationAmount.CurrencyCode": currencyCode,
		"TransactionTimeout":               "0",
	}
	if opts.SellerAuthorizationNote != "" {
		params["SellerAuthorizationNote"] = opts.SellerAuthorizationNote
	}
	return c.post(ctx, params)
}

func (c *Client) Capture(ctx context.Context, authorizationID, referenceID, amount, currencyCode string) (provider.Response, error) {
	return c.post(ctx, map[string]string{
		"Action":                     "Capture",
		"AmazonAuthorizationId":      authorizationID,
		"CaptureReferenceId":         referenceID,
		"CaptureAmount.Amount":       amount,
		"CaptureAmount.CurrencyCode": currencyCode,
	})
}

func (c *Client) Refund(ctx context.Context, captureID, referenceID, amount, currencyCode string) (provider.Response, error) {
	return c.post(ctx, map[string]string{
		"Action":                    "Refund",
		"AmazonCaptureId":           captureID,
		"RefundReferenceId":         referenceID,
		"RefundAmount.Amount":       amount,
		"RefundAmount.CurrencyCode": currencyCode,
	})
}

func (c *Client) Cancel(ctx context.Context) (provider.Response, error) {
	return c.post(ctx, map[string]string{
		"Action":                 "CancelOrderReference",
		"AmazonOrderReferenceId": c.orderReferenceID,
	})
}

func (c *Client) post(ctx context.Context, params map[string]string) (provider.Response, error) {
	endpoint := c.cfg.APIURL()
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid provider api url: %w", err)
	}

	form := c.signedParams(u, params)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseProviderError(resp.StatusCode, body)
	}

	return decodeResponse(body)
}

func decodeResponse(body []byte) (provider.Response, error) {
	m, err := mxj.NewMapXml(body)
	if err != nil {
		return nil, fmt.Errorf("error decoding provider response: %w", err)
	}
	return provider.Response(m), nil
}

// parseProviderError turns a non-200 response into a ProviderError, pulling
// Code and Message from the ErrorResponse envelope when the body is one.
func parseProviderError(statusCode int, body []byte) *application.ProviderError {
	if m, err := mxj.NewMapXml(body); err == nil {
		raw := provider.Response(m)
		code, haveCode := raw.DigString("ErrorResponse", "Error", "Code")
		message, haveMessage := raw.DigString("ErrorResponse", "Error", "Message")
		if haveCode && haveMessage {
			return &application.ProviderError{
				StatusCode: statusCode,
				Code:       code,
				Message:    message,
				Body:       string(body),
			}
		}
	}
	return &application.ProviderError{
		StatusCode: statusCode,
		Body:       string(body),
	}
}
