package application

import "github.com/commercekit/amazon-pay-gateway/internal/provider"

// CallResult is the uniform value every gateway operation returns to the
// domain caller. Message is always non-empty; a false Success carries the
// provider's declared reason whenever one is derivable from the response.
type CallResult struct {
	Success bool
	Message string

	// Raw is the decoded provider payload, nil when no call was made.
	Raw provider.Response
	// Parsed is the typed view over Raw, nil when the operation does not
	// parse its response.
	Parsed *provider.ParsedResponse
}
