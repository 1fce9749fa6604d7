package rest

import (
	"encoding/json"
	"net/http"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CallResultBody is the JSON shape of a gateway call result.
type CallResultBody struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Raw      any    `json:"raw,omitempty"`
	ID       string `json:"id,omitempty"`
	State    string `json:"state,omitempty"`
	Amount   string `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
}

func toCallResultBody(result *application.CallResult) CallResultBody {
	body := CallResultBody{
		Success: result.Success,
		Message: result.Message,
		Raw:     result.Raw,
	}
	if result.Parsed != nil {
		body.ID = result.Parsed.ID()
		body.State = result.Parsed.State()
		body.Amount = result.Parsed.Amount()
		body.Currency = result.Parsed.CurrencyCode()
	}
	return body
}

func respondWithJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

// WriteError maps application and domain errors to HTTP responses.
func WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(application.ToHTTPStatus(err))

	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error: &APIError{
			Code:    application.ToErrorCode(err),
			Message: err.Error(),
		},
	})
}
