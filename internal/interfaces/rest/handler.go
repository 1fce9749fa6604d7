package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/commercekit/amazon-pay-gateway/internal/application"
	"github.com/commercekit/amazon-pay-gateway/internal/application/services"
)

// Gateway is the slice of the orchestrator the REST surface needs.
type Gateway interface {
	Authorize(ctx context.Context, amountCents int64, octx services.OrderContext) (*application.CallResult, error)
	Capture(ctx context.Context, amountCents int64, octx services.OrderContext) (*application.CallResult, error)
	Purchase(ctx context.Context, amountCents int64, octx services.OrderContext) (*application.CallResult, error)
	Credit(ctx context.Context, amountCents int64, octx services.OrderContext) (*application.CallResult, error)
	Void(ctx context.Context, octx services.OrderContext) (*application.CallResult, error)
}

type PaymentHandler struct {
	gateway  Gateway
	validate *validator.Validate
}

func NewPaymentHandler(gateway Gateway) *PaymentHandler {
	return &PaymentHandler{
		gateway:  gateway,
		validate: validator.New(),
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/payments/authorize", postOnly(h.HandleAuthorize))
	mux.HandleFunc("/api/v1/payments/capture", postOnly(h.HandleCapture))
	mux.HandleFunc("/api/v1/payments/purchase", postOnly(h.HandlePurchase))
	mux.HandleFunc("/api/v1/payments/refund", postOnly(h.HandleRefund))
	mux.HandleFunc("/api/v1/payments/void", postOnly(h.HandleVoid))
}

// postOnly emulates Go 1.22+ "POST /path" ServeMux patterns on Go 1.21:
// non-POST requests get 405 with an Allow header, as the newer mux does.
func postOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

// OperationRequest is the body shared by the amount-carrying operations.
// AmountCents may be negative: authorize treats that as a no-op sentinel and
// capture as a refund instruction.
type OperationRequest struct {
	OrderNumber   string `json:"order_number" validate:"required"`
	PaymentNumber string `json:"payment_number" validate:"required"`
	AmountCents   int64  `json:"amount_cents"`
}

type VoidRequest struct {
	OrderNumber   string `json:"order_number" validate:"required"`
	PaymentNumber string `json:"payment_number" validate:"required"`
}

func (h *PaymentHandler) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, h.gateway.Authorize)
}

func (h *PaymentHandler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, h.gateway.Capture)
}

func (h *PaymentHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, h.gateway.Purchase)
}

func (h *PaymentHandler) HandleRefund(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, h.gateway.Credit)
}

func (h *PaymentHandler) HandleVoid(w http.ResponseWriter, r *http.Request) {
	var req VoidRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.gateway.Void(r.Context(), services.OrderContext{
		OrderNumber:   req.OrderNumber,
		PaymentNumber: req.PaymentNumber,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	// Business declines stay at 200: they are normal lifecycle outcomes,
	// reported through the result body, not HTTP errors.
	respondWithJSON(w, http.StatusOK, toCallResultBody(result))
}

type operation func(ctx context.Context, amountCents int64, octx services.OrderContext) (*application.CallResult, error)

func (h *PaymentHandler) handleOperation(w http.ResponseWriter, r *http.Request, op operation) {
	var req OperationRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := op(r.Context(), req.AmountCents, services.OrderContext{
		OrderNumber:   req.OrderNumber,
		PaymentNumber: req.PaymentNumber,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toCallResultBody(result))
}

func (h *PaymentHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeValidationError(w, "request body is not valid JSON")
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err.Error())
		return false
	}
	return true
}

func writeValidationError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error: &APIError{
			Code:    "VALIDATION_ERROR",
			Message: message,
		},
	})
}
