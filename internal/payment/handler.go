package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	errors "github.com/frahmantamala/checkout-payments/internal"
	"github.com/frahmantamala/checkout-payments/internal/core/datamodel/payment"
	"github.com/frahmantamala/checkout-payments/internal/transport"
)

// ServiceAPI is the surface handlers need from the payment service.
type ServiceAPI interface {
	CreateIntent(ctx context.Context, req *CreateIntentRequest) (*CreateIntentResponse, error)
	RecordResult(req *RecordResultRequest) error
	GetAllPayments() ([]*payment.Payment, error)
}

type Handler struct {
	transport.BaseHandler
	PaymentService ServiceAPI
	Logger         *slog.Logger
}

func NewHandler(paymentService ServiceAPI, logger *slog.Logger) *Handler {
	return &Handler{
		BaseHandler:    transport.BaseHandler{Logger: logger},
		PaymentService: paymentService,
		Logger:         logger,
	}
}

// CreateIntent handles POST /api/payments/create-intent
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("CreateIntent: failed to parse request body", "error", err)
		h.HandleError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	resp, err := h.PaymentService.CreateIntent(r.Context(), &req)
	if err != nil {
		h.Logger.Error("CreateIntent: service error", "error", err, "order_id", req.OrderID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// RecordResult handles POST /api/payments/record-result
func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	var req RecordResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("RecordResult: failed to parse request body", "error", err)
		h.HandleError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	if err := h.PaymentService.RecordResult(&req); err != nil {
		h.Logger.Error("RecordResult: service error", "error", err, "payment_intent_id", req.PaymentIntentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, RecordResultResponse{OK: true})
}

// GetAllPayments handles GET /get-all-payments
//
// On a store failure the body is deliberately a plain-text generic message so
// no persistence detail leaks on the read path.
func (h *Handler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.PaymentService.GetAllPayments()
	if err != nil {
		h.Logger.Error("GetAllPayments: store error", "error", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("unable to process your request."))
		return
	}

	if payments == nil {
		payments = []*payment.Payment{}
	}

	h.WriteJSON(w, http.StatusOK, payments)
}
