package payment

import (
	"context"
	"log/slog"
	"strings"

	errors "github.com/frahmantamala/checkout-payments/internal"
	"github.com/frahmantamala/checkout-payments/internal/core/datamodel/payment"
)

// RepositoryAPI is the persistence contract for payment rows.
type RepositoryAPI interface {
	Create(p *payment.Payment) error
	Save(p *payment.Payment) error
	GetByPaymentIntentID(intentID string) (*payment.Payment, error)
	GetAll() ([]*payment.Payment, error)
}

// IntentParams is what we hand the payment processor when opening an intent.
type IntentParams struct {
	AmountCents  int64
	Currency     string
	ReceiptEmail string
	OrderID      string
}

// Intent is the processor's view of an opened payment attempt.
type Intent struct {
	ID           string
	ClientSecret string
}

// ProcessorAPI abstracts the external payment processor so the service and
// its tests never depend on the Stripe SDK directly.
type ProcessorAPI interface {
	CreateIntent(ctx context.Context, params IntentParams) (*Intent, error)
}

// PaymentService owns the payment lifecycle: intent creation against the
// processor and reconciliation of client-reported outcomes.
type PaymentService struct {
	repository RepositoryAPI
	processor  ProcessorAPI
	logger     *slog.Logger
}

func NewPaymentService(repository RepositoryAPI, processor ProcessorAPI, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		repository: repository,
		processor:  processor,
		logger:     logger,
	}
}

// CreateIntent validates the request, persists a PENDING row, then asks the
// processor for a payment intent and links it back to the row.
//
// The insert commits before the processor call on purpose: if the call fails
// or we crash, the PENDING row without an intent ID records that an attempt
// was made with an unknown outcome. No cleanup or retry happens here.
func (s *PaymentService) CreateIntent(ctx context.Context, req *CreateIntentRequest) (*CreateIntentResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Error("create intent validation failed", "error", err, "order_id", req.OrderID)
		return nil, err
	}

	currency := strings.ToLower(req.Currency)

	entity := &payment.Payment{
		OrderID:     req.OrderID,
		AmountCents: req.AmountCents,
		Currency:    currency,
		Status:      payment.StatusPending,
	}
	if req.Email != "" {
		entity.BillingEmail = &req.Email
	}

	if err := s.repository.Create(entity); err != nil {
		s.logger.Error("failed to create payment record", "error", err, "order_id", req.OrderID)
		return nil, errors.NewInternalError("failed to create payment record", err)
	}

	s.logger.Info("payment record created",
		"payment_id", entity.ID,
		"order_id", req.OrderID,
		"amount_cents", req.AmountCents,
		"currency", currency)

	intent, err := s.processor.CreateIntent(ctx, IntentParams{
		AmountCents:  req.AmountCents,
		Currency:     currency,
		ReceiptEmail: req.Email,
		OrderID:      req.OrderID,
	})
	if err != nil {
		s.logger.Error("payment processor rejected intent creation",
			"error", err,
			"payment_id", entity.ID,
			"order_id", req.OrderID)
		return nil, errors.NewExternalError("payment processor request failed", errors.ErrCodeProcessorFailure, err)
	}

	entity.PaymentIntentID = &intent.ID
	if err := s.repository.Save(entity); err != nil {
		s.logger.Error("failed to link payment intent", "error", err, "payment_id", entity.ID, "payment_intent_id", intent.ID)
		return nil, errors.NewInternalError("failed to update payment record", err)
	}

	s.logger.Info("payment intent created",
		"payment_id", entity.ID,
		"payment_intent_id", intent.ID,
		"order_id", req.OrderID)

	return &CreateIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		PaymentID:       entity.ID.String(),
	}, nil
}

// RecordResult applies a client-reported outcome to the matching row.
//
// The mapping is a case-insensitive substring match over the reported status,
// checked in priority order so that a string carrying several markers
// resolves to the strongest one. Statuses matching none of the known markers
// are rejected rather than silently accepted.
//
// This is last-writer-wins: concurrent reports for the same intent race on
// the row and out-of-order delivery can overwrite a later state.
func (s *PaymentService) RecordResult(req *RecordResultRequest) error {
	if err := req.Validate(); err != nil {
		s.logger.Error("record result validation failed", "error", err)
		return err
	}

	entity, err := s.repository.GetByPaymentIntentID(req.PaymentIntentID)
	if err != nil {
		s.logger.Warn("no payment for reported intent", "payment_intent_id", req.PaymentIntentID, "error", err)
		return errors.ErrPaymentNotFound
	}

	status := strings.ToUpper(req.Status)
	switch {
	case strings.Contains(status, "SUCCEEDED"):
		entity.Status = payment.StatusSucceeded
		entity.LastError = nil
	case strings.Contains(status, "FAILED"), strings.Contains(status, "CANCELED"):
		entity.Status = payment.StatusFailed
		if req.Error != "" {
			entity.LastError = &req.Error
		} else {
			entity.LastError = nil
		}
	case strings.Contains(status, "PROCESSING"), strings.Contains(status, "REQUIRES"):
		entity.Status = payment.StatusPending
	default:
		s.logger.Warn("unrecognized payment status reported",
			"payment_intent_id", req.PaymentIntentID,
			"status", req.Status)
		return errors.ErrUnknownPaymentStatus
	}

	if err := s.repository.Save(entity); err != nil {
		s.logger.Error("failed to persist payment result", "error", err, "payment_id", entity.ID)
		return errors.NewInternalError("failed to update payment record", err)
	}

	s.logger.Info("payment result recorded",
		"payment_id", entity.ID,
		"payment_intent_id", req.PaymentIntentID,
		"reported_status", req.Status,
		"status", entity.Status)

	return nil
}

// GetAllPayments returns every payment row for the history listing.
func (s *PaymentService) GetAllPayments() ([]*payment.Payment, error) {
	return s.repository.GetAll()
}
