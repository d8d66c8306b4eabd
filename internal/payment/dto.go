package payment

import (
	errors "github.com/frahmantamala/checkout-payments/internal"
	"github.com/frahmantamala/checkout-payments/internal/core/common/validation"
)

// CreateIntentRequest is the payload for POST /api/payments/create-intent.
type CreateIntentRequest struct {
	OrderID     string `json:"orderId"`
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	Email       string `json:"email,omitempty"`
}

// CreateIntentResponse carries everything the browser needs to finish the
// checkout: the Stripe client secret plus both identifiers of the attempt.
type CreateIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	PaymentID       string `json:"paymentId"`
}

// RecordResultRequest is the client-reported outcome of a payment intent.
type RecordResultRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	Status          string `json:"status"`
	Error           string `json:"error,omitempty"`
}

type RecordResultResponse struct {
	OK bool `json:"ok"`
}

func (r *CreateIntentRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("orderId", r.OrderID).Required()
	validator.Field("amountCents", r.AmountCents).Required().MinInt(1, errors.ErrCodeInvalidAmount)
	validator.Field("currency", r.Currency).Required()
	validator.Field("email", r.Email).Email()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

func (r *RecordResultRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("paymentIntentId", r.PaymentIntentID).Required()
	validator.Field("status", r.Status).Required()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
