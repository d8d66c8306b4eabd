package payment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lifecycle states. A row is created PENDING and only the reconciliation
// flow moves it to SUCCEEDED or FAILED. Rows are never deleted.
const (
	StatusPending   = "PENDING"
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
)

type Payment struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID         string    `json:"orderId" gorm:"column:order_id;not null"`
	PaymentIntentID *string   `json:"paymentIntentId" gorm:"column:payment_intent_id;uniqueIndex"`
	AmountCents     int64     `json:"amountCents" gorm:"column:amount_cents;not null"`
	Currency        string    `json:"currency" gorm:"column:currency;not null"`
	BillingEmail    *string   `json:"billingEmail,omitempty" gorm:"column:billing_email"`
	Status          string    `json:"status" gorm:"column:status;not null"`
	LastError       *string   `json:"lastError,omitempty" gorm:"column:last_error"`
	CreatedAt       time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	return nil
}
