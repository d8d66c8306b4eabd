package postgres

import (
	"github.com/frahmantamala/checkout-payments/internal/core/datamodel/payment"
	paymentpkg "github.com/frahmantamala/checkout-payments/internal/payment"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) paymentpkg.RepositoryAPI {
	return &PaymentRepository{
		db: db,
	}
}

func (r *PaymentRepository) Create(p *payment.Payment) error {
	return r.db.Create(p).Error
}

// Save writes the full row back, including nil-ing out last_error.
func (r *PaymentRepository) Save(p *payment.Payment) error {
	return r.db.Save(p).Error
}

func (r *PaymentRepository) GetByPaymentIntentID(intentID string) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.Where("payment_intent_id = ?", intentID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetAll() ([]*payment.Payment, error) {
	var payments []*payment.Payment
	err := r.db.Order("created_at DESC").Find(&payments).Error
	return payments, err
}
