package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string
type Currency string
type PaymentMethod string

const (
	StatusCompleted PaymentStatus = "COMPLETED"

	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyMXN Currency = "MXN"
	CurrencyCOP Currency = "COP"

	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodDebitCard    PaymentMethod = "DEBIT_CARD"
	MethodPaypal       PaymentMethod = "PAYPAL"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCash         PaymentMethod = "CASH"
)

var ErrInvalidPayment = errors.New("invalid payment")

// Payment is a captured provider transaction. TransactionID is the provider's id and
// identifies the payment across services.
type Payment struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	TransactionID string          `gorm:"size:128;not null;uniqueIndex" json:"transactionId"`
	MembershipID  string          `gorm:"size:36;index" json:"membershipId,omitempty"`
	UserID        string          `gorm:"size:64" json:"userId,omitempty"`
	SaleID        string          `gorm:"size:64" json:"saleId,omitempty"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency      Currency        `gorm:"size:3;not null" json:"currency"`
	Method        PaymentMethod   `gorm:"size:20" json:"method,omitempty"`
	Status        PaymentStatus   `gorm:"size:20;not null" json:"status"`
	CompletedAt   time.Time       `gorm:"not null" json:"completedAt"`
	// OutboxEventID is the outbox row that carries this payment's payment.completed.
	OutboxEventID string    `gorm:"size:36" json:"-"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return
}

func (p *Payment) Validate() error {
	if p.TransactionID == "" {
		return fmt.Errorf("%w: transaction ID is required", ErrInvalidPayment)
	}
	if p.MembershipID == "" && p.SaleID == "" {
		return fmt.Errorf("%w: membership ID or sale ID is required", ErrInvalidPayment)
	}
	if !p.Currency.IsValid() {
		return fmt.Errorf("%w: invalid currency: %s", ErrInvalidPayment, p.Currency)
	}
	if p.Method != "" && !p.Method.IsValid() {
		return fmt.Errorf("%w: invalid payment method: %s", ErrInvalidPayment, p.Method)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidPayment)
	}
	if p.CompletedAt.IsZero() {
		return fmt.Errorf("%w: completion time is required", ErrInvalidPayment)
	}

	return nil
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodPaypal, MethodBankTransfer, MethodCash:
		return true
	default:
		return false
	}
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyMXN, CurrencyCOP:
		return true
	default:
		return false
	}
}
