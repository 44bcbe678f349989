package dto

import (
	"strings"
	"time"

	"github.com/gymcore/gymcore/payment-service/internal/models"
	"github.com/shopspring/decimal"
)

// Capture is the provider capture notification, already verified by the provider integration.
type Capture struct {
	MembershipID  string          `json:"membershipId"`
	UserID        string          `json:"userId"`
	SaleID        string          `json:"saleId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transactionId"`
	CompletedAt   time.Time       `json:"completedAt"`
}

func (c *Capture) Sanitize() {
	c.MembershipID = strings.TrimSpace(c.MembershipID)
	c.UserID = strings.TrimSpace(c.UserID)
	c.SaleID = strings.TrimSpace(c.SaleID)
	c.TransactionID = strings.TrimSpace(c.TransactionID)

	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	c.Method = strings.ToUpper(strings.TrimSpace(c.Method))
}

func (c *Capture) ToEntity() *models.Payment {
	return &models.Payment{
		TransactionID: c.TransactionID,
		MembershipID:  c.MembershipID,
		UserID:        c.UserID,
		SaleID:        c.SaleID,
		Amount:        c.Amount,
		Currency:      models.Currency(c.Currency),
		Method:        models.PaymentMethod(c.Method),
		Status:        models.StatusCompleted,
		CompletedAt:   c.CompletedAt.UTC(),
	}
}
