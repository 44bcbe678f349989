package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MembershipStatus string

const (
	StatusPendingPayment MembershipStatus = "PENDING_PAYMENT"
	StatusActive         MembershipStatus = "ACTIVE"
	StatusExpired        MembershipStatus = "EXPIRED"
	StatusBanned         MembershipStatus = "BANNED"
)

// PlaceholderDate fills start and end dates until the first payment activates a membership.
var PlaceholderDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Membership links a user to a gym. One membership per (user, gym).
type Membership struct {
	ID            string           `gorm:"primaryKey;size:36" json:"id"`
	UserID        string           `gorm:"size:64;not null;uniqueIndex:idx_memberships_user_gym" json:"userId"`
	GymID         string           `gorm:"size:36;not null;uniqueIndex:idx_memberships_user_gym" json:"gymId"`
	Status        MembershipStatus `gorm:"size:20;not null;index" json:"status"`
	StartDate     time.Time        `gorm:"not null" json:"startDate"`
	EndDate       time.Time        `gorm:"not null;index" json:"endDate"`
	TransactionID *string          `gorm:"size:128" json:"transactionId"`
	ActivatedAt   *time.Time       `json:"activatedAt"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func (m *Membership) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	return
}

// MembershipPayment is the ledger of applied payments. Its primary key makes a
// transaction apply at most once.
type MembershipPayment struct {
	TransactionID string          `gorm:"primaryKey;size:128" json:"transactionId"`
	MembershipID  string          `gorm:"size:36;not null;index" json:"membershipId"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency      string          `gorm:"size:3;not null" json:"currency"`
	CompletedAt   time.Time       `gorm:"not null" json:"completedAt"`
	AppliedAt     time.Time       `gorm:"not null" json:"appliedAt"`
}
