package service

import (
	"context"
	"time"

	"github.com/gymcore/gymcore/gym-management-service/internal/models"
)

// UserProjectionRepo persists the local copy of auth-service users.
type UserProjectionRepo interface {
	Upsert(ctx context.Context, user *models.User, withGym bool) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// GymRepo defines the gym persistence operations the services need.
type GymRepo interface {
	Create(ctx context.Context, gym *models.Gym) error
	FirstBy(ctx context.Context, key string, value interface{}) (*models.Gym, error)
}

// MembershipRepo persists memberships and the ledger of applied payments.
// ApplyPayment and Update run their callback inside a transaction holding the membership row.
type MembershipRepo interface {
	CreatePending(ctx context.Context, m *models.Membership) error
	GetByID(ctx context.Context, id string) (*models.Membership, error)
	FindByUserAndGym(ctx context.Context, userID, gymID string) (*models.Membership, error)
	ApplyPayment(ctx context.Context, membershipID string, payment *models.MembershipPayment, apply func(m *models.Membership) error) (*models.Membership, bool, error)
	Update(ctx context.Context, id string, mutate func(m *models.Membership) error) (*models.Membership, error)
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}
