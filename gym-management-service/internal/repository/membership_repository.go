package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gymcore/gymcore/gym-management-service/internal/models"
	"github.com/gymcore/gymcore/pkg/repository/posgrest"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// CreatePending stores a new membership and points the user projection at its gym,
// both in one transaction.
func (r *MembershipRepository) CreatePending(ctx context.Context, m *models.Membership) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			if posgrest.IsUniqueViolation(err) {
				return models.ErrAlreadyMember
			}
			return fmt.Errorf("insert membership: %w", err)
		}
		res := tx.Model(&models.User{}).Where("id = ?", m.UserID).Update("gym_id", m.GymID)
		if res.Error != nil {
			return fmt.Errorf("set user gym: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrUserNotFound
		}
		return nil
	})
}

func (r *MembershipRepository) GetByID(ctx context.Context, id string) (*models.Membership, error) {
	var m models.Membership
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrMembershipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MembershipRepository) FindByUserAndGym(ctx context.Context, userID, gymID string) (*models.Membership, error) {
	var m models.Membership
	err := r.db.WithContext(ctx).Where("user_id = ? AND gym_id = ?", userID, gymID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrMembershipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ApplyPayment records payment in the ledger and runs apply on the locked membership in
// one transaction. When the transaction id is already in the ledger for the same
// membership nothing changes and applied is false; when it belongs to another membership
// ErrTransactionMismatch is returned. An error from apply rolls the ledger row back.
func (r *MembershipRepository) ApplyPayment(
	ctx context.Context,
	membershipID string,
	payment *models.MembershipPayment,
	apply func(m *models.Membership) error,
) (result *models.Membership, applied bool, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockMembership(tx, membershipID)
		if err != nil {
			return err
		}
		result = m

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(payment)
		if res.Error != nil {
			return fmt.Errorf("insert payment ledger: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var stored models.MembershipPayment
			if err := tx.Where("transaction_id = ?", payment.TransactionID).First(&stored).Error; err != nil {
				return fmt.Errorf("load payment ledger: %w", err)
			}
			if stored.MembershipID != membershipID {
				return fmt.Errorf("%w: transaction %s belongs to membership %s",
					models.ErrTransactionMismatch, payment.TransactionID, stored.MembershipID)
			}
			return nil
		}

		if err := apply(m); err != nil {
			return err
		}
		if err := tx.Save(m).Error; err != nil {
			return fmt.Errorf("save membership: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, applied, nil
}

// Update runs mutate on the locked membership and saves it.
func (r *MembershipRepository) Update(ctx context.Context, id string, mutate func(m *models.Membership) error) (*models.Membership, error) {
	var result *models.Membership
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockMembership(tx, id)
		if err != nil {
			return err
		}
		if err := mutate(m); err != nil {
			return err
		}
		if err := tx.Save(m).Error; err != nil {
			return fmt.Errorf("save membership: %w", err)
		}
		result = m
		return nil
	})
	return result, err
}

// ExpireDue moves every ACTIVE membership whose end date passed to EXPIRED.
func (r *MembershipRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("status = ? AND end_date < ?", models.StatusActive, now.UTC()).
		Updates(map[string]any{
			"status":     models.StatusExpired,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

// CountPayments returns how many ledger rows a membership has.
func (r *MembershipRepository) CountPayments(ctx context.Context, membershipID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.MembershipPayment{}).Where("membership_id = ?", membershipID).Count(&n).Error
	return n, err
}

func lockMembership(tx *gorm.DB, id string) (*models.Membership, error) {
	var m models.Membership
	err := posgrest.ForUpdate(tx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load membership %s: %w", id, err)
	}
	return &m, nil
}
