package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gymcore/gymcore/gym-management-service/internal/models"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/gymcore/gymcore/pkg/metrics"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const DefaultMembershipPeriod = 30 * 24 * time.Hour

// MembershipService owns the membership state machine.
// Joining is a direct call; activation and renewal arrive as payment.completed events;
// expiry is driven by the clock and banning by an operator.
type MembershipService struct {
	Users       UserProjectionRepo
	Gyms        GymRepo
	Memberships MembershipRepo
	Period      time.Duration
	Now         func() time.Time
}

func NewMembershipService(users UserProjectionRepo, gyms GymRepo, memberships MembershipRepo, period time.Duration) *MembershipService {
	if period <= 0 {
		period = DefaultMembershipPeriod
	}
	return &MembershipService{
		Users:       users,
		Gyms:        gyms,
		Memberships: memberships,
		Period:      period,
		Now:         func() time.Time { return time.Now().UTC() },
	}
}

// JoinGym creates a PENDING_PAYMENT membership for userID in the gym identified by
// uniqueCode. Dates stay on the placeholder until the first payment.
func (s *MembershipService) JoinGym(ctx context.Context, uniqueCode, userID string) (*models.Membership, error) {
	gym, err := s.Gyms.FirstBy(ctx, "unique_code = ?", uniqueCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrGymNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find gym by code: %w", err)
	}
	if !gym.IsActive {
		return nil, models.ErrGymInactive
	}

	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	_, err = s.Memberships.FindByUserAndGym(ctx, userID, gym.ID)
	if err == nil {
		return nil, models.ErrAlreadyMember
	}
	if !errors.Is(err, models.ErrMembershipNotFound) {
		return nil, err
	}

	m := &models.Membership{
		UserID:    userID,
		GymID:     gym.ID,
		Status:    models.StatusPendingPayment,
		StartDate: models.PlaceholderDate,
		EndDate:   models.PlaceholderDate,
	}
	if err := s.Memberships.CreatePending(ctx, m); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"membership_id": m.ID,
		"user_id":       userID,
		"gym_id":        gym.ID,
	}).Info("Membership created, waiting for payment")
	return m, nil
}

// ApplyPayment applies a payment.completed event. A transaction id that was already
// applied leaves the membership untouched. Unknown memberships are never created.
func (s *MembershipService) ApplyPayment(ctx context.Context, evt events.PaymentCompleted) (*models.Membership, error) {
	entry := logrus.WithFields(logrus.Fields{
		"membership_id":  evt.MembershipID,
		"transaction_id": evt.TransactionID,
	})

	payment := &models.MembershipPayment{
		TransactionID: evt.TransactionID,
		MembershipID:  evt.MembershipID,
		Amount:        evt.Amount,
		Currency:      evt.Currency,
		CompletedAt:   evt.CompletedAt.UTC(),
		AppliedAt:     s.Now(),
	}

	var from models.MembershipStatus
	m, applied, err := s.Memberships.ApplyPayment(ctx, evt.MembershipID, payment, func(m *models.Membership) error {
		from = m.Status
		return m.ApplyPayment(evt.TransactionID, evt.CompletedAt, s.Period)
	})
	if err != nil {
		return nil, err
	}

	if !applied {
		entry.Info("Payment already applied, skipping")
		return m, nil
	}

	metrics.MembershipTransitions.WithLabelValues(string(from), string(m.Status)).Inc()
	entry.WithFields(logrus.Fields{
		"from":     from,
		"end_date": m.EndDate,
	}).Info("Membership payment applied")
	return m, nil
}

// ExpireDue marks every ACTIVE membership that ended before now as EXPIRED.
func (s *MembershipService) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.Memberships.ExpireDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("expire memberships: %w", err)
	}
	if n > 0 {
		metrics.MembershipTransitions.WithLabelValues(string(models.StatusActive), string(models.StatusExpired)).Add(float64(n))
		logrus.WithField("count", n).Info("Memberships expired")
	}
	return n, nil
}

// RunExpiry calls ExpireDue every interval until ctx is cancelled.
func (s *MembershipService) RunExpiry(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.ExpireDue(ctx, s.Now()); err != nil {
				logrus.WithError(err).Error("Membership expiry run failed")
			}
		}
	}
}

// Ban moves a membership to BANNED. Later payments for it are rejected.
func (s *MembershipService) Ban(ctx context.Context, membershipID string) (*models.Membership, error) {
	var from models.MembershipStatus
	m, err := s.Memberships.Update(ctx, membershipID, func(m *models.Membership) error {
		from = m.Status
		m.Ban()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if from != models.StatusBanned {
		metrics.MembershipTransitions.WithLabelValues(string(from), string(models.StatusBanned)).Inc()
	}
	logrus.WithFields(logrus.Fields{"membership_id": membershipID, "from": from}).Warn("Membership banned")
	return m, nil
}

func (s *MembershipService) GetMembership(ctx context.Context, membershipID string) (*models.Membership, error) {
	return s.Memberships.GetByID(ctx, membershipID)
}
