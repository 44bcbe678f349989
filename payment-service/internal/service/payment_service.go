package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymcore/gymcore/payment-service/internal/models"
	"github.com/gymcore/gymcore/payment-service/internal/models/dto"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/sirupsen/logrus"
)

// ErrEventPending means the payment is stored but payment.completed is not yet on the bus.
// The outbox relay keeps retrying it.
var ErrEventPending = errors.New("payment recorded, payment.completed delivery pending")

// PaymentRepo defines the interface for payment data persistence operations.
type PaymentRepo interface {
	RecordCompleted(ctx context.Context, payment *models.Payment, routingKey string, event any) (*models.Payment, string, bool, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
}

// Dispatcher publishes a stored outbox row right away.
type Dispatcher interface {
	Dispatch(ctx context.Context, id string) error
}

// PaymentService turns provider captures into stored payments and payment.completed events.
type PaymentService struct {
	Repo       PaymentRepo
	Dispatcher Dispatcher
}

func NewPaymentService(repo PaymentRepo, dispatcher Dispatcher) *PaymentService {
	return &PaymentService{
		Repo:       repo,
		Dispatcher: dispatcher,
	}
}

// RecordCapture stores a completed payment together with its payment.completed event
// and publishes the event once the write committed.
//
// A repeated capture for the same transaction stores nothing. Its original event is
// dispatched again when it never reached the bus, and skipped when it did.
// When the publish fails the payment stays recorded and the returned error wraps
// ErrEventPending.
func (s *PaymentService) RecordCapture(ctx context.Context, capture *dto.Capture) (*models.Payment, error) {
	capture.Sanitize()
	payment := capture.ToEntity()
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	event := events.PaymentCompleted{
		MembershipID:  payment.MembershipID,
		UserID:        payment.UserID,
		SaleID:        payment.SaleID,
		Amount:        payment.Amount,
		Currency:      string(payment.Currency),
		TransactionID: payment.TransactionID,
		CompletedAt:   payment.CompletedAt,
	}

	stored, eventID, duplicate, err := s.Repo.RecordCompleted(ctx, payment, events.RKPaymentCompleted, event)
	if err != nil {
		return nil, fmt.Errorf("record payment %s: %w", payment.TransactionID, err)
	}

	entry := logrus.WithFields(logrus.Fields{
		"transaction_id": stored.TransactionID,
		"membership_id":  stored.MembershipID,
		"duplicate":      duplicate,
	})
	if eventID == "" {
		entry.Warn("Capture already recorded without an outbox event, skipping")
		return stored, nil
	}
	if duplicate {
		entry.Info("Capture already recorded, making sure its event was delivered")
	}

	if err := s.Dispatcher.Dispatch(ctx, eventID); err != nil {
		entry.WithError(err).Error("Payment recorded but payment.completed was not published")
		return stored, fmt.Errorf("%w: transaction %s: %v", ErrEventPending, stored.TransactionID, err)
	}

	entry.Info("Payment completed")
	return stored, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, transactionID string) (*models.Payment, error) {
	return s.Repo.GetByTransactionID(ctx, transactionID)
}
