package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymcore/gymcore/gym-management-service/internal/models"
	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/gymcore/gymcore/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// UserSyncService applies user.created events to the local projection.
type UserSyncService interface {
	SyncUser(ctx context.Context, evt events.UserCreated) error
}

// PaymentApplier applies payment.completed events to memberships.
type PaymentApplier interface {
	ApplyPayment(ctx context.Context, evt events.PaymentCompleted) (*models.Membership, error)
}

// EventHandler routes bus deliveries to the services. Returned errors wrapped with
// bus.Permanent are dead-lettered without retry; any other error is retried.
type EventHandler struct {
	Users       UserSyncService
	Memberships PaymentApplier
}

func NewEventHandler(users UserSyncService, memberships PaymentApplier) *EventHandler {
	return &EventHandler{Users: users, Memberships: memberships}
}

// Subscribe registers the handler for every routing key this service consumes.
func (h *EventHandler) Subscribe(ctx context.Context, sub bus.Subscriber) error {
	for _, key := range []string{events.RKUserCreated, events.RKPaymentCompleted} {
		if err := sub.Subscribe(ctx, key, h.HandleEvents); err != nil {
			return fmt.Errorf("subscribe %s: %w", key, err)
		}
	}
	return nil
}

func (h *EventHandler) HandleEvents(ctx context.Context, msg bus.Message) error {
	switch msg.RoutingKey {
	case events.RKUserCreated:
		return h.handleUserCreated(ctx, msg)
	case events.RKPaymentCompleted:
		return h.handlePaymentCompleted(ctx, msg)
	default:
		logrus.Errorf("routing key not allowed %s", msg.RoutingKey)
		return bus.Permanent(fmt.Errorf("routing key not allowed %s", msg.RoutingKey))
	}
}

func (h *EventHandler) handleUserCreated(ctx context.Context, msg bus.Message) error {
	evt, err := events.Decode[events.UserCreated](msg.Body)
	if err != nil {
		logrus.WithField("message_id", msg.MessageID).Errorf("Error parsing user created event %s", err.Error())
		metrics.SyncAnomalies.WithLabelValues("malformed_payload").Inc()
		return bus.Permanent(err)
	}

	return h.Users.SyncUser(ctx, evt)
}

func (h *EventHandler) handlePaymentCompleted(ctx context.Context, msg bus.Message) error {
	evt, err := events.Decode[events.PaymentCompleted](msg.Body)
	if err != nil {
		logrus.WithField("message_id", msg.MessageID).Errorf("Error parsing payment completed event %s", err.Error())
		metrics.SyncAnomalies.WithLabelValues("malformed_payload").Inc()
		return bus.Permanent(err)
	}

	entry := logrus.WithFields(logrus.Fields{
		"message_id":     msg.MessageID,
		"membership_id":  evt.MembershipID,
		"transaction_id": evt.TransactionID,
	})

	if evt.IsSale() {
		entry.WithField("sale_id", evt.SaleID).Debug("Point of sale payment, nothing to apply")
		return nil
	}

	_, err = h.Memberships.ApplyPayment(ctx, evt)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrMembershipNotFound):
		entry.Warn("Payment references an unknown membership, dropping for operator review")
		metrics.SyncAnomalies.WithLabelValues("unknown_membership").Inc()
		return bus.Permanent(err)
	case errors.Is(err, models.ErrMembershipBanned):
		entry.Warn("Payment received for a banned membership, dropping for operator review")
		metrics.SyncAnomalies.WithLabelValues("banned_membership").Inc()
		return bus.Permanent(err)
	case errors.Is(err, models.ErrTransactionMismatch):
		entry.WithError(err).Warn("Transaction id reused for another membership, dropping for operator review")
		metrics.SyncAnomalies.WithLabelValues("transaction_membership_mismatch").Inc()
		return bus.Permanent(err)
	default:
		return fmt.Errorf("error applying payment %w", err)
	}
}
