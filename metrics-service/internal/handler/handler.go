package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymcore/gymcore/metrics-service/internal/metrics"
	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/sirupsen/logrus"
)

// AllEvents binds the monitor to every routing key on the exchange.
const AllEvents = "#"

// MetricsHandler turns observed events into business counters.
// Unknown routing keys are acked and counted.
type MetricsHandler struct{}

func NewMetricHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// Subscribe binds AllEvents. Drivers without wildcard routing get one
// subscription per known routing key instead.
func (h *MetricsHandler) Subscribe(ctx context.Context, sub bus.Subscriber) error {
	err := sub.Subscribe(ctx, AllEvents, h.HandleEvents)
	if !errors.Is(err, bus.ErrPatternUnsupported) {
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", AllEvents, err)
		}
		return nil
	}

	logrus.Warn("Bus driver has no wildcard routing, subscribing to known keys only")
	for _, key := range []string{events.RKUserCreated, events.RKPaymentCompleted} {
		if err := sub.Subscribe(ctx, key, h.HandleEvents); err != nil {
			return fmt.Errorf("subscribe %s: %w", key, err)
		}
	}
	return nil
}

func (h *MetricsHandler) HandleEvents(ctx context.Context, msg bus.Message) error {
	switch msg.RoutingKey {
	case events.RKUserCreated:
		evt, err := events.Decode[events.UserCreated](msg.Body)
		if err != nil {
			logrus.WithField("message_id", msg.MessageID).Errorf("Error parsing user created event %s", err.Error())
			return bus.Permanent(err)
		}
		role := evt.Role
		if role == "" {
			role = "unknown"
		}
		metrics.UsersCreatedTotal.WithLabelValues(role).Inc()

	case events.RKPaymentCompleted:
		evt, err := events.Decode[events.PaymentCompleted](msg.Body)
		if err != nil {
			logrus.WithField("message_id", msg.MessageID).Errorf("Error parsing payment completed event %s", err.Error())
			return bus.Permanent(err)
		}
		kind := "membership"
		if evt.IsSale() {
			kind = "sale"
		}
		metrics.PaymentsCompletedTotal.WithLabelValues(evt.Currency, kind).Inc()
		metrics.PaymentAmounts.WithLabelValues(evt.Currency).Observe(evt.Amount.InexactFloat64())

	default:
		logrus.WithField("routing_key", msg.RoutingKey).Debug("Unknown event")
		metrics.UnknownEventsTotal.WithLabelValues(msg.RoutingKey).Inc()
	}

	return nil
}
