package bus

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gymcore/gymcore/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// RetryConfig bounds handler retries and publish retries.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

// WithDefaults fills zero fields with 3 attempts, 100ms base delay and 10s max delay.
func (c RetryConfig) WithDefaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = 100 * time.Millisecond
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = 10 * time.Second
	}
	return c
}

// Backoff returns the delay to wait after the given zero-based attempt.
func (c RetryConfig) Backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * c.BaseDelay

	if delay > c.MaxDelay {
		delay = c.MaxDelay
	}

	if c.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// Outcome tells a driver how to settle a delivery.
type Outcome int

const (
	// OutcomeAck removes the message from the queue.
	OutcomeAck Outcome = iota
	// OutcomeDeadLetter moves the message to the dead-letter destination.
	OutcomeDeadLetter
	// OutcomeRequeue returns the message to the queue for another consumer.
	OutcomeRequeue
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAck:
		return "ack"
	case OutcomeDeadLetter:
		return "dead_letter"
	case OutcomeRequeue:
		return "requeue"
	default:
		return "unknown"
	}
}

// Result is the settled outcome of processing one delivery.
type Result struct {
	Outcome  Outcome
	Attempts int
	Err      error
}

// Process runs handler for msg under the retry policy. Transient errors are retried with
// backoff; permanent errors and exhausted retries dead-letter the message; a cancelled
// context requeues it. Process never panics on a handler panic.
func Process(ctx context.Context, msg Message, handler HandlerFunc, cfg RetryConfig) Result {
	cfg = cfg.WithDefaults()
	entry := logrus.WithFields(logrus.Fields{
		"routing_key": msg.RoutingKey,
		"message_id":  msg.MessageID,
	})

	var lastErr error
	attempt := 0
	for attempt < cfg.MaxAttempts {
		attempt++
		err := safeHandle(ctx, msg, handler)
		if err == nil {
			return settle(msg, Result{Outcome: OutcomeAck, Attempts: attempt})
		}
		lastErr = err

		if IsPermanent(err) {
			entry.WithError(err).Error("Handler rejected message permanently")
			return settle(msg, Result{Outcome: OutcomeDeadLetter, Attempts: attempt, Err: err})
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		backoff := cfg.Backoff(attempt - 1)
		entry.WithError(err).Warnf("Handler error, attempt %d/%d. Retrying in %v", attempt, cfg.MaxAttempts, backoff)

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return settle(msg, Result{Outcome: OutcomeRequeue, Attempts: attempt, Err: err})
		}
	}

	entry.WithError(lastErr).Errorf("Message failed after %d attempts", attempt)
	return settle(msg, Result{Outcome: OutcomeDeadLetter, Attempts: attempt, Err: lastErr})
}

func settle(msg Message, res Result) Result {
	metrics.EventsConsumed.WithLabelValues(msg.RoutingKey, res.Outcome.String()).Inc()
	return res
}

func safeHandle(ctx context.Context, msg Message, handler HandlerFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return handler(ctx, msg)
}

// DeadLetterHeaders annotates a message with the processing result before dead-lettering.
func DeadLetterHeaders(msg Message, res Result) map[string]any {
	headers := make(map[string]any, len(msg.Headers)+2)
	for k, v := range msg.Headers {
		headers[k] = v
	}
	headers[HeaderAttempts] = int32(res.Attempts)
	if res.Err != nil {
		headers[HeaderError] = res.Err.Error()
	}
	return headers
}
