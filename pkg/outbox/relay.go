package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/lock"
	"github.com/gymcore/gymcore/pkg/metrics"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultBatchSize      = 100
	defaultPollInterval   = 2 * time.Second
	defaultMaxAttempts    = 20
	defaultRetryBaseDelay = 5 * time.Second
	defaultRetryMaxDelay  = 5 * time.Minute
	maxBackoff            = 30 * time.Second
	maxBackoffExponent    = 16
)

// PublishTimeout bounds a single outbox publish. A relay lock must live longer than this.
const PublishTimeout = 15 * time.Second

type RelayConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	// RetryBaseDelay and RetryMaxDelay shape the per-row backoff after a failed publish.
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Relay publishes pending outbox rows to the bus and marks them published.
// Delivery is at-least-once: a crash between publish and mark republishes the row
// with the same message id.
type Relay struct {
	db        *gorm.DB
	repo      *Repository
	publisher bus.Publisher
	lock      lock.Lock

	batchSize    int
	maxAttempts  int
	pollInterval time.Duration
	rowBackoff   bus.RetryConfig
	now          func() time.Time
}

// NewRelay builds a relay. A nil lock lets every instance poll.
func NewRelay(db *gorm.DB, publisher bus.Publisher, cfg RelayConfig, l lock.Lock) *Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = defaultRetryBaseDelay
	}
	if cfg.RetryMaxDelay <= 0 {
		cfg.RetryMaxDelay = defaultRetryMaxDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if l == nil {
		l = lock.Noop{}
	}
	return &Relay{
		db:           db,
		repo:         NewRepository(),
		publisher:    publisher,
		lock:         l,
		batchSize:    cfg.BatchSize,
		maxAttempts:  cfg.MaxAttempts,
		pollInterval: cfg.PollInterval,
		rowBackoff:   bus.RetryConfig{BaseDelay: cfg.RetryBaseDelay, MaxDelay: cfg.RetryMaxDelay, Jitter: true},
		now:          cfg.Now,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	backoff := bus.RetryConfig{BaseDelay: r.pollInterval, MaxDelay: maxBackoff, Jitter: true}
	failures := 0

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Outbox relay stopped")
			return nil
		default:
		}

		processed, err := r.pollOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logrus.WithError(err).Error("Outbox relay batch error")
			delay := backoff.Backoff(failures)
			failures++
			if err := sleep(ctx, delay); err != nil {
				return nil
			}
			continue
		}
		failures = 0

		if processed == r.batchSize {
			continue
		}

		if err := sleep(ctx, r.pollInterval); err != nil {
			return nil
		}
	}
}

func (r *Relay) pollOnce(ctx context.Context) (int, error) {
	ok, err := r.lock.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire relay lock: %w", err)
	}
	if !ok {
		return 0, nil
	}
	defer func() {
		if err := r.lock.Release(context.WithoutCancel(ctx)); err != nil {
			logrus.WithError(err).Warn("Failed to release relay lock")
		}
	}()

	var keepLock func(context.Context) error
	if refresher, ok := r.lock.(lock.Refresher); ok {
		keepLock = func(ctx context.Context) error {
			held, err := refresher.Refresh(ctx)
			if err != nil {
				return fmt.Errorf("refresh relay lock: %w", err)
			}
			if !held {
				return lock.ErrNotHeld
			}
			return nil
		}
	}
	return r.processBatch(ctx, keepLock)
}

// ProcessBatch publishes one batch of due pending rows and returns how many were published.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	return r.processBatch(ctx, nil)
}

// processBatch calls beforeRow ahead of every publish. When it fails the batch stops and
// the rows handled so far are committed.
func (r *Relay) processBatch(ctx context.Context, beforeRow func(context.Context) error) (int, error) {
	processed := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := r.repo.FetchPending(tx, r.now().UTC(), r.batchSize)
		if err != nil {
			return fmt.Errorf("fetch pending outbox events: %w", err)
		}
		for i := range rows {
			if beforeRow != nil {
				if err := beforeRow(ctx); err != nil {
					logrus.WithError(err).Warn("Stopping outbox batch early")
					return nil
				}
			}
			publishErr, err := r.deliver(ctx, tx, &rows[i])
			if err != nil {
				return err
			}
			if publishErr == nil {
				processed++
			}
		}
		return nil
	})
	return processed, err
}

// Dispatch publishes a single unpublished row right away, ignoring its backoff. Dead rows
// are retried too. A published or unknown row is skipped. The publish error, if any, is
// returned after the failure was recorded.
func (r *Relay) Dispatch(ctx context.Context, id string) error {
	var publishErr error
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := r.repo.GetUnpublished(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load outbox event %s: %w", id, err)
		}
		publishErr, err = r.deliver(ctx, tx, row)
		return err
	})
	if err != nil {
		return err
	}
	return publishErr
}

// deliver publishes row and records the result. A storageErr must abort the transaction.
func (r *Relay) deliver(ctx context.Context, tx *gorm.DB, row *Event) (publishErr, storageErr error) {
	entry := logrus.WithFields(logrus.Fields{
		"outbox_id":     row.ID,
		"routing_key":   row.RoutingKey,
		"message_id":    row.MessageID,
		"attempt_count": row.AttemptCount,
	})

	publishCtx, cancel := context.WithTimeout(ctx, PublishTimeout)
	defer cancel()

	msg := bus.Message{
		RoutingKey: row.RoutingKey,
		Body:       row.Payload,
		MessageID:  row.MessageID,
		Persistent: true,
		Timestamp:  row.CreatedAt.UTC(),
	}
	publishErr = r.publisher.Publish(publishCtx, msg)
	if publishErr == nil {
		if err := r.repo.MarkPublished(tx, row.ID); err != nil {
			return nil, fmt.Errorf("mark published %s: %w", row.ID, err)
		}
		entry.Info("Outbox event published")
		return nil, nil
	}

	if row.AttemptCount+1 >= r.maxAttempts {
		if err := r.repo.MarkDead(tx, row.ID, publishErr); err != nil {
			return publishErr, fmt.Errorf("mark dead %s: %w", row.ID, err)
		}
		if row.Status != StatusDead {
			metrics.OutboxDead.WithLabelValues(row.RoutingKey).Inc()
		}
		entry.WithError(publishErr).Error("Outbox event exhausted its attempts and needs operator attention")
		return publishErr, nil
	}

	next := r.now().UTC().Add(r.rowBackoff.Backoff(min(row.AttemptCount, maxBackoffExponent)))
	if err := r.repo.MarkFailed(tx, row.ID, publishErr, next); err != nil {
		return publishErr, fmt.Errorf("mark failure %s: %w", row.ID, err)
	}
	entry.WithError(publishErr).WithField("next_attempt_at", next).Warn("Outbox publish failed")
	return publishErr, nil
}

// Redrive makes every pending row due now and, when includeDead is set, moves dead rows
// back to pending with a fresh attempt budget. It returns how many rows were revived.
func (r *Relay) Redrive(ctx context.Context, includeDead bool) (int64, error) {
	var revived int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.repo.ReleaseBackoff(tx); err != nil {
			return fmt.Errorf("release outbox backoff: %w", err)
		}
		if !includeDead {
			return nil
		}
		n, err := r.repo.RequeueDead(tx)
		if err != nil {
			return fmt.Errorf("requeue dead outbox events: %w", err)
		}
		revived = n
		return nil
	})
	if revived > 0 {
		logrus.WithField("revived", revived).Warn("Dead outbox events requeued")
	}
	return revived, err
}

// Flush redrives the outbox and publishes batches until a batch publishes nothing.
// Rows that fail again are left pending with a fresh backoff.
func (r *Relay) Flush(ctx context.Context, includeDead bool) (int, error) {
	if _, err := r.Redrive(ctx, includeDead); err != nil {
		return 0, err
	}
	total := 0
	for {
		n, err := r.ProcessBatch(ctx)
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
		total += n
	}
}

// Pending reports how many rows still wait for delivery.
func (r *Relay) Pending(ctx context.Context) (int64, error) {
	return r.repo.CountByStatus(r.db.WithContext(ctx), StatusPending)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
