package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gymcore/gymcore/payment-service/internal/models"
	"github.com/gymcore/gymcore/payment-service/internal/models/dto"
	"github.com/gymcore/gymcore/payment-service/internal/repository"
	"github.com/gymcore/gymcore/payment-service/internal/service"
	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/bus/memory"
	"github.com/gymcore/gymcore/pkg/dbtest"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/gymcore/gymcore/pkg/outbox"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	return dbtest.Open(t, &models.Payment{}, &outbox.Event{})
}

func payment(txID string) *models.Payment {
	return &models.Payment{
		TransactionID: txID,
		MembershipID:  "m1",
		Amount:        decimal.RequireFromString("29.99"),
		Currency:      models.CurrencyUSD,
		Status:        models.StatusCompleted,
		CompletedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func captureFor(txID string) *dto.Capture {
	return &dto.Capture{
		MembershipID:  "m1",
		UserID:        "u1",
		Amount:        decimal.RequireFromString("29.99"),
		Currency:      "USD",
		TransactionID: txID,
		CompletedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func countOutbox(t *testing.T, db *gorm.DB, status outbox.Status) int64 {
	t.Helper()
	n, err := outbox.NewRepository().CountByStatus(db, status)
	require.NoError(t, err)
	return n
}

func TestRecordCompleted_StoresPaymentAndEventOnce(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewPaymentRepository(db)

	first, eventID, duplicate, err := repo.RecordCompleted(ctx, payment("t1"), events.RKPaymentCompleted, map[string]string{"transactionId": "t1"})
	require.NoError(t, err)
	assert.NotEmpty(t, eventID)
	assert.False(t, duplicate)
	assert.Equal(t, eventID, first.OutboxEventID)

	again, againEventID, duplicate, err := repo.RecordCompleted(ctx, payment("t1"), events.RKPaymentCompleted, map[string]string{"transactionId": "t1"})
	require.NoError(t, err)
	assert.True(t, duplicate)
	assert.Equal(t, eventID, againEventID)
	assert.Equal(t, first.ID, again.ID)

	var n int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
	assert.EqualValues(t, 1, countOutbox(t, db, outbox.StatusPending))
}

func TestRecordCompleted_UnencodableEventRollsBackPayment(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewPaymentRepository(db)

	_, _, _, err := repo.RecordCompleted(ctx, payment("t1"), events.RKPaymentCompleted, make(chan int))
	require.Error(t, err)

	_, err = repo.GetByTransactionID(ctx, "t1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// A capture whose publish fails stays recorded with a pending event; a later relay
// pass delivers it exactly once.
func TestRecordCapture_PublishFailureRecoveredByRelay(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	b := memory.New(bus.RetryConfig{MaxAttempts: 1})
	relay := outbox.NewRelay(db, b, outbox.RelayConfig{MaxAttempts: 5, RetryBaseDelay: time.Nanosecond, RetryMaxDelay: time.Nanosecond}, nil)
	svc := service.NewPaymentService(repository.NewPaymentRepository(db), relay)

	b.FailPublish(errors.New("broker unavailable"))
	stored, err := svc.RecordCapture(ctx, captureFor("t1"))
	assert.ErrorIs(t, err, service.ErrEventPending)
	require.NotNil(t, stored)
	assert.Equal(t, "t1", stored.TransactionID)
	assert.EqualValues(t, 1, countOutbox(t, db, outbox.StatusPending))
	assert.Empty(t, b.Published())

	b.FailPublish(nil)
	n, err := relay.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = relay.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	published := b.PublishedWith(events.RKPaymentCompleted)
	require.Len(t, published, 1)
	evt, err := events.Decode[events.PaymentCompleted](published[0].Body)
	require.NoError(t, err)
	assert.Equal(t, "t1", evt.TransactionID)
	assert.Equal(t, "m1", evt.MembershipID)
	assert.True(t, decimal.RequireFromString("29.99").Equal(evt.Amount))
	assert.EqualValues(t, 1, countOutbox(t, db, outbox.StatusPublished))
}

// A provider retrying a capture whose event never reached the bus gets the event
// delivered instead of a silent success.
func TestRecordCapture_RetriedCaptureDeliversPendingEvent(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	b := memory.New(bus.RetryConfig{MaxAttempts: 1})
	relay := outbox.NewRelay(db, b, outbox.RelayConfig{}, nil)
	svc := service.NewPaymentService(repository.NewPaymentRepository(db), relay)

	b.FailPublish(errors.New("broker unavailable"))
	_, err := svc.RecordCapture(ctx, captureFor("t1"))
	require.ErrorIs(t, err, service.ErrEventPending)

	_, err = svc.RecordCapture(ctx, captureFor("t1"))
	assert.ErrorIs(t, err, service.ErrEventPending, "still undelivered while the broker is down")

	b.FailPublish(nil)
	stored, err := svc.RecordCapture(ctx, captureFor("t1"))
	require.NoError(t, err)
	assert.Equal(t, "t1", stored.TransactionID)
	assert.Len(t, b.PublishedWith(events.RKPaymentCompleted), 1)
	assert.EqualValues(t, 1, countOutbox(t, db, outbox.StatusPublished))
	assert.Zero(t, countOutbox(t, db, outbox.StatusPending))

	_, err = svc.RecordCapture(ctx, captureFor("t1"))
	require.NoError(t, err)
	assert.Len(t, b.PublishedWith(events.RKPaymentCompleted), 1)
}

// The relay outlives a broker outage that spans many polls, and the operator can
// redrive an event that still ran out of attempts.
func TestRecordCapture_SurvivesOutageAndRedrive(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	b := memory.New(bus.RetryConfig{MaxAttempts: 1})
	relay := outbox.NewRelay(db, b, outbox.RelayConfig{MaxAttempts: 2, RetryBaseDelay: time.Nanosecond, RetryMaxDelay: time.Nanosecond}, nil)
	svc := service.NewPaymentService(repository.NewPaymentRepository(db), relay)

	b.FailPublish(errors.New("broker unavailable"))
	_, err := svc.RecordCapture(ctx, captureFor("t1"))
	require.ErrorIs(t, err, service.ErrEventPending)
	_, err = relay.ProcessBatch(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, countOutbox(t, db, outbox.StatusDead))

	b.FailPublish(nil)
	published, err := relay.Flush(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, published)
	assert.Len(t, b.PublishedWith(events.RKPaymentCompleted), 1)
	assert.Zero(t, countOutbox(t, db, outbox.StatusDead))
}
