package bus_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = bus.RetryConfig{
	MaxAttempts: 3,
	BaseDelay:   time.Millisecond,
	MaxDelay:    5 * time.Millisecond,
}

func testMessage(t *testing.T) bus.Message {
	msg, err := bus.NewMessage("user.created", map[string]string{"id": "u1"})
	require.NoError(t, err)
	return msg
}

func TestProcess_SuccessAcksOnce(t *testing.T) {
	calls := 0
	res := bus.Process(context.Background(), testMessage(t), func(ctx context.Context, msg bus.Message) error {
		calls++
		return nil
	}, fastRetry)

	assert.Equal(t, bus.OutcomeAck, res.Outcome)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 1, calls)
	assert.NoError(t, res.Err)
}

func TestProcess_TransientErrorRetriedThenDeadLettered(t *testing.T) {
	calls := 0
	storageErr := errors.New("connection refused")
	res := bus.Process(context.Background(), testMessage(t), func(ctx context.Context, msg bus.Message) error {
		calls++
		return storageErr
	}, fastRetry)

	assert.Equal(t, bus.OutcomeDeadLetter, res.Outcome)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, res.Attempts)
	assert.ErrorIs(t, res.Err, storageErr)
}

func TestProcess_TransientErrorRecovers(t *testing.T) {
	calls := 0
	res := bus.Process(context.Background(), testMessage(t), func(ctx context.Context, msg bus.Message) error {
		calls++
		if calls < 2 {
			return errors.New("deadlock detected")
		}
		return nil
	}, fastRetry)

	assert.Equal(t, bus.OutcomeAck, res.Outcome)
	assert.Equal(t, 2, res.Attempts)
}

func TestProcess_PermanentErrorNotRetried(t *testing.T) {
	calls := 0
	res := bus.Process(context.Background(), testMessage(t), func(ctx context.Context, msg bus.Message) error {
		calls++
		return bus.Permanent(errors.New("missing id"))
	}, fastRetry)

	assert.Equal(t, bus.OutcomeDeadLetter, res.Outcome)
	assert.Equal(t, 1, calls)
	assert.True(t, bus.IsPermanent(res.Err))
}

func TestProcess_PanicIsRecovered(t *testing.T) {
	res := bus.Process(context.Background(), testMessage(t), func(ctx context.Context, msg bus.Message) error {
		panic("nil map")
	}, fastRetry)

	assert.Equal(t, bus.OutcomeDeadLetter, res.Outcome)
	assert.Equal(t, 3, res.Attempts)
	assert.ErrorContains(t, res.Err, "handler panic")
}

func TestProcess_CancelledContextRequeues(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := bus.RetryConfig{MaxAttempts: 5, BaseDelay: time.Hour, MaxDelay: time.Hour}

	res := bus.Process(ctx, testMessage(t), func(ctx context.Context, msg bus.Message) error {
		cancel()
		return errors.New("timeout")
	}, cfg)

	assert.Equal(t, bus.OutcomeRequeue, res.Outcome)
	assert.Equal(t, 1, res.Attempts)
}

func TestBackoff(t *testing.T) {
	cfg := bus.RetryConfig{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}

	assert.Equal(t, 100*time.Millisecond, cfg.Backoff(0))
	assert.Equal(t, 400*time.Millisecond, cfg.Backoff(2))
	assert.Equal(t, time.Second, cfg.Backoff(10))

	cfg.Jitter = true
	for i := 0; i < 20; i++ {
		d := cfg.Backoff(1)
		assert.GreaterOrEqual(t, d, 170*time.Millisecond)
		assert.LessOrEqual(t, d, 230*time.Millisecond)
	}
}

func TestDeadLetterHeaders(t *testing.T) {
	msg := testMessage(t)
	msg.Headers = map[string]any{"trace": "abc"}

	headers := bus.DeadLetterHeaders(msg, bus.Result{Attempts: 3, Err: errors.New("boom")})

	assert.Equal(t, "abc", headers["trace"])
	assert.Equal(t, int32(3), headers[bus.HeaderAttempts])
	assert.Equal(t, "boom", headers[bus.HeaderError])
	assert.NotContains(t, msg.Headers, bus.HeaderAttempts)
}

func TestNewMessage(t *testing.T) {
	msg, err := bus.NewMessage("payment.completed", []byte(`{"a":1}`))
	require.NoError(t, err)

	assert.Equal(t, `{"a":1}`, string(msg.Body))
	assert.True(t, msg.Persistent)
	assert.NotEmpty(t, msg.MessageID)

	_, err = bus.NewMessage("payment.completed", make(chan int))
	assert.Error(t, err)
}
