package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu       sync.Mutex
	values   map[string]string
	err      error
	expiries int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (s *fakeStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.values[key]; ok {
		return false, nil
	}
	s.values[key] = value.(string)
	return true, nil
}

func (s *fakeStore) CompareAndDelete(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values[key] == value {
		delete(s.values, key)
	}
	return nil
}

func (s *fakeStore) CompareAndExpire(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values[key] != value {
		return false, nil
	}
	s.expiries++
	return true, nil
}

func TestRedisLock_ExclusiveUntilReleased(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	first, err := NewRedisLock(store, "outbox:payment", time.Second)
	require.NoError(t, err)
	second, err := NewRedisLock(store, "outbox:payment", time.Second)
	require.NoError(t, err)

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, second.Release(ctx))
	assert.Contains(t, store.values, "outbox:payment")

	require.NoError(t, first.Release(ctx))
	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLock_StoreError(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	l, err := NewRedisLock(store, "k", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultLockTTL, l.ttl)

	ok, err := l.Acquire(context.Background())
	assert.False(t, ok)
	assert.ErrorContains(t, err, "setnx")
}

func TestNewRedisLock_Validation(t *testing.T) {
	_, err := NewRedisLock(nil, "k", time.Second)
	assert.Error(t, err)
	_, err = NewRedisLock(newFakeStore(), "", time.Second)
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	var l Lock = Noop{}
	ok, err := l.Acquire(context.Background())
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.NoError(t, l.Release(context.Background()))
}

func TestRedisLock_Refresh(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	l, err := NewRedisLock(store, "outbox:auth", time.Second)
	require.NoError(t, err)

	held, err := l.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, held, "refresh before acquire")

	ok, err := l.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	held, err = l.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, held)
	assert.Equal(t, 1, store.expiries)

	// another instance took the key over after expiry
	store.values["outbox:auth"] = "someone-else"
	held, err = l.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, held)

	require.NoError(t, l.Release(ctx))
	assert.Equal(t, "someone-else", store.values["outbox:auth"])
}
