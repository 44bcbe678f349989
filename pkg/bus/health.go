package bus

import (
	"context"
	"errors"
	"fmt"
)

// ErrConnectionLost reports that a running bus lost its broker and stopped consuming.
var ErrConnectionLost = errors.New("bus connection lost")

// HealthChecker is implemented by drivers whose broker connection can drop at runtime.
type HealthChecker interface {
	// Healthy returns nil while the bus still publishes and consumes.
	Healthy() error
	// Lost is closed once the connection dropped. It stays open after a clean Close.
	Lost() <-chan struct{}
}

// CheckHealth reports the health of b when its driver can tell, and nil otherwise.
func CheckHealth(b any) error {
	if hc, ok := b.(HealthChecker); ok {
		return hc.Healthy()
	}
	return nil
}

// WatchConnection returns a context that is cancelled with ErrConnectionLost as its cause
// once b loses its connection. Drivers that cannot lose one never cancel it.
func WatchConnection(ctx context.Context, b any) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)
	if hc, ok := b.(HealthChecker); ok {
		go func() {
			select {
			case <-hc.Lost():
				cancel(fmt.Errorf("%w: %v", ErrConnectionLost, hc.Healthy()))
			case <-ctx.Done():
			}
		}()
	}
	return ctx, func() { cancel(context.Canceled) }
}

// LostConnection returns the cause recorded by WatchConnection, or nil when ctx ended
// for any other reason.
func LostConnection(ctx context.Context) error {
	if cause := context.Cause(ctx); errors.Is(cause, ErrConnectionLost) {
		return cause
	}
	return nil
}
