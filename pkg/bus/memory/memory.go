package memory

import (
	"context"
	"sync"

	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/metrics"
	"github.com/sirupsen/logrus"
)

type subscription struct {
	pattern string
	handler bus.HandlerFunc
}

// DeadLetter is a message the handler gave up on.
type DeadLetter struct {
	Pattern string
	Message bus.Message
	Result  bus.Result
}

// Bus delivers published messages synchronously to every matching subscription.
type Bus struct {
	RetryConfig bus.RetryConfig

	mu            sync.Mutex
	subscriptions []subscription
	published     []bus.Message
	deadLetters   []DeadLetter
	publishErr    error
	closed        bool

	lost     chan struct{}
	lostErr  error
	lostOnce sync.Once
}

var (
	_ bus.Bus           = (*Bus)(nil)
	_ bus.HealthChecker = (*Bus)(nil)
)

func New(retryConfig bus.RetryConfig) *Bus {
	return &Bus{RetryConfig: retryConfig, lost: make(chan struct{})}
}

func (b *Bus) Subscribe(ctx context.Context, pattern string, handler bus.HandlerFunc) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return bus.ErrClosed
	}
	b.subscriptions = append(b.subscriptions, subscription{pattern: pattern, handler: handler})
	return nil
}

// Publish records msg and runs every matching handler before returning.
func (b *Bus) Publish(ctx context.Context, msg bus.Message) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return bus.ErrClosed
	}
	if b.publishErr != nil {
		err := b.publishErr
		b.mu.Unlock()
		metrics.EventsPublished.WithLabelValues(msg.RoutingKey, "failed").Inc()
		return err
	}
	b.published = append(b.published, msg)
	subs := make([]subscription, 0, len(b.subscriptions))
	for _, s := range b.subscriptions {
		if bus.MatchRoutingKey(s.pattern, msg.RoutingKey) {
			subs = append(subs, s)
		}
	}
	b.mu.Unlock()

	metrics.EventsPublished.WithLabelValues(msg.RoutingKey, "ok").Inc()

	for _, s := range subs {
		res := bus.Process(ctx, msg, s.handler, b.RetryConfig)
		if res.Outcome == bus.OutcomeDeadLetter {
			dead := msg
			dead.Headers = bus.DeadLetterHeaders(msg, res)
			b.mu.Lock()
			b.deadLetters = append(b.deadLetters, DeadLetter{Pattern: s.pattern, Message: dead, Result: res})
			b.mu.Unlock()
			logrus.WithField("routing_key", msg.RoutingKey).Warn("Message dead-lettered")
		}
	}
	return nil
}

// Disconnect simulates a dropped broker connection: publishes fail with err and Lost fires.
func (b *Bus) Disconnect(err error) {
	b.lostOnce.Do(func() {
		b.mu.Lock()
		b.lostErr = err
		b.publishErr = err
		b.mu.Unlock()
		close(b.lost)
	})
}

func (b *Bus) Healthy() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lostErr != nil {
		return b.lostErr
	}
	if b.closed {
		return bus.ErrClosed
	}
	return nil
}

func (b *Bus) Lost() <-chan struct{} {
	return b.lost
}

// FailPublish makes every following Publish return err. A nil err restores delivery.
func (b *Bus) FailPublish(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.publishErr = err
}

// Published returns the messages accepted so far, in publish order.
func (b *Bus) Published() []bus.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]bus.Message, len(b.published))
	copy(out, b.published)
	return out
}

// PublishedWith returns the accepted messages carrying routingKey.
func (b *Bus) PublishedWith(routingKey string) []bus.Message {
	var out []bus.Message
	for _, m := range b.Published() {
		if m.RoutingKey == routingKey {
			out = append(out, m)
		}
	}
	return out
}

func (b *Bus) DeadLetters() []DeadLetter {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]DeadLetter, len(b.deadLetters))
	copy(out, b.deadLetters)
	return out
}

func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subscriptions = nil
	return nil
}
