package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/metrics"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const exchangeKind = "topic"

// Config describes how a service attaches to the shared exchange.
type Config struct {
	URL                string
	Exchange           string
	DeadLetterExchange string
	// ServiceName prefixes queue names; instances of one service compete on the same queues.
	ServiceName    string
	Prefetch       int
	ConnectTimeout time.Duration
	Retry          bus.RetryConfig
}

func (c Config) withDefaults() Config {
	if c.Exchange == "" {
		c.Exchange = "gymcore-exchange"
	}
	if c.DeadLetterExchange == "" {
		c.DeadLetterExchange = "gymcore-dead-letter-exchange"
	}
	if c.Prefetch <= 0 {
		c.Prefetch = 8
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	return c
}

// DeadLetterQueue is the queue that collects every message the service gave up on.
func (c Config) DeadLetterQueue() string {
	return c.ServiceName + ".dead-letter"
}

// QueueName is the durable queue a service consumes pattern from.
func (c Config) QueueName(pattern string) string {
	return c.ServiceName + "." + pattern
}

// Bus is a RabbitMQ connection bound to one topic exchange.
type Bus struct {
	cfg  Config
	conn *amqp.Connection

	pubMu sync.Mutex
	pubCh *amqp.Channel

	mu       sync.Mutex
	channels []*amqp.Channel
	cancels  []context.CancelFunc
	wg       sync.WaitGroup
	closed   bool

	lost     chan struct{}
	lostErr  error
	lostOnce sync.Once
}

var (
	_ bus.Bus           = (*Bus)(nil)
	_ bus.HealthChecker = (*Bus)(nil)
)

func newBus(cfg Config, conn *amqp.Connection) *Bus {
	return &Bus{cfg: cfg, conn: conn, lost: make(chan struct{})}
}

// Connect dials the broker, retrying until cfg.ConnectTimeout elapses, and declares the
// exchange topology. It returns a *bus.ConnectionError when the broker stays unreachable.
func Connect(ctx context.Context, cfg Config) (*Bus, error) {
	cfg = cfg.withDefaults()

	conn, err := dial(ctx, cfg)
	if err != nil {
		return nil, err
	}

	b := newBus(cfg, conn)
	if err := b.declareTopology(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	pubCh, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open publish channel: %w", err)
	}
	if err := pubCh.Confirm(false); err != nil {
		_ = pubCh.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	b.pubCh = pubCh

	go b.watchConnection(conn.NotifyClose(make(chan *amqp.Error, 1)))

	logrus.WithFields(logrus.Fields{
		"url":      bus.Redact(cfg.URL),
		"exchange": cfg.Exchange,
	}).Info("Connected to RabbitMQ")
	return b, nil
}

func dial(ctx context.Context, cfg Config) (*amqp.Connection, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	backoff := bus.RetryConfig{BaseDelay: 250 * time.Millisecond, MaxDelay: 2 * time.Second, Jitter: true}
	amqpCfg := amqp.Config{
		Dial:       amqp.DefaultDial(cfg.ConnectTimeout),
		Properties: amqp.Table{"connection_name": cfg.ServiceName},
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		conn, err := amqp.DialConfig(cfg.URL, amqpCfg)
		if err == nil {
			return conn, nil
		}
		lastErr = err

		delay := backoff.Backoff(attempt)
		logrus.WithError(err).Warnf("RabbitMQ not reachable, retrying in %v", delay)

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, bus.NewConnectionError(cfg.URL, lastErr)
		}
	}
}

func (b *Bus) declareTopology() error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(b.cfg.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", b.cfg.Exchange, err)
	}
	if err := ch.ExchangeDeclare(b.cfg.DeadLetterExchange, exchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dead-letter exchange %s: %w", b.cfg.DeadLetterExchange, err)
	}

	if b.cfg.ServiceName == "" {
		return nil
	}
	if _, err := ch.QueueDeclare(b.cfg.DeadLetterQueue(), true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dead-letter queue: %w", err)
	}
	if err := ch.QueueBind(b.cfg.DeadLetterQueue(), "#", b.cfg.DeadLetterExchange, false, nil); err != nil {
		return fmt.Errorf("bind dead-letter queue: %w", err)
	}
	return nil
}

// watchConnection marks the bus lost when the broker closes the connection. A nil
// close error means Close was called and is not a loss.
func (b *Bus) watchConnection(notify <-chan *amqp.Error) {
	closeErr, ok := <-notify
	if !ok || closeErr == nil {
		return
	}
	logrus.WithField("reason", closeErr.Reason).Error("RabbitMQ connection lost")
	b.markLost(closeErr)
}

func (b *Bus) markLost(cause error) {
	b.lostOnce.Do(func() {
		b.mu.Lock()
		b.lostErr = cause
		b.mu.Unlock()
		close(b.lost)
	})
}

// Healthy returns the reason the connection was lost, or nil while it is up.
func (b *Bus) Healthy() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lostErr != nil {
		return fmt.Errorf("rabbitmq: %w", b.lostErr)
	}
	if b.closed {
		return bus.ErrClosed
	}
	return nil
}

// Lost is closed once the broker connection or a consumer channel dropped.
func (b *Bus) Lost() <-chan struct{} {
	return b.lost
}

// Publish sends msg to the exchange and waits for the broker confirm.
func (b *Bus) Publish(ctx context.Context, msg bus.Message) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return bus.ErrClosed
	}

	err := b.publish(ctx, msg)
	status := "ok"
	if err != nil {
		status = "failed"
	}
	metrics.EventsPublished.WithLabelValues(msg.RoutingKey, status).Inc()
	return err
}

func (b *Bus) publish(ctx context.Context, msg bus.Message) error {
	publishing := amqp.Publishing{
		ContentType: "application/json",
		MessageId:   msg.MessageID,
		Timestamp:   msg.Timestamp,
		Headers:     amqp.Table(msg.Headers),
		Body:        msg.Body,
	}
	if msg.Persistent {
		publishing.DeliveryMode = amqp.Persistent
	}

	b.pubMu.Lock()
	defer b.pubMu.Unlock()

	confirm, err := b.pubCh.PublishWithDeferredConfirmWithContext(ctx, b.cfg.Exchange, msg.RoutingKey, false, false, publishing)
	if err != nil {
		return fmt.Errorf("publish %s: %w", msg.RoutingKey, err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("wait confirm for %s: %w", msg.RoutingKey, err)
	}
	if !acked {
		return fmt.Errorf("broker rejected message %s on %s", msg.MessageID, msg.RoutingKey)
	}
	return nil
}

// Subscribe declares the durable queue for pattern and consumes it until ctx is cancelled
// or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, pattern string, handler bus.HandlerFunc) error {
	if b.cfg.ServiceName == "" {
		return errors.New("rabbitmq: subscribe requires a service name")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return bus.ErrClosed
	}

	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}

	queue := b.cfg.QueueName(pattern)
	args := amqp.Table{"x-dead-letter-exchange": b.cfg.DeadLetterExchange}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, args); err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := ch.QueueBind(queue, pattern, b.cfg.Exchange, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("bind queue %s to %s: %w", queue, pattern, err)
	}
	if err := ch.Qos(b.cfg.Prefetch, 0, false); err != nil {
		_ = ch.Close()
		return fmt.Errorf("set qos: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	deliveries, err := ch.ConsumeWithContext(subCtx, queue, "", false, false, false, false, nil)
	if err != nil {
		cancel()
		_ = ch.Close()
		return fmt.Errorf("consume %s: %w", queue, err)
	}

	b.channels = append(b.channels, ch)
	b.cancels = append(b.cancels, cancel)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consume(subCtx, queue, deliveries, handler)
	}()

	logrus.WithFields(logrus.Fields{"queue": queue, "pattern": pattern}).Info("Subscribed")
	return nil
}

func (b *Bus) consume(ctx context.Context, queue string, deliveries <-chan amqp.Delivery, handler bus.HandlerFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return
				}
				logrus.WithField("queue", queue).Error("Delivery channel closed, consumer stopped")
				b.markLost(fmt.Errorf("delivery channel for %s closed", queue))
				return
			}
			b.settle(d, bus.Process(ctx, toMessage(d), handler, b.cfg.Retry))
		}
	}
}

func (b *Bus) settle(d amqp.Delivery, res bus.Result) {
	var err error
	switch res.Outcome {
	case bus.OutcomeAck:
		err = d.Ack(false)
	case bus.OutcomeDeadLetter:
		err = d.Nack(false, false)
	default:
		err = d.Nack(false, true)
	}
	if err != nil {
		logrus.WithError(err).WithField("routing_key", d.RoutingKey).Error("Failed to settle delivery")
	}
}

func toMessage(d amqp.Delivery) bus.Message {
	return bus.Message{
		RoutingKey: d.RoutingKey,
		Body:       d.Body,
		MessageID:  d.MessageId,
		Persistent: d.DeliveryMode == amqp.Persistent,
		Timestamp:  d.Timestamp,
		Headers:    map[string]any(d.Headers),
	}
}

// Close stops every consumer, then releases channels and the connection.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for _, cancel := range b.cancels {
		cancel()
	}
	channels := b.channels
	b.mu.Unlock()

	b.wg.Wait()

	var err error
	for _, ch := range channels {
		err = multierr.Append(err, ignoreClosed(ch.Close()))
	}
	b.pubMu.Lock()
	err = multierr.Append(err, ignoreClosed(b.pubCh.Close()))
	b.pubMu.Unlock()
	err = multierr.Append(err, ignoreClosed(b.conn.Close()))
	return err
}

func ignoreClosed(err error) error {
	if errors.Is(err, amqp.ErrClosed) {
		return nil
	}
	return err
}
