package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/metrics"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	headerMessageID = "message_id"
	dlqSuffix       = ".dlq"
	// maxDeadLetterBackoffStep caps the exponent of the wait between dead-letter rounds.
	maxDeadLetterBackoffStep = 6
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers []string
	// ServiceName is the consumer group; instances of one service split partitions.
	ServiceName    string
	ConnectTimeout time.Duration
	Retry          bus.RetryConfig
}

// DeadLetter is the record written to <topic>.dlq when a handler gives up.
type DeadLetter struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
	Error         string    `json:"error,omitempty"`
}

// DeadLetterTopic names the dead-letter topic of topic.
func DeadLetterTopic(topic string) string {
	return topic + dlqSuffix
}

// Bus maps routing keys one-to-one onto Kafka topics.
type Bus struct {
	cfg Config

	mu        sync.Mutex
	newWriter func(topic string) messageWriter
	writers   map[string]messageWriter
	readers   []messageReader
	cancels []context.CancelFunc
	wg      sync.WaitGroup
	closed  bool
}

var _ bus.Bus = (*Bus)(nil)

// Connect verifies that a broker answers within cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg Config) (*Bus, error) {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	cfg.Retry = cfg.Retry.WithDefaults()
	if len(cfg.Brokers) == 0 {
		return nil, bus.NewConnectionError("", errors.New("no kafka brokers configured"))
	}

	if err := ping(ctx, cfg); err != nil {
		return nil, err
	}

	logrus.WithField("brokers", cfg.Brokers).Info("Connected to Kafka")
	return &Bus{cfg: cfg, writers: make(map[string]messageWriter)}, nil
}

func ping(ctx context.Context, cfg Config) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	backoff := bus.RetryConfig{BaseDelay: 250 * time.Millisecond, MaxDelay: 2 * time.Second, Jitter: true}
	var lastErr error
	for attempt := 0; ; attempt++ {
		for _, broker := range cfg.Brokers {
			conn, err := kafka.DialContext(ctx, "tcp", broker)
			if err == nil {
				return conn.Close()
			}
			lastErr = err
		}

		timer := time.NewTimer(backoff.Backoff(attempt))
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return bus.NewConnectionError(cfg.Brokers[0], lastErr)
		}
	}
}

func (b *Bus) writer(topic string) (messageWriter, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, bus.ErrClosed
	}
	if w, ok := b.writers[topic]; ok {
		return w, nil
	}
	var w messageWriter
	if b.newWriter != nil {
		w = b.newWriter(topic)
	} else {
		w = &kafka.Writer{
			Addr:                   kafka.TCP(b.cfg.Brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		}
	}
	b.writers[topic] = w
	return w, nil
}

// Publish writes msg to the topic named by its routing key.
func (b *Bus) Publish(ctx context.Context, msg bus.Message) error {
	writer, err := b.writer(msg.RoutingKey)
	if err != nil {
		return err
	}

	km := kafka.Message{
		Key:     []byte(msg.MessageID),
		Value:   msg.Body,
		Time:    msg.Timestamp,
		Headers: []kafka.Header{{Key: headerMessageID, Value: []byte(msg.MessageID)}},
	}
	for k, v := range msg.Headers {
		km.Headers = append(km.Headers, kafka.Header{Key: k, Value: []byte(fmt.Sprint(v))})
	}

	err = b.publishWithRetry(ctx, writer, km, msg.RoutingKey)
	status := "ok"
	if err != nil {
		status = "failed"
	}
	metrics.EventsPublished.WithLabelValues(msg.RoutingKey, status).Inc()
	return err
}

func (b *Bus) publishWithRetry(ctx context.Context, writer messageWriter, msg kafka.Message, topic string) error {
	var lastErr error
	retry := b.cfg.Retry

	for attempt := 0; attempt < retry.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("Message published to topic '%s' after %d attempts", topic, attempt+1)
			}
			return nil
		}

		lastErr = err

		if attempt == retry.MaxAttempts-1 {
			break
		}

		delay := retry.Backoff(attempt)
		logrus.WithError(err).Warnf("Retry %d/%d for topic '%s' after %v", attempt+1, retry.MaxAttempts, topic, delay)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, retry.MaxAttempts, lastErr)
}

// Subscribe starts a group reader on the topic named by pattern. Wildcards are rejected.
func (b *Bus) Subscribe(ctx context.Context, pattern string, handler bus.HandlerFunc) error {
	if !bus.IsLiteral(pattern) {
		return fmt.Errorf("%w: %s", bus.ErrPatternUnsupported, pattern)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return bus.ErrClosed
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  b.cfg.Brokers,
		GroupID:  b.cfg.ServiceName,
		Topic:    pattern,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	subCtx, cancel := context.WithCancel(ctx)
	b.readers = append(b.readers, reader)
	b.cancels = append(b.cancels, cancel)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.listen(subCtx, reader, handler)
	}()

	logrus.WithFields(logrus.Fields{"topic": pattern, "group": b.cfg.ServiceName}).Info("Subscribed")
	return nil
}

// listen commits a message only once it was handled or its dead letter was written.
// Returning early leaves the offset uncommitted so the group redelivers it.
func (b *Bus) listen(ctx context.Context, r messageReader, handler bus.HandlerFunc) {
	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logrus.WithError(err).Error("Kafka fetch error")
			continue
		}

		msg := toMessage(m)
		res := bus.Process(ctx, msg, handler, b.cfg.Retry)
		switch res.Outcome {
		case bus.OutcomeRequeue:
			// uncommitted; redelivered to the group after rebalance
			return
		case bus.OutcomeDeadLetter:
			if err := b.deadLetterWithBackoff(ctx, m, res); err != nil {
				logrus.WithError(err).WithField("topic", m.Topic).Error("Dead letter not written, leaving offset uncommitted")
				return
			}
		}

		if err := r.CommitMessages(ctx, m); err != nil {
			logrus.WithError(err).WithField("topic", m.Topic).Error("Failed to commit offset")
		}
	}
}

// deadLetterWithBackoff keeps writing the dead letter until it succeeds or ctx is done.
func (b *Bus) deadLetterWithBackoff(ctx context.Context, m kafka.Message, res bus.Result) error {
	for round := 0; ; round++ {
		err := b.deadLetter(ctx, m, res)
		if err == nil {
			return nil
		}
		delay := b.cfg.Retry.Backoff(min(round, maxDeadLetterBackoffStep))
		logrus.WithError(err).Warnf("Failed to send message to DLQ: topic=%s, key=%s, retrying in %v", m.Topic, string(m.Key), delay)

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("dead letter for %s: %w", m.Topic, err)
		}
	}
}

func (b *Bus) deadLetter(ctx context.Context, m kafka.Message, res bus.Result) error {
	record := DeadLetter{
		OriginalTopic: m.Topic,
		Key:           string(m.Key),
		Value:         string(m.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      res.Attempts,
	}
	if res.Err != nil {
		record.Error = res.Err.Error()
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode dead letter: %w", err)
	}
	msg, err := bus.NewMessage(DeadLetterTopic(m.Topic), body)
	if err != nil {
		return err
	}
	if err := b.Publish(ctx, msg); err != nil {
		return err
	}
	logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", m.Topic, string(m.Key))
	return nil
}

func toMessage(m kafka.Message) bus.Message {
	msg := bus.Message{
		RoutingKey: m.Topic,
		Body:       m.Value,
		MessageID:  string(m.Key),
		Persistent: true,
		Timestamp:  m.Time,
		Headers:    make(map[string]any, len(m.Headers)),
	}
	for _, h := range m.Headers {
		if h.Key == headerMessageID {
			msg.MessageID = string(h.Value)
			continue
		}
		msg.Headers[h.Key] = string(h.Value)
	}
	return msg
}

// Close stops the readers and flushes the writers.
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
	readers := b.readers
	writers := b.writers
	b.mu.Unlock()

	b.wg.Wait()

	var err error
	for _, r := range readers {
		err = multierr.Append(err, r.Close())
	}
	for _, w := range writers {
		err = multierr.Append(err, w.Close())
	}
	return err
}
