package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// HeaderAttempts carries the number of handler attempts spent on a dead-lettered message.
	HeaderAttempts = "x-gymcore-attempts"
	// HeaderError carries the last handler error of a dead-lettered message.
	HeaderError = "x-gymcore-error"
)

// Message is a routed event as it travels over the bus.
type Message struct {
	RoutingKey string
	Body       []byte
	MessageID  string
	Persistent bool
	Timestamp  time.Time
	Headers    map[string]any
}

// HandlerFunc processes one delivered message. Returning nil acknowledges it.
type HandlerFunc func(ctx context.Context, msg Message) error

// Publisher defines the interface for publishing events to the shared exchange.
// Publish returns once the broker accepted the message, not once it was consumed.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Subscriber registers handlers for routing-key patterns.
type Subscriber interface {
	Subscribe(ctx context.Context, pattern string, handler HandlerFunc) error
}

// Bus is a connected message bus owned by one process.
type Bus interface {
	Publisher
	Subscriber
	Close() error
}

// NewMessage encodes payload as JSON and wraps it in a persistent message.
// Payloads that are already encoded ([]byte, json.RawMessage) are sent as is.
func NewMessage(routingKey string, payload any) (Message, error) {
	var body []byte
	switch v := payload.(type) {
	case []byte:
		body = v
	case json.RawMessage:
		body = v
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return Message{}, fmt.Errorf("error marshaling message: %w", err)
		}
		body = data
	}

	return Message{
		RoutingKey: routingKey,
		Body:       body,
		MessageID:  uuid.NewString(),
		Persistent: true,
		Timestamp:  time.Now().UTC(),
	}, nil
}

// PublishJSON builds a persistent message for payload and publishes it.
func PublishJSON(ctx context.Context, p Publisher, routingKey string, payload any) error {
	msg, err := NewMessage(routingKey, payload)
	if err != nil {
		return err
	}
	return p.Publish(ctx, msg)
}
