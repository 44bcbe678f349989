package outbox

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPublished Status = "PUBLISHED"
	// StatusDead rows exhausted their attempts and wait for an operator.
	StatusDead Status = "DEAD"
)

// Event is an encoded bus message written in the same transaction as the state change
// that produced it.
type Event struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	RoutingKey   string     `gorm:"size:128;not null;index" json:"routingKey"`
	MessageID    string     `gorm:"size:36;not null;uniqueIndex" json:"messageId"`
	Payload      []byte     `gorm:"not null" json:"payload"`
	Status       Status     `gorm:"size:16;not null;index" json:"status"`
	AttemptCount int        `gorm:"not null;default:0" json:"attemptCount"`
	LastError    string     `json:"lastError,omitempty"`
	// NextAttemptAt holds a failed row back until its per-row backoff elapsed.
	NextAttemptAt *time.Time `gorm:"index" json:"nextAttemptAt,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"createdAt"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
}

func (Event) TableName() string {
	return "outbox_events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = StatusPending
	}
	return
}
