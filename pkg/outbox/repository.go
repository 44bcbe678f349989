package outbox

import (
	"errors"
	"fmt"
	"time"

	"github.com/gymcore/gymcore/pkg/bus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTxRequired = errors.New("outbox: transaction required")

// Enqueue encodes payload and stores it as a pending event. tx must be the caller's
// open transaction so the event commits or rolls back with the business write.
func Enqueue(tx *gorm.DB, routingKey string, payload any) (*Event, error) {
	if tx == nil {
		return nil, ErrTxRequired
	}
	msg, err := bus.NewMessage(routingKey, payload)
	if err != nil {
		return nil, err
	}
	event := &Event{
		RoutingKey: routingKey,
		MessageID:  msg.MessageID,
		Payload:    msg.Body,
		Status:     StatusPending,
	}
	if err := tx.Create(event).Error; err != nil {
		return nil, fmt.Errorf("insert outbox event: %w", err)
	}
	return event, nil
}

// Repository reads and updates outbox rows inside relay transactions.
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// lockRows adds FOR UPDATE SKIP LOCKED where the dialect supports it.
func lockRows(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
	}
	return tx
}

// FetchPending returns up to limit pending events that are due at now, in creation order.
func (r *Repository) FetchPending(tx *gorm.DB, now time.Time, limit int) ([]Event, error) {
	var rows []Event
	err := lockRows(tx).
		Where("status = ?", StatusPending).
		Where("(next_attempt_at IS NULL OR next_attempt_at <= ?)", now).
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// GetUnpublished returns the event id if it is pending or dead, or gorm.ErrRecordNotFound.
// A scheduled backoff does not hide the row.
func (r *Repository) GetUnpublished(tx *gorm.DB, id string) (*Event, error) {
	var row Event
	err := lockRows(tx).
		Where("id = ? AND status <> ?", id, StatusPublished).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) MarkPublished(tx *gorm.DB, id string) error {
	return tx.Model(&Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          StatusPublished,
			"published_at":    time.Now().UTC(),
			"next_attempt_at": nil,
		}).Error
}

// MarkFailed records a failed publish and holds the row back until next.
func (r *Repository) MarkFailed(tx *gorm.DB, id string, err error, next time.Time) error {
	return tx.Model(&Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          StatusPending,
			"last_error":      err.Error(),
			"attempt_count":   gorm.Expr("attempt_count + 1"),
			"next_attempt_at": next,
		}).Error
}

func (r *Repository) MarkDead(tx *gorm.DB, id string, err error) error {
	return tx.Model(&Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        StatusDead,
			"last_error":    err.Error(),
			"attempt_count": gorm.Expr("attempt_count + 1"),
		}).Error
}

// RequeueDead moves every DEAD row back to PENDING with a fresh attempt budget.
func (r *Repository) RequeueDead(tx *gorm.DB) (int64, error) {
	res := tx.Model(&Event{}).
		Where("status = ?", StatusDead).
		Updates(map[string]any{
			"status":          StatusPending,
			"attempt_count":   0,
			"next_attempt_at": nil,
		})
	return res.RowsAffected, res.Error
}

// ReleaseBackoff makes every pending row due immediately.
func (r *Repository) ReleaseBackoff(tx *gorm.DB) (int64, error) {
	res := tx.Model(&Event{}).
		Where("status = ? AND next_attempt_at IS NOT NULL", StatusPending).
		Update("next_attempt_at", nil)
	return res.RowsAffected, res.Error
}

// CountByStatus reports how many rows sit in status.
func (r *Repository) CountByStatus(tx *gorm.DB, status Status) (int64, error) {
	var n int64
	err := tx.Model(&Event{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
