package repository

import (
	"context"
	"fmt"

	"github.com/gymcore/gymcore/payment-service/internal/models"
	"github.com/gymcore/gymcore/pkg/outbox"
	"github.com/gymcore/gymcore/pkg/repository/posgrest"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// RecordCompleted stores payment and the outbox row for event in one transaction and
// returns the stored payment with the id of that outbox row.
// A transaction id that is already stored writes nothing; the stored payment and its
// original outbox row id are returned with duplicate set.
func (r *PaymentRepository) RecordCompleted(ctx context.Context, payment *models.Payment, routingKey string, event any) (*models.Payment, string, bool, error) {
	duplicate := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			DoNothing: true,
		}).Create(payment)
		if res.Error != nil {
			return fmt.Errorf("insert payment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			duplicate = true
			return nil
		}

		row, err := outbox.Enqueue(tx, routingKey, event)
		if err != nil {
			return err
		}
		if err := tx.Model(payment).Update("outbox_event_id", row.ID).Error; err != nil {
			return fmt.Errorf("link outbox event: %w", err)
		}
		payment.OutboxEventID = row.ID
		return nil
	})
	if err != nil {
		return nil, "", false, err
	}

	if duplicate {
		stored, err := r.GetByTransactionID(ctx, payment.TransactionID)
		if err != nil {
			return nil, "", false, err
		}
		return stored, stored.OutboxEventID, true, nil
	}
	return payment, payment.OutboxEventID, false, nil
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	return posgrest.New[models.Payment](r.db).FirstBy(ctx, "transaction_id = ?", transactionID)
}
