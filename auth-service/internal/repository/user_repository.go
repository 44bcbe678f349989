package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymcore/gymcore/auth-service/internal/models"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/gymcore/gymcore/pkg/outbox"
	"github.com/gymcore/gymcore/pkg/repository/posgrest"
	"gorm.io/gorm"
)

// ownerLockKey serializes owner bootstrap runs on Postgres.
const ownerLockKey = 7_310_001

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateWithEvent stores user and its user.created outbox row in one transaction
// and returns the outbox row id.
func (r *UserRepository) CreateWithEvent(ctx context.Context, user *models.User) (string, error) {
	var eventID string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := createWithEvent(tx, user)
		eventID = id
		return err
	})
	return eventID, err
}

// CreateOwnerIfAbsent creates owner unless a user with the OWNER role exists.
// It returns the existing owner with an empty event id when there is one.
func (r *UserRepository) CreateOwnerIfAbsent(ctx context.Context, owner *models.User) (*models.User, string, error) {
	var (
		existing *models.User
		eventID  string
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", ownerLockKey).Error; err != nil {
				return fmt.Errorf("owner lock: %w", err)
			}
		}

		found, err := posgrest.New[models.User](tx).FirstBy(ctx, "role = ?", models.RoleOwner)
		if err == nil {
			existing = found
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find owner: %w", err)
		}

		eventID, err = createWithEvent(tx, owner)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return existing, "", nil
	}
	return owner, eventID, nil
}

func createWithEvent(tx *gorm.DB, user *models.User) (string, error) {
	if err := tx.Create(user).Error; err != nil {
		if posgrest.IsUniqueViolation(err) {
			return "", models.ErrEmailTaken
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	row, err := outbox.Enqueue(tx, events.RKUserCreated, user.CreatedEvent())
	if err != nil {
		return "", err
	}
	return row.ID, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := posgrest.New[models.User](r.db).GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrUserNotFound
	}
	return user, err
}

// ListAll returns every user, oldest first.
func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	users, err := posgrest.New[models.User](r.db).GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return *users, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	return posgrest.New[models.User](r.db).CountBy(ctx, "role = ?", role)
}
