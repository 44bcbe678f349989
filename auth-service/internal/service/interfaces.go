package service

import (
	"context"

	"github.com/gymcore/gymcore/auth-service/internal/models"
)

// UserRepo persists auth users. Every write also stores the user.created outbox row.
type UserRepo interface {
	CreateWithEvent(ctx context.Context, user *models.User) (string, error)
	CreateOwnerIfAbsent(ctx context.Context, owner *models.User) (*models.User, string, error)
	ListAll(ctx context.Context) ([]models.User, error)
}

// Dispatcher publishes a stored outbox row right away.
type Dispatcher interface {
	Dispatch(ctx context.Context, id string) error
}
