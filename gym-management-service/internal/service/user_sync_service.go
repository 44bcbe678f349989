package service

import (
	"context"
	"fmt"

	"github.com/gymcore/gymcore/gym-management-service/internal/models"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/sirupsen/logrus"
)

// UserSyncService keeps the user projection in line with user.created events.
type UserSyncService struct {
	Repo UserProjectionRepo
}

func NewUserSyncService(repo UserProjectionRepo) *UserSyncService {
	return &UserSyncService{Repo: repo}
}

// SyncUser upserts the projection keyed by id. Redelivery overwrites with the same
// values; two different payloads for one id resolve to the last one received.
// The gym is only overwritten when the event carries one.
func (s *UserSyncService) SyncUser(ctx context.Context, evt events.UserCreated) error {
	user := &models.User{
		ID:        evt.ID,
		Email:     evt.Email,
		FirstName: evt.FirstName,
		LastName:  evt.LastName,
		Role:      evt.Role,
	}
	if user.Role == "" {
		user.Role = models.RoleMember
	}
	withGym := evt.GymID != ""
	if withGym {
		gymID := evt.GymID
		user.GymID = &gymID
	}

	if err := s.Repo.Upsert(ctx, user, withGym); err != nil {
		return fmt.Errorf("upsert user %s: %w", evt.ID, err)
	}

	logrus.WithFields(logrus.Fields{"user_id": evt.ID, "role": user.Role}).Info("User projection synced")
	return nil
}
