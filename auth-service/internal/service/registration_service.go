package service

import (
	"context"
	"fmt"

	"github.com/gymcore/gymcore/auth-service/internal/models"
	"github.com/gymcore/gymcore/auth-service/internal/models/dto"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type RegistrationService struct {
	Repo       UserRepo
	Dispatcher Dispatcher
}

func NewRegistrationService(repo UserRepo, dispatcher Dispatcher) *RegistrationService {
	return &RegistrationService{Repo: repo, Dispatcher: dispatcher}
}

// Register creates a MEMBER and announces it with user.created.
// A failed publish does not fail the registration; the outbox relay retries it.
func (s *RegistrationService) Register(ctx context.Context, req *dto.RegisterUser) (*models.User, error) {
	req.Sanitize()

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleMember,
	}
	if req.GymID != "" {
		gymID := req.GymID
		user.GymID = &gymID
	}

	eventID, err := s.Repo.CreateWithEvent(ctx, user)
	if err != nil {
		return nil, err
	}

	entry := logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email})
	if err := s.Dispatcher.Dispatch(ctx, eventID); err != nil {
		entry.WithError(err).Warn("User registered, user.created left to the outbox relay")
		return user, nil
	}

	entry.Info("User registered")
	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
