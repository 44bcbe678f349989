package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gymcore/gymcore/auth-service/internal/models"
	"github.com/sirupsen/logrus"
)

var ErrOwnerCredentialsRequired = errors.New("owner email and password are required")

type OwnerInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type OwnerService struct {
	Repo       UserRepo
	Dispatcher Dispatcher
}

func NewOwnerService(repo UserRepo, dispatcher Dispatcher) *OwnerService {
	return &OwnerService{Repo: repo, Dispatcher: dispatcher}
}

// InitOwner creates the platform owner once. When an OWNER already exists nothing is
// written and created is false.
func (s *OwnerService) InitOwner(ctx context.Context, in OwnerInput) (owner *models.User, created bool, err error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, false, ErrOwnerCredentialsRequired
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, false, err
	}

	candidate := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         models.RoleOwner,
	}
	owner, eventID, err := s.Repo.CreateOwnerIfAbsent(ctx, candidate)
	if err != nil {
		return nil, false, err
	}

	entry := logrus.WithFields(logrus.Fields{"user_id": owner.ID, "email": owner.Email})
	if eventID == "" {
		entry.Info("An OWNER already exists, nothing to do")
		return owner, false, nil
	}

	if err := s.Dispatcher.Dispatch(ctx, eventID); err != nil {
		entry.WithError(err).Warn("Owner created, user.created left to the outbox relay")
		return owner, true, nil
	}

	entry.Info("Owner created")
	return owner, true, nil
}
