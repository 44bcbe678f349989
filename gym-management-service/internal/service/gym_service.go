package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/gymcore/gymcore/gym-management-service/internal/models"
	"github.com/gymcore/gymcore/pkg/repository/posgrest"
	"github.com/sirupsen/logrus"
)

const (
	codeAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength     = 8
	codeMaxRetries = 5
)

var ErrInvalidGymName = errors.New("gym name is required")

type GymService struct {
	Repo GymRepo
}

func NewGymService(repo GymRepo) *GymService {
	return &GymService{Repo: repo}
}

// CreateGym stores an active gym with a fresh join code.
func (s *GymService) CreateGym(ctx context.Context, name string) (*models.Gym, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidGymName
	}

	for attempt := 0; attempt < codeMaxRetries; attempt++ {
		code, err := generateCode()
		if err != nil {
			return nil, err
		}
		gym := &models.Gym{Name: name, UniqueCode: code, IsActive: true}
		err = s.Repo.Create(ctx, gym)
		if err == nil {
			logrus.WithFields(logrus.Fields{"gym_id": gym.ID, "code": code}).Info("Gym created")
			return gym, nil
		}
		if !posgrest.IsUniqueViolation(err) {
			return nil, fmt.Errorf("create gym: %w", err)
		}
	}
	return nil, fmt.Errorf("create gym: no free join code after %d attempts", codeMaxRetries)
}

func generateCode() (string, error) {
	var sb strings.Builder
	limit := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate join code: %w", err)
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}
