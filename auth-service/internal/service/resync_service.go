package service

import (
	"context"
	"fmt"

	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/sirupsen/logrus"
)

type Summary struct {
	Total     int
	Published int
}

// ResyncService republishes user.created for every auth user so projections that
// missed events catch up. Consumers upsert, so running it twice is harmless.
type ResyncService struct {
	Repo      UserRepo
	Publisher bus.Publisher
}

func NewResyncService(repo UserRepo, publisher bus.Publisher) *ResyncService {
	return &ResyncService{Repo: repo, Publisher: publisher}
}

// Run publishes one persistent user.created per user in creation order. The first
// publish failure stops the run; the summary tells how far it got.
func (s *ResyncService) Run(ctx context.Context) (Summary, error) {
	users, err := s.Repo.ListAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list users: %w", err)
	}

	summary := Summary{Total: len(users)}
	if summary.Total == 0 {
		logrus.Info("No users to resync")
		return summary, nil
	}
	logrus.WithField("total", summary.Total).Info("Publishing user.created for every user")

	for i := range users {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		user := &users[i]
		if err := bus.PublishJSON(ctx, s.Publisher, events.RKUserCreated, user.CreatedEvent()); err != nil {
			return summary, fmt.Errorf("publish user.created for %s: %w", user.ID, err)
		}
		summary.Published++
		logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Debug("user.created published")
	}

	logrus.WithFields(logrus.Fields{"total": summary.Total, "published": summary.Published}).Info("Resync finished")
	return summary, nil
}
