package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gymcore/gymcore/gym-management-service/internal/database"
	"github.com/gymcore/gymcore/gym-management-service/internal/handler"
	"github.com/gymcore/gymcore/gym-management-service/internal/models"
	"github.com/gymcore/gymcore/gym-management-service/internal/repository"
	"github.com/gymcore/gymcore/gym-management-service/internal/service"
	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/config"
	"github.com/gymcore/gymcore/pkg/httpserver"
	"github.com/gymcore/gymcore/pkg/metrics"
	"github.com/gymcore/gymcore/pkg/repository/posgrest"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

const ServiceName = "gym-management-service"

type App struct {
	config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Bus    bus.Bus

	Users       *service.UserSyncService
	Gyms        *service.GymService
	Memberships *service.MembershipService
	Events      *handler.EventHandler
}

// InitStorage opens the database, migrates it and builds the services.
// The CLI maintenance commands only need this part.
func (a *App) InitStorage(cfg *config.Config) error {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.DB = db

	if err := db.AutoMigrate(&models.User{}, &models.Gym{}, &models.Membership{}, &models.MembershipPayment{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	gymRepo := posgrest.New[models.Gym](db)
	membershipRepo := repository.NewMembershipRepository(db)

	a.Users = service.NewUserSyncService(userRepo)
	a.Gyms = service.NewGymService(gymRepo)
	a.Memberships = service.NewMembershipService(userRepo, gymRepo, membershipRepo, cfg.Membership.Period)
	a.Events = handler.NewEventHandler(a.Users, a.Memberships)
	return nil
}

// Initialize prepares storage, the bus connection and the HTTP router.
func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	if err := a.InitStorage(cfg); err != nil {
		return err
	}

	if cfg.IsLocal() {
		if err := database.SeedGyms(a.DB); err != nil {
			logrus.WithError(err).Warn("Seeding gyms failed")
		}
	}

	b, err := cfg.ConnectBus(ctx)
	if err != nil {
		return err
	}
	a.Bus = b

	metrics.RegisterMetrics()
	a.Router = httpserver.NewRouter(a.DB, b)
	a.RegisterRoutes(handler.NewGymHandler(a.Gyms, a.Memberships))
	return nil
}

// Run subscribes to the bus, starts the expiry loop and serves HTTP until ctx is done
// or the broker connection drops, in which case the loss is returned.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := bus.WatchConnection(ctx, a.Bus)
	defer stop()

	if err := a.Events.Subscribe(ctx, a.Bus); err != nil {
		return err
	}
	go a.Memberships.RunExpiry(ctx, a.config.Membership.ExpiryInterval)

	err := httpserver.Serve(ctx, a.config.APP.PORT, a.Router)
	if lost := bus.LostConnection(ctx); lost != nil {
		return lost
	}
	return err
}

// Close releases the bus and the database.
func (a *App) Close() error {
	var err error
	if a.Bus != nil {
		err = multierr.Append(err, a.Bus.Close())
	}
	if a.DB != nil {
		if sqlDB, dbErr := a.DB.DB(); dbErr != nil {
			err = multierr.Append(err, dbErr)
		} else {
			err = multierr.Append(err, sqlDB.Close())
		}
	}
	return err
}
