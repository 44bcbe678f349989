package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	handlers "github.com/gymcore/gymcore/payment-service/internal/handlers"
	"github.com/gymcore/gymcore/payment-service/internal/models"
	"github.com/gymcore/gymcore/payment-service/internal/repository"
	"github.com/gymcore/gymcore/payment-service/internal/service"
	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/config"
	"github.com/gymcore/gymcore/pkg/httpserver"
	"github.com/gymcore/gymcore/pkg/metrics"
	"github.com/gymcore/gymcore/pkg/outbox"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

const ServiceName = "payment-service"

type App struct {
	config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Bus    bus.Bus
	Relay  *outbox.Relay

	Payments *service.PaymentService

	closeRelay func() error
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.DB = db

	if err := db.AutoMigrate(&models.Payment{}, &outbox.Event{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	b, err := cfg.ConnectBus(ctx)
	if err != nil {
		return err
	}
	a.Bus = b

	relay, closeRelay, err := cfg.OutboxRelay(db, b)
	if err != nil {
		return err
	}
	a.Relay = relay
	a.closeRelay = closeRelay

	a.Payments = service.NewPaymentService(repository.NewPaymentRepository(db), relay)

	metrics.RegisterMetrics()
	a.Router = httpserver.NewRouter(db, b)
	a.RegisterRoutes(handlers.NewPaymentHandler(a.Payments))
	return nil
}

// Run starts the outbox relay and serves HTTP until ctx is done. A lost broker
// connection stops both and is returned so the process exits non-zero.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := bus.WatchConnection(ctx, a.Bus)
	defer stop()

	go func() {
		if err := a.Relay.Run(ctx); err != nil {
			logrus.WithError(err).Error("Outbox relay stopped")
		}
	}()

	err := httpserver.Serve(ctx, a.config.APP.PORT, a.Router)
	if lost := bus.LostConnection(ctx); lost != nil {
		return lost
	}
	return err
}

// Close releases the relay lock client, the bus and the database.
func (a *App) Close() error {
	var err error
	if a.closeRelay != nil {
		err = multierr.Append(err, a.closeRelay())
	}
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
