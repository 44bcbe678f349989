package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gymcore/gymcore/metrics-service/internal/handler"
	"github.com/gymcore/gymcore/metrics-service/internal/metrics"
	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/config"
	"github.com/gymcore/gymcore/pkg/httpserver"
	sharedmetrics "github.com/gymcore/gymcore/pkg/metrics"
)

const ServiceName = "metrics-service"

type App struct {
	config  *config.Config
	Router  *gin.Engine
	Bus     bus.Bus
	Handler *handler.MetricsHandler
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.config = cfg

	b, err := cfg.ConnectBus(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to bus: %w", err)
	}
	a.Bus = b

	metrics.RegisterMetrics()
	sharedmetrics.RegisterMetrics()
	a.Handler = handler.NewMetricHandler()
	a.Router = httpserver.NewRouter(nil, b)
	return nil
}

// Run binds the monitor queue and serves /metrics until ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := bus.WatchConnection(ctx, a.Bus)
	defer stop()

	if err := a.Handler.Subscribe(ctx, a.Bus); err != nil {
		return err
	}
	err := httpserver.Serve(ctx, a.config.APP.PORT, a.Router)
	if lost := bus.LostConnection(ctx); lost != nil {
		return lost
	}
	return err
}

func (a *App) Close() error {
	if a.Bus == nil {
		return nil
	}
	return a.Bus.Close()
}
