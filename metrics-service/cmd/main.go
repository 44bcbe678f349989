package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gymcore/gymcore/metrics-service/internal/app"
	"github.com/gymcore/gymcore/pkg/config"
	"github.com/gymcore/gymcore/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "metrics-service",
		Short:         "Observe every gymcore event and export business metrics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(app.ServiceName)
			if err != nil {
				return err
			}
			logging.Setup(cfg.APP.ServiceName, cfg.APP.LogLevel, cfg.APP.LogFormat)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			myApp := &app.App{}
			defer func() {
				if err := myApp.Close(); err != nil {
					logrus.WithError(err).Warn("Error closing bus")
				}
			}()
			if err := myApp.Initialize(ctx, cfg); err != nil {
				return err
			}
			return myApp.Run(ctx)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
