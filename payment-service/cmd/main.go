package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gymcore/gymcore/payment-service/internal/app"
	"github.com/gymcore/gymcore/pkg/config"
	"github.com/gymcore/gymcore/pkg/logging"
	"github.com/gymcore/gymcore/pkg/outbox"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "payment-service",
		Short:         "Payment capture recording and payment.completed publishing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(flushOutboxCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.New(app.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	logging.Setup(cfg.APP.ServiceName, cfg.APP.LogLevel, cfg.APP.LogFormat)
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the capture API and run the outbox relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			myApp := &app.App{}
			defer func() {
				if err := myApp.Close(); err != nil {
					logrus.WithError(err).Warn("Error releasing resources")
				}
			}()
			if err := myApp.Initialize(ctx, cfg); err != nil {
				return err
			}
			return myApp.Run(ctx)
		},
	}
}

func flushOutboxCmd() *cobra.Command {
	var includeDead bool
	cmd := &cobra.Command{
		Use:   "flush-outbox",
		Short: "Publish every pending payment.completed event now and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			myApp := &app.App{}
			defer myApp.Close()
			if err := myApp.Initialize(cmd.Context(), cfg); err != nil {
				return err
			}
			return flushOutbox(cmd.Context(), myApp.Relay, includeDead)
		},
	}
	cmd.Flags().BoolVar(&includeDead, "include-dead", false, "also requeue events that exhausted their attempts")
	return cmd
}

func flushOutbox(ctx context.Context, relay *outbox.Relay, includeDead bool) error {
	published, err := relay.Flush(ctx, includeDead)
	if err != nil {
		return err
	}
	pending, err := relay.Pending(ctx)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"published": published, "pending": pending}).Info("Outbox flushed")
	if pending > 0 {
		return fmt.Errorf("%d outbox events still pending", pending)
	}
	return nil
}
