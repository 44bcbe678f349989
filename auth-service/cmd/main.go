package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gymcore/gymcore/auth-service/internal/app"
	"github.com/gymcore/gymcore/auth-service/internal/service"
	"github.com/gymcore/gymcore/pkg/config"
	"github.com/gymcore/gymcore/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "auth-service",
		Short:         "Identity records and user.created publishing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(initOwnerCmd())
	rootCmd.AddCommand(resyncUsersCmd())
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

// withApp initializes the app, runs fn and always releases every resource.
func withApp(ctx context.Context, cfg *config.Config, fn func(a *app.App) error) error {
	myApp := &app.App{}
	defer func() {
		if closeErr := myApp.Close(); closeErr != nil {
			logrus.WithError(closeErr).Warn("Error releasing resources")
		}
		logrus.Info("Connections closed")
	}()
	if err := myApp.Initialize(ctx, cfg); err != nil {
		return err
	}
	return fn(myApp)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the registration API and run the outbox relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return withApp(ctx, cfg, func(a *app.App) error {
				return a.Run(ctx)
			})
		},
	}
}

func initOwnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-owner",
		Short: "Create the platform OWNER from OWNER_EMAIL and OWNER_PASSWORD if none exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			in := service.OwnerInput{
				Email:     cfg.Owner.Email,
				Password:  cfg.Owner.Password,
				FirstName: cfg.Owner.FirstName,
				LastName:  cfg.Owner.LastName,
			}
			if in.Email == "" || in.Password == "" {
				return service.ErrOwnerCredentialsRequired
			}

			return withApp(cmd.Context(), cfg, func(a *app.App) error {
				owner, created, err := a.Owners.InitOwner(cmd.Context(), in)
				if err != nil {
					return err
				}
				logrus.WithFields(logrus.Fields{"user_id": owner.ID, "created": created}).Info("Owner initialization finished")
				return nil
			})
		},
	}
}

func resyncUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resync-users",
		Short: "Publish user.created for every user so downstream projections catch up",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return withApp(cmd.Context(), cfg, func(a *app.App) error {
				summary, err := a.Resync.Run(cmd.Context())
				logrus.WithFields(logrus.Fields{
					"total":     summary.Total,
					"published": summary.Published,
				}).Info("Resync summary")
				return err
			})
		},
	}
}

func flushOutboxCmd() *cobra.Command {
	var includeDead bool
	cmd := &cobra.Command{
		Use:   "flush-outbox",
		Short: "Publish every pending user.created event now and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return withApp(cmd.Context(), cfg, func(a *app.App) error {
				published, err := a.Relay.Flush(cmd.Context(), includeDead)
				if err != nil {
					return err
				}
				pending, err := a.Relay.Pending(cmd.Context())
				if err != nil {
					return err
				}
				logrus.WithFields(logrus.Fields{"published": published, "pending": pending}).Info("Outbox flushed")
				if pending > 0 {
					return fmt.Errorf("%d outbox events still pending", pending)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&includeDead, "include-dead", false, "also requeue events that exhausted their attempts")
	return cmd
}
