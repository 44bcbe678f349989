package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gymcore/gymcore/gym-management-service/internal/app"
	"github.com/gymcore/gymcore/pkg/config"
	"github.com/gymcore/gymcore/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "gym-management",
		Short:         "Gyms, memberships and the user projection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(expireCmd())
	rootCmd.AddCommand(banCmd())

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
		Short: "Consume bus events and serve the HTTP API",
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

func expireCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "expire-memberships",
		Short: "Expire every active membership whose end date has passed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if at != "" {
				if now, err = time.Parse(time.RFC3339, at); err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
			}

			myApp := &app.App{}
			defer myApp.Close()
			if err := myApp.InitStorage(cfg); err != nil {
				return err
			}

			n, err := myApp.Memberships.ExpireDue(cmd.Context(), now)
			if err != nil {
				return err
			}
			logrus.WithField("expired", n).Info("Expiry run finished")
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "reference time in RFC3339, defaults to now")
	return cmd
}

func banCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ban-membership [membership-id]",
		Short: "Ban a membership; later payments for it are dead-lettered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			myApp := &app.App{}
			defer myApp.Close()
			if err := myApp.InitStorage(cfg); err != nil {
				return err
			}

			m, err := myApp.Memberships.Ban(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"membership_id": m.ID, "status": m.Status}).Info("Membership banned")
			return nil
		},
	}
}
