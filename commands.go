package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/expense-tracker/api"
	"github.com/carson-networks/expense-tracker/internal/config"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/operator"
	"github.com/carson-networks/expense-tracker/internal/service"
	"github.com/carson-networks/expense-tracker/internal/storage"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE:  runServe,
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, envConfig, err := bootstrap()
			if err != nil {
				return err
			}
			return storage.RunMigrations(envConfig.PostgresURL())
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default categories into an empty database and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, envConfig, err := bootstrap()
			if err != nil {
				return err
			}

			dbStorage, err := storage.NewStorage(envConfig)
			if err != nil {
				return err
			}
			defer dbStorage.Close()

			delegator := operator.NewOperatorDelegator(dbStorage, 1)
			delegator.Start()
			defer delegator.Stop()

			svc := service.NewService(dbStorage, delegator)
			inserted, err := svc.Category.SeedDefaults(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed defaults: %w", err)
			}
			logger.WithField("inserted", inserted).Info("Seed.Complete")
			return nil
		},
	}
}

func bootstrap() (*logrus.Logger, *config.Config, error) {
	logger := logging.SetupLogging()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}
	if err = logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		return nil, nil, err
	}
	return logger, envConfig, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger, envConfig, err := bootstrap()
	if err != nil {
		return err
	}
	logger.Info("expense-tracker starting")

	if envConfig.MigrateOnStart {
		if err = storage.RunMigrations(envConfig.PostgresURL()); err != nil {
			return err
		}
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	if envConfig.SeedDefaults {
		inserted, err := svc.Category.SeedDefaults(ctx)
		if err != nil {
			return fmt.Errorf("seed defaults: %w", err)
		}
		logger.WithField("inserted", inserted).Info("Seed.Complete")
	}

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.HTTPPort,
		Service: svc,
		Storage: dbStorage,
	}
	return httpRest.Serve(ctx)
}
