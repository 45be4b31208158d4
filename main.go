package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carson-networks/expense-tracker/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "expense-tracker",
	Short:         "Expense tracker REST server",
	Long:          "Serves the categories and transactions API backed by PostgreSQL.",
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("port", "", "HTTP port to listen on")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Int("workers", 0, "number of write operator workers")
	flags.Bool("seed", true, "seed default categories into an empty database on start")
	flags.Bool("migrate", true, "apply database migrations on start")

	_ = viper.BindPFlag(config.KeyHTTPPort, flags.Lookup("port"))
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyOperatorWorkers, flags.Lookup("workers"))
	_ = viper.BindPFlag(config.KeySeedDefaults, flags.Lookup("seed"))
	_ = viper.BindPFlag(config.KeyMigrateOnStart, flags.Lookup("migrate"))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		logrus.WithError(err).Error("expense-tracker exited with error")
		os.Exit(1)
	}
}
