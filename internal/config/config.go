package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Viper keys. Each is also read from the upper-cased environment variable.
const (
	KeyPostgresAddress  = "postgres_address"
	KeyPostgresPort     = "postgres_port"
	KeyPostgresDB       = "postgres_db"
	KeyPostgresUsername = "postgres_username"
	KeyPostgresPassword = "postgres_password"
	KeyHTTPPort         = "http_port"
	KeyLogLevel         = "log_level"
	KeyOperatorWorkers  = "operator_workers"
	KeySeedDefaults     = "seed_defaults"
	KeyMigrateOnStart   = "migrate_on_start"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	LogLevel        string
	OperatorWorkers int
	SeedDefaults    bool
	MigrateOnStart  bool
}

// ProcessEnvironmentVariables loads an optional .env file and reads the
// configuration from the global viper instance.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("config: no .env file loaded, using process environment")
	}
	return Load(viper.GetViper())
}

// Load reads the configuration from v, applying defaults that match the
// docker compose setup.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault(KeyPostgresAddress, "localhost")
	v.SetDefault(KeyPostgresPort, "5433")
	v.SetDefault(KeyPostgresDB, "postgres")
	v.SetDefault(KeyPostgresUsername, "postgres")
	v.SetDefault(KeyPostgresPassword, "testpassword")
	v.SetDefault(KeyHTTPPort, "9446")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyOperatorWorkers, 1)
	v.SetDefault(KeySeedDefaults, true)
	v.SetDefault(KeyMigrateOnStart, true)
	v.AutomaticEnv()

	env := Config{
		PostgresAddress:  v.GetString(KeyPostgresAddress),
		PostgresPort:     v.GetString(KeyPostgresPort),
		PostgresDB:       v.GetString(KeyPostgresDB),
		PostgresUsername: v.GetString(KeyPostgresUsername),
		PostgresPassword: v.GetString(KeyPostgresPassword),
		HTTPPort:         v.GetString(KeyHTTPPort),
		LogLevel:         v.GetString(KeyLogLevel),
		OperatorWorkers:  v.GetInt(KeyOperatorWorkers),
		SeedDefaults:     v.GetBool(KeySeedDefaults),
		MigrateOnStart:   v.GetBool(KeyMigrateOnStart),
	}

	if err := env.validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Config) validate() error {
	if c.PostgresAddress == "" || c.PostgresPort == "" || c.PostgresDB == "" {
		return errors.New("config: postgres address, port and database are required")
	}
	if c.HTTPPort == "" {
		return errors.New("config: http port is required")
	}
	if c.OperatorWorkers < 1 {
		return fmt.Errorf("config: operator workers must be at least 1, got %d", c.OperatorWorkers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// PostgresURL builds the lib/pq connection string.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresAddress, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
