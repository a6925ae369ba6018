package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Persistence selects whether registrations are written to the database.
type Persistence string

const (
	PersistenceEnabled  Persistence = "enabled"
	PersistenceDisabled Persistence = "disabled"
)

// Config holds application configuration loaded from environment variables or
// config files. It is built once at startup and passed to each component;
// nothing mutates it afterwards.
type Config struct {
	AppEnv          string        `mapstructure:"APP_ENV" validate:"required,oneof=development staging production test"`
	Host            string        `mapstructure:"HOST"`
	Port            string        `mapstructure:"PORT" validate:"required,numeric"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	Persistence       Persistence   `mapstructure:"PERSISTENCE" validate:"required,oneof=enabled disabled"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL" validate:"required_if=Persistence enabled"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS" validate:"gte=1,lte=1000"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS" validate:"gte=0,lte=1000"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`

	AdminSecret string `mapstructure:"ADMIN_SECRET"`

	StaticDir      string `mapstructure:"STATIC_DIR" validate:"required"`
	MetricsEnabled bool   `mapstructure:"METRICS_ENABLED"`
}

// Addr is the listen address built from HOST and PORT.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// PersistenceEnabled reports whether registrations are stored.
func (c *Config) PersistenceEnabled() bool {
	return c.Persistence == PersistenceEnabled
}

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	keys = []string{
		"APP_ENV",
		"HOST",
		"PORT",
		"SHUTDOWN_TIMEOUT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"PERSISTENCE",
		"DATABASE_URL",
		"DB_MAX_OPEN_CONNS",
		"DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME",
		"ADMIN_SECRET",
		"STATIC_DIR",
		"METRICS_ENABLED",
	}
)

// Load builds configuration using Viper. It loads from .env if present,
// applies defaults, binds env vars, and validates the result.
func Load() (*Config, error) {
	// Load .env if present (non-fatal)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HOST", "")
	v.SetDefault("PORT", "3000")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PERSISTENCE", string(PersistenceEnabled))
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("METRICS_ENABLED", true)

	// Optional config file
	_ = v.ReadInConfig()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	// Parse duration types that may come as string
	for key, dst := range map[string]*time.Duration{
		"SHUTDOWN_TIMEOUT":     &c.ShutdownTimeout,
		"DB_CONN_MAX_LIFETIME": &c.DBConnMaxLifetime,
	} {
		if s := v.GetString(key); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = d
		}
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &c, nil
}

// MustLoad loads configuration or exits the process on failure.
func MustLoad() *Config {
	c, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return c
}
