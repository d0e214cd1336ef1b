package config

import (
	"time"

	"github.com/spf13/viper"
)

// InsecureDefaultJWTSecret is the publicly known fallback signing secret used
// when JWT_SECRET is not set. Kept as a named constant so deployments can be
// audited for it; main logs a warning whenever it is in effect.
const InsecureDefaultJWTSecret = "super_secret_key_123456789_must_be_long_enough"

// Config holds all process configuration. It is constructed once at startup
// and passed by reference to the services that need it.
type Config struct {
	AppPort      string
	DBDriver     string // "sqlite" or "postgres"
	DatabaseDSN  string
	JWTSecret    string
	JWTClockSkew time.Duration
	UploadDir    string
	RabbitMQURL  string // empty disables catalog event publishing
	AllowOrigins string
}

// Load reads configuration from environment variables via Viper, applying
// defaults that mirror the development setup.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "shoeshop.db")
	viper.SetDefault("JWT_SECRET", InsecureDefaultJWTSecret)
	viper.SetDefault("JWT_CLOCK_SKEW", "0s")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("ALLOW_ORIGINS", "*")
	viper.AutomaticEnv()

	return &Config{
		AppPort:      viper.GetString("APP_PORT"),
		DBDriver:     viper.GetString("DB_DRIVER"),
		DatabaseDSN:  viper.GetString("DATABASE_DSN"),
		JWTSecret:    viper.GetString("JWT_SECRET"),
		JWTClockSkew: viper.GetDuration("JWT_CLOCK_SKEW"),
		UploadDir:    viper.GetString("UPLOAD_DIR"),
		RabbitMQURL:  viper.GetString("RABBITMQ_URL"),
		AllowOrigins: viper.GetString("ALLOW_ORIGINS"),
	}
}

// UsingDefaultJWTSecret reports whether the hazardous fallback secret is in use.
func (c *Config) UsingDefaultJWTSecret() bool {
	return c.JWTSecret == InsecureDefaultJWTSecret
}
