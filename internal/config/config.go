package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-driven settings for the chat backend.
type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER" default:"user"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"password"`
	DBName     string `envconfig:"DB_NAME" default:"chatdb"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`

	// EventsChannel is the Redis pub/sub channel all server processes share
	// for live message and typing delivery.
	EventsChannel string `envconfig:"EVENTS_CHANNEL" default:"chat:events"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// PostgresDSN builds the GORM connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
