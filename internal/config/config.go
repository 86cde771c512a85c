package config

import (
	"errors"
	"os"
)

// Config собирает все настройки сервера из окружения при старте.
// Handlers never read the environment themselves.
type Config struct {
	DatabaseURL string
	Port        string
	GinMode     string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
		GinMode:     os.Getenv("GIN_MODE"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
