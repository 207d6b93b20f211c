package postgres

import (
	"context"

	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	SSLMode       string
	Logger        Logger
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: "postgres:17-alpine",
		Database:  "line",
		Username:  "line",
		Password:  "line",
		SSLMode:   "disable",
		Logger:    logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
