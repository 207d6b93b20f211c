package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

const (
	postgresPort           = "5432"
	postgresStartupTimeout = 1 * time.Minute
)

type Container struct {
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	dsn       string
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := runPostgres(ctx, cfg)
	if err != nil {
		return nil, err
	}

	success := false
	defer func() {
		if !success {
			if err = container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate postgres container", logger.ErrorF(err))
			}
		}
	}()

	dsn, err := container.ConnectionString(ctx, "sslmode="+cfg.SSLMode)
	if err != nil {
		return nil, err
	}

	pool, err := connectPool(ctx, dsn)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Info(ctx, "postgres container started", logger.String("image", cfg.ImageName))
	success = true

	return &Container{
		container: container,
		pool:      pool,
		dsn:       dsn,
		cfg:       cfg,
	}, nil
}

func (c *Container) Pool() *pgxpool.Pool { return c.pool }
func (c *Container) DSN() string         { return c.dsn }
func (c *Container) Config() *Config     { return c.cfg }

func (c *Container) Terminate(ctx context.Context) error {
	c.pool.Close()

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate postgres container", logger.ErrorF(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "postgres container terminated")

	return nil
}
