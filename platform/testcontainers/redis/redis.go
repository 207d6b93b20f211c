package redis

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

const (
	redisPort           = "6379"
	redisStartupTimeout = 30 * time.Second
	defaultImage        = "redis:7-alpine"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Container struct {
	container testcontainers.Container
	client    *goredis.Client
	addr      string
	logger    Logger
}

// NewContainer starts a throwaway redis. An empty image falls back to redis:7-alpine.
func NewContainer(ctx context.Context, image string, log Logger) (*Container, error) {
	if image == "" {
		image = defaultImage
	}
	if log == nil {
		log = logger.NoopLogger{}
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{redisPort + "/tcp"},
			WaitingFor:   wait.ForListeningPort(redisPort + "/tcp").WithStartupTimeout(redisStartupTimeout),
		},
		Started: true,
	})
	if err != nil {
		return nil, errors.Errorf("failed to start redis container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Errorf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, redisPort+"/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Errorf("failed to get mapped port: %v", err)
	}

	addr := net.JoinHostPort(host, port.Port())
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Errorf("failed to ping redis: %v", err)
	}

	log.Info(ctx, "redis container started", logger.String("addr", addr))

	return &Container{container: container, client: client, addr: addr, logger: log}, nil
}

func (c *Container) Client() *goredis.Client { return c.client }
func (c *Container) Addr() string            { return c.addr }

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Close(); err != nil {
		c.logger.Error(ctx, "failed to close redis client", logger.ErrorF(err))
	}
	return c.container.Terminate(ctx)
}
