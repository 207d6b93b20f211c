package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type redisEnv struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	RouteTTL time.Duration `env:"ROUTE_CACHE_TTL" envDefault:"5m"`
}

type redis struct {
	raw redisEnv
}

func NewRedisConfig() (*redis, error) {
	var raw redisEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &redis{raw: raw}, nil
}

// Enabled is false when no address is set; routes are then read straight
// from the database.
func (cfg *redis) Enabled() bool           { return cfg.raw.Addr != "" }
func (cfg *redis) Addr() string            { return cfg.raw.Addr }
func (cfg *redis) Password() string        { return cfg.raw.Password }
func (cfg *redis) DB() int                 { return cfg.raw.DB }
func (cfg *redis) RouteTTL() time.Duration { return cfg.raw.RouteTTL }
