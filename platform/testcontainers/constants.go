package testcontainers

// Environment keys the integration suites read their container settings from.
const (
	PostgresImageNameKey = "POSTGRES_IMAGE_NAME"
	PostgresDatabaseKey  = "POSTGRES_DB"
	PostgresUserKey      = "POSTGRES_USER"
	PostgresPasswordKey  = "POSTGRES_PASSWORD" //nolint:gosec

	RedisImageNameKey = "REDIS_IMAGE_NAME"
)
