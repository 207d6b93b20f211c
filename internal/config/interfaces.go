package config

import (
	"time"

	"github.com/IBM/sarama"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Kafka interface {
	Brokers() []string
	TestResultsTopic() string
	ReorderTopic() string
	ConsumerGroupID() string
	TestResultsConsumerConfig() *sarama.Config
	ReorderProducerConfig() *sarama.Config
}

type Redis interface {
	Enabled() bool
	Addr() string
	Password() string
	DB() int
	RouteTTL() time.Duration
}

type Line interface {
	LayoutPath() string
	DebounceCooldown() time.Duration
	RejectPolicy() model.RejectPolicy
	SerialDir() string
	ReorderRecipients() []string
	BoardDoneWindow() time.Duration
}
