package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers               []string `env:"KAFKA_BROKERS,required"`
	TestResultsTopicName  string   `env:"TEST_RESULTS_TOPIC_NAME" envDefault:"line.test-results"`
	ReorderTopicName      string   `env:"REORDER_TOPIC_NAME" envDefault:"line.reorder"`
	TestResultsConsumerID string   `env:"TEST_RESULTS_CONSUMER_GROUP_ID" envDefault:"sgp-line"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string        { return cfg.raw.Brokers }
func (cfg *kafka) TestResultsTopic() string { return cfg.raw.TestResultsTopicName }
func (cfg *kafka) ReorderTopic() string     { return cfg.raw.ReorderTopicName }
func (cfg *kafka) ConsumerGroupID() string  { return cfg.raw.TestResultsConsumerID }

func (cfg *kafka) TestResultsConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) ReorderProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
