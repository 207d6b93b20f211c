package consumer

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/AdrianoSaraivaa/sgp/platform/kafka"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type consumer struct {
	group       sarama.ConsumerGroup
	topics      []string
	logger      Logger
	middlewares []kafka.Middleware
}

func NewConsumer(group sarama.ConsumerGroup, topics []string, log Logger, middlewares ...kafka.Middleware) *consumer {
	return &consumer{
		group:       group,
		topics:      topics,
		logger:      log,
		middlewares: middlewares,
	}
}

// Consume blocks until ctx is done or the group is closed. A rebalance
// simply re-enters the loop.
func (c *consumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	gh := NewGroupHandler(handler, c.logger, c.middlewares...)

	for {
		if err := c.group.Consume(ctx, c.topics, gh); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}

			c.logger.Error(ctx, "kafka consume error", logger.ErrorF(err))
			return errors.Wrapf(err, "consume %v", c.topics)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.logger.Info(ctx, "kafka consumer group rebalancing", logger.Strings("topics", c.topics))
	}
}
