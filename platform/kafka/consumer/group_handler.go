package consumer

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/AdrianoSaraivaa/sgp/platform/kafka"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

// groupHandler adapts a kafka.MessageHandler to sarama.ConsumerGroupHandler.
type groupHandler struct {
	handler kafka.MessageHandler
	logger  Logger
	retries int
	backoff time.Duration
}

const (
	defaultRetries = 3
	defaultBackoff = 500 * time.Millisecond
)

func NewGroupHandler(handler kafka.MessageHandler, log Logger, middlewares ...kafka.Middleware) *groupHandler {
	return &groupHandler{
		handler: kafka.Chain(handler, middlewares...),
		logger:  log,
		retries: defaultRetries,
		backoff: defaultBackoff,
	}
}

func (g *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (g *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim marks a message only after the handler accepted it. A message
// that still fails after the retries ends the claim unmarked, so the next
// session starts again from it.
func (g *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				g.logger.Info(ctx, "kafka message channel closed")
				return nil
			}

			msg := kafka.Message{
				Key:            message.Key,
				Value:          message.Value,
				Topic:          message.Topic,
				Partition:      message.Partition,
				Offset:         message.Offset,
				Timestamp:      message.Timestamp,
				BlockTimestamp: message.BlockTimestamp,
				Headers:        extractHeaders(message.Headers),
			}

			if err := g.handle(ctx, msg); err != nil {
				g.logger.Error(ctx, "kafka handler error",
					logger.String("topic", message.Topic),
					logger.Int64("offset", message.Offset),
					logger.ErrorF(err),
				)
				return errors.Wrapf(err, "handle %s/%d@%d", message.Topic, message.Partition, message.Offset)
			}

			session.MarkMessage(message, "")

		case <-ctx.Done():
			g.logger.Info(ctx, "kafka session context done")
			return nil
		}
	}
}

func (g *groupHandler) handle(ctx context.Context, msg kafka.Message) error {
	wait := g.backoff
	for attempt := 0; ; attempt++ {
		err := g.handler(ctx, msg)
		if err == nil || attempt >= g.retries {
			return err
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(wait):
		}
		wait *= 2
	}
}

func extractHeaders(headers []*sarama.RecordHeader) map[string][]byte {
	result := make(map[string][]byte, len(headers))
	for _, h := range headers {
		if h != nil && h.Key != nil {
			result[string(h.Key)] = h.Value
		}
	}

	return result
}
