package middleware

import (
	"context"

	"github.com/AdrianoSaraivaa/sgp/platform/kafka"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type InfoLogger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
}

func Logging(log InfoLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			log.Info(ctx, "kafka msg received",
				logger.String("topic", msg.Topic),
				logger.Int32("partition", msg.Partition),
				logger.Int64("offset", msg.Offset),
			)
			return next(ctx, msg)
		}
	}
}
