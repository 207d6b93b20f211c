package middleware

import (
	"context"
	"fmt"

	"github.com/AdrianoSaraivaa/sgp/platform/kafka"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type ErrorLogger interface {
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

// Recovery turns a handler panic into an error so the message is not marked.
func Recovery(log ErrorLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error(ctx, "recovered from panic in message processing",
						logger.String("topic", msg.Topic),
						logger.Any("panic", r),
					)
					err = fmt.Errorf("panic in handler: %v", r)
				}
			}()
			return next(ctx, msg)
		}
	}
}
