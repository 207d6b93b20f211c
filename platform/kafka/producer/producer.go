package producer

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	logger       Logger
}

func NewProducer(syncProducer sarama.SyncProducer, topic string, log Logger) *producer {
	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		logger:       log,
	}
}

func (p *producer) Send(ctx context.Context, key, value []byte) error {
	partition, offset, err := p.syncProducer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to send message",
			logger.String("topic", p.topic),
			logger.ErrorF(err),
		)
		return fmt.Errorf("producer %s: %w", p.topic, err)
	}

	p.logger.Info(ctx, "message sent",
		logger.String("topic", p.topic),
		logger.Int32("partition", partition),
		logger.Int64("offset", offset),
		logger.String("key", string(key)),
	)

	return nil
}
