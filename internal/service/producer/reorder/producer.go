package reoproducer

import (
	"context"
	"fmt"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka"
)

type Converter interface {
	ReorderNoticeToRecord(n model.ReorderNotice) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewReorderProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendReorder publishes the notice keyed by part code, so notices for one
// part keep their order.
func (s *service) SendReorder(ctx context.Context, notice model.ReorderNotice) error {
	payload, err := s.conv.ReorderNoticeToRecord(notice)
	if err != nil {
		return fmt.Errorf("converter reorder_notice_to_record error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(notice.PartCode), payload); err != nil {
		return fmt.Errorf("producer to reorder topic error: %w", err)
	}

	return nil
}
