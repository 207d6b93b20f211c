package resconsumer

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

// HeaderSource lets a gateway that publishes for several testers name the
// source outside the payload.
const HeaderSource = "source"

type Converter interface {
	TestResultToModel(data []byte) (model.ExternalResult, error)
}

type ResultApplier interface {
	ApplyResult(ctx context.Context, res model.ExternalResult) (*model.ResultOutcome, error)
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	svc      ResultApplier
}

func NewResultConsumer(
	consumer kafka.Consumer,
	conv Converter,
	svc ResultApplier,
) *service {
	return &service{consumer: consumer, conv: conv, svc: svc}
}

func (s *service) RunTestResultConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting test result consumer")

	if err := s.consumer.Consume(ctx, s.testResultHandler); err != nil {
		logger.Error(ctx, "Consume from test results topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

// testResultHandler acknowledges records that can never succeed, such as an
// unknown serial or a closed order, so they are not redelivered.
func (s *service) testResultHandler(ctx context.Context, msg kafka.Message) error {
	payload, err := s.conv.TestResultToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode TestResultRecord", logger.ErrorF(err))
		return nil
	}
	if payload.Source == "" {
		payload.Source = model.ResultSource(msg.Header(HeaderSource))
	}

	_, err = s.svc.ApplyResult(ctx, payload)
	switch {
	case err == nil:
		return nil
	case isPermanent(err):
		logger.Warn(ctx, "test result dropped",
			logger.String("serial", payload.Serial),
			logger.ErrorF(err),
		)
		return nil
	default:
		return fmt.Errorf("apply test result: %w", err)
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, model.ErrValidation) ||
		errors.Is(err, model.ErrOrderNotFound) ||
		errors.Is(err, model.ErrOrderClosed)
}
