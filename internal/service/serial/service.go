// Package serial issues production serial numbers.
package serial

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type CounterStore interface {
	ReadCounter() (int64, error)
	WriteCounter(n int64) error
	AppendAudit(entries []model.SerialAudit) error
	ReadAudit(year int) ([]string, error)
}

type ProductRepository interface {
	ModelByCode(ctx context.Context, q pg.Querier, code string) (*model.ProductModel, error)
}

type service struct {
	mu          sync.Mutex
	db          pg.Querier
	store       CounterStore
	products    ProductRepository
	readTimeout time.Duration
	now         func() time.Time
}

func NewSerialService(db pg.Querier, store CounterStore, products ProductRepository, readTimeout time.Duration) *service {
	return &service{
		db:          db,
		store:       store,
		products:    products,
		readTimeout: readTimeout,
		now:         time.Now,
	}
}

// Format renders <year%10><month><model digit><counter, at least 3 digits>.
func Format(at time.Time, modelDigit string, counter int64) string {
	return fmt.Sprintf("%d%d%s%03d", at.Year()%10, int(at.Month()), modelDigit, counter)
}

// Generate issues qty serials for modelCode. The counter is global to the
// line and never resets; calls are serialized within the process.
func (s *service) Generate(ctx context.Context, modelCode string, qty int, user string) ([]string, error) {
	const op = "serial.service.Generate"
	log := logger.With(
		logger.String("model", modelCode),
		logger.Int("quantity", qty),
	)

	if qty <= 0 {
		return []string{}, nil
	}

	digit, err := s.modelDigit(ctx, modelCode)
	if err != nil {
		log.Error(ctx, "resolve model digit", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	counter, err := s.store.ReadCounter()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info(ctx, "serial counter not found, starting at zero")
		counter = 0
	case err != nil:
		log.Warn(ctx, "serial counter unreadable, restarting at zero", logger.ErrorF(err))
		counter = 0
	}

	now := s.now()
	serials := make([]string, 0, qty)
	audit := make([]model.SerialAudit, 0, qty)
	for range qty {
		counter++
		sn := Format(now, digit, counter)
		serials = append(serials, sn)
		audit = append(audit, model.SerialAudit{
			At:        now,
			ModelCode: modelCode,
			Serial:    sn,
			User:      user,
		})
	}

	if err := s.store.WriteCounter(counter); err != nil {
		log.Error(ctx, "write serial counter", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: write counter: %w", op, err)
	}

	if err := s.store.AppendAudit(audit); err != nil {
		log.Warn(ctx, "append serial audit", logger.ErrorF(err))
	}

	log.Info(ctx, "serials issued",
		logger.String("first", serials[0]),
		logger.String("last", serials[len(serials)-1]),
	)

	return serials, nil
}

// Audit returns the issue log of one year, oldest line first. A year with
// no serials yields an empty log.
func (s *service) Audit(ctx context.Context, year int) ([]string, error) {
	const op = "serial.service.Audit"

	if year < 2000 || year > 9999 {
		return nil, fmt.Errorf("%s: %w: year %d out of range", op, model.ErrValidation, year)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.store.ReadAudit(year)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return []string{}, nil
	case err != nil:
		logger.Error(ctx, "read serial audit", logger.Int("year", year), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lines, nil
}

func (s *service) modelDigit(ctx context.Context, modelCode string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	pm, err := s.products.ModelByCode(ctx, s.db, modelCode)
	if err != nil {
		return "", err
	}

	digit := strings.TrimSpace(pm.SerialCode)
	if digit == "" {
		return "", fmt.Errorf("%w: model %s has no serial code", model.ErrModelNotFound, modelCode)
	}
	return digit, nil
}
