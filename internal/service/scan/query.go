package scan

import (
	"context"
	"fmt"
	"strings"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

// Order returns the work order for serial without locking it.
func (s *service) Order(ctx context.Context, serial string) (*model.WorkOrder, error) {
	const op = "scan.service.Order"

	ctx, cancel := context.WithTimeout(ctx, s.opts.ReadTimeout)
	defer cancel()

	ord, err := s.orders.OrderBySerial(ctx, s.tx.Pool(), strings.ToUpper(strings.TrimSpace(serial)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ord, nil
}

// Visits returns the full visit history of serial, oldest first.
func (s *service) Visits(ctx context.Context, serial string) ([]model.StationVisit, error) {
	const op = "scan.service.Visits"

	ord, err := s.Order(ctx, serial)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.ReadTimeout)
	defer cancel()

	visits, err := s.visits.ListByOrder(ctx, s.tx.Pool(), ord.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return visits, nil
}

// Search pages through work orders for the traceability screen.
func (s *service) Search(ctx context.Context, f model.OrderFilter) (*model.OrderPage, error) {
	const op = "scan.service.Search"

	f.Serial = strings.TrimSpace(f.Serial)
	f.ModelCode = strings.TrimSpace(f.ModelCode)
	f.Normalize()
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown status %q", op, model.ErrValidation, f.Status)
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, fmt.Errorf("%s: %w: empty date range", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.ReadTimeout)
	defer cancel()

	items, total, err := s.orders.Search(ctx, s.tx.Pool(), f)
	if err != nil {
		logger.Error(ctx, "search orders", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.OrderPage{
		Page:     f.Page,
		PageSize: f.PageSize,
		Total:    total,
		Items:    items,
	}, nil
}

// Summary condenses the visit history of serial. LastActivity is the
// visit that started last.
func (s *service) Summary(ctx context.Context, serial string) (*model.TraceSummary, error) {
	const op = "scan.service.Summary"

	ord, err := s.Order(ctx, serial)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.ReadTimeout)
	defer cancel()

	visits, err := s.visits.ListByOrder(ctx, s.tx.Pool(), ord.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sum := &model.TraceSummary{Order: ord, Visits: len(visits)}
	for i := range visits {
		v := &visits[i]
		if v.FinishedAt != nil {
			sum.ClosedVisits++
		}
		if v.ReworkFlag {
			sum.ReworkVisits++
		}
		if sum.LastActivity == nil || !v.StartedAt.Before(sum.LastActivity.StartedAt) {
			sum.LastActivity = v
		}
	}

	return sum, nil
}
