// Package ledger applies stock movements against the bill of materials.
// Every call runs on the caller's querier. Movements lock the rows they
// touch; capacity reads do not.
package ledger

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type PartRepository interface {
	LockPart(ctx context.Context, q pg.Querier, code string) (*model.Part, error)
	LockParts(ctx context.Context, q pg.Querier, codes []string) ([]model.Part, error)
	PartsByCodes(ctx context.Context, q pg.Querier, codes []string) ([]model.Part, error)
	BOM(ctx context.Context, q pg.Querier, assemblyCode string) ([]model.BomEntry, error)
	SetStock(ctx context.Context, q pg.Querier, code string, stock int64) error
}

type ProductRepository interface {
	ModelByCode(ctx context.Context, q pg.Querier, code string) (*model.ProductModel, error)
	List(ctx context.Context, q pg.Querier) ([]model.ProductModel, error)
}

type service struct {
	parts    PartRepository
	products ProductRepository
}

func NewLedgerService(parts PartRepository, products ProductRepository) *service {
	return &service{
		parts:    parts,
		products: products,
	}
}

// ReserveComponents takes qty units worth of every BOM component. If any
// component is short nothing is written and a *model.ShortageError listing
// every short component is returned.
func (s *service) ReserveComponents(ctx context.Context, q pg.Querier, modelCode string, qty int) ([]model.Part, error) {
	const op = "ledger.service.ReserveComponents"
	log := logger.With(
		logger.String("model", modelCode),
		logger.Int("quantity", qty),
	)

	if qty <= 0 {
		return nil, fmt.Errorf("%s: %w: quantity must be positive", op, model.ErrValidation)
	}

	bom, locked, err := s.lockBOM(ctx, q, modelCode)
	if err != nil {
		log.Error(ctx, "lock bom", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var shortages []model.Shortage
	for _, e := range bom {
		required := e.QuantityPerUnit * int64(qty)
		available := int64(0)
		if p, ok := locked[e.ComponentCode]; ok {
			available = p.CurrentStock
		}
		if available < required {
			shortages = append(shortages, model.Shortage{
				Code:      e.ComponentCode,
				Required:  required,
				Available: available,
			})
		}
	}

	if len(shortages) > 0 {
		log.Warn(ctx, "reservation refused", logger.Int("short_components", len(shortages)))
		return nil, fmt.Errorf("%s: %w", op, &model.ShortageError{
			ModelCode: modelCode,
			Quantity:  qty,
			Shortages: shortages,
		})
	}

	updated := make([]model.Part, 0, len(bom))
	for _, e := range bom {
		p := locked[e.ComponentCode]
		p.CurrentStock -= e.QuantityPerUnit * int64(qty)

		if err := s.parts.SetStock(ctx, q, p.Code, p.CurrentStock); err != nil {
			log.Error(ctx, "set stock", logger.String("part", p.Code), logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		updated = append(updated, p)
	}

	return updated, nil
}

// ReverseReservation gives components back. Components deleted since the
// reservation are skipped.
func (s *service) ReverseReservation(ctx context.Context, q pg.Querier, modelCode string, qty int) ([]model.Part, error) {
	const op = "ledger.service.ReverseReservation"
	log := logger.With(
		logger.String("model", modelCode),
		logger.Int("quantity", qty),
	)

	if qty <= 0 {
		return nil, fmt.Errorf("%s: %w: quantity must be positive", op, model.ErrValidation)
	}

	bom, locked, err := s.lockBOM(ctx, q, modelCode)
	if err != nil {
		log.Error(ctx, "lock bom", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated := make([]model.Part, 0, len(bom))
	for _, e := range bom {
		p, ok := locked[e.ComponentCode]
		if !ok {
			log.Warn(ctx, "component missing, skipped", logger.String("part", e.ComponentCode))
			continue
		}
		p.CurrentStock += e.QuantityPerUnit * int64(qty)

		if err := s.parts.SetStock(ctx, q, p.Code, p.CurrentStock); err != nil {
			log.Error(ctx, "set stock", logger.String("part", p.Code), logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		updated = append(updated, p)
	}

	return updated, nil
}

func (s *service) ProduceFinishedGood(ctx context.Context, q pg.Querier, modelCode string, qty int) (*model.Part, error) {
	const op = "ledger.service.ProduceFinishedGood"

	return s.moveFinishedGood(ctx, q, op, modelCode, qty, func(stock int64) int64 {
		return stock + int64(qty)
	})
}

// ReverseFinishedGood clamps at zero instead of failing on underflow.
func (s *service) ReverseFinishedGood(ctx context.Context, q pg.Querier, modelCode string, qty int) (*model.Part, error) {
	const op = "ledger.service.ReverseFinishedGood"

	return s.moveFinishedGood(ctx, q, op, modelCode, qty, func(stock int64) int64 {
		if stock < int64(qty) {
			logger.Warn(ctx, "finished good reversal clamped at zero",
				logger.String("model", modelCode),
				logger.Int64("stock", stock),
				logger.Int("quantity", qty),
			)
			return 0
		}
		return stock - int64(qty)
	})
}

func (s *service) moveFinishedGood(
	ctx context.Context,
	q pg.Querier,
	op, modelCode string,
	qty int,
	apply func(stock int64) int64,
) (*model.Part, error) {
	log := logger.With(
		logger.String("model", modelCode),
		logger.Int("quantity", qty),
	)

	if qty <= 0 {
		return nil, fmt.Errorf("%s: %w: quantity must be positive", op, model.ErrValidation)
	}

	assembly, err := s.assemblyFor(ctx, q, modelCode)
	if err != nil {
		log.Error(ctx, "resolve assembly", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	part, err := s.parts.LockPart(ctx, q, assembly)
	if err != nil {
		log.Error(ctx, "lock assembly", logger.String("part", assembly), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	part.CurrentStock = apply(part.CurrentStock)
	if err := s.parts.SetStock(ctx, q, part.Code, part.CurrentStock); err != nil {
		log.Error(ctx, "set stock", logger.String("part", part.Code), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return part, nil
}

func (s *service) assemblyFor(ctx context.Context, q pg.Querier, modelCode string) (string, error) {
	pm, err := s.products.ModelByCode(ctx, q, modelCode)
	if err != nil {
		return "", err
	}
	if pm.AssemblyCode == "" {
		return "", fmt.Errorf("%w: %s has no assembly", model.ErrModelNotFound, modelCode)
	}
	return pm.AssemblyCode, nil
}

func (s *service) lockBOM(ctx context.Context, q pg.Querier, modelCode string) ([]model.BomEntry, map[string]model.Part, error) {
	assembly, err := s.assemblyFor(ctx, q, modelCode)
	if err != nil {
		return nil, nil, err
	}

	bom, err := s.parts.BOM(ctx, q, assembly)
	if err != nil {
		return nil, nil, err
	}
	if len(bom) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", model.ErrBOMUnavailable, assembly)
	}

	codes := lo.Map(bom, func(e model.BomEntry, _ int) string { return e.ComponentCode })

	parts, err := s.parts.LockParts(ctx, q, codes)
	if err != nil {
		return nil, nil, err
	}

	return bom, lo.KeyBy(parts, func(p model.Part) string { return p.Code }), nil
}
