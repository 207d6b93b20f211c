package ledger

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

// Capacity reports how many units of modelCode the component stock covers,
// min(stock / per_unit) over the BOM. An assembly without a BOM has zero
// capacity rather than an error.
func (s *service) Capacity(ctx context.Context, q pg.Querier, modelCode string) (*model.Capacity, error) {
	const op = "ledger.service.Capacity"

	assembly, err := s.assemblyFor(ctx, q, modelCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.capacityOf(ctx, q, assembly)
	if err != nil {
		logger.Error(ctx, "compute capacity", logger.String("model", modelCode), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.ModelCode = modelCode

	return c, nil
}

// AssemblyCapacity is Capacity keyed by the assembly part code.
func (s *service) AssemblyCapacity(ctx context.Context, q pg.Querier, assemblyCode string) (int64, error) {
	const op = "ledger.service.AssemblyCapacity"

	c, err := s.capacityOf(ctx, q, assemblyCode)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return c.Units, nil
}

// Capacities computes every model's capacity and splits it evenly across
// the catalog. Shared components are not arbitrated.
func (s *service) Capacities(ctx context.Context, q pg.Querier) (*model.CapacityPlan, error) {
	const op = "ledger.service.Capacities"

	models, err := s.products.List(ctx, q)
	if err != nil {
		logger.Error(ctx, "list models", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	plan := &model.CapacityPlan{
		Models:   make([]model.Capacity, 0, len(models)),
		Balanced: make(map[string]int64, len(models)),
	}
	share := int64(max(1, len(models)))

	for _, pm := range models {
		c := &model.Capacity{ModelCode: pm.Code, AssemblyCode: pm.AssemblyCode, Bottlenecks: []model.Bottleneck{}}
		if pm.AssemblyCode != "" {
			if c, err = s.capacityOf(ctx, q, pm.AssemblyCode); err != nil {
				return nil, fmt.Errorf("%s: %s: %w", op, pm.Code, err)
			}
			c.ModelCode = pm.Code
		}
		plan.Models = append(plan.Models, *c)
		plan.Balanced[pm.Code] = c.Units / share
	}

	return plan, nil
}

// ValidatePlan checks a launch plan against the catalog before anything is
// reserved. It returns one issue per rejected line; stock is not checked.
func (s *service) ValidatePlan(ctx context.Context, q pg.Querier, lines []model.PlanLine) ([]model.PlanIssue, error) {
	const op = "ledger.service.ValidatePlan"

	issues := make([]model.PlanIssue, 0)
	reject := func(code, reason string) {
		issues = append(issues, model.PlanIssue{ModelCode: code, Reason: reason})
	}

	for _, l := range lines {
		code := strings.TrimSpace(l.ModelCode)
		if l.Quantity < 0 {
			reject(code, "negative quantity")
			continue
		}

		pm, err := s.products.ModelByCode(ctx, q, code)
		if errors.Is(err, model.ErrModelNotFound) {
			reject(code, "unknown model")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if pm.AssemblyCode == "" {
			reject(code, "model has no assembly")
			continue
		}

		bom, err := s.parts.BOM(ctx, q, pm.AssemblyCode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if len(bom) == 0 {
			reject(code, fmt.Sprintf("no bill of materials for %s", pm.AssemblyCode))
		}
	}

	return issues, nil
}

func (s *service) capacityOf(ctx context.Context, q pg.Querier, assembly string) (*model.Capacity, error) {
	bom, err := s.parts.BOM(ctx, q, assembly)
	if err != nil {
		return nil, err
	}

	c := &model.Capacity{AssemblyCode: assembly, Bottlenecks: make([]model.Bottleneck, 0, len(bom))}
	if len(bom) == 0 {
		return c, nil
	}

	codes := lo.Map(bom, func(e model.BomEntry, _ int) string { return e.ComponentCode })
	parts, err := s.parts.PartsByCodes(ctx, q, codes)
	if err != nil {
		return nil, err
	}
	byCode := lo.KeyBy(parts, func(p model.Part) string { return p.Code })

	for i, e := range bom {
		b := model.Bottleneck{Code: e.ComponentCode, PerUnit: e.QuantityPerUnit}
		if p, ok := byCode[e.ComponentCode]; ok {
			b.Description = p.Description
			b.Stock = p.CurrentStock
			if e.QuantityPerUnit > 0 {
				b.Units = max(0, p.CurrentStock/e.QuantityPerUnit)
			}
		} else {
			b.Missing = true
		}

		if i == 0 || b.Units < c.Units {
			c.Units = b.Units
		}
		c.Bottlenecks = append(c.Bottlenecks, b)
	}

	slices.SortStableFunc(c.Bottlenecks, func(a, b model.Bottleneck) int {
		if r := cmp.Compare(a.Units, b.Units); r != 0 {
			return r
		}
		return strings.Compare(a.Code, b.Code)
	})

	return c, nil
}
