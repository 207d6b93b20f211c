// Package rop decides when a part crossing its reorder point must be
// reported. The alert state only deduplicates notifications.
package rop

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AdrianoSaraivaa/sgp/internal/metrics"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type RopRepository interface {
	LockState(ctx context.Context, q pg.Querier, partCode string) (*model.RopAlertState, error)
	Save(ctx context.Context, q pg.Querier, st model.RopAlertState) error
}

type PartRepository interface {
	ListByKind(ctx context.Context, q pg.Querier, kind model.PartKind) ([]model.Part, error)
}

type CapacityReader interface {
	AssemblyCapacity(ctx context.Context, q pg.Querier, assemblyCode string) (int64, error)
}

type ReorderSender interface {
	SendReorder(ctx context.Context, notice model.ReorderNotice) error
}

type service struct {
	db          pg.Querier
	states      RopRepository
	parts       PartRepository
	capacity    CapacityReader
	sender      ReorderSender
	recipients  []string
	readTimeout time.Duration
	now         func() time.Time
}

func NewRopService(
	db pg.Querier,
	states RopRepository,
	parts PartRepository,
	capacity CapacityReader,
	sender ReorderSender,
	recipients []string,
	readTimeout time.Duration,
) *service {
	return &service{
		db:          db,
		states:      states,
		parts:       parts,
		capacity:    capacity,
		sender:      sender,
		recipients:  recipients,
		readTimeout: readTimeout,
		now:         time.Now,
	}
}

// Evaluate flags a part at or below its reorder point and suggests filling
// it back up to the maximum.
func Evaluate(p model.Part) model.RopEvaluation {
	if p.CurrentStock > p.ReorderPoint {
		return model.RopEvaluation{}
	}
	return model.RopEvaluation{
		InAlert:      true,
		SuggestedQty: max(0, p.MaximumStock-p.CurrentStock),
	}
}

func (s *service) Evaluate(p model.Part) model.RopEvaluation { return Evaluate(p) }

// HandleChange runs after every stock movement of part, on the same
// transaction. Entering the alert (or force) yields a notice the caller
// delivers through Notify once the transaction has committed.
func (s *service) HandleChange(ctx context.Context, q pg.Querier, part model.Part, force bool) (*model.ReorderNotice, error) {
	const op = "rop.service.HandleChange"
	log := logger.With(
		logger.String("part", part.Code),
		logger.Int64("stock", part.CurrentStock),
		logger.Int64("reorder_point", part.ReorderPoint),
	)

	ev := Evaluate(part)

	st, err := s.states.LockState(ctx, q, part.Code)
	if err != nil {
		log.Error(ctx, "lock alert state", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entering := ev.InAlert && !st.InAlert
	leaving := !ev.InAlert && st.InAlert

	var notice *model.ReorderNotice
	switch {
	case entering || force:
		now := s.now()
		notice = s.buildNotice(part, ev, now)
		st.InAlert = true
		st.LastSentAt = &now
		log.Info(ctx, "reorder point reached", logger.Int64("suggested", ev.SuggestedQty), logger.Bool("forced", force))
	case leaving:
		st.InAlert = false
		log.Info(ctx, "reorder alert cleared")
	default:
		return nil, nil
	}

	if err := s.states.Save(ctx, q, *st); err != nil {
		log.Error(ctx, "save alert state", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notice, nil
}

// Notify delivers notices best effort; failures are only logged.
func (s *service) Notify(ctx context.Context, notices []model.ReorderNotice) {
	for _, n := range notices {
		if err := s.sender.SendReorder(ctx, n); err != nil {
			metrics.ReorderNoticesTotal.WithLabelValues("failed").Inc()
			logger.Error(ctx, "reorder notification failed",
				logger.String("part", n.PartCode),
				logger.ErrorF(err),
			)
			continue
		}
		metrics.ReorderNoticesTotal.WithLabelValues("sent").Inc()
	}
}

// ListNeeds returns assemblies that need building, largest gap first.
// CapacityZero marks the ones the component stock cannot start; a failed
// capacity read leaves it unset.
func (s *service) ListNeeds(ctx context.Context) ([]model.Need, error) {
	const op = "rop.service.ListNeeds"

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	parts, err := s.parts.ListByKind(ctx, s.db, model.PartKindAssembly)
	if err != nil {
		logger.Error(ctx, "list assemblies", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	needs := make([]model.Need, 0)
	for _, p := range parts {
		ev := Evaluate(p)
		if ev.SuggestedQty <= 0 {
			continue
		}
		units, err := s.capacity.AssemblyCapacity(ctx, s.db, p.Code)
		if err != nil {
			logger.Warn(ctx, "capacity unavailable", logger.String("part", p.Code), logger.ErrorF(err))
		}
		needs = append(needs, model.Need{
			Code:         p.Code,
			Description:  p.Description,
			CurrentStock: p.CurrentStock,
			ReorderPoint: p.ReorderPoint,
			MaximumStock: p.MaximumStock,
			SuggestedQty: ev.SuggestedQty,
			CapacityZero: err == nil && units == 0,
		})
	}

	slices.SortStableFunc(needs, func(a, b model.Need) int {
		if c := cmp.Compare(b.SuggestedQty, a.SuggestedQty); c != 0 {
			return c
		}
		return strings.Compare(a.Code, b.Code)
	})

	return needs, nil
}

func (s *service) buildNotice(p model.Part, ev model.RopEvaluation, now time.Time) *model.ReorderNotice {
	name := p.Description
	if name == "" {
		name = p.Code
	}

	subject := fmt.Sprintf("[Production] Reorder point reached: %s", name)

	var b strings.Builder
	fmt.Fprintf(&b, "Stock of %s (%s) reached its reorder point.\n\n", name, p.Code)
	fmt.Fprintf(&b, "Current stock: %d\n", p.CurrentStock)
	fmt.Fprintf(&b, "Reorder point: %d\n", p.ReorderPoint)
	fmt.Fprintf(&b, "Maximum stock: %d\n\n", p.MaximumStock)
	fmt.Fprintf(&b, "Requested action: build %d unit(s) (maximum minus current stock).\n", ev.SuggestedQty)

	return &model.ReorderNotice{
		EventID:      uuid.New(),
		PartCode:     p.Code,
		Description:  p.Description,
		CurrentStock: p.CurrentStock,
		ReorderPoint: p.ReorderPoint,
		MaximumStock: p.MaximumStock,
		SuggestedQty: ev.SuggestedQty,
		To:           s.recipients,
		Subject:      subject,
		Body:         b.String(),
		CreatedAt:    now,
	}
}
