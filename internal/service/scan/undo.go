package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AdrianoSaraivaa/sgp/internal/metrics"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

// Undo reverts the last step of an order. A completed unit gives back its
// finished good before the visit is touched.
func (s *service) Undo(ctx context.Context, req model.UndoRequest) (*model.UndoResult, error) {
	const op = "scan.service.Undo"

	serial := strings.ToUpper(strings.TrimSpace(req.Serial))
	if serial == "" {
		return nil, fmt.Errorf("%s: %w: serial is required", op, model.ErrValidation)
	}

	log := logger.With(
		logger.String("serial", serial),
		logger.String("operator", req.Operator),
	)

	var (
		res     *model.UndoResult
		notices []model.ReorderNotice
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx pg.Querier) error {
		ord, err := s.lockOrder(ctx, tx, serial)
		if err != nil {
			return err
		}
		if ord.Status == model.OrderStatusCancelled {
			return fmt.Errorf("%w: order %s is cancelled", model.ErrOrderClosed, ord.Serial)
		}

		res = &model.UndoResult{Order: ord}

		if ord.ReachedFinal() {
			fg, err := s.ledger.ReverseFinishedGood(ctx, tx, ord.ModelCode, 1)
			if err != nil {
				return fmt.Errorf("reverse finished good: %w", err)
			}
			notice, err := s.rop.HandleChange(ctx, tx, *fg, false)
			if err != nil {
				return fmt.Errorf("reorder point: %w", err)
			}
			if notice != nil {
				notices = append(notices, *notice)
			}
			res.FinishedGoodReversed = true
		}

		route := s.routes.RouteForModel(ctx, ord.ModelCode)

		open, err := s.visits.ListOpen(ctx, tx, ord.ID)
		if err != nil {
			return fmt.Errorf("list open visits: %w", err)
		}

		if len(open) > 0 {
			return s.undoOpen(ctx, tx, ord, route, open[0], res)
		}
		return s.undoClosed(ctx, tx, ord, res)
	})
	if err != nil {
		log.Error(ctx, "undo failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(notices) > 0 {
		s.rop.Notify(ctx, notices)
	}

	metrics.UndoTotal.WithLabelValues(string(res.Outcome)).Inc()
	log.Info(ctx, "undo applied",
		logger.String("outcome", string(res.Outcome)),
		logger.String("station", res.Order.CurrentStation),
	)

	return res, nil
}

// undoOpen drops the open visit and steps the order back one station.
func (s *service) undoOpen(
	ctx context.Context,
	tx pg.Querier,
	ord *model.WorkOrder,
	route model.Route,
	visit model.StationVisit,
	res *model.UndoResult,
) error {
	if err := s.visits.Delete(ctx, tx, visit.ID); err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}

	prev := route.Prev(visit.StationID)
	status := model.OrderStatusInProgress
	if prev == model.StationStock {
		status = model.OrderStatusQueued
	}

	res.Outcome = model.UndoOpenVisitRemoved
	res.Visit = &visit
	return s.rewind(ctx, tx, ord, prev, status)
}

// undoClosed reopens the most recently closed visit, or sends the unit back
// to stock when it has none.
func (s *service) undoClosed(ctx context.Context, tx pg.Querier, ord *model.WorkOrder, res *model.UndoResult) error {
	last, err := s.visits.LastClosed(ctx, tx, ord.ID, "")
	if errors.Is(err, model.ErrVisitNotFound) {
		res.Outcome = model.UndoBackToStock
		return s.rewind(ctx, tx, ord, model.StationStock, model.OrderStatusQueued)
	}
	if err != nil {
		return fmt.Errorf("last closed visit: %w", err)
	}

	if err := s.visits.Reopen(ctx, tx, last.ID); err != nil {
		return fmt.Errorf("reopen visit: %w", err)
	}
	last.FinishedAt = nil
	last.Result = model.ResultNone
	last.ReworkFlag = false

	res.Outcome = model.UndoVisitReopened
	res.Visit = last
	return s.rewind(ctx, tx, ord, last.StationID, model.OrderStatusInProgress)
}

func (s *service) rewind(ctx context.Context, tx pg.Querier, ord *model.WorkOrder, station string, status model.OrderStatus) error {
	if err := s.orders.Update(ctx, tx, ord.ID, model.OrderUpdate{
		Status:          &status,
		CurrentStation:  &station,
		ClearFinishedAt: true,
	}); err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	ord.Status = status
	ord.CurrentStation = station
	ord.FinishedAt = nil
	return nil
}
