package scan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AdrianoSaraivaa/sgp/internal/metrics"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

// ApplyResult records a verdict from the safety tester or the checklist
// terminal. The open visit at the source's station is force-closed and the
// unit moves on as if an operator had finished it. A rejection never
// completes the route.
func (s *service) ApplyResult(ctx context.Context, in model.ExternalResult) (*model.ResultOutcome, error) {
	const op = "scan.service.ApplyResult"

	in.Serial = strings.ToUpper(strings.TrimSpace(in.Serial))
	in.Status = model.ExternalStatus(strings.ToLower(strings.TrimSpace(string(in.Status))))

	if in.Serial == "" {
		return nil, fmt.Errorf("%s: %w: serial is required", op, model.ErrValidation)
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown status %q", op, model.ErrValidation, in.Status)
	}
	station, ok := s.layout.StationFor(in.Source)
	if !ok || station == "" {
		return nil, fmt.Errorf("%s: %w: unknown source %q", op, model.ErrValidation, in.Source)
	}

	log := logger.With(
		logger.String("serial", in.Serial),
		logger.String("source", string(in.Source)),
		logger.String("status", string(in.Status)),
	)

	var (
		out     *model.ResultOutcome
		notices []model.ReorderNotice
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx pg.Querier) error {
		ord, err := s.lockOrder(ctx, tx, in.Serial)
		if err != nil {
			return err
		}
		if ord.Closed() {
			return fmt.Errorf("%w: order %s is %s", model.ErrOrderClosed, ord.Serial, ord.Status)
		}

		out = &model.ResultOutcome{Order: ord, Station: station}

		now := s.now()
		reportedAt := now
		if in.ReportedAt != nil {
			reportedAt = *in.ReportedAt
		}
		if err := s.stampExternal(ctx, tx, ord, in.Status, reportedAt); err != nil {
			return err
		}

		result, rework := in.Status.VisitResult()

		open, err := s.visits.ListOpen(ctx, tx, ord.ID)
		if err != nil {
			return fmt.Errorf("list open visits: %w", err)
		}
		visit := openAt(open, station)
		if visit == nil {
			// Verdicts for a unit already past the station only update the stamps.
			if ord.CurrentStation != station {
				return nil
			}
			// The unit sits at the station without a visit. Record one so the
			// route and the debounce lock see the station as done.
			if visit, err = s.recordVisit(ctx, tx, ord.ID, station, in.Operator, now); err != nil {
				return err
			}
		}
		if err := s.closeVisit(ctx, tx, visit, model.VisitClose{
			FinishedAt: now,
			Result:     result,
			ReworkFlag: rework,
			Notes:      in.Notes,
		}); err != nil {
			return err
		}
		out.Visit = visit
		out.VisitClosed = true

		rejected := in.Status == model.ExternalRejected
		if rejected && s.opts.RejectPolicy == model.RejectHold {
			out.Held = true
			return nil
		}

		route := s.routes.RouteForModel(ctx, ord.ModelCode)
		next, err := s.nextStation(ctx, tx, ord.ID, route, station)
		if err != nil {
			return err
		}

		if next != model.StationFinal {
			out.Advanced = true
			return s.moveTo(ctx, tx, ord, next, model.OrderStatusInProgress)
		}
		if rejected {
			out.Held = true
			return nil
		}

		fg, notice, err := s.complete(ctx, tx, ord, now)
		if err != nil {
			return err
		}
		if notice != nil {
			notices = append(notices, *notice)
		}
		out.Advanced = true
		out.FinishedGood = fg
		return nil
	})
	if err != nil {
		log.Error(ctx, "apply result failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(notices) > 0 {
		s.rop.Notify(ctx, notices)
	}

	metrics.ExternalResultsTotal.WithLabelValues(string(in.Source), string(in.Status)).Inc()
	log.Info(ctx, "external result applied",
		logger.Bool("visit_closed", out.VisitClosed),
		logger.Bool("advanced", out.Advanced),
		logger.Bool("held", out.Held),
		logger.String("current_station", out.Order.CurrentStation),
	)

	return out, nil
}

func (s *service) recordVisit(ctx context.Context, tx pg.Querier, orderID int64, station, operator string, now time.Time) (*model.StationVisit, error) {
	if _, err := s.visits.CloseAllOpen(ctx, tx, orderID, 0, now); err != nil {
		return nil, fmt.Errorf("close open visits: %w", err)
	}

	visit := &model.StationVisit{
		OrderID:   orderID,
		StationID: station,
		StartedAt: now,
		Operator:  operator,
	}
	id, err := s.visits.Create(ctx, tx, visit)
	if err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}
	visit.ID = id
	return visit, nil
}

func (s *service) stampExternal(ctx context.Context, tx pg.Querier, ord *model.WorkOrder, status model.ExternalStatus, at time.Time) error {
	flag := status == model.ExternalRejected
	st := string(status)

	if err := s.orders.Update(ctx, tx, ord.ID, model.OrderUpdate{
		ExternalTestFlag:   &flag,
		ExternalTestStatus: &st,
		ExternalTestLastAt: &at,
	}); err != nil {
		return fmt.Errorf("update external test: %w", err)
	}

	ord.ExternalTestFlag = flag
	ord.ExternalTestStatus = st
	ord.ExternalTestLastAt = &at
	return nil
}
