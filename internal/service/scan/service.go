// Package scan moves work orders along their route in response to badge
// reader scans, manual undo and verdicts pushed by external test benches.
package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AdrianoSaraivaa/sgp/internal/layout"
	"github.com/AdrianoSaraivaa/sgp/internal/metrics"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type TxManager interface {
	WithTx(ctx context.Context, fn pg.TxFunc) error
	Pool() pg.Querier
}

type OrderRepository interface {
	OrderBySerial(ctx context.Context, q pg.Querier, serial string) (*model.WorkOrder, error)
	OrderBySerialForUpdate(ctx context.Context, q pg.Querier, serial string) (*model.WorkOrder, error)
	Update(ctx context.Context, q pg.Querier, id int64, upd model.OrderUpdate) error
	Search(ctx context.Context, q pg.Querier, f model.OrderFilter) ([]model.WorkOrder, int64, error)
}

type VisitRepository interface {
	Create(ctx context.Context, q pg.Querier, v *model.StationVisit) (int64, error)
	ListOpen(ctx context.Context, q pg.Querier, orderID int64) ([]model.StationVisit, error)
	ListByOrder(ctx context.Context, q pg.Querier, orderID int64) ([]model.StationVisit, error)
	LastClosed(ctx context.Context, q pg.Querier, orderID int64, station string) (*model.StationVisit, error)
	FinishedStations(ctx context.Context, q pg.Querier, orderID int64) (map[string]bool, error)
	Close(ctx context.Context, q pg.Querier, id int64, c model.VisitClose) error
	CloseAllOpen(ctx context.Context, q pg.Querier, orderID, keepID int64, at time.Time) (int64, error)
	SetOperator(ctx context.Context, q pg.Querier, id int64, operator string) error
	Reopen(ctx context.Context, q pg.Querier, id int64) error
	Delete(ctx context.Context, q pg.Querier, id int64) error
}

type RouteResolver interface {
	RouteForModel(ctx context.Context, modelCode string) model.Route
}

type Ledger interface {
	ProduceFinishedGood(ctx context.Context, q pg.Querier, modelCode string, qty int) (*model.Part, error)
	ReverseFinishedGood(ctx context.Context, q pg.Querier, modelCode string, qty int) (*model.Part, error)
}

type RopTracker interface {
	HandleChange(ctx context.Context, q pg.Querier, part model.Part, force bool) (*model.ReorderNotice, error)
	Notify(ctx context.Context, notices []model.ReorderNotice)
}

const defaultReadTimeout = 3 * time.Second

type Options struct {
	// Cooldown is how long a passed safety test blocks a new start there.
	Cooldown     time.Duration
	RejectPolicy model.RejectPolicy
	ReadTimeout  time.Duration
}

type service struct {
	tx     TxManager
	orders OrderRepository
	visits VisitRepository
	routes RouteResolver
	ledger Ledger
	rop    RopTracker
	layout *layout.Layout
	opts   Options
	now    func() time.Time
}

func NewScanService(
	tx TxManager,
	orders OrderRepository,
	visits VisitRepository,
	routes RouteResolver,
	ledger Ledger,
	rop RopTracker,
	l *layout.Layout,
	opts Options,
) *service {
	if opts.RejectPolicy == "" {
		opts.RejectPolicy = model.RejectAdvance
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = defaultReadTimeout
	}
	return &service{
		tx:     tx,
		orders: orders,
		visits: visits,
		routes: routes,
		ledger: ledger,
		rop:    rop,
		layout: l,
		opts:   opts,
		now:    time.Now,
	}
}

// Scan applies one reader scan or explicit start/finish request.
func (s *service) Scan(ctx context.Context, req model.ScanRequest) (*model.ScanResult, error) {
	const op = "scan.service.Scan"

	req, err := normalizeRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log := logger.With(
		logger.String("serial", req.Serial),
		logger.String("station", req.Station),
		logger.String("action", string(req.Action)),
	)

	var (
		res     *model.ScanResult
		notices []model.ReorderNotice
	)
	err = s.tx.WithTx(ctx, func(ctx context.Context, tx pg.Querier) error {
		ord, err := s.lockOrder(ctx, tx, req.Serial)
		if err != nil {
			return err
		}
		if ord.Closed() {
			return fmt.Errorf("%w: order %s is %s", model.ErrOrderClosed, ord.Serial, ord.Status)
		}

		route := s.routes.RouteForModel(ctx, ord.ModelCode)

		target, realigned := resolveTarget(req.Station, ord.CurrentStation, route)

		open, err := s.visits.ListOpen(ctx, tx, ord.ID)
		if err != nil {
			return fmt.Errorf("list open visits: %w", err)
		}

		action := req.Action
		if action == model.ActionAuto {
			action = model.ActionStart
			if openAt(open, target) != nil {
				action = model.ActionFinish
			}
		}

		res = &model.ScanResult{
			Serial:    ord.Serial,
			Station:   target,
			Action:    action,
			Realigned: realigned,
			Order:     ord,
		}

		if action == model.ActionStart {
			return s.start(ctx, tx, ord, route, req, open, res)
		}

		notice, err := s.finish(ctx, tx, ord, route, req, open, res)
		if notice != nil {
			notices = append(notices, *notice)
		}
		return err
	})
	if err != nil {
		log.Error(ctx, "scan failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(notices) > 0 {
		s.rop.Notify(ctx, notices)
	}

	metrics.ScansTotal.WithLabelValues(string(res.Outcome)).Inc()
	log.Info(ctx, "scan applied",
		logger.String("outcome", string(res.Outcome)),
		logger.String("target", res.Station),
		logger.Bool("realigned", res.Realigned),
	)

	return res, nil
}

// resolveTarget picks the station a scan applies to. A station off the route
// is replaced by the route's first station.
func resolveTarget(requested, current string, route model.Route) (string, bool) {
	target := requested
	if target == "" {
		target = current
	}
	if target == "" {
		target = route.First()
	}

	if model.IsMarker(target) || route.Contains(target) {
		return target, false
	}
	return route.First(), true
}

func (s *service) start(
	ctx context.Context,
	tx pg.Querier,
	ord *model.WorkOrder,
	route model.Route,
	req model.ScanRequest,
	open []model.StationVisit,
	res *model.ScanResult,
) error {
	now := s.now()
	target := res.Station

	if target == model.StationStock {
		finished, err := s.visits.FinishedStations(ctx, tx, ord.ID)
		if err != nil {
			return fmt.Errorf("finished stations: %w", err)
		}
		target = route.NextAfter(model.StationStock, finished)
		res.Station = target
	}
	if target == model.StationFinal {
		res.Outcome = model.OutcomeNoop
		return nil
	}

	if target == s.layout.SafetyStation() && !req.Force {
		left, err := s.lockedMinutes(ctx, tx, ord.ID, target, now)
		if err != nil {
			return err
		}
		if left > 0 {
			res.Outcome = model.OutcomeLocked
			res.LockedMinutesLeft = left
			return nil
		}
	}

	res.Outcome = model.OutcomeStarted

	if existing := openAt(open, target); existing != nil {
		if existing.Operator == "" && req.Operator != "" {
			if err := s.visits.SetOperator(ctx, tx, existing.ID, req.Operator); err != nil {
				return fmt.Errorf("set operator: %w", err)
			}
			existing.Operator = req.Operator
		}
		if _, err := s.visits.CloseAllOpen(ctx, tx, ord.ID, existing.ID, now); err != nil {
			return fmt.Errorf("close stray visits: %w", err)
		}
		res.Visit = existing
		return s.moveTo(ctx, tx, ord, target, model.OrderStatusInProgress)
	}

	if _, err := s.visits.CloseAllOpen(ctx, tx, ord.ID, 0, now); err != nil {
		return fmt.Errorf("close open visits: %w", err)
	}

	visit := &model.StationVisit{
		OrderID:     ord.ID,
		StationID:   target,
		StartedAt:   now,
		Operator:    req.Operator,
		Workstation: req.Workstation,
	}
	id, err := s.visits.Create(ctx, tx, visit)
	if err != nil {
		return fmt.Errorf("create visit: %w", err)
	}
	visit.ID = id
	res.Visit = visit

	return s.moveTo(ctx, tx, ord, target, model.OrderStatusInProgress)
}

// lockedMinutes reports how many whole minutes remain on the debounce lock,
// rounded up, or 0 when the station is free.
func (s *service) lockedMinutes(ctx context.Context, tx pg.Querier, orderID int64, station string, now time.Time) (int, error) {
	last, err := s.visits.LastClosed(ctx, tx, orderID, station)
	if errors.Is(err, model.ErrVisitNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("last closed visit: %w", err)
	}
	if !last.Result.Passing() || last.FinishedAt == nil {
		return 0, nil
	}

	remaining := s.opts.Cooldown - now.Sub(*last.FinishedAt)
	if remaining <= 0 {
		return 0, nil
	}
	return int(remaining/time.Minute) + 1, nil
}

func (s *service) finish(
	ctx context.Context,
	tx pg.Querier,
	ord *model.WorkOrder,
	route model.Route,
	req model.ScanRequest,
	open []model.StationVisit,
	res *model.ScanResult,
) (*model.ReorderNotice, error) {
	visit := openAt(open, res.Station)
	if visit == nil {
		res.Outcome = model.OutcomeNoop
		return nil, nil
	}

	now := s.now()
	if err := s.closeVisit(ctx, tx, visit, model.VisitClose{
		FinishedAt:  now,
		Result:      req.Result,
		ReworkFlag:  req.Rework,
		Workstation: req.Workstation,
		Notes:       req.Notes,
	}); err != nil {
		return nil, err
	}
	res.Visit = visit

	next, err := s.nextStation(ctx, tx, ord.ID, route, visit.StationID)
	if err != nil {
		return nil, err
	}

	if next != model.StationFinal {
		res.Outcome = model.OutcomeFinished
		return nil, s.moveTo(ctx, tx, ord, next, model.OrderStatusInProgress)
	}

	fg, notice, err := s.complete(ctx, tx, ord, now)
	if err != nil {
		return nil, err
	}
	res.Outcome = model.OutcomeCompleted
	res.FinishedGood = fg
	return notice, nil
}

func (s *service) closeVisit(ctx context.Context, tx pg.Querier, visit *model.StationVisit, c model.VisitClose) error {
	if err := s.visits.Close(ctx, tx, visit.ID, c); err != nil {
		return fmt.Errorf("close visit: %w", err)
	}

	visit.FinishedAt = &c.FinishedAt
	visit.ReworkFlag = c.ReworkFlag
	if c.Result != model.ResultNone {
		visit.Result = c.Result
	}
	if c.Workstation != "" {
		visit.Workstation = c.Workstation
	}
	if c.Notes != "" {
		visit.Notes = c.Notes
	}

	metrics.StationVisitDuration.WithLabelValues(visit.StationID).
		Observe(c.FinishedAt.Sub(visit.StartedAt).Seconds())
	return nil
}

func (s *service) nextStation(ctx context.Context, tx pg.Querier, orderID int64, route model.Route, from string) (string, error) {
	finished, err := s.visits.FinishedStations(ctx, tx, orderID)
	if err != nil {
		return "", fmt.Errorf("finished stations: %w", err)
	}
	return route.NextAfter(from, finished), nil
}

// complete books the finished good and closes the order. The returned notice
// must only be delivered after commit.
func (s *service) complete(ctx context.Context, tx pg.Querier, ord *model.WorkOrder, now time.Time) (*model.Part, *model.ReorderNotice, error) {
	fg, err := s.ledger.ProduceFinishedGood(ctx, tx, ord.ModelCode, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("produce finished good: %w", err)
	}

	notice, err := s.rop.HandleChange(ctx, tx, *fg, false)
	if err != nil {
		return nil, nil, fmt.Errorf("reorder point: %w", err)
	}

	status := model.OrderStatusDone
	station := model.StationFinal
	if err := s.orders.Update(ctx, tx, ord.ID, model.OrderUpdate{
		Status:         &status,
		CurrentStation: &station,
		FinishedAt:     &now,
	}); err != nil {
		return nil, nil, fmt.Errorf("update order: %w", err)
	}

	ord.Status = status
	ord.CurrentStation = station
	ord.FinishedAt = &now

	metrics.FinishedGoodsTotal.WithLabelValues(ord.ModelCode).Inc()
	return fg, notice, nil
}

func (s *service) moveTo(ctx context.Context, tx pg.Querier, ord *model.WorkOrder, station string, status model.OrderStatus) error {
	if ord.CurrentStation == station && ord.Status == status {
		return nil
	}
	if err := s.orders.Update(ctx, tx, ord.ID, model.OrderUpdate{
		Status:         &status,
		CurrentStation: &station,
	}); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	ord.CurrentStation = station
	ord.Status = status
	return nil
}

func (s *service) lockOrder(ctx context.Context, tx pg.Querier, serial string) (*model.WorkOrder, error) {
	ord, err := s.orders.OrderBySerialForUpdate(ctx, tx, serial)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", serial, err)
	}
	return ord, nil
}

// openAt returns the open visit at station. open is newest first.
func openAt(open []model.StationVisit, station string) *model.StationVisit {
	for _, v := range open {
		if v.StationID == station {
			return &v
		}
	}
	return nil
}
