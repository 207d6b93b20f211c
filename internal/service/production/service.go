// Package production launches batches of work orders and cancels them.
package production

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AdrianoSaraivaa/sgp/internal/metrics"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

const maxBatch = 500

type TxManager interface {
	WithTx(ctx context.Context, fn pg.TxFunc) error
}

type OrderRepository interface {
	Create(ctx context.Context, q pg.Querier, ord *model.WorkOrder) (int64, error)
	OrderBySerialForUpdate(ctx context.Context, q pg.Querier, serial string) (*model.WorkOrder, error)
	Update(ctx context.Context, q pg.Querier, id int64, upd model.OrderUpdate) error
}

type VisitRepository interface {
	CloseAllOpen(ctx context.Context, q pg.Querier, orderID, keepID int64, at time.Time) (int64, error)
}

type Ledger interface {
	ReserveComponents(ctx context.Context, q pg.Querier, modelCode string, qty int) ([]model.Part, error)
	ReverseReservation(ctx context.Context, q pg.Querier, modelCode string, qty int) ([]model.Part, error)
	Capacity(ctx context.Context, q pg.Querier, modelCode string) (*model.Capacity, error)
	Capacities(ctx context.Context, q pg.Querier) (*model.CapacityPlan, error)
	ValidatePlan(ctx context.Context, q pg.Querier, lines []model.PlanLine) ([]model.PlanIssue, error)
}

type RopTracker interface {
	HandleChange(ctx context.Context, q pg.Querier, part model.Part, force bool) (*model.ReorderNotice, error)
	Notify(ctx context.Context, notices []model.ReorderNotice)
}

type SerialGenerator interface {
	Generate(ctx context.Context, modelCode string, qty int, user string) ([]string, error)
}

type service struct {
	tx      TxManager
	orders  OrderRepository
	visits  VisitRepository
	ledger  Ledger
	rop     RopTracker
	serials SerialGenerator
	now     func() time.Time
}

func NewProductionService(
	tx TxManager,
	orders OrderRepository,
	visits VisitRepository,
	ledger Ledger,
	rop RopTracker,
	serials SerialGenerator,
) *service {
	return &service{
		tx:      tx,
		orders:  orders,
		visits:  visits,
		ledger:  ledger,
		rop:     rop,
		serials: serials,
		now:     time.Now,
	}
}

// Launch issues serials, reserves the batch's components and queues one
// work order per serial at stock. Serials issued before a failed
// reservation are not reused.
func (s *service) Launch(ctx context.Context, p model.LaunchParams) (*model.LaunchResult, error) {
	const op = "production.service.Launch"

	p.ModelCode = strings.TrimSpace(p.ModelCode)
	if err := validateLaunch(p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log := logger.With(
		logger.String("model", p.ModelCode),
		logger.Int("quantity", p.Quantity),
		logger.String("user", p.User),
	)

	serials, err := s.serials.Generate(ctx, p.ModelCode, p.Quantity, p.User)
	if err != nil {
		log.Error(ctx, "generate serials", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &model.LaunchResult{ModelCode: p.ModelCode, Serials: serials}
	var notices []model.ReorderNotice

	err = s.tx.WithTx(ctx, func(ctx context.Context, tx pg.Querier) error {
		consumed, err := s.ledger.ReserveComponents(ctx, tx, p.ModelCode, p.Quantity)
		if err != nil {
			return err
		}
		res.Consumed = consumed

		for _, sn := range serials {
			ord := &model.WorkOrder{
				Serial:         sn,
				ModelCode:      p.ModelCode,
				Status:         model.OrderStatusQueued,
				CurrentStation: model.StationStock,
			}
			if _, err := s.orders.Create(ctx, tx, ord); err != nil {
				return fmt.Errorf("create order %s: %w", sn, err)
			}
		}

		notices, err = s.recompute(ctx, tx, consumed)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrInsufficientStock) {
			metrics.ReservationsRejectedTotal.Inc()
			log.Warn(ctx, "launch rejected", logger.ErrorF(err))
		} else {
			log.Error(ctx, "launch failed", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(notices) > 0 {
		s.rop.Notify(ctx, notices)
	}

	metrics.OrdersLaunchedTotal.WithLabelValues(p.ModelCode).Add(float64(len(serials)))
	log.Info(ctx, "production launched", logger.Strings("serials", serials))

	return res, nil
}

// Cancel withdraws a unit that has not been completed and gives its
// components back to stock.
func (s *service) Cancel(ctx context.Context, serial, user string) (*model.WorkOrder, error) {
	const op = "production.service.Cancel"

	serial = strings.ToUpper(strings.TrimSpace(serial))
	if serial == "" {
		return nil, fmt.Errorf("%s: %w: serial is required", op, model.ErrValidation)
	}

	log := logger.With(
		logger.String("serial", serial),
		logger.String("user", user),
	)

	var (
		ord     *model.WorkOrder
		notices []model.ReorderNotice
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx pg.Querier) error {
		var err error
		ord, err = s.orders.OrderBySerialForUpdate(ctx, tx, serial)
		if err != nil {
			return fmt.Errorf("order %s: %w", serial, err)
		}
		if ord.Closed() {
			return fmt.Errorf("%w: order %s is %s", model.ErrOrderClosed, ord.Serial, ord.Status)
		}

		now := s.now()
		if _, err := s.visits.CloseAllOpen(ctx, tx, ord.ID, 0, now); err != nil {
			return fmt.Errorf("close open visits: %w", err)
		}

		returned, err := s.ledger.ReverseReservation(ctx, tx, ord.ModelCode, 1)
		if err != nil {
			return err
		}

		status := model.OrderStatusCancelled
		if err := s.orders.Update(ctx, tx, ord.ID, model.OrderUpdate{
			Status:     &status,
			FinishedAt: &now,
		}); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		ord.Status = status
		ord.FinishedAt = &now

		notices, err = s.recompute(ctx, tx, returned)
		return err
	})
	if err != nil {
		log.Error(ctx, "cancel failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(notices) > 0 {
		s.rop.Notify(ctx, notices)
	}

	log.Info(ctx, "order cancelled")
	return ord, nil
}

// Capacity reads one model's build capacity on a single snapshot.
func (s *service) Capacity(ctx context.Context, modelCode string) (*model.Capacity, error) {
	const op = "production.service.Capacity"

	modelCode = strings.TrimSpace(modelCode)
	if modelCode == "" {
		return nil, fmt.Errorf("%s: %w: model is required", op, model.ErrValidation)
	}

	var c *model.Capacity
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx pg.Querier) error {
		var err error
		c, err = s.ledger.Capacity(ctx, tx, modelCode)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s *service) Capacities(ctx context.Context) (*model.CapacityPlan, error) {
	const op = "production.service.Capacities"

	var plan *model.CapacityPlan
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx pg.Querier) error {
		var err error
		plan, err = s.ledger.Capacities(ctx, tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return plan, nil
}

// ValidatePlan reports the lines of a launch plan that Launch would refuse
// for catalog reasons. An empty result means the plan can go ahead.
func (s *service) ValidatePlan(ctx context.Context, lines []model.PlanLine) ([]model.PlanIssue, error) {
	const op = "production.service.ValidatePlan"

	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w: empty plan", op, model.ErrValidation)
	}

	var issues []model.PlanIssue
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx pg.Querier) error {
		var err error
		issues, err = s.ledger.ValidatePlan(ctx, tx, lines)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, l := range lines {
		if l.Quantity > maxBatch {
			issues = append(issues, model.PlanIssue{
				ModelCode: l.ModelCode,
				Reason:    fmt.Sprintf("quantity above %d", maxBatch),
			})
		}
	}

	if len(issues) > 0 {
		logger.Info(ctx, "launch plan refused", logger.Int("issues", len(issues)))
	}
	return issues, nil
}

func (s *service) recompute(ctx context.Context, tx pg.Querier, parts []model.Part) ([]model.ReorderNotice, error) {
	var notices []model.ReorderNotice
	for _, p := range parts {
		n, err := s.rop.HandleChange(ctx, tx, p, false)
		if err != nil {
			return nil, fmt.Errorf("reorder point %s: %w", p.Code, err)
		}
		if n != nil {
			notices = append(notices, *n)
		}
	}
	return notices, nil
}

func validateLaunch(p model.LaunchParams) error {
	var errs []error
	if p.ModelCode == "" {
		errs = append(errs, errors.New("model is required"))
	}
	if p.Quantity <= 0 || p.Quantity > maxBatch {
		errs = append(errs, fmt.Errorf("quantity must be between 1 and %d", maxBatch))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", model.ErrValidation, errors.Join(errs...))
	}
	return nil
}
