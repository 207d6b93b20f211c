// Package board projects open work orders onto per-station columns for the
// shop-floor dashboard.
package board

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/AdrianoSaraivaa/sgp/internal/layout"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type OrderRepository interface {
	ListForBoard(ctx context.Context, q pg.Querier, doneSince time.Time) ([]model.WorkOrder, error)
}

type VisitRepository interface {
	ListByOrders(ctx context.Context, q pg.Querier, orderIDs []int64) ([]model.StationVisit, error)
}

type RouteResolver interface {
	RouteForModel(ctx context.Context, modelCode string) model.Route
}

type service struct {
	db          pg.Querier
	orders      OrderRepository
	visits      VisitRepository
	routes      RouteResolver
	layout      *layout.Layout
	doneWindow  time.Duration
	readTimeout time.Duration
	now         func() time.Time
}

func NewBoardService(
	db pg.Querier,
	orders OrderRepository,
	visits VisitRepository,
	routes RouteResolver,
	l *layout.Layout,
	doneWindow time.Duration,
	readTimeout time.Duration,
) *service {
	return &service{
		db:          db,
		orders:      orders,
		visits:      visits,
		routes:      routes,
		layout:      l,
		doneWindow:  doneWindow,
		readTimeout: readTimeout,
		now:         time.Now,
	}
}

// Board returns stock, every layout station and final, in that order.
// Orders finished more than doneWindow ago are left out.
func (s *service) Board(ctx context.Context) ([]model.BoardColumn, error) {
	const op = "board.service.Board"

	readCtx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	orders, err := s.orders.ListForBoard(readCtx, s.db, s.now().Add(-s.doneWindow))
	if err != nil {
		logger.Error(ctx, "list board orders", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids := lo.Map(orders, func(o model.WorkOrder, _ int) int64 { return o.ID })
	visits, err := s.visits.ListByOrders(readCtx, s.db, ids)
	if err != nil {
		logger.Error(ctx, "list board visits", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	byOrder := lo.GroupBy(visits, func(v model.StationVisit) int64 { return v.OrderID })

	columns := s.emptyColumns()
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c.Station] = i
	}

	routes := make(map[string]model.Route)
	for _, ord := range orders {
		route, ok := routes[ord.ModelCode]
		if !ok {
			route = s.routes.RouteForModel(ctx, ord.ModelCode)
			routes[ord.ModelCode] = route
		}

		station := ord.CurrentStation
		col, ok := index[station]
		if !ok {
			logger.Warn(ctx, "order on unknown station, shown at stock",
				logger.String("serial", ord.Serial),
				logger.String("station", station),
			)
			station = model.StationStock
			col = index[station]
		}

		columns[col].Items = append(columns[col].Items, s.item(ord, station, route, byOrder[ord.ID]))
	}

	return columns, nil
}

func (s *service) emptyColumns() []model.BoardColumn {
	columns := make([]model.BoardColumn, 0, len(s.layout.Stations)+2)
	columns = append(columns, model.BoardColumn{Station: model.StationStock, Title: "Stock", Items: []model.BoardItem{}})
	for _, st := range s.layout.Stations {
		columns = append(columns, model.BoardColumn{Station: st.ID, Title: st.Title, Items: []model.BoardItem{}})
	}
	columns = append(columns, model.BoardColumn{Station: model.StationFinal, Title: "Finished", Items: []model.BoardItem{}})
	return columns
}

// item builds one card. visits are ordered oldest first.
func (s *service) item(ord model.WorkOrder, station string, route model.Route, visits []model.StationVisit) model.BoardItem {
	it := model.BoardItem{
		Serial:           ord.Serial,
		ModelCode:        ord.ModelCode,
		Status:           ord.Status,
		ExternalTestFlag: ord.ExternalTestFlag,
	}

	if !model.IsMarker(station) {
		it.Expected = route.ExpectedFor(station)
		if it.Expected == 0 {
			it.Expected = s.layout.Expected(station)
		}
	}

	var lastClosed *model.StationVisit
	for i := range visits {
		v := &visits[i]
		if v.Open() {
			if v.StationID == station {
				it.Since = &v.StartedAt
			}
			continue
		}
		if lastClosed == nil || v.FinishedAt.After(*lastClosed.FinishedAt) {
			lastClosed = v
		}
		if pos := s.layout.Index(v.StationID); pos > s.layout.Index(station) && !model.IsMarker(station) {
			it.Returned = true
		}
	}

	if lastClosed != nil {
		it.Rework = lastClosed.ReworkFlag
	}

	if it.Since == nil {
		switch {
		case station == model.StationFinal && ord.FinishedAt != nil:
			it.Since = ord.FinishedAt
		case lastClosed != nil:
			it.Since = lastClosed.FinishedAt
		}
	}

	return it
}
