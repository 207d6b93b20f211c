package board

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AdrianoSaraivaa/sgp/internal/layout"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/internal/service/mocks"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

func column(t *testing.T, cols []model.BoardColumn, station string) model.BoardColumn {
	t.Helper()
	for _, c := range cols {
		if c.Station == station {
			return c
		}
	}
	t.Fatalf("no column %s", station)
	return model.BoardColumn{}
}

func TestBoard(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-2 * time.Hour)
	b6Done := now.Add(-time.Hour)
	b3Start := now.Add(-10 * time.Minute)
	finished := now.Add(-5 * time.Minute)

	orders := mocks.NewMockOrderRepository(t)
	visits := mocks.NewMockVisitRepository(t)
	routes := mocks.NewMockRouteResolver(t)

	orders.On("ListForBoard", mock.Anything, mock.Anything, now.Add(-8*time.Hour)).Return([]model.WorkOrder{
		{ID: 1, Serial: "531001", ModelCode: "M1", Status: model.OrderStatusQueued, CurrentStation: model.StationStock},
		{ID: 2, Serial: "531002", ModelCode: "M1", Status: model.OrderStatusInProgress, CurrentStation: "b3", ExternalTestFlag: true},
		{ID: 3, Serial: "531003", ModelCode: "M1", Status: model.OrderStatusDone, CurrentStation: model.StationFinal, FinishedAt: &finished},
		{ID: 4, Serial: "531004", ModelCode: "M1", Status: model.OrderStatusInProgress, CurrentStation: "b42"},
	}, nil).Once()

	visits.On("ListByOrders", mock.Anything, mock.Anything, []int64{1, 2, 3, 4}).Return([]model.StationVisit{
		{OrderID: 2, StationID: "b6", StartedAt: earlier, FinishedAt: &b6Done, ReworkFlag: true},
		{OrderID: 2, StationID: "b3", StartedAt: b3Start},
		{OrderID: 3, StationID: "b8", StartedAt: earlier, FinishedAt: &finished},
	}, nil).Once()

	routes.On("RouteForModel", mock.Anything, "M1").Return(model.Route{
		ModelCode: "M1",
		Stations:  []string{"b3", "b5", "b6", "b8"},
		Expected:  map[string]time.Duration{"b3": 25 * time.Minute},
	}).Once()

	svc := NewBoardService(nil, orders, visits, routes, layout.Default(), 8*time.Hour, time.Second)
	svc.now = func() time.Time { return now }

	cols, err := svc.Board(context.Background())
	require.NoError(t, err)

	require.Len(t, cols, 10)
	assert.Equal(t, model.StationStock, cols[0].Station)
	assert.Equal(t, model.StationFinal, cols[9].Station)

	stock := column(t, cols, model.StationStock)
	require.Len(t, stock.Items, 2, "unknown stations fall back to stock")
	assert.Nil(t, stock.Items[0].Since)

	b3 := column(t, cols, "b3")
	require.Len(t, b3.Items, 1)
	item := b3.Items[0]
	assert.Equal(t, "531002", item.Serial)
	assert.Equal(t, b3Start, *item.Since)
	assert.Equal(t, 25*time.Minute, item.Expected)
	assert.True(t, item.Returned)
	assert.True(t, item.Rework)
	assert.True(t, item.ExternalTestFlag)

	final := column(t, cols, model.StationFinal)
	require.Len(t, final.Items, 1)
	assert.Equal(t, finished, *final.Items[0].Since)
	assert.False(t, final.Items[0].Returned)

	assert.Empty(t, column(t, cols, "b1").Items)
}

func TestBoardStoreFailure(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	orders := mocks.NewMockOrderRepository(t)
	orders.On("ListForBoard", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()

	svc := NewBoardService(nil, orders, mocks.NewMockVisitRepository(t), mocks.NewMockRouteResolver(t),
		layout.Default(), time.Hour, time.Second)

	_, err := svc.Board(context.Background())
	require.Error(t, err)
}
