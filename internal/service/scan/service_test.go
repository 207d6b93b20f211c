package scan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AdrianoSaraivaa/sgp/internal/layout"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/internal/service/mocks"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg/pgtest"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

var errDuplicateOpenVisit = errors.New(`duplicate key value violates unique constraint "station_visits_one_open"`)

const (
	testSerial = "531008"
	testModel  = "M1"
)

var testRoute = model.Route{
	ModelCode: testModel,
	Stations:  []string{"b1", "b2", "b5", "b8"},
}

type harness struct {
	store  *memStore
	tx     *pgtest.TxManager
	ledger *mocks.MockLedger
	rop    *mocks.MockRopTracker
	routes *mocks.MockRouteResolver
	svc    *service
	clock  time.Time
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	logger.SetNopLogger()

	h := &harness{
		store:  newMemStore(),
		tx:     pgtest.NewTxManager(),
		ledger: mocks.NewMockLedger(t),
		rop:    mocks.NewMockRopTracker(t),
		routes: mocks.NewMockRouteResolver(t),
		clock:  time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC),
	}
	h.tx.OnBegin = h.store.snapshot
	h.tx.OnRollback = h.store.restore

	h.routes.On("RouteForModel", mock.Anything, testModel).Return(testRoute).Maybe()

	h.svc = NewScanService(
		h.tx,
		memOrders{h.store},
		memVisits{h.store},
		h.routes,
		h.ledger,
		h.rop,
		layout.Default(),
		opts,
	)
	h.svc.now = func() time.Time { return h.clock }

	h.store.addOrder(model.WorkOrder{
		Serial:         testSerial,
		ModelCode:      testModel,
		Status:         model.OrderStatusQueued,
		CurrentStation: model.StationStock,
	})

	return h
}

func (h *harness) tick(d time.Duration) { h.clock = h.clock.Add(d) }

func (h *harness) scan(t *testing.T, raw string) *model.ScanResult {
	t.Helper()
	res, err := h.svc.Scan(context.Background(), model.ScanRequest{Raw: raw, Operator: "ana"})
	require.NoError(t, err)
	return res
}

func (h *harness) expectCompletion(stock int64) {
	fg := &model.Part{Code: "A-" + testModel, Kind: model.PartKindAssembly, CurrentStock: stock}
	notice := &model.ReorderNotice{PartCode: fg.Code}

	h.ledger.On("ProduceFinishedGood", mock.Anything, mock.Anything, testModel, 1).Return(fg, nil).Once()
	h.rop.On("HandleChange", mock.Anything, mock.Anything, *fg, false).Return(notice, nil).Once()
	h.rop.On("Notify", mock.Anything, []model.ReorderNotice{*notice}).Return().Once()
}

func TestScanWalksTheRoute(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{Cooldown: 10 * time.Minute})

	res := h.scan(t, "B1-531008")
	assert.Equal(t, model.OutcomeStarted, res.Outcome)
	assert.Equal(t, "b1", res.Station)
	assert.Equal(t, model.OrderStatusInProgress, h.store.order(testSerial).Status)
	require.Len(t, h.store.openVisits(1), 1)

	h.tick(20 * time.Minute)
	res = h.scan(t, "B1-531008")
	assert.Equal(t, model.OutcomeFinished, res.Outcome)
	assert.Equal(t, "b2", h.store.order(testSerial).CurrentStation)
	assert.Empty(t, h.store.openVisits(1))

	for _, st := range []string{"B2", "B5"} {
		h.tick(time.Minute)
		assert.Equal(t, model.OutcomeStarted, h.scan(t, st+"-531008").Outcome)
		h.tick(time.Minute)
		assert.Equal(t, model.OutcomeFinished, h.scan(t, st+"-531008").Outcome)
	}
	assert.Equal(t, "b8", h.store.order(testSerial).CurrentStation)

	h.expectCompletion(4)

	h.tick(time.Minute)
	h.scan(t, "B8-531008")
	h.tick(time.Minute)
	res = h.scan(t, "B8-531008")

	assert.Equal(t, model.OutcomeCompleted, res.Outcome)
	require.NotNil(t, res.FinishedGood)
	assert.Equal(t, int64(4), res.FinishedGood.CurrentStock)

	ord := h.store.order(testSerial)
	assert.Equal(t, model.OrderStatusDone, ord.Status)
	assert.Equal(t, model.StationFinal, ord.CurrentStation)
	require.NotNil(t, ord.FinishedAt)
	assert.Len(t, h.store.allVisits(1), 4)

	_, err := h.svc.Scan(context.Background(), model.ScanRequest{Raw: "B8-531008"})
	require.ErrorIs(t, err, model.ErrOrderClosed)
}

func TestScanRealignsUnknownStation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})

	res := h.scan(t, "B7-531008")
	assert.True(t, res.Realigned)
	assert.Equal(t, "b1", res.Station)
	assert.Equal(t, model.OutcomeStarted, res.Outcome)
	assert.Equal(t, "b1", h.store.order(testSerial).CurrentStation)
}

func TestScanBareSerialFollowsCurrentStation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})

	res := h.scan(t, testSerial)
	assert.Equal(t, "b1", res.Station, "start at stock opens the first pending station")

	h.tick(time.Minute)
	res = h.scan(t, testSerial)
	assert.Equal(t, model.OutcomeFinished, res.Outcome)
	assert.Equal(t, "b2", h.store.order(testSerial).CurrentStation)
}

func TestScanRepairsStrayOpenVisits(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})
	started := h.clock.Add(-time.Hour)
	h.store.addVisit(model.StationVisit{OrderID: 1, StationID: "b1", StartedAt: started})
	h.store.addVisit(model.StationVisit{OrderID: 1, StationID: "b2", StartedAt: started.Add(time.Minute)})

	res, err := h.svc.Scan(context.Background(), model.ScanRequest{
		Serial:  testSerial,
		Station: "b5",
		Action:  model.ActionStart,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeStarted, res.Outcome)

	open := h.store.openVisits(1)
	require.Len(t, open, 1)
	assert.Equal(t, "b5", open[0].StationID)
}

func TestScanStartIsIdempotent(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})
	h.store.addVisit(model.StationVisit{OrderID: 1, StationID: "b2", StartedAt: h.clock})

	operator := gofakeit.FirstName()
	res, err := h.svc.Scan(context.Background(), model.ScanRequest{
		Serial:   testSerial,
		Station:  "b2",
		Action:   model.ActionStart,
		Operator: operator,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeStarted, res.Outcome)

	open := h.store.openVisits(1)
	require.Len(t, open, 1)
	assert.Equal(t, operator, open[0].Operator)
	assert.Equal(t, "b2", h.store.order(testSerial).CurrentStation)
}

func TestScanFinishWithoutOpenVisitIsNoop(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})

	res, err := h.svc.Scan(context.Background(), model.ScanRequest{
		Serial:  testSerial,
		Station: "b2",
		Action:  model.ActionFinish,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeNoop, res.Outcome)
	assert.Equal(t, model.StationStock, h.store.order(testSerial).CurrentStation)
	assert.Empty(t, h.store.allVisits(1))
}

func TestScanDebounceOnSafetyStation(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		result     model.VisitResult
		finishedAt time.Duration
		force      bool
		wantLocked bool
		wantLeft   int
	}

	tests := []testCase{
		{name: "passed three minutes ago", result: model.ResultPass, finishedAt: 3 * time.Minute, wantLocked: true, wantLeft: 8},
		{name: "approved just now", result: model.ResultApproved, finishedAt: 30 * time.Second, wantLocked: true, wantLeft: 10},
		{name: "cool-down elapsed", result: model.ResultPass, finishedAt: 10 * time.Minute},
		{name: "failed test does not lock", result: model.ResultFail, finishedAt: time.Minute},
		{name: "force bypasses the lock", result: model.ResultPass, finishedAt: time.Minute, force: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, Options{Cooldown: 10 * time.Minute})
			finished := h.clock.Add(-tt.finishedAt)
			h.store.addVisit(model.StationVisit{
				OrderID:    1,
				StationID:  "b5",
				StartedAt:  finished.Add(-5 * time.Minute),
				FinishedAt: &finished,
				Result:     tt.result,
			})

			res, err := h.svc.Scan(context.Background(), model.ScanRequest{
				Raw:   "B5-531008",
				Force: tt.force,
			})
			require.NoError(t, err)

			if tt.wantLocked {
				assert.True(t, res.Locked())
				assert.Equal(t, tt.wantLeft, res.LockedMinutesLeft)
				assert.Empty(t, h.store.openVisits(1))
				return
			}
			assert.Equal(t, model.OutcomeStarted, res.Outcome)
			require.Len(t, h.store.openVisits(1), 1)
		})
	}
}

func TestScanLedgerFailureRollsBack(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})
	h.store.addVisit(model.StationVisit{OrderID: 1, StationID: "b8", StartedAt: h.clock.Add(-time.Minute)})
	for _, st := range []string{"b1", "b2", "b5"} {
		at := h.clock.Add(-time.Hour)
		h.store.addVisit(model.StationVisit{OrderID: 1, StationID: st, StartedAt: at, FinishedAt: &at})
	}
	_ = memOrders{h.store}.Update(context.Background(), nil, 1, model.OrderUpdate{
		CurrentStation: ptr("b8"),
		Status:         ptr(model.OrderStatusInProgress),
	})

	h.ledger.On("ProduceFinishedGood", mock.Anything, mock.Anything, testModel, 1).
		Return(nil, model.ErrPartNotFound).Once()

	_, err := h.svc.Scan(context.Background(), model.ScanRequest{Raw: "B8-531008"})
	require.ErrorIs(t, err, model.ErrPartNotFound)

	assert.Equal(t, 1, h.tx.RolledBack())
	assert.Equal(t, "b8", h.store.order(testSerial).CurrentStation)
	require.Len(t, h.store.openVisits(1), 1, "the finish was rolled back")
}

func TestScanUnknownSerial(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Options{})

	_, err := h.svc.Scan(context.Background(), model.ScanRequest{Raw: "B1-999999"})
	require.ErrorIs(t, err, model.ErrOrderNotFound)
}

func ptr[T any](v T) *T { return &v }
