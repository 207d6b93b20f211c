package rop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/internal/service/mocks"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type deps struct {
	states   *mocks.MockRopRepository
	parts    *mocks.MockPartRepository
	capacity *mocks.MockLedger
	sender   *mocks.MockReorderSender
}

func newDeps(t *testing.T) deps {
	return deps{
		states:   mocks.NewMockRopRepository(t),
		parts:    mocks.NewMockPartRepository(t),
		capacity: mocks.NewMockLedger(t),
		sender:   mocks.NewMockReorderSender(t),
	}
}

var fixedNow = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func newSvc(d deps) *service {
	svc := NewRopService(nil, d.states, d.parts, d.capacity, d.sender, []string{"production@example.com"}, time.Second)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		part model.Part
		want model.RopEvaluation
	}{
		{
			name: "above reorder point",
			part: model.Part{CurrentStock: 6, ReorderPoint: 5, MaximumStock: 20},
			want: model.RopEvaluation{},
		},
		{
			name: "at reorder point",
			part: model.Part{CurrentStock: 5, ReorderPoint: 5, MaximumStock: 20},
			want: model.RopEvaluation{InAlert: true, SuggestedQty: 15},
		},
		{
			name: "maximum below stock never suggests negative",
			part: model.Part{CurrentStock: 3, ReorderPoint: 5, MaximumStock: 2},
			want: model.RopEvaluation{InAlert: true, SuggestedQty: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Evaluate(tt.part))
		})
	}
}

func TestHandleChange(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	low := model.Part{Code: "A1", Kind: model.PartKindAssembly, Description: "Compressor 1", CurrentStock: 2, ReorderPoint: 3, MaximumStock: 10}
	high := model.Part{Code: "A1", Kind: model.PartKindAssembly, CurrentStock: 4, ReorderPoint: 3, MaximumStock: 10}
	sent := fixedNow.Add(-time.Hour)

	type testCase struct {
		name   string
		part   model.Part
		force  bool
		setup  func(d deps)
		assert func(t *testing.T, n *model.ReorderNotice, err error, d deps)
	}

	tests := []testCase{
		{
			name: "entering alert notifies once",
			part: low,
			setup: func(d deps) {
				d.states.On("LockState", mock.Anything, mock.Anything, "A1").
					Return(&model.RopAlertState{PartCode: "A1"}, nil).Once()
				d.states.On("Save", mock.Anything, mock.Anything, model.RopAlertState{
					PartCode: "A1", InAlert: true, LastSentAt: &fixedNow,
				}).Return(nil).Once()
			},
			assert: func(t *testing.T, n *model.ReorderNotice, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, n)
				assert.Equal(t, int64(8), n.SuggestedQty)
				assert.Equal(t, []string{"production@example.com"}, n.To)
				assert.Contains(t, n.Subject, "Compressor 1")
				assert.Contains(t, n.Body, "build 8 unit(s)")
			},
		},
		{
			name: "still in alert does not resend",
			part: low,
			setup: func(d deps) {
				d.states.On("LockState", mock.Anything, mock.Anything, "A1").
					Return(&model.RopAlertState{PartCode: "A1", InAlert: true, LastSentAt: &sent}, nil).Once()
			},
			assert: func(t *testing.T, n *model.ReorderNotice, err error, d deps) {
				require.NoError(t, err)
				assert.Nil(t, n)
				d.states.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:  "force resends while in alert",
			part:  low,
			force: true,
			setup: func(d deps) {
				d.states.On("LockState", mock.Anything, mock.Anything, "A1").
					Return(&model.RopAlertState{PartCode: "A1", InAlert: true, LastSentAt: &sent}, nil).Once()
				d.states.On("Save", mock.Anything, mock.Anything, mock.MatchedBy(func(st model.RopAlertState) bool {
					return st.InAlert && st.LastSentAt.Equal(fixedNow)
				})).Return(nil).Once()
			},
			assert: func(t *testing.T, n *model.ReorderNotice, err error, d deps) {
				require.NoError(t, err)
				assert.NotNil(t, n)
			},
		},
		{
			name: "leaving alert clears without notice",
			part: high,
			setup: func(d deps) {
				d.states.On("LockState", mock.Anything, mock.Anything, "A1").
					Return(&model.RopAlertState{PartCode: "A1", InAlert: true, LastSentAt: &sent}, nil).Once()
				d.states.On("Save", mock.Anything, mock.Anything, model.RopAlertState{
					PartCode: "A1", InAlert: false, LastSentAt: &sent,
				}).Return(nil).Once()
			},
			assert: func(t *testing.T, n *model.ReorderNotice, err error, d deps) {
				require.NoError(t, err)
				assert.Nil(t, n)
			},
		},
		{
			name: "state store failure",
			part: low,
			setup: func(d deps) {
				d.states.On("LockState", mock.Anything, mock.Anything, "A1").
					Return(nil, errors.New("deadlock detected")).Once()
			},
			assert: func(t *testing.T, n *model.ReorderNotice, err error, d deps) {
				require.Error(t, err)
				assert.Nil(t, n)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			n, err := newSvc(d).HandleChange(context.Background(), nil, tt.part, tt.force)
			tt.assert(t, n, err, d)
		})
	}
}

func TestNotifySwallowsFailures(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	d := newDeps(t)
	first := model.ReorderNotice{PartCode: "A1"}
	second := model.ReorderNotice{PartCode: "A2"}

	d.sender.On("SendReorder", mock.Anything, first).Return(errors.New("broker down")).Once()
	d.sender.On("SendReorder", mock.Anything, second).Return(nil).Once()

	assert.NotPanics(t, func() {
		newSvc(d).Notify(context.Background(), []model.ReorderNotice{first, second})
	})
}

func TestListNeeds(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	d := newDeps(t)
	d.parts.On("ListByKind", mock.Anything, mock.Anything, model.PartKindAssembly).
		Return([]model.Part{
			{Code: "A1", CurrentStock: 4, ReorderPoint: 3, MaximumStock: 10},
			{Code: "A2", CurrentStock: 1, ReorderPoint: 3, MaximumStock: 10},
			{Code: "A3", CurrentStock: 0, ReorderPoint: 0, MaximumStock: 20},
			{Code: "A4", CurrentStock: 3, ReorderPoint: 3, MaximumStock: 12},
			{Code: "A5", CurrentStock: 3, ReorderPoint: 3, MaximumStock: 3},
			{Code: gofakeit.LetterN(6), CurrentStock: 50, ReorderPoint: 3, MaximumStock: 60},
		}, nil).
		Once()
	d.capacity.On("AssemblyCapacity", mock.Anything, mock.Anything, "A2").Return(int64(5), nil).Once()
	d.capacity.On("AssemblyCapacity", mock.Anything, mock.Anything, "A3").Return(int64(0), nil).Once()
	d.capacity.On("AssemblyCapacity", mock.Anything, mock.Anything, "A4").Return(int64(0), errors.New("timeout")).Once()

	needs, err := newSvc(d).ListNeeds(context.Background())
	require.NoError(t, err)

	codes := make([]string, len(needs))
	for i, n := range needs {
		codes[i] = n.Code
	}
	assert.Equal(t, []string{"A3", "A2", "A4"}, codes)
	assert.Equal(t, int64(20), needs[0].SuggestedQty)
	assert.Equal(t, int64(9), needs[1].SuggestedQty)
	assert.Equal(t, int64(9), needs[2].SuggestedQty)

	assert.True(t, needs[0].CapacityZero)
	assert.False(t, needs[1].CapacityZero)
	assert.False(t, needs[2].CapacityZero, "unknown capacity is not zero")
}
