package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

func TestCapacity(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	bom := []model.BomEntry{
		{AssemblyCode: "A1", ComponentCode: "C1", QuantityPerUnit: 2},
		{AssemblyCode: "A1", ComponentCode: "C2", QuantityPerUnit: 1},
		{AssemblyCode: "A1", ComponentCode: "C3", QuantityPerUnit: 4},
	}

	type testCase struct {
		name            string
		setup           func(d deps)
		wantErr         error
		wantUnits       int64
		wantBottlenecks []string
	}

	tests := []testCase{
		{
			name: "limited by the scarcest component",
			setup: func(d deps) {
				d.parts.On("BOM", mock.Anything, mock.Anything, "A1").Return(bom, nil).Once()
				d.parts.On("PartsByCodes", mock.Anything, mock.Anything, []string{"C1", "C2", "C3"}).
					Return([]model.Part{
						{Code: "C1", CurrentStock: 9},
						{Code: "C2", CurrentStock: 30},
						{Code: "C3", CurrentStock: 13},
					}, nil).
					Once()
			},
			wantUnits:       3,
			wantBottlenecks: []string{"C3", "C1", "C2"},
		},
		{
			name: "missing component pins capacity at zero",
			setup: func(d deps) {
				d.parts.On("BOM", mock.Anything, mock.Anything, "A1").Return(bom, nil).Once()
				d.parts.On("PartsByCodes", mock.Anything, mock.Anything, []string{"C1", "C2", "C3"}).
					Return([]model.Part{
						{Code: "C1", CurrentStock: 9},
						{Code: "C3", CurrentStock: 13},
					}, nil).
					Once()
			},
			wantUnits:       0,
			wantBottlenecks: []string{"C2", "C3", "C1"},
		},
		{
			name: "no bom means no capacity",
			setup: func(d deps) {
				d.parts.On("BOM", mock.Anything, mock.Anything, "A1").Return(nil, nil).Once()
			},
			wantUnits:       0,
			wantBottlenecks: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			d.products.On("ModelByCode", mock.Anything, mock.Anything, "M1").Return(m1, nil).Once()
			tt.setup(d)

			c, err := newSvc(d).Capacity(context.Background(), nil, "M1")
			require.NoError(t, err)

			assert.Equal(t, "M1", c.ModelCode)
			assert.Equal(t, "A1", c.AssemblyCode)
			assert.Equal(t, tt.wantUnits, c.Units)

			codes := make([]string, 0, len(c.Bottlenecks))
			for _, b := range c.Bottlenecks {
				codes = append(codes, b.Code)
			}
			assert.Equal(t, tt.wantBottlenecks, codes)
		})
	}
}

func TestCapacityUnknownModel(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	d := newDeps(t)
	d.products.On("ModelByCode", mock.Anything, mock.Anything, "M9").Return(nil, model.ErrModelNotFound).Once()

	_, err := newSvc(d).Capacity(context.Background(), nil, "M9")
	require.ErrorIs(t, err, model.ErrModelNotFound)
}

func TestCapacities(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	d := newDeps(t)
	d.products.On("List", mock.Anything, mock.Anything).
		Return([]model.ProductModel{
			{Code: "M1", AssemblyCode: "A1"},
			{Code: "M2", AssemblyCode: "A2"},
		}, nil).
		Once()
	d.parts.On("BOM", mock.Anything, mock.Anything, "A1").
		Return([]model.BomEntry{{AssemblyCode: "A1", ComponentCode: "C1", QuantityPerUnit: 1}}, nil).Once()
	d.parts.On("BOM", mock.Anything, mock.Anything, "A2").
		Return([]model.BomEntry{{AssemblyCode: "A2", ComponentCode: "C1", QuantityPerUnit: 3}}, nil).Once()
	d.parts.On("PartsByCodes", mock.Anything, mock.Anything, []string{"C1"}).
		Return([]model.Part{{Code: "C1", CurrentStock: 9}}, nil).Twice()

	plan, err := newSvc(d).Capacities(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, plan.Models, 2)
	assert.Equal(t, int64(9), plan.Models[0].Units)
	assert.Equal(t, int64(3), plan.Models[1].Units)
	assert.Equal(t, map[string]int64{"M1": 4, "M2": 1}, plan.Balanced)
}

func TestAssemblyCapacity(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	d := newDeps(t)
	d.parts.On("BOM", mock.Anything, mock.Anything, "A1").
		Return([]model.BomEntry{{AssemblyCode: "A1", ComponentCode: "C1", QuantityPerUnit: 2}}, nil).Once()
	d.parts.On("PartsByCodes", mock.Anything, mock.Anything, []string{"C1"}).
		Return([]model.Part{{Code: "C1", CurrentStock: 1}}, nil).Once()

	units, err := newSvc(d).AssemblyCapacity(context.Background(), nil, "A1")
	require.NoError(t, err)
	assert.Zero(t, units)
}

func TestValidatePlan(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	d := newDeps(t)
	d.products.On("ModelByCode", mock.Anything, mock.Anything, "M1").Return(m1, nil).Once()
	d.products.On("ModelByCode", mock.Anything, mock.Anything, "M2").
		Return(&model.ProductModel{Code: "M2", AssemblyCode: "A2"}, nil).Once()
	d.products.On("ModelByCode", mock.Anything, mock.Anything, "M9").Return(nil, model.ErrModelNotFound).Once()
	d.parts.On("BOM", mock.Anything, mock.Anything, "A1").
		Return([]model.BomEntry{{AssemblyCode: "A1", ComponentCode: "C1", QuantityPerUnit: 1}}, nil).Once()
	d.parts.On("BOM", mock.Anything, mock.Anything, "A2").Return(nil, nil).Once()

	issues, err := newSvc(d).ValidatePlan(context.Background(), nil, []model.PlanLine{
		{ModelCode: "M1", Quantity: 4},
		{ModelCode: "M1", Quantity: -1},
		{ModelCode: "M2", Quantity: 1},
		{ModelCode: " M9 ", Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []model.PlanIssue{
		{ModelCode: "M1", Reason: "negative quantity"},
		{ModelCode: "M2", Reason: "no bill of materials for A2"},
		{ModelCode: "M9", Reason: "unknown model"},
	}, issues)
}
