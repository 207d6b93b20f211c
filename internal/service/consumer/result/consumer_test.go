package resconsumer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AdrianoSaraivaa/sgp/internal/converter"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/internal/service/mocks"
	"github.com/AdrianoSaraivaa/sgp/platform/kafka"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type stubConsumer struct {
	msgs []kafka.Message
	errs []error
}

func (c *stubConsumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	for _, m := range c.msgs {
		c.errs = append(c.errs, handler(ctx, m))
	}
	return nil
}

func TestTestResultHandler(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	type testCase struct {
		name    string
		value   string
		headers map[string][]byte
		setup   func(app *mocks.MockResultApplier)
		wantErr bool
	}

	tests := []testCase{
		{
			name:  "applies decoded result",
			value: `{"serial":"531008","source":"safety_test","status":"approved"}`,
			setup: func(app *mocks.MockResultApplier) {
				app.On("ApplyResult", mock.Anything, model.ExternalResult{
					Serial: "531008",
					Source: model.SourceSafetyTest,
					Status: model.ExternalApproved,
				}).Return(&model.ResultOutcome{}, nil).Once()
			},
		},
		{
			name:    "source falls back to the header",
			value:   `{"serial":"531008","status":"ok"}`,
			headers: map[string][]byte{HeaderSource: []byte("checklist")},
			setup: func(app *mocks.MockResultApplier) {
				app.On("ApplyResult", mock.Anything, model.ExternalResult{
					Serial: "531008",
					Source: model.SourceChecklist,
					Status: model.ExternalOK,
				}).Return(&model.ResultOutcome{}, nil).Once()
			},
		},
		{
			name:  "malformed record is dropped",
			value: `{"serial":`,
			setup: func(*mocks.MockResultApplier) {},
		},
		{
			name:  "unknown serial is dropped",
			value: `{"serial":"999999","source":"checklist","status":"ok"}`,
			setup: func(app *mocks.MockResultApplier) {
				app.On("ApplyResult", mock.Anything, mock.Anything).
					Return(nil, model.ErrOrderNotFound).Once()
			},
		},
		{
			name:  "transient failure is reported",
			value: `{"serial":"531008","source":"checklist","status":"ok"}`,
			setup: func(app *mocks.MockResultApplier) {
				app.On("ApplyResult", mock.Anything, mock.Anything).
					Return(nil, errors.New("connection reset")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := mocks.NewMockResultApplier(t)
			tt.setup(app)

			stub := &stubConsumer{msgs: []kafka.Message{{Value: []byte(tt.value), Headers: tt.headers}}}
			svc := NewResultConsumer(stub, converter.NewKafkaConverter(), app)

			require.NoError(t, svc.RunTestResultConsume(context.Background()))
			require.Len(t, stub.errs, 1)
			if tt.wantErr {
				assert.Error(t, stub.errs[0])
				return
			}
			assert.NoError(t, stub.errs[0])
		})
	}
}
