package consumer

import (
	"context"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianoSaraivaa/sgp/platform/kafka"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type fakeSession struct {
	sarama.ConsumerGroupSession

	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim

	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func newClaim(offsets ...int64) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(offsets))
	for _, off := range offsets {
		ch <- &sarama.ConsumerMessage{Topic: "test-results", Partition: 0, Offset: off}
	}
	close(ch)
	return &fakeClaim{messages: ch}
}

var errUnavailable = errors.New("database unavailable")

func TestGroupHandlerConsumeClaim(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		failures   map[int64]int
		wantErr    bool
		wantMarked []int64
		wantCalls  int
	}

	tests := []testCase{
		{
			name:       "marks every handled message",
			wantMarked: []int64{0, 1},
			wantCalls:  2,
		},
		{
			name:       "retries a transient failure",
			failures:   map[int64]int{0: 2},
			wantMarked: []int64{0, 1},
			wantCalls:  4,
		},
		{
			name:      "stops at a message that keeps failing",
			failures:  map[int64]int{0: 10},
			wantErr:   true,
			wantCalls: 3,
		},
		{
			name:       "keeps earlier offsets marked",
			failures:   map[int64]int{1: 10},
			wantErr:    true,
			wantMarked: []int64{0},
			wantCalls:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			failures := map[int64]int{}
			for off, n := range tt.failures {
				failures[off] = n
			}
			handler := func(_ context.Context, msg kafka.Message) error {
				calls++
				if failures[msg.Offset] > 0 {
					failures[msg.Offset]--
					return errUnavailable
				}
				return nil
			}

			g := NewGroupHandler(handler, logger.NoopLogger{})
			g.retries = 2
			g.backoff = 0

			session := &fakeSession{ctx: context.Background()}
			err := g.ConsumeClaim(session, newClaim(0, 1))

			if tt.wantErr {
				require.ErrorIs(t, err, errUnavailable)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantMarked, session.marked)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestGroupHandlerStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGroupHandler(func(context.Context, kafka.Message) error { return nil }, logger.NoopLogger{})
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}

	require.NoError(t, g.ConsumeClaim(&fakeSession{ctx: ctx}, claim))
}
