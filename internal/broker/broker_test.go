package broker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Egor213/UniLog/internal/broker"
	brokermocks "github.com/Egor213/UniLog/internal/mocks/broker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublish(t *testing.T) {
	at := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		event    broker.Event
		sendErr  error
		wantJSON map[string]any
		wantErr  bool
	}{
		{
			name:  "channel deleted",
			event: broker.Event{Type: broker.EventChannelDeleted, TenantId: 3, Channel: "orders", At: at},
			wantJSON: map[string]any{
				"type":      "channel.deleted",
				"tenant_id": float64(3),
				"channel":   "orders",
				"at":        "2026-01-05T10:00:00Z",
			},
		},
		{
			name:  "sweep completed",
			event: broker.Event{Type: broker.EventSweepCompleted, Deleted: 12, Failures: 1, At: at},
			wantJSON: map[string]any{
				"type":     "sweep.completed",
				"deleted":  float64(12),
				"failures": float64(1),
				"at":       "2026-01-05T10:00:00Z",
			},
		},
		{
			name:    "producer failure",
			event:   broker.Event{Type: broker.EventChannelUpserted, At: at},
			sendErr: errors.New("broker down"),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var sent []byte
			p := brokermocks.NewMockProducer(ctrl)
			p.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, value []byte) error {
					sent = value
					return tc.sendErr
				})

			err := broker.Publish(context.Background(), p, tc.event)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal(sent, &got))
			assert.Equal(t, tc.wantJSON, got)
		})
	}
}

func TestNopProducer(t *testing.T) {
	assert.NoError(t, broker.Publish(context.Background(), broker.NopProducer{}, broker.Event{Type: broker.EventSweepCompleted}))
}
