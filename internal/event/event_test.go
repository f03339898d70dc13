package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})
	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	called := 0

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		called++
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		called++
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	assert.Error(t, err)
	assert.Equal(t, 2, called, "a failing handler does not stop the others")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), Event{Type: "nobody_listens"}))
}

func TestConstructors(t *testing.T) {
	evt := NewNodeProgressEvent(NodeCompleted, domain.NodeProgressPayload{
		EventID: "evt_1", TeamID: "team_1", NodeID: "evt_1_node_3", GP: domain.NewGP(250),
	})
	assert.Equal(t, NodeCompleted, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "evt_1", evt.GetMetadataValue(MetaEventID))
	assert.Equal(t, "team_1", evt.GetMetadataValue(MetaTeamID))
	assert.Nil(t, evt.GetMetadataValue("missing"))

	gen := NewMapGeneratedEvent(domain.MapGeneratedPayload{EventID: "evt_1", TotalNodes: 90})
	assert.Equal(t, MapGenerated, gen.Type)
	assert.Nil(t, gen.GetMetadataValue(MetaTeamID))

	assert.Nil(t, Event{}.GetMetadataValue(MetaEventID))
}

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{"value", domain.InnPurchasePayload{RewardID: "r1"}, "r1"},
		{"pointer", &domain.InnPurchasePayload{RewardID: "r2"}, "r2"},
		{"generic map", map[string]any{"reward_id": "r3", "payout": "1500"}, "r3"},
		{"raw json", json.RawMessage(`{"reward_id":"r4","payout":1500}`), "r4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload[domain.InnPurchasePayload](tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.RewardID)
		})
	}

	decoded, err := DecodePayload[domain.InnPurchasePayload](map[string]any{"payout": "1500"})
	require.NoError(t, err)
	assert.Equal(t, "1500", decoded.Payout.String())

	_, err = DecodePayload[domain.InnPurchasePayload](nil)
	assert.ErrorIs(t, err, ErrNilPayload)

	_, err = DecodePayload[domain.InnPurchasePayload]((*domain.InnPurchasePayload)(nil))
	assert.ErrorIs(t, err, ErrNilPayload)

	_, err = DecodePayload[domain.InnPurchasePayload](json.RawMessage(`{"reward_id":`))
	assert.Error(t, err)
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, RetryInitialDelay, CalculateRetryDelay(RetryInitialDelay, 1))
	assert.Equal(t, 4*RetryInitialDelay, CalculateRetryDelay(RetryInitialDelay, 3))
}
