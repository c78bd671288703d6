package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderKeepsOrder(t *testing.T) {
	var rec Recorder
	ctx := context.Background()

	require.NoError(t, rec.Publish(ctx, New(OrderStatusChanged, 1, map[string]any{"status": "ready"})))
	require.NoError(t, rec.Publish(ctx, New(PaymentCompleted, 2, nil)))

	got := rec.Events()
	require.Len(t, got, 2)
	assert.Equal(t, OrderStatusChanged, got[0].Type)
	assert.EqualValues(t, 2, got[1].EntityID)
}

func TestEventJSONShape(t *testing.T) {
	body, err := json.Marshal(New(VipRequestDecided, 9, map[string]any{"status": "approved"}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "vip_request.decided", decoded["type"])
	assert.EqualValues(t, 9, decoded["entity_id"])
	assert.Contains(t, decoded, "occurred_at")
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), New(PaymentCompleted, 1, nil)))
	assert.NoError(t, p.Close())
}
