package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(shopID string) *Client {
	return &Client{
		shopID: shopID,
		send:   make(chan []byte, sendBuffer),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func receiveFrame(t *testing.T, c *Client) envelope {
	t.Helper()

	select {
	case frame := <-c.send:
		var env envelope
		require.NoError(t, json.Unmarshal(frame, &env))

		return env
	default:
		t.Fatal("expected a frame in the send buffer")

		return envelope{}
	}
}

func TestHub_DeliverScopedToRoom(t *testing.T) {
	hub := newTestHub()

	memberA := newTestClient("shop-a")
	memberB := newTestClient("shop-b")
	hub.Join("shop-a", memberA)
	hub.Join("shop-b", memberB)

	hub.Deliver(&service.JobEvent{
		Event:  service.EventNewPrintJob,
		ShopID: "shop-a",
		Data:   map[string]string{"id": "job-1"},
	})

	env := receiveFrame(t, memberA)
	assert.Equal(t, service.EventNewPrintJob, env.Event)
	assert.JSONEq(t, `{"id":"job-1"}`, string(env.Data))

	// The other shop's room sees nothing.
	assert.Empty(t, memberB.send)
}

func TestHub_DeliverToAllRoomMembers(t *testing.T) {
	hub := newTestHub()

	first := newTestClient("shop-a")
	second := newTestClient("shop-a")
	hub.Join("shop-a", first)
	hub.Join("shop-a", second)

	hub.Deliver(&service.JobEvent{
		Event:  service.EventJobStatusUpdate,
		ShopID: "shop-a",
		Data: &service.JobStatusChange{
			ID:      "job-1",
			Status:  entity.JobStatusProcessing,
			Version: 2,
		},
	})

	for _, c := range []*Client{first, second} {
		env := receiveFrame(t, c)
		assert.Equal(t, service.EventJobStatusUpdate, env.Event)

		var change service.JobStatusChange
		require.NoError(t, json.Unmarshal(env.Data, &change))
		assert.Equal(t, "job-1", change.ID)
		assert.Equal(t, entity.JobStatusProcessing, change.Status)
		assert.Equal(t, int64(2), change.Version)
	}
}

func TestHub_RemoveDropsAllRooms(t *testing.T) {
	hub := newTestHub()

	c := newTestClient("shop-a")
	hub.Join("shop-a", c)
	hub.Join("job:job-1", c)

	require.Equal(t, 1, hub.RoomSize("shop-a"))
	require.Equal(t, 1, hub.RoomSize("job:job-1"))

	hub.Remove(c)

	assert.Equal(t, 0, hub.RoomSize("shop-a"))
	assert.Equal(t, 0, hub.RoomSize("job:job-1"))

	// Delivery after removal must not reach the closed client.
	hub.Deliver(&service.JobEvent{
		Event:  service.EventNewPrintJob,
		ShopID: "shop-a",
		Data:   map[string]string{"id": "job-2"},
	})
	assert.Empty(t, c.send)
}

func TestClient_HandleRejectsForeignShopJoin(t *testing.T) {
	hub := newTestHub()

	c := newTestClient("shop-a")
	c.hub = hub

	data, _ := json.Marshal(joinRequest{ShopOwnerID: "shop-b"})
	c.handle(&envelope{Event: service.EventJoinShopRoom, Data: data})

	assert.Equal(t, 0, hub.RoomSize("shop-b"))
	assert.Equal(t, 0, hub.RoomSize("shop-a"))
}

func TestClient_HandleRelaysStatusUpdateToRoom(t *testing.T) {
	hub := newTestHub()

	sender := newTestClient("shop-a")
	sender.hub = hub
	watcher := newTestClient("shop-a")
	hub.Join("shop-a", watcher)

	data, _ := json.Marshal(map[string]string{"id": "job-1", "status": "PROCESSING"})
	c := sender
	c.handle(&envelope{Event: service.EventUpdateJobStatus, Data: data})

	env := receiveFrame(t, watcher)
	assert.Equal(t, service.EventJobStatusUpdate, env.Event)
	assert.JSONEq(t, `{"id":"job-1","status":"PROCESSING"}`, string(env.Data))
}
