// Package ws implements the realtime gateway: websocket connections grouped
// into per-shop rooms, fed by the job event fan-out.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"printdesk/internal/domain/service"
)

// Hub tracks every live connection of this gateway instance and the rooms
// they joined. It is the local JobEventSink: events fanned out by the
// publisher land here and are pushed to the room's connections.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Client]struct{}
	clients map[*Client]map[string]struct{}
	logger  *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]struct{}),
		clients: make(map[*Client]map[string]struct{}),
		logger:  logger,
	}
}

// envelope is the JSON frame exchanged with connected dashboards.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Join adds a client to a room.
func (h *Hub) Join(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[room]; !ok {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}

	if _, ok := h.clients[c]; !ok {
		h.clients[c] = make(map[string]struct{})
	}
	h.clients[c][room] = struct{}{}
}

// Remove drops a client from every room it joined.
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room := range h.clients[c] {
		delete(h.rooms[room], c)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.clients, c)
}

// RoomSize returns the number of connections currently in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[room])
}

// Deliver implements service.JobEventSink. The event is serialized once and
// pushed to every connection in the owning shop's room. Slow consumers are
// skipped; a dropped frame only delays the dashboard until its next refresh.
func (h *Hub) Deliver(event *service.JobEvent) {
	data, err := json.Marshal(event.Data)
	if err != nil {
		h.logger.Warn("Failed to serialize job event", slog.String("event", event.Event), slog.Any("error", err))

		return
	}

	h.broadcast(event.ShopID, &envelope{Event: event.Event, Data: data})
}

func (h *Hub) broadcast(room string, env *envelope) {
	frame, err := json.Marshal(env)
	if err != nil {
		h.logger.Warn("Failed to serialize frame", slog.String("event", env.Event), slog.Any("error", err))

		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[room] {
		select {
		case c.send <- frame:
		default:
			h.logger.Warn("Dropping frame for slow consumer", slog.String("room", room))
		}
	}
}
