package ws

import (
	"encoding/json"
	"log/slog"
	"time"

	"printdesk/internal/domain/service"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxFrameSize = 4 * 1024

	sendBuffer = 16
)

// Client is one authenticated dashboard connection. The token's shop ID pins
// which rooms the connection may join and act on.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	shopID string
	send   chan []byte
	logger *slog.Logger
}

func newClient(hub *Hub, conn *websocket.Conn, shopID string, logger *slog.Logger) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		shopID: shopID,
		send:   make(chan []byte, sendBuffer),
		logger: logger,
	}
}

// joinRequest is the data of joinShopRoom / joinPrintJobRoom frames.
type joinRequest struct {
	ShopOwnerID string `json:"shopOwnerId"`
	PrintJobID  string `json:"printJobId"`
}

// readPump consumes inbound frames until the connection drops.
func (c *Client) readPump() {
	defer func() {
		c.hub.Remove(c)
		close(c.send)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("Websocket closed unexpectedly", slog.Any("error", err))
			}

			return
		}

		var env envelope
		if err := json.Unmarshal(frame, &env); err != nil {
			c.logger.Warn("Discarding malformed frame", slog.Any("error", err))

			continue
		}

		c.handle(&env)
	}
}

// handle dispatches one inbound frame. Unknown events are ignored so older
// dashboards stay compatible with newer gateways.
func (c *Client) handle(env *envelope) {
	switch env.Event {
	case service.EventJoinShopRoom:
		var req joinRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return
		}
		// A shop owner only ever joins their own room.
		if req.ShopOwnerID != c.shopID {
			c.logger.Warn("Rejected join for foreign shop room",
				slog.String("shopID", c.shopID),
				slog.String("requested", req.ShopOwnerID),
			)

			return
		}
		c.hub.Join(c.shopID, c)

	case service.EventJoinPrintJobRoom:
		var req joinRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return
		}
		if req.PrintJobID == "" {
			return
		}
		c.hub.Join("job:"+req.PrintJobID, c)

	case service.EventUpdateJobStatus:
		// Fire-and-forget relay to the shop's room. The REST endpoint is the
		// source of truth; this only keeps other open dashboards in sync.
		c.hub.broadcast(c.shopID, &envelope{Event: service.EventJobStatusUpdate, Data: env.Data})

	default:
		c.logger.Debug("Ignoring unknown event", slog.String("event", env.Event))
	}
}

// writePump pushes queued frames and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
