package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	dialTimeout      = 10 * time.Second
	reconnectMin     = time.Second
	reconnectMax     = 30 * time.Second
	reconnectBackoff = 2
)

// inboundFrame mirrors the gateway's envelope.
type inboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Run maintains the push connection until ctx is canceled, redialing with
// exponential backoff after drops. Connection and auth failures are logged
// and surface only as the Offline indicator.
func (f *Feed) Run(ctx context.Context, gatewayURL, token string) error {
	endpoint, err := buildEndpoint(gatewayURL, token)
	if err != nil {
		return err
	}

	delay := reconnectMin
	for {
		if err := f.runOnce(ctx, endpoint); err != nil {
			f.logger.Warn("Realtime connection lost", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= reconnectBackoff
		if delay > reconnectMax {
			delay = reconnectMax
		}
	}
}

func buildEndpoint(gatewayURL, token string) (string, error) {
	u, err := url.Parse(gatewayURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid gateway URL")
	}

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (f *Feed) runOnce(ctx context.Context, endpoint string) error {
	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	conn, resp, err := websocket.DefaultDialer.DialContext(dialCtx, endpoint, nil)
	if err != nil {
		if resp != nil {
			return errors.Wrapf(err, "gateway refused connection with status %d", resp.StatusCode)
		}

		return errors.Wrap(err, "failed to dial gateway")
	}
	defer func() {
		f.setConn(nil)
		_ = conn.Close()
	}()

	// Scope subsequent broadcasts to this shop's room.
	join := outboundFrame{
		Event: service.EventJoinShopRoom,
		Data:  map[string]string{"shopOwnerId": f.shopOwnerID.String()},
	}
	if err := conn.WriteJSON(join); err != nil {
		return errors.Wrap(err, "failed to join shop room")
	}

	f.setConn(conn)
	f.logger.Info("Realtime connection established")

	// Close the connection when ctx ends so ReadMessage unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			return errors.Wrap(err, "read failed")
		}

		var env inboundFrame
		if err := json.Unmarshal(frame, &env); err != nil {
			f.logger.Warn("Discarding malformed frame", slog.Any("error", err))

			continue
		}

		f.dispatch(&env)
	}
}

// dispatch applies one inbound event. Unknown events are ignored.
func (f *Feed) dispatch(env *inboundFrame) {
	switch env.Event {
	case service.EventNewPrintJob:
		var job entity.PrintJob
		if err := json.Unmarshal(env.Data, &job); err != nil {
			f.logger.Warn("Discarding malformed new-job event", slog.Any("error", err))

			return
		}
		f.applyNewJob(&job)

	case service.EventJobStatusUpdate:
		var change service.JobStatusChange
		if err := json.Unmarshal(env.Data, &change); err != nil {
			f.logger.Warn("Discarding malformed status event", slog.Any("error", err))

			return
		}
		f.applyStatusChange(&change)

	default:
		f.logger.Debug("Ignoring unknown event", slog.String("event", env.Event))
	}
}
