package ws

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"printdesk/config"
	"printdesk/internal/delivery"
	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/lifecycle"
	"printdesk/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the realtime gateway, injected by Fx.
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	Hub          *Hub
	TokenService service.TokenService
}

type wsServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	hub      *Hub
	tokenSvc service.TokenService
	server   *http.Server
	upgrader websocket.Upgrader
}

// disabledServer stands in for the gateway when realtime is not configured.
// Dashboards fall back to REST refresh; nothing listens.
type disabledServer struct {
	logger *slog.Logger
}

func (s *disabledServer) Serve(ctx context.Context) error {
	s.logger.Info("Realtime not configured, gateway disabled")

	return nil
}

// NewServer builds the websocket gateway listening on its own port next to
// the REST API. Without realtime configuration the gateway stays off, the
// same degraded state the no-op publisher represents.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Config.Realtime == nil || params.Config.Realtime.Port == 0 {
		return &disabledServer{logger: params.Logger}, nil
	}

	srv := &wsServer{
		cfg:      params.Config,
		logger:   params.Logger,
		hub:      params.Hub,
		tokenSvc: params.TokenService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxFrameSize,
			WriteBufferSize: maxFrameSize,
			// The dashboard origin is enforced by the token, not the Origin
			// header, so cross-origin upgrades are allowed.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleUpgrade)

	srv.server = &http.Server{
		Addr:    net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Config.Realtime.Port)),
		Handler: mux,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve blocks on the gateway listener.
func (s *wsServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting realtime gateway", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve websocket gateway")
	}

	return nil
}

func (s *wsServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down realtime gateway")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

// handleUpgrade authenticates the caller and promotes the connection to a
// websocket. Only shop owners hold job rooms, so only their tokens upgrade.
func (s *wsServer) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)

		return
	}

	claims, err := s.tokenSvc.ValidateToken(token)
	if err != nil {
		s.logger.Warn("Rejected websocket upgrade", slog.Any("error", err))
		http.Error(w, "invalid token", http.StatusUnauthorized)

		return
	}

	if claims.Role != entity.RoleShopOwner {
		http.Error(w, "forbidden", http.StatusForbidden)

		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		s.logger.Warn("Websocket upgrade failed", slog.Any("error", err))

		return
	}

	client := newClient(s.hub, conn, claims.ShopOwnerID.String(), s.logger)

	go client.writePump()
	go client.readPump()
}

// Module provides the realtime gateway and its hub. The hub doubles as the
// local sink the job event fan-out delivers into.
//
//nolint:gochecknoglobals // fx module pattern
var Module = fx.Options(
	fx.Provide(
		NewHub,
		func(h *Hub) service.JobEventSink { return h },
	),
)
