// Package realtime fans print job events out to websocket gateway instances.
package realtime

import (
	"context"
	"log/slog"

	"printdesk/config"
	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider types for the realtime fan-out layer.
const (
	ProviderLocal = "local"
	ProviderRedis = "redis"
)

// noopPublisher is a no-op implementation when realtime is disabled.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishNewJob(ctx context.Context, job *entity.PrintJob) error {
	p.logger.Debug("[NoopRealtime] Event publishing disabled, skipping",
		slog.String("job_id", job.ID.String()),
	)

	return nil
}

func (p *noopPublisher) PublishStatusChange(ctx context.Context, shopOwnerID string, change *service.JobStatusChange) error {
	p.logger.Debug("[NoopRealtime] Event publishing disabled, skipping",
		slog.String("job_id", change.ID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// localPublisher delivers events straight to the in-process gateway. It is
// the single-instance deployment path.
type localPublisher struct {
	sink service.JobEventSink
}

// NewLocalPublisher creates a publisher that bypasses any broker.
func NewLocalPublisher(sink service.JobEventSink) service.JobEventPublisher {
	return &localPublisher{sink: sink}
}

func (p *localPublisher) PublishNewJob(_ context.Context, job *entity.PrintJob) error {
	p.sink.Deliver(&service.JobEvent{
		Event:  service.EventNewPrintJob,
		ShopID: job.ShopOwnerID.String(),
		Data:   job,
	})

	return nil
}

func (p *localPublisher) PublishStatusChange(_ context.Context, shopOwnerID string, change *service.JobStatusChange) error {
	p.sink.Deliver(&service.JobEvent{
		Event:  service.EventJobStatusUpdate,
		ShopID: shopOwnerID,
		Data:   change,
	})

	return nil
}

func (p *localPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for JobEventPublisher, injected by Fx.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Sink   service.JobEventSink
}

// NewJobEventPublisher creates a JobEventPublisher based on configuration.
func NewJobEventPublisher(params PublisherParams) (service.JobEventPublisher, error) {
	cfg := params.Config.Realtime
	logger := params.Logger

	// If realtime is not configured, return a no-op publisher.
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Realtime not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.JobEventPublisher
	var err error

	switch cfg.Provider {
	case ProviderLocal:
		logger.Info("Using local in-process realtime delivery")

		publisher = NewLocalPublisher(params.Sink)

	case ProviderRedis:
		if cfg.RedisAddr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using Redis pub/sub realtime fan-out",
			slog.String("addr", cfg.RedisAddr),
			slog.String("channel", cfg.RedisChannel),
		)

		publisher, err = NewRedisPublisher(params.Ctx, cfg, params.Sink, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown realtime provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown.
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing JobEventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the realtime FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewJobEventPublisher),
)
