package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"printdesk/config"
	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultRedisChannel = "printdesk:jobs"

// redisPublisher fans events out through a Redis pub/sub channel so every
// gateway instance can deliver to its own room members. Each instance both
// publishes and subscribes; a published event reaches local subscribers
// through the same channel round trip.
type redisPublisher struct {
	client  *redis.Client
	channel string
	sink    service.JobEventSink
	logger  *slog.Logger
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRedisPublisher connects to Redis and starts the delivery loop feeding
// the local gateway sink.
func NewRedisPublisher(ctx context.Context, cfg *config.RealtimeConfig, sink service.JobEventSink, logger *slog.Logger) (service.JobEventPublisher, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to connect to redis at %s", cfg.RedisAddr)
	}

	channel := cfg.RedisChannel
	if channel == "" {
		channel = defaultRedisChannel
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p := &redisPublisher{
		client:  client,
		channel: channel,
		sink:    sink,
		logger:  logger,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	go p.deliveryLoop(loopCtx)

	return p, nil
}

func (p *redisPublisher) PublishNewJob(ctx context.Context, job *entity.PrintJob) error {
	return p.publish(ctx, &service.JobEvent{
		Event:  service.EventNewPrintJob,
		ShopID: job.ShopOwnerID.String(),
		Data:   job,
	})
}

func (p *redisPublisher) PublishStatusChange(ctx context.Context, shopOwnerID string, change *service.JobStatusChange) error {
	return p.publish(ctx, &service.JobEvent{
		Event:  service.EventJobStatusUpdate,
		ShopID: shopOwnerID,
		Data:   change,
	})
}

func (p *redisPublisher) publish(ctx context.Context, event *service.JobEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal job event")
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return errors.Wrap(err, "failed to publish job event")
	}

	return nil
}

// deliveryLoop receives fanned-out events and hands them to the local sink.
func (p *redisPublisher) deliveryLoop(ctx context.Context) {
	defer close(p.done)

	sub := p.client.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var event service.JobEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				p.logger.Warn("Dropping malformed job event",
					slog.Any("error", err),
				)

				continue
			}

			p.sink.Deliver(&event)
		}
	}
}

func (p *redisPublisher) Close() error {
	p.cancel()

	select {
	case <-p.done:
	case <-time.After(5 * time.Second):
		p.logger.Warn("Timed out waiting for redis delivery loop to stop")
	}

	return p.client.Close()
}
