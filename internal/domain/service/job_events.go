package service

import (
	"context"

	"printdesk/internal/domain/entity"
)

// Realtime event names shared by the gateway, the fan-out layer and the SDK.
// The vocabulary is part of the public wire contract.
const (
	EventJoinShopRoom     = "joinShopRoom"
	EventJoinPrintJobRoom = "joinPrintJobRoom"
	EventUpdateJobStatus  = "updatePrintJobStatus"
	EventNewPrintJob      = "newPrintJob"
	EventJobStatusUpdate  = "printJobStatusUpdate"
)

// JobStatusChange is the payload of a printJobStatusUpdate event. It carries
// only the fields a receiver may overwrite: everything else the client
// already holds is preserved.
type JobStatusChange struct {
	ID      string           `json:"id"`
	Status  entity.JobStatus `json:"status"`
	Version int64            `json:"version,omitempty"`
}

// JobEvent is the envelope broadcast to a shop's room.
type JobEvent struct {
	Event  string `json:"event"`
	ShopID string `json:"shopId"`
	Data   any    `json:"data"`
}

// JobEventPublisher fans job events out to every gateway instance holding
// connections for the shop's room.
type JobEventPublisher interface {
	// PublishNewJob announces a freshly created job to the owning shop's room.
	PublishNewJob(ctx context.Context, job *entity.PrintJob) error

	// PublishStatusChange announces a status transition to the owning shop's room.
	PublishStatusChange(ctx context.Context, shopOwnerID string, change *JobStatusChange) error

	// Close releases any resources held by the publisher.
	Close() error
}

// JobEventSink receives fanned-out events and delivers them to the
// connections of the local gateway instance.
type JobEventSink interface {
	// Deliver pushes an event to every local subscriber of the shop's room.
	Deliver(event *JobEvent)
}
