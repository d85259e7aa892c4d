// Package feed keeps a shop owner's in-memory job list consistent with the
// server without polling. Push events merge into the list with fixed
// semantics: new jobs prepend with duplicate ids dropped, status updates
// replace only the status and version of the matching job.
package feed

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// JobsAPI is the REST surface the feed needs. *client.Client satisfies it.
type JobsAPI interface {
	ListShopJobs(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PrintJob, error)
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status entity.JobStatus) (*entity.PrintJob, error)
}

// Feed holds the job list and applies pushed events. It is safe for use from
// the UI goroutine while the socket reader mutates it concurrently.
type Feed struct {
	mu   sync.RWMutex
	jobs []*entity.PrintJob

	api         JobsAPI
	shopOwnerID uuid.UUID
	logger      *slog.Logger

	connMu sync.Mutex
	conn   frameWriter
}

// frameWriter is the outbound half of the socket, swapped on reconnect.
type frameWriter interface {
	WriteJSON(v any) error
}

// New creates a Feed for one shop.
func New(api JobsAPI, shopOwnerID uuid.UUID, logger *slog.Logger) *Feed {
	return &Feed{
		api:         api,
		shopOwnerID: shopOwnerID,
		logger:      logger,
	}
}

// Jobs returns a snapshot of the current list, newest first.
func (f *Feed) Jobs() []*entity.PrintJob {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]*entity.PrintJob, len(f.jobs))
	copy(out, f.jobs)

	return out
}

// Refresh replaces the whole list from REST. This is also the only recovery
// path for events missed while disconnected.
func (f *Feed) Refresh(ctx context.Context) error {
	jobs, err := f.api.ListShopJobs(ctx, f.shopOwnerID)
	if err != nil {
		return errors.Wrap(err, "failed to refresh job list")
	}

	f.mu.Lock()
	f.jobs = jobs
	f.mu.Unlock()

	return nil
}

// Filter returns the jobs matching a status tab. "all" matches everything;
// any other tab matches the status case-insensitively.
func (f *Feed) Filter(tab string) []*entity.PrintJob {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]*entity.PrintJob, 0, len(f.jobs))
	for _, job := range f.jobs {
		if tab == "all" || strings.EqualFold(job.Status.String(), tab) {
			out = append(out, job)
		}
	}

	return out
}

// MarkCompleted transitions a job to COMPLETED via REST, then mirrors the
// change locally and notifies other open dashboards. On REST failure the
// local list is left untouched and the error is returned to the caller.
func (f *Feed) MarkCompleted(ctx context.Context, jobID uuid.UUID) error {
	updated, err := f.api.UpdateJobStatus(ctx, jobID, entity.JobStatusCompleted)
	if err != nil {
		return err
	}

	change := &service.JobStatusChange{
		ID:      updated.ID.String(),
		Status:  updated.Status,
		Version: updated.Version,
	}
	f.applyStatusChange(change)

	// Fire-and-forget: the REST response above is the source of truth.
	f.emit(service.EventUpdateJobStatus, change)

	return nil
}

// applyNewJob prepends a pushed job. An event for an id already present is
// dropped entirely, not merged.
func (f *Feed) applyNewJob(job *entity.PrintJob) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.jobs {
		if existing.ID == job.ID {
			return
		}
	}

	f.jobs = append([]*entity.PrintJob{job}, f.jobs...)
}

// applyStatusChange replaces the status and version of the matching job only.
// Changes carrying a version at or below the one already held are stale and
// ignored, so a late push can never undo a newer state.
func (f *Feed) applyStatusChange(change *service.JobStatusChange) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, job := range f.jobs {
		if job.ID.String() != change.ID {
			continue
		}

		if change.Version != 0 && change.Version <= job.Version {
			f.logger.Debug("Ignoring stale status update",
				slog.String("jobID", change.ID),
				slog.Int64("version", change.Version),
			)

			return
		}

		job.Status = change.Status
		if change.Version != 0 {
			job.Version = change.Version
		}

		return
	}
}

func (f *Feed) setConn(conn frameWriter) {
	f.connMu.Lock()
	f.conn = conn
	f.connMu.Unlock()
}

// Connected reports whether the push channel is up. It drives the Offline
// indicator; REST stays fully functional either way.
func (f *Feed) Connected() bool {
	f.connMu.Lock()
	defer f.connMu.Unlock()

	return f.conn != nil
}

// emit sends an outbound event without awaiting acknowledgement. Failures
// are logged only.
func (f *Feed) emit(event string, data any) {
	f.connMu.Lock()
	conn := f.conn
	f.connMu.Unlock()

	if conn == nil {
		return
	}

	if err := conn.WriteJSON(outboundFrame{Event: event, Data: data}); err != nil {
		f.logger.Warn("Failed to emit realtime event",
			slog.String("event", event),
			slog.Any("error", err),
		)
	}
}

type outboundFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
