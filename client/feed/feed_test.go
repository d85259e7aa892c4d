package feed

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	listFn   func(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PrintJob, error)
	updateFn func(ctx context.Context, jobID uuid.UUID, status entity.JobStatus) (*entity.PrintJob, error)
}

func (f *fakeAPI) ListShopJobs(ctx context.Context, shopOwnerID uuid.UUID) ([]*entity.PrintJob, error) {
	return f.listFn(ctx, shopOwnerID)
}

func (f *fakeAPI) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status entity.JobStatus) (*entity.PrintJob, error) {
	return f.updateFn(ctx, jobID, status)
}

type capturingWriter struct {
	frames []any
}

func (w *capturingWriter) WriteJSON(v any) error {
	w.frames = append(w.frames, v)

	return nil
}

func newTestFeed(api JobsAPI) *Feed {
	return New(api, uuid.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func jobFixture(status entity.JobStatus) *entity.PrintJob {
	return &entity.PrintJob{
		ID:           uuid.New(),
		ShopOwnerID:  uuid.New(),
		TokenNumber:  "482913",
		Status:       status,
		CustomerName: "Ravi",
		NoofCopies:   2,
		PrintType:    entity.PrintTypeBlackWhite,
		PaperType:    "A4",
		PrintSide:    entity.PrintSideSingle,
		TotalPages:   5,
		TotalCost:    15,
		Version:      1,
		CreatedAt:    time.Now(),
	}
}

func TestFeed_NewJobPrepends(t *testing.T) {
	feed := newTestFeed(nil)

	older := jobFixture(entity.JobStatusPending)
	newer := jobFixture(entity.JobStatusPending)

	feed.applyNewJob(older)
	feed.applyNewJob(newer)

	jobs := feed.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, newer.ID, jobs[0].ID)
	assert.Equal(t, older.ID, jobs[1].ID)
}

func TestFeed_DuplicateNewJobDropped(t *testing.T) {
	feed := newTestFeed(nil)

	original := jobFixture(entity.JobStatusPending)
	feed.applyNewJob(original)

	// A second event for the same id carries different fields. It must be
	// dropped entirely, not merged into the existing entry.
	duplicate := *original
	duplicate.CustomerName = "Someone Else"
	duplicate.Status = entity.JobStatusCompleted
	feed.applyNewJob(&duplicate)

	jobs := feed.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "Ravi", jobs[0].CustomerName)
	assert.Equal(t, entity.JobStatusPending, jobs[0].Status)
}

func TestFeed_StatusChangeReplacesStatusOnly(t *testing.T) {
	feed := newTestFeed(nil)

	target := jobFixture(entity.JobStatusPending)
	other := jobFixture(entity.JobStatusPending)
	feed.applyNewJob(other)
	feed.applyNewJob(target)

	feed.applyStatusChange(&service.JobStatusChange{
		ID:      target.ID.String(),
		Status:  entity.JobStatusCompleted,
		Version: 2,
	})

	jobs := feed.Jobs()
	require.Len(t, jobs, 2)

	updated := jobs[0]
	assert.Equal(t, entity.JobStatusCompleted, updated.Status)
	assert.Equal(t, int64(2), updated.Version)
	// Every other field of the target is preserved.
	assert.Equal(t, "Ravi", updated.CustomerName)
	assert.Equal(t, "482913", updated.TokenNumber)
	assert.Equal(t, float64(15), updated.TotalCost)
	// The other job is untouched.
	assert.Equal(t, entity.JobStatusPending, jobs[1].Status)
}

func TestFeed_StaleStatusChangeIgnored(t *testing.T) {
	feed := newTestFeed(nil)

	job := jobFixture(entity.JobStatusProcessing)
	job.Version = 3
	feed.applyNewJob(job)

	feed.applyStatusChange(&service.JobStatusChange{
		ID:      job.ID.String(),
		Status:  entity.JobStatusPending,
		Version: 2,
	})

	jobs := feed.Jobs()
	assert.Equal(t, entity.JobStatusProcessing, jobs[0].Status)
	assert.Equal(t, int64(3), jobs[0].Version)
}

func TestFeed_StatusChangeForUnknownJobIsNoop(t *testing.T) {
	feed := newTestFeed(nil)

	job := jobFixture(entity.JobStatusPending)
	feed.applyNewJob(job)

	feed.applyStatusChange(&service.JobStatusChange{
		ID:     uuid.NewString(),
		Status: entity.JobStatusCompleted,
	})

	assert.Equal(t, entity.JobStatusPending, feed.Jobs()[0].Status)
}

func TestFeed_Filter(t *testing.T) {
	feed := newTestFeed(nil)

	pending := jobFixture(entity.JobStatusPending)
	completed := jobFixture(entity.JobStatusCompleted)
	feed.applyNewJob(pending)
	feed.applyNewJob(completed)

	assert.Len(t, feed.Filter("all"), 2)

	got := feed.Filter("completed")
	require.Len(t, got, 1)
	assert.Equal(t, completed.ID, got[0].ID)

	got = feed.Filter("PENDING")
	require.Len(t, got, 1)
	assert.Equal(t, pending.ID, got[0].ID)

	assert.Empty(t, feed.Filter("processing"))
}

func TestFeed_MarkCompletedAppliesAndEmits(t *testing.T) {
	job := jobFixture(entity.JobStatusProcessing)
	nextVersion := job.Version + 1

	api := &fakeAPI{
		updateFn: func(_ context.Context, jobID uuid.UUID, status entity.JobStatus) (*entity.PrintJob, error) {
			require.Equal(t, job.ID, jobID)
			require.Equal(t, entity.JobStatusCompleted, status)

			updated := *job
			updated.Status = entity.JobStatusCompleted
			updated.Version = nextVersion

			return &updated, nil
		},
	}

	feed := newTestFeed(api)
	feed.applyNewJob(job)

	writer := &capturingWriter{}
	feed.setConn(writer)

	require.NoError(t, feed.MarkCompleted(context.Background(), job.ID))

	jobs := feed.Jobs()
	assert.Equal(t, entity.JobStatusCompleted, jobs[0].Status)
	assert.Equal(t, nextVersion, jobs[0].Version)

	require.Len(t, writer.frames, 1)
	frame, ok := writer.frames[0].(outboundFrame)
	require.True(t, ok)
	assert.Equal(t, service.EventUpdateJobStatus, frame.Event)

	change, ok := frame.Data.(*service.JobStatusChange)
	require.True(t, ok)
	assert.Equal(t, job.ID.String(), change.ID)
	assert.Equal(t, entity.JobStatusCompleted, change.Status)
}

func TestFeed_MarkCompletedLeavesStateOnFailure(t *testing.T) {
	job := jobFixture(entity.JobStatusProcessing)

	api := &fakeAPI{
		updateFn: func(context.Context, uuid.UUID, entity.JobStatus) (*entity.PrintJob, error) {
			return nil, errors.New("backend unavailable")
		},
	}

	feed := newTestFeed(api)
	feed.applyNewJob(job)

	writer := &capturingWriter{}
	feed.setConn(writer)

	err := feed.MarkCompleted(context.Background(), job.ID)
	require.Error(t, err)

	// No local mutation and no socket emission happened.
	assert.Equal(t, entity.JobStatusProcessing, feed.Jobs()[0].Status)
	assert.Empty(t, writer.frames)
}

func TestFeed_RefreshReplacesList(t *testing.T) {
	fresh := []*entity.PrintJob{
		jobFixture(entity.JobStatusCompleted),
		jobFixture(entity.JobStatusPending),
	}

	shopOwnerID := uuid.New()
	api := &fakeAPI{
		listFn: func(_ context.Context, id uuid.UUID) ([]*entity.PrintJob, error) {
			require.Equal(t, shopOwnerID, id)

			return fresh, nil
		},
	}

	feed := New(api, shopOwnerID, slog.New(slog.NewTextHandler(io.Discard, nil)))
	feed.applyNewJob(jobFixture(entity.JobStatusPending))

	require.NoError(t, feed.Refresh(context.Background()))

	jobs := feed.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, fresh[0].ID, jobs[0].ID)
}

func TestFeed_ConnectedTracksSocket(t *testing.T) {
	feed := newTestFeed(nil)

	assert.False(t, feed.Connected())

	feed.setConn(&capturingWriter{})
	assert.True(t, feed.Connected())

	feed.setConn(nil)
	assert.False(t, feed.Connected())
}
