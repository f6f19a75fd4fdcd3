package commands

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"hooklens/internal/domain/capture"
	"hooklens/internal/infra"
	"hooklens/internal/infra/repository"
	"hooklens/internal/pkg/clock"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/shared"
	"hooklens/internal/usecase/tasks"

	"github.com/google/uuid"
)

// CaptureResult is the acknowledgement returned to the sender.
type CaptureResult struct {
	RequestID    int64
	EndpointID   uuid.UUID
	ReceivedAt   time.Time
	RequestCount int32
}

type CaptureCommands interface {
	// Capture records one inbound request against the endpoint. The raw
	// request and its (already bounded) body are normalized here; the
	// caller only routes and answers.
	Capture(ctx context.Context, endpointID uuid.UUID, raw *http.Request, body []byte) (*CaptureResult, error)
}

type captureCommandsImpl struct {
	uow   shared.UnitOfWork
	queue shared.TaskQueue
	clock clock.Clock
}

func NewCaptureCommands(uow shared.UnitOfWork, queue shared.TaskQueue, clk clock.Clock) CaptureCommands {
	return &captureCommandsImpl{uow: uow, queue: queue, clock: clk}
}

func (c *captureCommandsImpl) Capture(ctx context.Context, endpointID uuid.UUID, raw *http.Request, body []byte) (*CaptureResult, error) {
	now := c.clock.Now()
	req := capture.FromHTTP(endpointID, raw, body, now)

	var (
		usage     *repository.UsageResult
		requestID int64
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Endpoints().IncrementUsage(ctx, endpointID, now)
		if err != nil {
			return err
		}
		usage = u

		id, err := tx.Requests().Create(ctx, req)
		if err != nil {
			return err
		}
		requestID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, c.rejectUnusable(ctx, endpointID, now)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	req.ID = requestID

	// Analytics runs after the commit so its failure can never take the
	// capture down with it; a failed apply is retried off the queue.
	delta := repository.NewAnalyticsDelta(req)
	if err := c.uow.Analytics().Apply(ctx, delta); err != nil {
		slog.Error("analytics update failed, scheduling retry",
			"endpoint_id", endpointID,
			"request_id", requestID,
			"error", err.Error())
		if qerr := c.queue.Enqueue(ctx, tasks.TaskAnalyticsRetry, delta); qerr != nil {
			slog.Error("failed to enqueue analytics retry",
				"endpoint_id", endpointID,
				"error", qerr.Error())
		}
	}

	if err := c.queue.Enqueue(ctx, tasks.TaskProcessRequest, tasks.ProcessRequestPayload{RequestID: requestID}); err != nil {
		slog.Warn("failed to enqueue post-capture processing",
			"request_id", requestID,
			"error", err.Error())
	}

	return &CaptureResult{
		RequestID:    requestID,
		EndpointID:   endpointID,
		ReceivedAt:   now,
		RequestCount: usage.RequestCount,
	}, nil
}

// rejectUnusable turns a zero-row conditional increment into the right
// rejection. An unknown token is not found; anything else is gone. If
// the stored status still says active (window elapsed but no sweep
// yet), the endpoint is expired lazily on the way out.
func (c *captureCommandsImpl) rejectUnusable(ctx context.Context, endpointID uuid.UUID, now time.Time) error {
	e, err := c.uow.Endpoints().FindByID(ctx, endpointID)
	if err != nil {
		return mapEndpointLookupErr(err)
	}

	if e.Status().IsActive() {
		if err := c.uow.Endpoints().MarkExpired(ctx, endpointID, now); err != nil {
			slog.Warn("lazy expiry failed",
				"endpoint_id", endpointID,
				"error", err.Error())
		}
	}
	return errs.ErrEndpointGone
}

func mapEndpointLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrEndpointNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
