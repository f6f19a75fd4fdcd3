package tasks

import (
	"context"
	"encoding/json"
	"log/slog"

	"hooklens/internal/infra"
	"hooklens/internal/infra/repository"
	"hooklens/internal/pkg/clock"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/queries"
	"hooklens/internal/usecase/shared"

	"github.com/google/uuid"
)

// Handlers owns the queue-side of every task. Each method returns a
// payload handler compatible with the queue's Register signature.
type Handlers struct {
	uow      shared.UnitOfWork
	requests queries.RequestReadStore
	clock    clock.Clock
}

func NewHandlers(uow shared.UnitOfWork, requests queries.RequestReadStore, clk clock.Clock) *Handlers {
	return &Handlers{uow: uow, requests: requests, clock: clk}
}

// ProcessRequest flips the processed flag on a captured request. A
// request that vanished under us (retention sweep raced the queue) is
// dropped without a retry.
func (h *Handlers) ProcessRequest() func(ctx context.Context, payload []byte) error {
	return func(ctx context.Context, payload []byte) error {
		var p ProcessRequestPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return errs.Wrap(err, "malformed process-request payload")
		}

		err := h.uow.Requests().MarkProcessed(ctx, p.RequestID, h.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Warn("captured request gone before processing", "request_id", p.RequestID)
				return nil
			}
			return err
		}
		return nil
	}
}

// AnalyticsRetry re-applies a delta that failed on the capture path.
func (h *Handlers) AnalyticsRetry() func(ctx context.Context, payload []byte) error {
	return func(ctx context.Context, payload []byte) error {
		var d repository.AnalyticsDelta
		if err := json.Unmarshal(payload, &d); err != nil {
			return errs.Wrap(err, "malformed analytics delta payload")
		}
		return h.uow.Analytics().Apply(ctx, d)
	}
}

// ExportRequests renders every captured request of an endpoint to the
// path decided at enqueue time.
func (h *Handlers) ExportRequests() func(ctx context.Context, payload []byte) error {
	return func(ctx context.Context, payload []byte) error {
		var p ExportRequestsPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return errs.Wrap(err, "malformed export payload")
		}
		endpointID, err := uuid.Parse(p.EndpointID)
		if err != nil {
			return errs.Wrap(err, "malformed endpoint id in export payload")
		}

		views, err := h.requests.FindAllByEndpoint(ctx, endpointID)
		if err != nil {
			return err
		}

		if err := renderExport(p.OutPath, p.Format, views); err != nil {
			return err
		}
		slog.Info("export rendered",
			"endpoint_id", endpointID,
			"format", p.Format,
			"path", p.OutPath,
			"requests", len(views))
		return nil
	}
}
