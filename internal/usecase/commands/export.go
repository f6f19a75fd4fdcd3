package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"hooklens/internal/pkg/clock"
	"hooklens/internal/pkg/config"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/shared"
	"hooklens/internal/usecase/tasks"

	"github.com/google/uuid"
)

const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

// ExportTicket identifies a scheduled export. The file appears at Path
// once the render task has run; the API hands the ticket back without
// waiting.
type ExportTicket struct {
	EndpointID uuid.UUID
	Format     string
	Path       string
	EnqueuedAt time.Time
}

type ExportCommands interface {
	Start(ctx context.Context, endpointID uuid.UUID, format string) (*ExportTicket, error)
}

type exportCommandsImpl struct {
	uow   shared.UnitOfWork
	queue shared.TaskQueue
	clock clock.Clock
	cfg   config.ExportConfig
}

func NewExportCommands(uow shared.UnitOfWork, queue shared.TaskQueue, clk clock.Clock, cfg config.ExportConfig) ExportCommands {
	return &exportCommandsImpl{uow: uow, queue: queue, clock: clk, cfg: cfg}
}

func (c *exportCommandsImpl) Start(ctx context.Context, endpointID uuid.UUID, format string) (*ExportTicket, error) {
	if format != ExportFormatJSON && format != ExportFormatCSV {
		return nil, errs.ErrInvalidExportFormat
	}

	if _, err := c.uow.Endpoints().FindByID(ctx, endpointID); err != nil {
		return nil, mapEndpointLookupErr(err)
	}

	now := c.clock.Now()
	name := fmt.Sprintf("%s_%s.%s", endpointID, now.UTC().Format("20060102T150405Z"), format)
	outPath := filepath.Join(c.cfg.Dir, name)

	payload := tasks.ExportRequestsPayload{
		EndpointID: endpointID.String(),
		Format:     format,
		OutPath:    outPath,
	}
	if err := c.queue.Enqueue(ctx, tasks.TaskExportRequests, payload); err != nil {
		return nil, errs.Wrap(err, "failed to schedule export")
	}

	return &ExportTicket{
		EndpointID: endpointID,
		Format:     format,
		Path:       outPath,
		EnqueuedAt: now,
	}, nil
}
