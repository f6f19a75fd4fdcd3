package commands

import (
	"context"
	"time"

	"hooklens/internal/domain/endpoint"
	"hooklens/internal/pkg/clock"
	"hooklens/internal/pkg/config"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateEndpointInput struct {
	Name          string
	Description   string
	MaxRequests   int // 0 means deployment default
	RetentionDays int // 0 means deployment default
	IsPublic      bool
	OwnerID       *uuid.UUID
	ExpiresAt     *time.Time // nil means now + default window
}

type EndpointCommands interface {
	Create(ctx context.Context, in CreateEndpointInput) (*endpoint.Endpoint, error)
	Disable(ctx context.Context, id uuid.UUID) error
}

type endpointCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.CaptureConfig
}

func NewEndpointCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.CaptureConfig) EndpointCommands {
	return &endpointCommandsImpl{uow: uow, clock: clk, cfg: cfg}
}

func (c *endpointCommandsImpl) Create(ctx context.Context, in CreateEndpointInput) (*endpoint.Endpoint, error) {
	now := c.clock.Now()

	maxRequests := in.MaxRequests
	if maxRequests == 0 {
		maxRequests = c.cfg.DefaultQuota
	}
	quota, err := endpoint.NewQuota(maxRequests, c.cfg.MaxQuota)
	if err != nil {
		return nil, err
	}

	retentionDays := in.RetentionDays
	if retentionDays == 0 {
		retentionDays = c.cfg.DefaultRetentionDays
	}
	retention, err := endpoint.NewRetentionDays(retentionDays, c.cfg.MaxRetentionDays)
	if err != nil {
		return nil, err
	}

	if in.ExpiresAt != nil && !in.ExpiresAt.After(now) {
		return nil, errs.ErrInvalidExpiry
	}

	e := endpoint.NewEndpoint(
		in.Name, in.Description,
		quota, retention,
		in.IsPublic, in.OwnerID,
		in.ExpiresAt,
		now, c.cfg.DefaultExpiry,
	)

	if err := c.uow.Endpoints().Create(ctx, e); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return e, nil
}

func (c *endpointCommandsImpl) Disable(ctx context.Context, id uuid.UUID) error {
	now := c.clock.Now()

	// Existence check first so an unknown token surfaces as not found
	// instead of silently matching zero rows.
	if _, err := c.uow.Endpoints().FindByID(ctx, id); err != nil {
		return mapEndpointLookupErr(err)
	}
	if err := c.uow.Endpoints().MarkDisabled(ctx, id, now); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
