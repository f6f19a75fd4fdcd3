package commands

import (
	"context"

	"hooklens/internal/pkg/clock"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/shared"
)

// SweepResult reports what one cleanup pass did.
type SweepResult struct {
	ExpiredByWindow  int64 `json:"expired_by_window"`
	ExpiredByQuota   int64 `json:"expired_by_quota"`
	DeletedEndpoints int64 `json:"deleted_endpoints"`
	DeletedRequests  int64 `json:"deleted_requests"`
}

type SweepCommands interface {
	// Run executes one full cleanup pass: expire past-window endpoints,
	// expire over-quota stragglers, then drop non-active endpoints past
	// their retention horizon. Each step is a single statement, so the
	// pass is idempotent and safe to run alongside live captures.
	Run(ctx context.Context) (*SweepResult, error)
}

type sweepCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSweepCommands(uow shared.UnitOfWork, clk clock.Clock) SweepCommands {
	return &sweepCommandsImpl{uow: uow, clock: clk}
}

func (c *sweepCommandsImpl) Run(ctx context.Context) (*SweepResult, error) {
	now := c.clock.Now()
	repo := c.uow.Endpoints()

	expiredWindow, err := repo.ExpirePastWindow(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	expiredQuota, err := repo.ExpireOverQuota(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	deletedEndpoints, deletedRequests, err := repo.DeletePastRetention(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &SweepResult{
		ExpiredByWindow:  expiredWindow,
		ExpiredByQuota:   expiredQuota,
		DeletedEndpoints: deletedEndpoints,
		DeletedRequests:  deletedRequests,
	}, nil
}
