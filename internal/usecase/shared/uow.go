package shared

import (
	"context"
	"time"

	"hooklens/internal/domain/capture"
	"hooklens/internal/domain/endpoint"
	"hooklens/internal/infra/repository"

	"github.com/google/uuid"
)

// EndpointRepository is the write-side contract for endpoints. Inspection
// and listing go through the read stores, never through here.
type EndpointRepository interface {
	Create(ctx context.Context, e *endpoint.Endpoint) error
	FindByID(ctx context.Context, id uuid.UUID) (*endpoint.Endpoint, error)
	IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) (*repository.UsageResult, error)
	MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) error
	MarkDisabled(ctx context.Context, id uuid.UUID, now time.Time) error
	ExpirePastWindow(ctx context.Context, now time.Time) (int64, error)
	ExpireOverQuota(ctx context.Context, now time.Time) (int64, error)
	DeletePastRetention(ctx context.Context, now time.Time) (endpoints, requests int64, err error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *capture.Request) (int64, error)
	MarkProcessed(ctx context.Context, id int64, at time.Time) error
}

type AnalyticsRepository interface {
	Apply(ctx context.Context, d repository.AnalyticsDelta) error
}

// Tx exposes transaction-scoped repositories. Repositories obtained from
// a Tx share its connection; anything run on them commits or rolls back
// together.
type Tx interface {
	Endpoints() EndpointRepository
	Requests() RequestRepository
	Analytics() AnalyticsRepository
}

type UnitOfWork interface {
	// Within runs fn in a ReadCommitted transaction, retrying on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Endpoints and friends run single statements on the pool, outside
	// any transaction. Used where one atomic statement is the whole job.
	Endpoints() EndpointRepository
	Requests() RequestRepository
	Analytics() AnalyticsRepository
}
