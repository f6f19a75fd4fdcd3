package queries

import (
	"context"
	"time"

	"hooklens/internal/infra"
	"hooklens/internal/pkg/errs"

	"github.com/google/uuid"
)

type EndpointView struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	OwnerID             *uuid.UUID `json:"owner_id,omitempty"`
	Status              string     `json:"status"`
	MaxRequests         int32      `json:"max_requests"`
	CurrentRequestCount int32      `json:"current_request_count"`
	IsPublic            bool       `json:"is_public"`
	AutoDeleteAfterDays int32      `json:"auto_delete_after_days"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (v *EndpointView) RequestsRemaining() int32 {
	remaining := v.MaxRequests - v.CurrentRequestCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (v *EndpointView) IsExpired(now time.Time) bool {
	if v.Status != "active" {
		return true
	}
	if v.ExpiresAt != nil && !now.Before(*v.ExpiresAt) {
		return true
	}
	return v.CurrentRequestCount >= v.MaxRequests
}

// EndpointHealth is the operational snapshot served by the health view.
type EndpointHealth struct {
	Endpoint    *EndpointView
	IsExpired   bool
	LastRequest *RequestListItem
}

type EndpointReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EndpointView, error)
}

type EndpointQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EndpointView, error)
	GetHealth(ctx context.Context, id uuid.UUID, now time.Time) (*EndpointHealth, error)
}

type endpointQueriesImpl struct {
	endpoints EndpointReadStore
	requests  RequestReadStore
}

func NewEndpointQueries(endpoints EndpointReadStore, requests RequestReadStore) EndpointQueries {
	return &endpointQueriesImpl{endpoints: endpoints, requests: requests}
}

func (q *endpointQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EndpointView, error) {
	view, err := q.endpoints.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEndpointNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *endpointQueriesImpl) GetHealth(ctx context.Context, id uuid.UUID, now time.Time) (*EndpointHealth, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := q.requests.FindByEndpointFirstPage(ctx, id, 1)
	if err != nil {
		return nil, err
	}

	health := &EndpointHealth{
		Endpoint:  view,
		IsExpired: view.IsExpired(now),
	}
	if len(items) > 0 {
		health.LastRequest = items[0]
	}
	return health, nil
}
