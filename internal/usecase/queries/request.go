package queries

import (
	"context"
	"time"

	"hooklens/internal/infra"
	"hooklens/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestView struct {
	ID            int64             `json:"id"`
	EndpointID    uuid.UUID         `json:"endpoint_id"`
	Method        string            `json:"method"`
	Path          string            `json:"path"`
	QueryString   string            `json:"query_string"`
	Headers       map[string]string `json:"headers"`
	Body          string            `json:"body"`
	ContentType   string            `json:"content_type"`
	ContentLength int64             `json:"content_length"`
	IPAddress     string            `json:"ip_address"`
	UserAgent     string            `json:"user_agent"`
	Referer       string            `json:"referer"`
	Processed     bool              `json:"processed"`
	ProcessedAt   *time.Time        `json:"processed_at,omitempty"`
	ReceivedAt    time.Time         `json:"received_at"`
}

type RequestListItem struct {
	ID            int64     `json:"id"`
	Method        string    `json:"method"`
	ContentType   string    `json:"content_type"`
	ContentLength int64     `json:"content_length"`
	IPAddress     string    `json:"ip_address"`
	Processed     bool      `json:"processed"`
	ReceivedAt    time.Time `json:"received_at"`
}

type RequestReadStore interface {
	FindByID(ctx context.Context, endpointID uuid.UUID, id int64) (*RequestView, error)
	FindByEndpointFirstPage(ctx context.Context, endpointID uuid.UUID, limit int32) ([]*RequestListItem, error)
	FindByEndpointKeyset(ctx context.Context, endpointID uuid.UUID, lastReceivedAt time.Time, lastID int64, limit int32) ([]*RequestListItem, error)
	FindAllByEndpoint(ctx context.Context, endpointID uuid.UUID) ([]*RequestView, error)
	CountByEndpoint(ctx context.Context, endpointID uuid.UUID) (int64, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, endpointID uuid.UUID, id int64) (*RequestView, error)
	ListByEndpoint(ctx context.Context, endpointID uuid.UUID, cursor *Cursor, limit int) ([]*RequestListItem, *Cursor, error)
}

type requestQueriesImpl struct {
	repo      RequestReadStore
	endpoints EndpointReadStore
}

func NewRequestQueries(repo RequestReadStore, endpoints EndpointReadStore) RequestQueries {
	return &requestQueriesImpl{repo: repo, endpoints: endpoints}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, endpointID uuid.UUID, id int64) (*RequestView, error) {
	view, err := q.repo.FindByID(ctx, endpointID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListByEndpoint(ctx context.Context, endpointID uuid.UUID, cursor *Cursor, limit int) ([]*RequestListItem, *Cursor, error) {
	// An empty page for an unknown endpoint would be indistinguishable
	// from an idle one, so resolve the endpoint first.
	if _, err := q.endpoints.FindByID(ctx, endpointID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrEndpointNotFound
		}
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*RequestListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByEndpointFirstPage(ctx, endpointID, int32(limit+1))
	} else {
		lastReceivedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByEndpointKeyset(ctx, endpointID, lastReceivedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.ReceivedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
