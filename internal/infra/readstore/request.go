package readstore

import (
	"context"
	"encoding/json"
	"time"

	"hooklens/internal/infra"
	"hooklens/internal/infra/db"
	"hooklens/internal/pkg/pgconv"
	"hooklens/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const requestViewColumns = `
	id, endpoint_id, method, path, query_string, headers, body,
	content_type, content_length, ip_address, user_agent, referer,
	processed, processed_at, received_at`

func (r *RequestReadStore) FindByID(ctx context.Context, endpointID uuid.UUID, id int64) (*queries.RequestView, error) {
	query := `SELECT` + requestViewColumns + `
		FROM captured_requests
		WHERE endpoint_id = $1 AND id = $2`

	view, err := scanRequestView(r.db.QueryRow(ctx, query, endpointID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("captured request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get captured request", err)
	}
	return view, nil
}

func (r *RequestReadStore) FindByEndpointFirstPage(ctx context.Context, endpointID uuid.UUID, limit int32) ([]*queries.RequestListItem, error) {
	const query = `
		SELECT id, method, content_type, content_length, ip_address,
		       processed, received_at
		FROM captured_requests
		WHERE endpoint_id = $1
		ORDER BY received_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, endpointID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list captured requests first page", err)
	}
	defer rows.Close()
	return collectListItems(rows)
}

func (r *RequestReadStore) FindByEndpointKeyset(ctx context.Context, endpointID uuid.UUID, lastReceivedAt time.Time, lastID int64, limit int32) ([]*queries.RequestListItem, error) {
	const query = `
		SELECT id, method, content_type, content_length, ip_address,
		       processed, received_at
		FROM captured_requests
		WHERE endpoint_id = $1
		  AND (received_at, id) < ($2, $3)
		ORDER BY received_at DESC, id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, endpointID, lastReceivedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list captured requests keyset page", err)
	}
	defer rows.Close()
	return collectListItems(rows)
}

// FindAllByEndpoint streams the full history, newest first. Used by the
// export task, never by the request path.
func (r *RequestReadStore) FindAllByEndpoint(ctx context.Context, endpointID uuid.UUID) ([]*queries.RequestView, error) {
	query := `SELECT` + requestViewColumns + `
		FROM captured_requests
		WHERE endpoint_id = $1
		ORDER BY received_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, endpointID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list all captured requests", err)
	}
	defer rows.Close()

	var views []*queries.RequestView
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan captured request", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read captured request rows", err)
	}
	return views, nil
}

func (r *RequestReadStore) CountByEndpoint(ctx context.Context, endpointID uuid.UUID) (int64, error) {
	const query = `SELECT count(*) FROM captured_requests WHERE endpoint_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, endpointID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count captured requests", err)
	}
	return count, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var (
		view        queries.RequestView
		headersRaw  []byte
		processedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.EndpointID, &view.Method, &view.Path,
		&view.QueryString, &headersRaw, &view.Body, &view.ContentType,
		&view.ContentLength, &view.IPAddress, &view.UserAgent,
		&view.Referer, &view.Processed, &processedAt, &view.ReceivedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(headersRaw, &view.Headers); err != nil {
		return nil, err
	}
	view.ProcessedAt = pgconv.TimePtrFromPgtype(processedAt)
	return &view, nil
}

func collectListItems(rows pgx.Rows) ([]*queries.RequestListItem, error) {
	var items []*queries.RequestListItem
	for rows.Next() {
		var item queries.RequestListItem
		err := rows.Scan(
			&item.ID, &item.Method, &item.ContentType, &item.ContentLength,
			&item.IPAddress, &item.Processed, &item.ReceivedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan captured request row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read captured request rows", err)
	}
	return items, nil
}
