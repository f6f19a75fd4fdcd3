package readstore

import (
	"context"
	"time"

	"hooklens/internal/infra"
	"hooklens/internal/infra/db"
	"hooklens/internal/pkg/pgconv"
	"hooklens/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EndpointReadStore struct {
	db db.DBTX
}

func NewEndpointReadStore(dbtx db.DBTX) *EndpointReadStore {
	return &EndpointReadStore{db: dbtx}
}

func (r *EndpointReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EndpointView, error) {
	const query = `
		SELECT id, name, description, owner_id, status, max_requests,
		       current_request_count, is_public, auto_delete_after_days,
		       expires_at, created_at, updated_at
		FROM endpoints
		WHERE id = $1`

	var (
		view      queries.EndpointView
		ownerID   pgtype.UUID
		expiresAt pgtype.Timestamptz
		createdAt time.Time
		updatedAt time.Time
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Description, &ownerID, &view.Status,
		&view.MaxRequests, &view.CurrentRequestCount, &view.IsPublic,
		&view.AutoDeleteAfterDays, &expiresAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("endpoint not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get endpoint view", err)
	}

	view.OwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	view.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	view.CreatedAt = createdAt
	view.UpdatedAt = updatedAt
	return &view, nil
}
