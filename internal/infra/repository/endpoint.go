package repository

import (
	"context"
	"time"

	"hooklens/internal/domain/endpoint"
	"hooklens/internal/infra"
	"hooklens/internal/infra/db"
	"hooklens/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type EndpointRepository struct {
	db db.DBTX
}

func NewEndpointRepository(dbtx db.DBTX) *EndpointRepository {
	return &EndpointRepository{db: dbtx}
}

// UsageResult is the post-increment state returned by IncrementUsage.
type UsageResult struct {
	RequestCount int32
	Status       endpoint.Status
}

func (r *EndpointRepository) Create(ctx context.Context, e *endpoint.Endpoint) error {
	const query = `
		INSERT INTO endpoints (
			id, name, description, owner_id, status, max_requests,
			current_request_count, is_public, auto_delete_after_days,
			expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, query,
		e.ID(),
		e.Name(),
		e.Description(),
		pgconv.UUIDPtrToPgtype(e.OwnerID()),
		string(e.Status()),
		e.MaxRequests(),
		e.RequestCount(),
		e.IsPublic(),
		e.RetentionDays(),
		pgconv.TimePtrToPgtype(e.ExpiresAt()),
		e.CreatedAt(),
		e.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert endpoint", err)
	}
	return nil
}

func (r *EndpointRepository) FindByID(ctx context.Context, id uuid.UUID) (*endpoint.Endpoint, error) {
	const query = `
		SELECT id, name, description, owner_id, status, max_requests,
		       current_request_count, is_public, auto_delete_after_days,
		       expires_at, created_at, updated_at
		FROM endpoints
		WHERE id = $1`

	var (
		rowID         uuid.UUID
		name          string
		description   string
		ownerID       pgtype.UUID
		status        string
		maxRequests   int32
		requestCount  int32
		isPublic      bool
		retentionDays int32
		expiresAt     pgtype.Timestamptz
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&rowID, &name, &description, &ownerID, &status, &maxRequests,
		&requestCount, &isPublic, &retentionDays, &expiresAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("endpoint not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get endpoint", err)
	}

	st, err := endpoint.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt endpoint status", err)
	}

	return endpoint.ReconstructEndpoint(
		rowID, name, description,
		pgconv.UUIDPtrFromPgtype(ownerID),
		st, maxRequests, requestCount, isPublic, retentionDays,
		pgconv.TimePtrFromPgtype(expiresAt),
		createdAt, updatedAt,
	), nil
}

// IncrementUsage is the atomic counter step of the capture path. The
// guard clause re-checks status, quota, and expiry inside the UPDATE so
// two concurrent captures can never both take the last slot; the CASE
// flips the endpoint to expired in the same statement when the increment
// lands on the quota.
func (r *EndpointRepository) IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) (*UsageResult, error) {
	const query = `
		UPDATE endpoints
		SET current_request_count = current_request_count + 1,
		    status = CASE
		        WHEN current_request_count + 1 >= max_requests THEN 'expired'
		        ELSE status
		    END,
		    updated_at = $2
		WHERE id = $1
		  AND status = 'active'
		  AND current_request_count < max_requests
		  AND (expires_at IS NULL OR expires_at > $2)
		RETURNING current_request_count, status`

	var result UsageResult
	var status string
	err := r.db.QueryRow(ctx, query, id, now).Scan(&result.RequestCount, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("endpoint not usable for capture", pgx.ErrNoRows, infra.KindUnavailable)
		}
		return nil, infra.WrapRepoErr("failed to increment endpoint usage", err)
	}
	result.Status = endpoint.Status(status)
	return &result, nil
}

// MarkExpired is idempotent: only active endpoints transition.
func (r *EndpointRepository) MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) error {
	const query = `
		UPDATE endpoints
		SET status = 'expired', updated_at = $2
		WHERE id = $1 AND status = 'active'`

	_, err := r.db.Exec(ctx, query, id, now)
	if err != nil {
		return infra.WrapRepoErr("failed to mark endpoint expired", err)
	}
	return nil
}

// MarkDisabled turns off an endpoint on request. Only active endpoints
// transition; repeating the call is a no-op.
func (r *EndpointRepository) MarkDisabled(ctx context.Context, id uuid.UUID, now time.Time) error {
	const query = `
		UPDATE endpoints
		SET status = 'disabled', updated_at = $2
		WHERE id = $1 AND status = 'active'`

	_, err := r.db.Exec(ctx, query, id, now)
	if err != nil {
		return infra.WrapRepoErr("failed to disable endpoint", err)
	}
	return nil
}

// ExpirePastWindow transitions active endpoints whose expiry time has
// passed. Returns how many rows transitioned.
func (r *EndpointRepository) ExpirePastWindow(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE endpoints
		SET status = 'expired', updated_at = $1
		WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at < $1`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire endpoints past window", err)
	}
	return tag.RowsAffected(), nil
}

// ExpireOverQuota transitions active endpoints whose count already
// reached their quota. Normally the capture path flips these itself;
// the sweep is the backstop.
func (r *EndpointRepository) ExpireOverQuota(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE endpoints
		SET status = 'expired', updated_at = $1
		WHERE status = 'active' AND current_request_count >= max_requests`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire endpoints over quota", err)
	}
	return tag.RowsAffected(), nil
}

// DeletePastRetention permanently drops non-active endpoints older than
// their per-endpoint auto-delete horizon. Captured requests and the
// analytics row go with them via ON DELETE CASCADE; the CTE counts the
// requests before the cascade so the sweep can report both numbers.
func (r *EndpointRepository) DeletePastRetention(ctx context.Context, now time.Time) (endpoints, requests int64, err error) {
	const query = `
		WITH doomed AS (
		    SELECT id FROM endpoints
		    WHERE status <> 'active'
		      AND created_at + make_interval(days => auto_delete_after_days) < $1
		), victim_requests AS (
		    SELECT count(*) AS n FROM captured_requests
		    WHERE endpoint_id IN (SELECT id FROM doomed)
		), deleted AS (
		    DELETE FROM endpoints WHERE id IN (SELECT id FROM doomed)
		    RETURNING id
		)
		SELECT (SELECT count(*) FROM deleted), (SELECT n FROM victim_requests)`

	if err := r.db.QueryRow(ctx, query, now).Scan(&endpoints, &requests); err != nil {
		return 0, 0, infra.WrapRepoErr("failed to delete endpoints past retention", err)
	}
	return endpoints, requests, nil
}
