package repository

import (
	"context"
	"encoding/json"
	"time"

	"hooklens/internal/domain/capture"
	"hooklens/internal/infra"
	"hooklens/internal/infra/db"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

func (r *RequestRepository) Create(ctx context.Context, req *capture.Request) (int64, error) {
	headers, err := json.Marshal(req.Headers)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode request headers", err)
	}

	const query = `
		INSERT INTO captured_requests (
			endpoint_id, method, path, query_string, headers, body,
			content_type, content_length, ip_address, user_agent, referer,
			received_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id int64
	err = r.db.QueryRow(ctx, query,
		req.EndpointID,
		req.Method,
		req.Path,
		req.QueryString,
		headers,
		req.Body,
		req.ContentType,
		req.ContentLength,
		req.IPAddress,
		req.UserAgent,
		req.Referer,
		req.ReceivedAt,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert captured request", err)
	}
	return id, nil
}

// MarkProcessed flips the post-processing flag. Safe to call twice; the
// second call overwrites the timestamp with a later one, which is fine
// for a best-effort background task.
func (r *RequestRepository) MarkProcessed(ctx context.Context, id int64, at time.Time) error {
	const query = `
		UPDATE captured_requests
		SET processed = TRUE, processed_at = $2
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark request processed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("captured request not found", nil, infra.KindNotFound)
	}
	return nil
}
