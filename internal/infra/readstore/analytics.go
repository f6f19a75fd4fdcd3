package readstore

import (
	"context"

	"hooklens/internal/infra"
	"hooklens/internal/infra/db"
	"hooklens/internal/pkg/pgconv"
	"hooklens/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AnalyticsReadStore struct {
	db db.DBTX
}

func NewAnalyticsReadStore(dbtx db.DBTX) *AnalyticsReadStore {
	return &AnalyticsReadStore{db: dbtx}
}

func (r *AnalyticsReadStore) FindByEndpoint(ctx context.Context, endpointID uuid.UUID) (*queries.AnalyticsView, error) {
	const query = `
		SELECT endpoint_id, total_requests, successful_requests,
		       failed_requests, total_bytes_received, average_request_size,
		       get_requests, post_requests, put_requests, patch_requests,
		       delete_requests, other_requests,
		       json_requests, xml_requests, form_requests, text_requests,
		       other_content_requests,
		       last_request_at, updated_at
		FROM endpoint_analytics
		WHERE endpoint_id = $1`

	var (
		view          queries.AnalyticsView
		lastRequestAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query, endpointID).Scan(
		&view.EndpointID, &view.TotalRequests, &view.SuccessfulRequests,
		&view.FailedRequests, &view.TotalBytesReceived, &view.AverageRequestSize,
		&view.GetRequests, &view.PostRequests, &view.PutRequests,
		&view.PatchRequests, &view.DeleteRequests, &view.OtherRequests,
		&view.JSONRequests, &view.XMLRequests, &view.FormRequests,
		&view.TextRequests, &view.OtherContentRequests,
		&lastRequestAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// The analytics row is created lazily on first capture;
			// until then the endpoint legitimately has zero stats.
			return &queries.AnalyticsView{EndpointID: endpointID}, nil
		}
		return nil, infra.WrapRepoErr("failed to get endpoint analytics", err)
	}

	view.LastRequestAt = pgconv.TimePtrFromPgtype(lastRequestAt)
	return &view, nil
}
