package repository

import (
	"context"
	"time"

	"hooklens/internal/domain/capture"
	"hooklens/internal/infra"
	"hooklens/internal/infra/db"

	"github.com/google/uuid"
)

// AnalyticsDelta is one captured request reduced to the counter
// increments it contributes. It is JSON-serializable so a failed apply
// can be re-enqueued on the work queue as-is.
type AnalyticsDelta struct {
	EndpointID uuid.UUID             `json:"endpoint_id"`
	Bytes      int64                 `json:"bytes"`
	Method     capture.MethodBucket  `json:"method"`
	Family     capture.ContentFamily `json:"family"`
	ReceivedAt time.Time             `json:"received_at"`
}

func NewAnalyticsDelta(req *capture.Request) AnalyticsDelta {
	return AnalyticsDelta{
		EndpointID: req.EndpointID,
		Bytes:      req.SizeInBytes(),
		Method:     capture.BucketForMethod(req.Method),
		Family:     capture.FamilyForContentType(req.ContentType),
		ReceivedAt: req.ReceivedAt,
	}
}

type AnalyticsRepository struct {
	db db.DBTX
}

func NewAnalyticsRepository(dbtx db.DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{db: dbtx}
}

// Apply folds one delta into the endpoint's analytics row. The upsert is
// a single statement whose arithmetic runs against the stored values, so
// concurrent captures serialize on the row lock and no increment is ever
// lost to a stale in-memory snapshot. At capture time every request is
// successful; transport-level rejections never reach this step.
func (r *AnalyticsRepository) Apply(ctx context.Context, d AnalyticsDelta) error {
	const query = `
		INSERT INTO endpoint_analytics (
			endpoint_id, total_requests, successful_requests,
			total_bytes_received, average_request_size,
			get_requests, post_requests, put_requests, patch_requests,
			delete_requests, other_requests,
			json_requests, xml_requests, form_requests, text_requests,
			other_content_requests,
			last_request_at, updated_at
		) VALUES (
			$1, 1, 1, $2, $2,
			$3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			$14, now()
		)
		ON CONFLICT (endpoint_id) DO UPDATE SET
			total_requests       = endpoint_analytics.total_requests + 1,
			successful_requests  = endpoint_analytics.successful_requests + 1,
			total_bytes_received = endpoint_analytics.total_bytes_received + $2,
			average_request_size = (endpoint_analytics.total_bytes_received + $2)::double precision
			                       / (endpoint_analytics.total_requests + 1),
			get_requests    = endpoint_analytics.get_requests + $3,
			post_requests   = endpoint_analytics.post_requests + $4,
			put_requests    = endpoint_analytics.put_requests + $5,
			patch_requests  = endpoint_analytics.patch_requests + $6,
			delete_requests = endpoint_analytics.delete_requests + $7,
			other_requests  = endpoint_analytics.other_requests + $8,
			json_requests          = endpoint_analytics.json_requests + $9,
			xml_requests           = endpoint_analytics.xml_requests + $10,
			form_requests          = endpoint_analytics.form_requests + $11,
			text_requests          = endpoint_analytics.text_requests + $12,
			other_content_requests = endpoint_analytics.other_content_requests + $13,
			last_request_at = $14,
			updated_at      = now()`

	m := methodIncrements(d.Method)
	f := familyIncrements(d.Family)

	_, err := r.db.Exec(ctx, query,
		d.EndpointID, d.Bytes,
		m[capture.MethodGet], m[capture.MethodPost], m[capture.MethodPut],
		m[capture.MethodPatch], m[capture.MethodDelete], m[capture.MethodOther],
		f[capture.ContentJSON], f[capture.ContentXML], f[capture.ContentForm],
		f[capture.ContentText], f[capture.ContentOther],
		d.ReceivedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to apply analytics delta", err)
	}
	return nil
}

func methodIncrements(bucket capture.MethodBucket) map[capture.MethodBucket]int64 {
	m := map[capture.MethodBucket]int64{
		capture.MethodGet: 0, capture.MethodPost: 0, capture.MethodPut: 0,
		capture.MethodPatch: 0, capture.MethodDelete: 0, capture.MethodOther: 0,
	}
	m[bucket] = 1
	return m
}

func familyIncrements(family capture.ContentFamily) map[capture.ContentFamily]int64 {
	f := map[capture.ContentFamily]int64{
		capture.ContentJSON: 0, capture.ContentXML: 0, capture.ContentForm: 0,
		capture.ContentText: 0, capture.ContentOther: 0,
	}
	f[family] = 1
	return f
}
