package queries

import (
	"context"
	"time"

	"hooklens/internal/infra"
	"hooklens/internal/pkg/errs"

	"github.com/google/uuid"
)

type AnalyticsView struct {
	EndpointID           uuid.UUID  `json:"endpoint_id"`
	TotalRequests        int64      `json:"total_requests"`
	SuccessfulRequests   int64      `json:"successful_requests"`
	FailedRequests       int64      `json:"failed_requests"`
	TotalBytesReceived   int64      `json:"total_bytes_received"`
	AverageRequestSize   float64    `json:"average_request_size"`
	GetRequests          int64      `json:"get_requests"`
	PostRequests         int64      `json:"post_requests"`
	PutRequests          int64      `json:"put_requests"`
	PatchRequests        int64      `json:"patch_requests"`
	DeleteRequests       int64      `json:"delete_requests"`
	OtherRequests        int64      `json:"other_requests"`
	JSONRequests         int64      `json:"json_requests"`
	XMLRequests          int64      `json:"xml_requests"`
	FormRequests         int64      `json:"form_requests"`
	TextRequests         int64      `json:"text_requests"`
	OtherContentRequests int64      `json:"other_content_requests"`
	LastRequestAt        *time.Time `json:"last_request_at,omitempty"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// SuccessRate is the percentage of captured requests that were recorded
// as successful. Capture never classifies failures, so in practice this
// is 100 for any endpoint that has seen traffic.
func (v *AnalyticsView) SuccessRate() float64 {
	if v.TotalRequests == 0 {
		return 0
	}
	return float64(v.SuccessfulRequests) / float64(v.TotalRequests) * 100
}

// MostCommonMethod returns the busiest method bucket, or "" when the
// endpoint has no traffic.
func (v *AnalyticsView) MostCommonMethod() string {
	buckets := []struct {
		name  string
		count int64
	}{
		{"GET", v.GetRequests},
		{"POST", v.PostRequests},
		{"PUT", v.PutRequests},
		{"PATCH", v.PatchRequests},
		{"DELETE", v.DeleteRequests},
		{"OTHER", v.OtherRequests},
	}
	return argmax(buckets)
}

func (v *AnalyticsView) MostCommonContentType() string {
	buckets := []struct {
		name  string
		count int64
	}{
		{"JSON", v.JSONRequests},
		{"XML", v.XMLRequests},
		{"FORM", v.FormRequests},
		{"TEXT", v.TextRequests},
		{"OTHER", v.OtherContentRequests},
	}
	return argmax(buckets)
}

func argmax(buckets []struct {
	name  string
	count int64
}) string {
	best := ""
	var bestCount int64
	for _, b := range buckets {
		if b.count > bestCount {
			best = b.name
			bestCount = b.count
		}
	}
	return best
}

type AnalyticsReadStore interface {
	// FindByEndpoint returns a zero-valued view when the analytics row
	// has not been created yet (no captures so far).
	FindByEndpoint(ctx context.Context, endpointID uuid.UUID) (*AnalyticsView, error)
}

type AnalyticsQueries interface {
	GetByEndpoint(ctx context.Context, endpointID uuid.UUID) (*AnalyticsView, error)
}

type analyticsQueriesImpl struct {
	repo      AnalyticsReadStore
	endpoints EndpointReadStore
}

func NewAnalyticsQueries(repo AnalyticsReadStore, endpoints EndpointReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{repo: repo, endpoints: endpoints}
}

func (q *analyticsQueriesImpl) GetByEndpoint(ctx context.Context, endpointID uuid.UUID) (*AnalyticsView, error) {
	// The analytics row is created lazily, so only the endpoint itself
	// distinguishes "no traffic yet" from "no such endpoint".
	if _, err := q.endpoints.FindByID(ctx, endpointID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEndpointNotFound
		}
		return nil, err
	}
	return q.repo.FindByEndpoint(ctx, endpointID)
}
