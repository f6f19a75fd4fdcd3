package response

import (
	"time"

	"hooklens/internal/usecase/commands"

	"github.com/google/uuid"
)

// CaptureAckResponse is the JSON body a webhook sender gets back.
type CaptureAckResponse struct {
	Status       string    `json:"status"`
	EndpointID   uuid.UUID `json:"endpoint_id"`
	RequestID    int64     `json:"request_id"`
	ReceivedAt   time.Time `json:"received_at"`
	RequestCount int32     `json:"request_count"`
}

func FromCaptureResult(r *commands.CaptureResult) *CaptureAckResponse {
	return &CaptureAckResponse{
		Status:       "captured",
		EndpointID:   r.EndpointID,
		RequestID:    r.RequestID,
		ReceivedAt:   r.ReceivedAt,
		RequestCount: r.RequestCount,
	}
}

type SweepResponse struct {
	ExpiredByWindow  int64 `json:"expired_by_window"`
	ExpiredByQuota   int64 `json:"expired_by_quota"`
	DeletedEndpoints int64 `json:"deleted_endpoints"`
	DeletedRequests  int64 `json:"deleted_requests"`
}

func FromSweepResult(r *commands.SweepResult) *SweepResponse {
	return &SweepResponse{
		ExpiredByWindow:  r.ExpiredByWindow,
		ExpiredByQuota:   r.ExpiredByQuota,
		DeletedEndpoints: r.DeletedEndpoints,
		DeletedRequests:  r.DeletedRequests,
	}
}

type ExportResponse struct {
	EndpointID uuid.UUID `json:"endpoint_id"`
	Format     string    `json:"format"`
	Path       string    `json:"path"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

func FromExportTicket(t *commands.ExportTicket) *ExportResponse {
	return &ExportResponse{
		EndpointID: t.EndpointID,
		Format:     t.Format,
		Path:       t.Path,
		EnqueuedAt: t.EnqueuedAt,
	}
}
