package response

import (
	"fmt"
	"time"

	"hooklens/internal/domain/endpoint"
	"hooklens/internal/usecase/queries"

	"github.com/google/uuid"
)

type EndpointResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Status              string     `json:"status"`
	CaptureURL          string     `json:"capture_url"`
	MaxRequests         int32      `json:"max_requests"`
	CurrentRequestCount int32      `json:"current_request_count"`
	RequestsRemaining   int32      `json:"requests_remaining"`
	IsPublic            bool       `json:"is_public"`
	RetentionDays       int32      `json:"retention_days"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func CaptureURL(baseURL string, id uuid.UUID) string {
	return fmt.Sprintf("%s/hooks/%s", baseURL, id)
}

func FromEndpointEntity(e *endpoint.Endpoint, baseURL string) *EndpointResponse {
	return &EndpointResponse{
		ID:                  e.ID(),
		Name:                e.Name(),
		Description:         e.Description(),
		Status:              string(e.Status()),
		CaptureURL:          CaptureURL(baseURL, e.ID()),
		MaxRequests:         e.MaxRequests(),
		CurrentRequestCount: e.RequestCount(),
		RequestsRemaining:   e.RequestsRemaining(),
		IsPublic:            e.IsPublic(),
		RetentionDays:       e.RetentionDays(),
		ExpiresAt:           e.ExpiresAt(),
		CreatedAt:           e.CreatedAt(),
		UpdatedAt:           e.UpdatedAt(),
	}
}

func FromEndpointView(v *queries.EndpointView, baseURL string) *EndpointResponse {
	return &EndpointResponse{
		ID:                  v.ID,
		Name:                v.Name,
		Description:         v.Description,
		Status:              v.Status,
		CaptureURL:          CaptureURL(baseURL, v.ID),
		MaxRequests:         v.MaxRequests,
		CurrentRequestCount: v.CurrentRequestCount,
		RequestsRemaining:   v.RequestsRemaining(),
		IsPublic:            v.IsPublic,
		RetentionDays:       v.AutoDeleteAfterDays,
		ExpiresAt:           v.ExpiresAt,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

type EndpointHealthResponse struct {
	Endpoint    *EndpointResponse    `json:"endpoint"`
	IsExpired   bool                 `json:"is_expired"`
	LastRequest *RequestListResponse `json:"last_request,omitempty"`
}

func FromEndpointHealth(h *queries.EndpointHealth, baseURL string) *EndpointHealthResponse {
	resp := &EndpointHealthResponse{
		Endpoint:  FromEndpointView(h.Endpoint, baseURL),
		IsExpired: h.IsExpired,
	}
	if h.LastRequest != nil {
		resp.LastRequest = FromRequestListItem(h.LastRequest)
	}
	return resp
}
