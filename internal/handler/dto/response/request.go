package response

import (
	"time"

	"hooklens/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestResponse struct {
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

type RequestListResponse struct {
	ID            int64     `json:"id"`
	Method        string    `json:"method"`
	ContentType   string    `json:"content_type"`
	ContentLength int64     `json:"content_length"`
	IPAddress     string    `json:"ip_address"`
	Processed     bool      `json:"processed"`
	ReceivedAt    time.Time `json:"received_at"`
}

// RequestPageResponse carries one keyset page; NextCursor is absent on
// the last page.
type RequestPageResponse struct {
	Items      []*RequestListResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:            v.ID,
		EndpointID:    v.EndpointID,
		Method:        v.Method,
		Path:          v.Path,
		QueryString:   v.QueryString,
		Headers:       v.Headers,
		Body:          v.Body,
		ContentType:   v.ContentType,
		ContentLength: v.ContentLength,
		IPAddress:     v.IPAddress,
		UserAgent:     v.UserAgent,
		Referer:       v.Referer,
		Processed:     v.Processed,
		ProcessedAt:   v.ProcessedAt,
		ReceivedAt:    v.ReceivedAt,
	}
}

func FromRequestListItem(item *queries.RequestListItem) *RequestListResponse {
	return &RequestListResponse{
		ID:            item.ID,
		Method:        item.Method,
		ContentType:   item.ContentType,
		ContentLength: item.ContentLength,
		IPAddress:     item.IPAddress,
		Processed:     item.Processed,
		ReceivedAt:    item.ReceivedAt,
	}
}

func FromRequestPage(items []*queries.RequestListItem, next *queries.Cursor) *RequestPageResponse {
	page := &RequestPageResponse{
		Items: make([]*RequestListResponse, len(items)),
	}
	for i, item := range items {
		page.Items[i] = FromRequestListItem(item)
	}
	if next != nil {
		page.NextCursor = next.After
	}
	return page
}
