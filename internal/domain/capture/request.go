package capture

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Request is one inbound HTTP request captured against an endpoint.
// Immutable after construction; the processed flag lives on the stored
// row and is flipped by asynchronous post-processing, never here.
type Request struct {
	ID            int64
	EndpointID    uuid.UUID
	Method        string
	Path          string
	QueryString   string
	Headers       map[string]string
	Body          string
	ContentType   string
	ContentLength int64
	IPAddress     string
	UserAgent     string
	Referer       string
	ReceivedAt    time.Time
}

// FromHTTP normalizes a raw transport request into a capture record.
// The body is passed separately because the gateway reads (and bounds)
// it before handing off.
func FromHTTP(endpointID uuid.UUID, r *http.Request, body []byte, now time.Time) *Request {
	contentLength := r.ContentLength
	if contentLength < 0 {
		contentLength = int64(len(body))
	}

	return &Request{
		EndpointID:    endpointID,
		Method:        r.Method,
		Path:          r.URL.Path,
		QueryString:   r.URL.RawQuery,
		Headers:       FlattenHeaders(r.Header, contentLength),
		Body:          DecodeBody(body),
		ContentType:   r.Header.Get("Content-Type"),
		ContentLength: contentLength,
		IPAddress:     ClientIP(r),
		UserAgent:     r.UserAgent(),
		Referer:       r.Referer(),
		ReceivedAt:    now,
	}
}

// SizeInBytes is the analytics accounting size: header names and values
// plus the stored body.
func (r *Request) SizeInBytes() int64 {
	size := int64(len(r.Body))
	for k, v := range r.Headers {
		size += int64(len(k) + len(v))
	}
	return size
}
