package tasks

// Task names on the work queue. Producers and handlers agree on these
// plus the JSON payload shapes below; nothing else crosses the queue.
const (
	TaskProcessRequest = "capture.process_request"
	TaskAnalyticsRetry = "analytics.apply_retry"
	TaskExportRequests = "export.render_requests"
)

// ProcessRequestPayload marks one captured request as processed.
type ProcessRequestPayload struct {
	RequestID int64 `json:"request_id"`
}

// ExportRequestsPayload renders an endpoint's captured requests to a
// file. Format is "json" or "csv"; OutPath is decided at enqueue time so
// the API can return it before the render happens.
type ExportRequestsPayload struct {
	EndpointID string `json:"endpoint_id"`
	Format     string `json:"format"`
	OutPath    string `json:"out_path"`
}
