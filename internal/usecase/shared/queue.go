package shared

import "context"

// TaskQueue is the enqueue-and-forget boundary to asynchronous
// collaborators (post-capture processing, analytics retries, exports).
// Enqueue returns once the task is accepted; completion is never
// observed synchronously.
type TaskQueue interface {
	Enqueue(ctx context.Context, taskName string, payload any) error
}
