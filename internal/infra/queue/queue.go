package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hooklens/internal/pkg/config"
	"hooklens/internal/pkg/errs"
)

var (
	ErrQueueFull     = errs.New("task queue is full")
	ErrQueueStopped  = errs.New("task queue is stopped")
	ErrUnknownTask   = errs.New("no handler registered for task")
	errTaskExhausted = errs.New("task failed after max retries")
)

// Handler processes one task payload. A non-nil error triggers a retry
// with backoff until the attempt budget runs out.
type Handler func(ctx context.Context, payload []byte) error

type task struct {
	name    string
	payload []byte
}

// InProcessQueue is the enqueue-and-forget work queue behind
// shared.TaskQueue. Workers run inside the process, and enqueueing
// never blocks the capture path: a full buffer is reported to the
// caller instead of stalling the request.
type InProcessQueue struct {
	mu       sync.RWMutex
	stopped  bool
	handlers map[string]Handler

	jobs        chan task
	workers     int
	maxRetries  int
	baseBackoff time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
	once   sync.Once
}

func NewInProcessQueue(cfg config.QueueConfig) *InProcessQueue {
	return &InProcessQueue{
		handlers:    make(map[string]Handler),
		jobs:        make(chan task, cfg.BufferSize),
		workers:     cfg.Workers,
		maxRetries:  cfg.MaxRetries,
		baseBackoff: 200 * time.Millisecond,
	}
}

// Register binds a handler to a task name. Must happen before Start.
func (q *InProcessQueue) Register(name string, h Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[name] = h
}

func (q *InProcessQueue) Enqueue(_ context.Context, taskName string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode task payload")
	}

	// The read lock holds off Stop's close until the send is done, so a
	// capture racing a graceful shutdown gets an error instead of a
	// panic on the closed channel.
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.stopped {
		return ErrQueueStopped
	}

	select {
	case q.jobs <- task{name: taskName, payload: raw}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *InProcessQueue) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	q.cancel = cancel

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx)
	}
}

// Stop drains in-flight tasks until ctx expires.
func (q *InProcessQueue) Stop(ctx context.Context) error {
	q.once.Do(func() {
		q.mu.Lock()
		q.stopped = true
		close(q.jobs)
		q.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if q.cancel != nil {
			q.cancel()
		}
		return nil
	case <-ctx.Done():
		if q.cancel != nil {
			q.cancel()
		}
		return ctx.Err()
	}
}

func (q *InProcessQueue) worker(ctx context.Context) {
	defer q.wg.Done()
	for t := range q.jobs {
		q.process(ctx, t)
	}
}

func (q *InProcessQueue) process(ctx context.Context, t task) {
	q.mu.RLock()
	h, ok := q.handlers[t.name]
	q.mu.RUnlock()
	if !ok {
		slog.Error("dropping task with no registered handler", "task", t.name)
		return
	}

	var err error
	for attempt := 0; attempt <= q.maxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(1<<(attempt-1)) * q.baseBackoff
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
		}

		if err = h(ctx, t.payload); err == nil {
			return
		}

		slog.Warn("task attempt failed",
			"task", t.name,
			"attempt", attempt+1,
			"error", err.Error())
	}

	slog.Error("dropping task after max retries",
		"task", t.name,
		"attempts", q.maxRetries+1,
		"error", errs.Mark(err, errTaskExhausted).Error())
}
