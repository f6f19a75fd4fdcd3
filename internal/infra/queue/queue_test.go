//go:build unit

package queue_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hooklens/internal/infra/queue"
	"hooklens/internal/pkg/config"
	"hooklens/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type InProcessQueueTestSuite struct {
	suite.Suite
}

func TestInProcessQueueSuite(t *testing.T) {
	suite.Run(t, new(InProcessQueueTestSuite))
}

func (s *InProcessQueueTestSuite) newQueue(workers, buffer, maxRetries int) *queue.InProcessQueue {
	return queue.NewInProcessQueue(config.QueueConfig{
		Workers:    workers,
		BufferSize: buffer,
		MaxRetries: maxRetries,
	})
}

func (s *InProcessQueueTestSuite) stop(q *queue.InProcessQueue) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Require().NoError(q.Stop(ctx))
}

func (s *InProcessQueueTestSuite) TestDispatch() {
	s.Run("success: delivers the decoded payload to the registered handler", func() {
		q := s.newQueue(2, 10, 0)

		got := make(chan string, 1)
		q.Register("echo", func(_ context.Context, payload []byte) error {
			got <- string(payload)
			return nil
		})
		q.Start()

		s.Require().NoError(q.Enqueue(context.Background(), "echo", map[string]string{"k": "v"}))

		select {
		case payload := <-got:
			s.JSONEq(`{"k":"v"}`, payload)
		case <-time.After(2 * time.Second):
			s.Fail("handler was not invoked")
		}
		s.stop(q)
	})

	s.Run("success: unknown task is dropped without crashing the worker", func() {
		q := s.newQueue(1, 10, 0)

		invoked := make(chan struct{}, 1)
		q.Register("known", func(context.Context, []byte) error {
			invoked <- struct{}{}
			return nil
		})
		q.Start()

		s.Require().NoError(q.Enqueue(context.Background(), "unknown", nil))
		s.Require().NoError(q.Enqueue(context.Background(), "known", nil))

		select {
		case <-invoked:
		case <-time.After(2 * time.Second):
			s.Fail("worker stopped processing after an unknown task")
		}
		s.stop(q)
	})
}

func (s *InProcessQueueTestSuite) TestRetry() {
	s.Run("success: retries until the handler recovers", func() {
		q := s.newQueue(1, 10, 3)

		var attempts atomic.Int32
		done := make(chan struct{})
		q.Register("flaky", func(context.Context, []byte) error {
			if attempts.Add(1) < 3 {
				return errs.New("transient failure")
			}
			close(done)
			return nil
		})
		q.Start()

		s.Require().NoError(q.Enqueue(context.Background(), "flaky", nil))

		select {
		case <-done:
			s.Equal(int32(3), attempts.Load())
		case <-time.After(5 * time.Second):
			s.Fail("handler never recovered")
		}
		s.stop(q)
	})

	s.Run("success: gives up after the attempt budget", func() {
		q := s.newQueue(1, 10, 1)

		var attempts atomic.Int32
		q.Register("doomed", func(context.Context, []byte) error {
			attempts.Add(1)
			return errs.New("permanent failure")
		})
		q.Start()

		s.Require().NoError(q.Enqueue(context.Background(), "doomed", nil))
		s.stop(q)

		s.Equal(int32(2), attempts.Load())
	})
}

func (s *InProcessQueueTestSuite) TestEnqueue() {
	s.Run("error: reports a full buffer instead of blocking", func() {
		// No workers started, so nothing drains the buffer.
		q := s.newQueue(0, 2, 0)
		q.Register("noop", func(context.Context, []byte) error { return nil })

		s.Require().NoError(q.Enqueue(context.Background(), "noop", 1))
		s.Require().NoError(q.Enqueue(context.Background(), "noop", 2))
		s.ErrorIs(q.Enqueue(context.Background(), "noop", 3), queue.ErrQueueFull)
	})

	s.Run("error: rejects payloads that cannot be encoded", func() {
		q := s.newQueue(0, 2, 0)
		s.Error(q.Enqueue(context.Background(), "noop", func() {}))
	})

	s.Run("error: enqueue after stop reports a stopped queue instead of panicking", func() {
		q := s.newQueue(1, 10, 0)
		q.Register("noop", func(context.Context, []byte) error { return nil })
		q.Start()
		s.stop(q)

		s.NotPanics(func() {
			s.ErrorIs(q.Enqueue(context.Background(), "noop", 1), queue.ErrQueueStopped)
		})
	})
}

func (s *InProcessQueueTestSuite) TestStop() {
	s.Run("success: drains buffered tasks before returning", func() {
		q := s.newQueue(2, 32, 0)

		var processed atomic.Int32
		var wg sync.WaitGroup
		q.Register("count", func(context.Context, []byte) error {
			processed.Add(1)
			wg.Done()
			return nil
		})
		q.Start()

		const total = 20
		wg.Add(total)
		for i := 0; i < total; i++ {
			s.Require().NoError(q.Enqueue(context.Background(), "count", i))
		}

		s.stop(q)
		wg.Wait()
		s.Equal(int32(total), processed.Load())
	})
}
