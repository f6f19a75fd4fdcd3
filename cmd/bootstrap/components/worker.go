package components

import (
	"context"

	"hooklens/internal/infra/queue"
	"hooklens/internal/pkg/config"
	"hooklens/internal/usecase/shared"
	"hooklens/internal/usecase/tasks"
	"hooklens/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		queue.NewInProcessQueue,
		func(q *queue.InProcessQueue) shared.TaskQueue { return q },
		worker.NewSweeper,
	),
	fx.Invoke(
		startQueue,
		startSweeper,
	),
)

func startQueue(lc fx.Lifecycle, q *queue.InProcessQueue, handlers *tasks.Handlers) {
	q.Register(tasks.TaskProcessRequest, handlers.ProcessRequest())
	q.Register(tasks.TaskAnalyticsRetry, handlers.AnalyticsRetry())
	q.Register(tasks.TaskExportRequests, handlers.ExportRequests())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			q.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return q.Stop(ctx)
		},
	})
}

func startSweeper(lc fx.Lifecycle, s *worker.Sweeper, cfg config.SweepConfig) {
	if !cfg.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
