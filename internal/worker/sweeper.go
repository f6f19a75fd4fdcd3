package worker

import (
	"context"
	"log/slog"
	"time"

	"hooklens/internal/pkg/config"
	"hooklens/internal/usecase/commands"
)

// Sweeper periodically runs the cleanup pass. One pass per tick; a slow
// pass just delays the next tick rather than stacking up.
type Sweeper struct {
	sweep    commands.SweepCommands
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(sweep commands.SweepCommands, cfg config.SweepConfig) *Sweeper {
	return &Sweeper{
		sweep:    sweep,
		interval: cfg.Interval,
	}
}

func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
}

func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := s.sweep.Run(ctx)
			if err != nil {
				slog.Error("sweep pass failed", "error", err.Error())
				continue
			}
			slog.Info("sweep pass completed",
				"expired_by_window", result.ExpiredByWindow,
				"expired_by_quota", result.ExpiredByQuota,
				"deleted_endpoints", result.DeletedEndpoints,
				"deleted_requests", result.DeletedRequests)
		}
	}
}
