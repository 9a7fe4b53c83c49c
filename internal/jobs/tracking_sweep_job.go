package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"couriernet/internal/core/application/usecases/queries"
	"couriernet/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TrackingSweepJob invalidates cached tracking snapshots of orders
// whose status changed since the previous sweep. Command handlers stay
// decoupled from the cache; between a transition and the next sweep a
// snapshot may be stale, bounded by the sweep interval and the TTL.
type TrackingSweepJob struct {
	handler queries.GetChangedOrderCodesQueryHandler
	cache   ports.TrackingCache
	cron    *cron.Cron
	logger  *slog.Logger

	mu        sync.Mutex
	lastSweep time.Time
}

// NewTrackingSweepJob creates the sweep job.
func NewTrackingSweepJob(
	handler queries.GetChangedOrderCodesQueryHandler,
	cache ports.TrackingCache,
	logger *slog.Logger,
) *TrackingSweepJob {
	return &TrackingSweepJob{
		handler:   handler,
		cache:     cache,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "tracking_sweep_job"),
		lastSweep: time.Now(),
	}
}

// Start schedules the sweep to run every thirty seconds.
func (j *TrackingSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "tracking sweep started (running every thirty seconds)")
	return nil
}

// Stop stops the sweep.
func (j *TrackingSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "tracking sweep stopped")
}

func (j *TrackingSweepJob) sweep(ctx context.Context) {
	j.mu.Lock()
	since := j.lastSweep
	now := time.Now()
	j.mu.Unlock()

	query, err := queries.NewGetChangedOrderCodesQuery(since)
	if err != nil {
		j.logger.ErrorContext(ctx, "tracking sweep failed", "error", err)
		return
	}

	codes, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "tracking sweep failed", "error", err)
		return
	}

	for _, code := range codes {
		if err = j.cache.Invalidate(ctx, code); err != nil {
			// The TTL caps staleness, so a failed invalidation is not
			// retried within the sweep.
			j.logger.WarnContext(ctx, "tracking snapshot invalidation failed",
				"orderCode", code,
				"error", err,
			)
		}
	}

	j.mu.Lock()
	j.lastSweep = now
	j.mu.Unlock()
}
